package main

import (
	"github.com/killallgit/otto/cmd"
)

func main() {
	cmd.Execute()
}
