package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/killallgit/otto/pkg/agent"
	"github.com/killallgit/otto/pkg/config"
	"github.com/killallgit/otto/pkg/headless"
	"github.com/killallgit/otto/pkg/logger"
	"github.com/killallgit/otto/pkg/tui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "otto",
	Short: "Terminal client for agent task backends",
	Long:  `Submit a task to a Manus-style agent backend and watch its progress stream in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := logger.Init(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		defer logger.Close()

		client := agent.NewClientWithTimeout(cfg.Server.URL, cfg.Server.Timeout)

		pingCtx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		if err := client.Ping(pingCtx); err != nil {
			logger.WithComponent("cmd").Warn("agent backend not reachable", "url", cfg.Server.URL, "error", err)
		}
		cancel()

		if viper.GetBool("headless") {
			return headless.Run(client, viper.GetString("prompt"))
		}
		return tui.StartApp(client)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is .otto/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().StringP("server", "s", "http://localhost:8000", "agent backend URL")
	viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))

	rootCmd.PersistentFlags().StringP("prompt", "p", "", "execute a prompt directly without entering TUI")
	viper.BindPFlag("prompt", rootCmd.PersistentFlags().Lookup("prompt"))

	rootCmd.PersistentFlags().BoolP("headless", "H", false, "run without TUI (requires --prompt)")
	viper.BindPFlag("headless", rootCmd.PersistentFlags().Lookup("headless"))
}
