package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/killallgit/otto/pkg/feed"
)

func (m feedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - m.textarea.Height() - 3
		m.textarea.SetWidth(msg.Width)
		m.updateViewportContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.controller.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			prompt := strings.TrimSpace(m.textarea.Value())
			if prompt != "" {
				m.submit(prompt)
				m.textarea.Reset()
				m.updateViewportContent()
			}
			return m, nil
		}

	case feedMsg:
		m.messages = append(m.messages, msg.message)
		m.updateViewportContent()
		return m, waitForUpdate(m.sink.updates)

	case processingMsg:
		m.processing = msg.active
		if msg.active {
			m.state = feed.StateStreaming
			cmds = append(cmds, m.spinner.Tick)
		}
		cmds = append(cmds, waitForUpdate(m.sink.updates))
		return m, tea.Batch(cmds...)

	case doneMsg:
		m.state = msg.state
		m.updateViewportContent()
		return m, waitForUpdate(m.sink.updates)

	case spinner.TickMsg:
		if m.processing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, taCmd, vpCmd)

	return m, tea.Batch(cmds...)
}

func (m *feedModel) updateViewportContent() {
	m.viewport.SetContent(m.renderFeed())
	m.viewport.GotoBottom()
}
