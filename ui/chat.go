// Package ui provides the interactive chat interface for the agent.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Agent is the pipeline interface the chat consumes. The returned string
// is always displayable text; an error means the pipeline itself failed.
type Agent interface {
	Execute(ctx context.Context, prompt string) (string, error)
}

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type chatHistory struct {
	messages   []string
	input      []string
	currentPos int
}

func (ch *chatHistory) addMessage(message string) {
	ch.messages = append(ch.messages, message)
}

func (ch *chatHistory) addInput(input string) {
	ch.input = append(ch.input, input)
	ch.currentPos = len(ch.input)
}

func (ch *chatHistory) navigateHistory(direction int) string {
	if len(ch.input) == 0 {
		return ""
	}

	ch.currentPos += direction

	if ch.currentPos < 0 {
		ch.currentPos = 0
	} else if ch.currentPos >= len(ch.input) {
		ch.currentPos = len(ch.input)
		return ""
	}

	return ch.input[ch.currentPos]
}

func (ch *chatHistory) clear() {
	ch.messages = []string{}
	ch.input = []string{}
	ch.currentPos = 0
}

// agentResponseMsg carries the final answer (or pipeline failure) back
// into the update loop
type agentResponseMsg struct {
	response string
	err      error
}

type tickMsg struct{}

type model struct {
	viewport      viewport.Model
	textarea      textarea.Model
	history       chatHistory
	agent         Agent
	ctx           context.Context
	loading       bool
	inputHeight   int
	statusBar     string
	width         int
	height        int
	spinner       int
	spinnerFrames []string
}

// NewModel creates the chat model for the given agent and terminal size
func NewModel(ctx context.Context, agent Agent, width, height int) model {
	inputHeight := 3
	statusHeight := 1
	vpHeight := height - inputHeight - statusHeight - 2

	if vpHeight < 10 {
		vpHeight = 10
	}

	ta := textarea.New()
	ta.Placeholder = "Enter your prompt here..."
	ta.Focus()
	ta.SetHeight(inputHeight)
	ta.SetWidth(width - 2)

	vp := viewport.New(width, vpHeight)

	history := chatHistory{}
	history.addMessage(assistantStyle.Render("Agent: ") +
		"Hello! I consult two models and synthesize their answers. Ask me a complex question.")

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

	m := model{
		viewport:      vp,
		textarea:      ta,
		agent:         agent,
		ctx:           ctx,
		history:       history,
		inputHeight:   inputHeight,
		statusBar:     "(ctrl+c/ctrl+d to quit, ctrl+l to clear history)",
		width:         width,
		height:        height,
		spinnerFrames: spinnerFrames,
	}

	m.updateViewport()

	return m
}

const spinnerInterval = 100 * time.Millisecond

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, spinnerTick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tickMsg:
		if m.loading {
			m.spinner++
		}
		return m, spinnerTick()

	case agentResponseMsg:
		m.loading = false
		if msg.err != nil {
			m.history.addMessage(errorStyle.Render(
				"A critical error occurred in the Agent pipeline: " + msg.err.Error()))
		} else {
			m.history.addMessage(assistantStyle.Render("Agent: ") + msg.response)
		}
		m.updateViewport()
		return m, nil

	case tea.KeyMsg:
		// Block input while a request is in flight, except quit keys
		if m.loading &&
			msg.Type != tea.KeyCtrlC &&
			msg.Type != tea.KeyCtrlD &&
			msg.Type != tea.KeyEsc {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.textarea.Value() != "" {
				prompt := m.textarea.Value()
				m.history.addMessage(userStyle.Render("You: ") + prompt)
				m.history.addInput(prompt)
				m.textarea.Reset()
				m.updateViewport()
				m.loading = true

				return m, func() tea.Msg {
					response, err := m.agent.Execute(m.ctx, prompt)
					return agentResponseMsg{
						response: response,
						err:      err,
					}
				}
			}
			return m, nil
		case tea.KeyUp:
			m.textarea.SetValue(m.history.navigateHistory(-1))
			return m, nil
		case tea.KeyDown:
			m.textarea.SetValue(m.history.navigateHistory(1))
			return m, nil
		case tea.KeyCtrlL:
			m.history.clear()
			m.updateViewport()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		statusHeight := 1
		vpHeight := msg.Height - m.inputHeight - statusHeight - 2
		if vpHeight < 5 {
			vpHeight = 5
		}

		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight

		m.textarea.SetWidth(msg.Width - 2)
		m.textarea.SetHeight(m.inputHeight)

		m.updateViewport()
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *model) updateViewport() {
	content := strings.Join(m.history.messages, "\n\n")

	m.viewport.SetContent(content)

	if len(m.history.messages) > 0 {
		m.viewport.GotoBottom()
	}
}

func (m model) spinnerFrame() string {
	if len(m.spinnerFrames) == 0 {
		return ""
	}
	return m.spinnerFrames[m.spinner%len(m.spinnerFrames)]
}

func (m model) View() string {
	statusBar := m.statusBar
	if m.loading {
		statusBar = fmt.Sprintf("%s Consulting both models for the best result... %s",
			m.spinnerFrame(), statusBar)
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		m.viewport.View(),
		m.textarea.View(),
		statusBar,
	)
}

// StartChat initializes and runs the chat interface
func StartChat(ctx context.Context, agent Agent, width, height int) error {
	p := tea.NewProgram(
		NewModel(ctx, agent, width, height),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run chat UI: %w", err)
	}

	return nil
}
