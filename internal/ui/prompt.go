package ui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/vcli/internal/ui/styles"
)

// ErrPromptCancelled is returned when the user aborts a prompt
var ErrPromptCancelled = errors.New("prompt cancelled")

// secretPrompt is a single masked input line
type secretPrompt struct {
	label     string
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newSecretPrompt(label string) secretPrompt {
	input := textinput.New()
	input.Placeholder = "password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = 256
	input.Focus()

	return secretPrompt{label: label, input: input}
}

func (m secretPrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (m secretPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m secretPrompt) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(styles.TokyoNight.Primary).Bold(true).Render(m.label)
	return label + " " + m.input.View() + "\n"
}

// PromptSecret asks for a value without echoing it, reading keys from in and
// drawing on out
func PromptSecret(label string, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(newSecretPrompt(label), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(secretPrompt)
	if !ok || m.cancelled || !m.submitted {
		return "", ErrPromptCancelled
	}
	return m.input.Value(), nil
}
