package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompt is a one-line text input for naming a new row.
type Prompt struct {
	input  textinput.Model
	title  string
	active bool
}

// NewPrompt creates an active prompt.
func NewPrompt(title, placeholder string) Prompt {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30
	return Prompt{input: ti, title: title, active: true}
}

// Active returns whether the prompt is shown.
func (p Prompt) Active() bool {
	return p.active
}

// Update handles key messages for the prompt.
func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !p.active {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.active = false
			return p, func() tea.Msg {
				return PromptCloseMsg{Confirmed: false}
			}
		case "enter":
			value := strings.TrimSpace(p.input.Value())
			if value == "" {
				return p, nil // don't submit empty
			}
			p.active = false
			return p, func() tea.Msg {
				return PromptCloseMsg{Value: value, Confirmed: true}
			}
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the prompt.
func (p Prompt) View() string {
	if !p.active {
		return ""
	}
	return PromptStyle.Render(HeaderStyle.Render(p.title) + "\n" + p.input.View())
}
