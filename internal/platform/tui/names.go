package tui

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gigili/internal/config"
)

// MaxNameLength is the longest accepted player name, in characters.
const MaxNameLength = config.MaxNameLength

// ErrInvalidName is returned by NormalizeName.
var ErrInvalidName = errors.New("invalid player name")

// NormalizeName trims surrounding space and checks the name is non-empty
// and at most MaxNameLength characters.
func NormalizeName(s string) (string, error) {
	name := strings.TrimSpace(s)
	switch {
	case name == "":
		return "", fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	case utf8.RuneCountInString(name) > MaxNameLength:
		return "", fmt.Errorf("%w: name is longer than %d characters", ErrInvalidName, MaxNameLength)
	}
	return name, nil
}

var (
	nameTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	nameHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	nameErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// NameModel asks for the player's name before the first game.
type NameModel struct {
	input    textinput.Model
	width    int
	height   int
	name     string
	err      error
	done     bool
	quitting bool
}

// NewNameModel creates a name prompt prefilled with initial.
func NewNameModel(initial string, width, height int) NameModel {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = MaxNameLength
	ti.Width = MaxNameLength + 1
	ti.Prompt = "> "
	ti.SetValue(initial)
	ti.Focus()

	return NameModel{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m NameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			name, err := NormalizeName(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.name = name
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = nil
	return m, cmd
}

// View renders the prompt.
func (m NameModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(nameTitleStyle.Render("G I G I L I"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Collect every supply in the ward. Don't get caught.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter your name:", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(centerText(nameErrStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(nameHintStyle.Render("Enter: start  |  Esc: quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Name returns the accepted name, or "" if none was accepted.
func (m NameModel) Name() string {
	return m.name
}

// Done reports whether a name was accepted.
func (m NameModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user cancelled the prompt.
func (m NameModel) IsQuitting() bool {
	return m.quitting
}

// RunNameEntry prompts for a name. ok is false when the player cancelled.
func RunNameEntry(initial string, width, height int) (name string, ok bool, err error) {
	p := tea.NewProgram(NewNameModel(initial, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, isName := finalModel.(NameModel)
	if !isName || !m.Done() {
		return "", false, nil
	}
	return m.Name(), true, nil
}
