package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/gh-clonestats/internal/ui"
)

var helpLines = [][2]string{
	{"↑/k ↓/j", "select repository"},
	{"enter", "show daily clones"},
	{"/", "filter repositories"},
	{"y", "copy repository name"},
	{"?", "toggle this help"},
	{"q", "close the chart"},
}

// HelpModal lists the key bindings.
type HelpModal struct {
	done  bool
	close key.Binding
}

// NewHelpModal creates a help modal.
func NewHelpModal() *HelpModal {
	return &HelpModal{close: key.NewBinding(key.WithKeys("esc", "q", "?"))}
}

// Update handles input for the help modal.
func (m *HelpModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.close) {
		m.done = true
	}
	return m, nil
}

// View renders the help modal.
func (m *HelpModal) View() string {
	var s strings.Builder
	s.WriteString(ui.TitleStyle.Render("Keys"))
	s.WriteString("\n\n")
	for _, l := range helpLines {
		s.WriteString(ui.SelectedStyle.Render(ui.PadRight(l[0], 10)))
		s.WriteString(ui.NormalStyle.Render(l[1]))
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(ui.HelpStyle.Render("Press Esc or ? to close"))
	return s.String()
}

// IsDone returns true if the modal is finished.
func (m *HelpModal) IsDone() bool {
	return m.done
}
