package modal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/gh-clonestats/internal/chart"
	"github.com/kyleking/gh-clonestats/internal/ui"
)

// DetailModal shows the daily clone series of one repository.
type DetailModal struct {
	bar      chart.Bar
	viewport viewport.Model
	done     bool
	keys     detailKeyMap
}

type detailKeyMap struct {
	Close key.Binding
}

func defaultDetailKeyMap() detailKeyMap {
	return detailKeyMap{
		Close: key.NewBinding(key.WithKeys("esc", "q", "enter")),
	}
}

// NewDetailModal creates a detail view for bar sized to the terminal.
func NewDetailModal(bar chart.Bar, width, height int) *DetailModal {
	vp := viewport.New(max(width-12, 30), max(height-14, 5))
	m := &DetailModal{
		bar:      bar,
		viewport: vp,
		keys:     defaultDetailKeyMap(),
	}
	m.viewport.SetContent(m.renderSeries())
	return m
}

// Update handles input for the detail modal.
func (m *DetailModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = max(msg.Width-12, 30)
		m.viewport.Height = max(msg.Height-14, 5)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Close) {
			m.done = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// renderSeries renders one line per time bucket with a small unique bar.
func (m *DetailModal) renderSeries() string {
	clones := m.bar.Traffic.Clones
	if len(clones) == 0 {
		return ui.TableDimmedStyle.Render("No clone activity in the reporting window")
	}

	peak := 0
	for _, c := range clones {
		peak = max(peak, c.Count)
	}

	var sb strings.Builder
	sb.WriteString(ui.TableHeaderStyle.Render(ui.PadRight("Date", 12) + ui.PadRight("Total", 8) + ui.PadRight("Unique", 8)))
	sb.WriteString("\n")
	for _, c := range clones {
		date := c.Timestamp
		if len(date) >= 10 {
			date = date[:10]
		}
		sb.WriteString(ui.PadRight(date, 12))
		sb.WriteString(ui.PadRight(fmt.Sprint(c.Count), 8))
		sb.WriteString(ui.PadRight(fmt.Sprint(c.Uniques), 8))
		sb.WriteString(ui.TotalBarStyle.Render(ui.Repeat("█", chart.Scale(c.Count, peak, 20))))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// View renders the detail modal.
func (m *DetailModal) View() string {
	var s strings.Builder

	s.WriteString(ui.TitleStyle.Render(m.bar.Name))
	s.WriteString("\n\n")
	s.WriteString(ui.SubtitleStyle.Render(fmt.Sprintf("Total clones: %d   Unique clones: %d   Status: %s",
		m.bar.Total, m.bar.Unique, m.bar.Status)))
	s.WriteString("\n\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n\n")
	s.WriteString(ui.HelpStyle.Render("[↑↓] scroll  [esc/q] close"))

	return s.String()
}

// IsDone returns true if the modal is finished.
func (m *DetailModal) IsDone() bool {
	return m.done
}
