package panes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/gh-clonestats/internal/chart"
	"github.com/kyleking/gh-clonestats/internal/github"
	"github.com/kyleking/gh-clonestats/internal/ui"
)

// Chart captions.
const (
	ChartTitle  = "GitHub Repo Traffic: Total vs Unique Clones (Top Repositories)"
	TotalLabel  = "Total Clones"
	UniqueLabel = "Unique Clones"
	XAxisLabel  = "Number of Clones"
	YAxisLabel  = "Repository"
)

const (
	totalCell  = "█"
	uniqueCell = "▒"
	// chromeLines are the title, legend, header and axis lines around the rows.
	chromeLines = 6
)

// ChartModel manages the grouped bar chart pane.
type ChartModel struct {
	bars          []chart.Bar
	selectedIndex int
	offset        int
	width         int
	height        int
}

// NewChartModel creates a new chart pane model.
func NewChartModel(bars []chart.Bar) ChartModel {
	return ChartModel{bars: bars}
}

// SetBars replaces the charted bars and clamps the selection.
func (m *ChartModel) SetBars(bars []chart.Bar) {
	m.bars = bars
	if m.selectedIndex >= len(bars) {
		m.selectedIndex = max(len(bars)-1, 0)
	}
	m.clampOffset()
}

// SetSize updates the pane dimensions.
func (m *ChartModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

// MoveUp moves selection up.
func (m *ChartModel) MoveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	}
	m.clampOffset()
}

// MoveDown moves selection down.
func (m *ChartModel) MoveDown() {
	if m.selectedIndex < len(m.bars)-1 {
		m.selectedIndex++
	}
	m.clampOffset()
}

// Update handles messages for the chart pane.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	return m, nil
}

// visibleBars is how many bar pairs fit in the pane.
func (m ChartModel) visibleBars() int {
	if m.height == 0 {
		return len(m.bars)
	}
	return max((m.height-2-chromeLines)/2, 1)
}

func (m *ChartModel) clampOffset() {
	visible := m.visibleBars()
	if m.selectedIndex < m.offset {
		m.offset = m.selectedIndex
	}
	if m.selectedIndex >= m.offset+visible {
		m.offset = m.selectedIndex - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the chart pane.
func (m ChartModel) View() string {
	style := ui.PaneStyle(m.width, m.height)
	return style.Render(m.ViewContent())
}

// ViewContent renders the chart without the pane border.
func (m ChartModel) ViewContent() string {
	if len(m.bars) == 0 {
		var content strings.Builder
		content.WriteString(ui.TitleStyle.Render(ChartTitle))
		content.WriteString("\n\n")
		content.WriteString(ui.SubtitleStyle.Render("No repositories match"))
		return content.String()
	}
	end := min(m.offset+m.visibleBars(), len(m.bars))
	return Render(m.bars[m.offset:end], max(m.width-4, 0), m.selectedIndex-m.offset, true)
}

// SelectedBar returns the currently selected bar.
func (m ChartModel) SelectedBar() *chart.Bar {
	if len(m.bars) == 0 || m.selectedIndex >= len(m.bars) {
		return nil
	}
	return &m.bars[m.selectedIndex]
}

// Render draws bars as a grouped horizontal bar chart, total and unique bars
// adjacent per repository. With cursor set, the row at selected is marked.
func Render(bars []chart.Bar, width, selected int, cursor bool) string {
	layout := chart.NewLayout(bars, width)
	var s strings.Builder

	s.WriteString(ui.TitleStyle.Render(ChartTitle))
	s.WriteString("\n")
	s.WriteString(ui.TotalBarStyle.Render(totalCell+totalCell) + " " + TotalLabel + "   " +
		ui.UniqueBarStyle.Render(uniqueCell+uniqueCell) + " " + UniqueLabel)
	s.WriteString("\n\n")
	s.WriteString(ui.TableHeaderStyle.Render("  " + ui.PadRight(YAxisLabel, layout.LabelWidth)))
	s.WriteString("\n")

	for i, row := range layout.Rows {
		indicator := "  "
		labelStyle := ui.NormalStyle
		if cursor && i == selected {
			indicator = "> "
			labelStyle = ui.SelectedStyle
		}

		label := ui.PadRight(ui.TruncateWithEllipsis(row.Bar.Name, layout.LabelWidth), layout.LabelWidth)
		s.WriteString(indicator + labelStyle.Render(label) + " ")
		s.WriteString(ui.TotalBarStyle.Render(ui.Repeat(totalCell, row.TotalLen)))
		s.WriteString(fmt.Sprintf(" %d", row.Bar.Total))
		if note := statusNote(row.Bar.Status); note != "" {
			s.WriteString(" " + note)
		}
		s.WriteString("\n")

		s.WriteString("  " + ui.PadRight("", layout.LabelWidth) + " ")
		s.WriteString(ui.UniqueBarStyle.Render(ui.Repeat(uniqueCell, row.UniqueLen)))
		s.WriteString(fmt.Sprintf(" %d", row.Bar.Unique))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(ui.SubtitleStyle.Render("  " + ui.PadRight("", layout.LabelWidth) + " " + XAxisLabel + " (max " + fmt.Sprint(layout.Max) + ")"))
	return s.String()
}

func statusNote(status github.FetchStatus) string {
	switch status {
	case github.StatusUnavailable:
		return ui.TableDimmedStyle.Render("(no data)")
	case github.StatusError:
		return ui.ErrorStyle.Render("(fetch failed)")
	default:
		return ""
	}
}
