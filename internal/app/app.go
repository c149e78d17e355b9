package app

import (
	"fmt"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/kyleking/gh-clonestats/internal/chart"
	"github.com/kyleking/gh-clonestats/internal/ui"
	"github.com/kyleking/gh-clonestats/internal/ui/modal"
	"github.com/kyleking/gh-clonestats/internal/ui/panes"
)

// footerLines is the height reserved below the chart pane.
const footerLines = 3

// Model is the root bubbletea model for the chart viewer.
type Model struct {
	bars    []chart.Bar
	chart   panes.ChartModel
	summary chart.Summary

	modalStack *modal.Stack

	filterInput textinput.Model
	filtering   bool
	query       string

	status          string
	copyToClipboard func(string) error

	width  int
	height int
	keys   KeyMap
}

// New creates a viewer for bars, which are expected in ranked order.
func New(bars []chart.Bar) Model {
	input := textinput.New()
	input.Placeholder = "repository name"
	input.Prompt = "/"
	input.CharLimit = 100

	return Model{
		bars:            bars,
		chart:           panes.NewChartModel(bars),
		summary:         chart.Summarize(bars),
		modalStack:      modal.NewStack(),
		filterInput:     input,
		copyToClipboard: clipboard.WriteAll,
		keys:            DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.chart.SetSize(size.Width, size.Height-footerLines)
		m.modalStack.SetSize(size.Width, size.Height)
	}

	if m.modalStack.HasActive() {
		cmd := m.modalStack.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.filtering {
		return m.handleFilterInput(keyMsg)
	}
	return m.handleKeyMsg(keyMsg)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.chart.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.chart.MoveDown()

	case key.Matches(msg, m.keys.Enter):
		if bar := m.chart.SelectedBar(); bar != nil {
			m.modalStack.Push(modal.NewDetailModal(*bar, m.width, m.height))
		}

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.query)
		m.filterInput.CursorEnd()
		cmd := m.filterInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		if m.query != "" {
			m.setQuery("")
		}

	case key.Matches(msg, m.keys.Copy):
		m.copySelected()

	case key.Matches(msg, m.keys.Help):
		m.modalStack.Push(modal.NewHelpModal())
	}

	return m, nil
}

// handleFilterInput processes input while the filter prompt is focused.
func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.Blur()
		m.setQuery("")
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.setQuery(m.filterInput.Value())
	return m, cmd
}

func (m *Model) setQuery(query string) {
	m.query = query
	m.chart.SetBars(FilterBars(m.bars, query))
}

func (m *Model) copySelected() {
	bar := m.chart.SelectedBar()
	if bar == nil {
		return
	}
	if err := m.copyToClipboard(bar.Name); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied " + bar.Name
}

// FilterBars keeps the bars whose name fuzzy-matches query, in their
// original order.
func FilterBars(bars []chart.Bar, query string) []chart.Bar {
	if query == "" {
		return bars
	}

	names := make([]string, len(bars))
	for i, b := range bars {
		names[i] = b.Name
	}

	matches := fuzzy.Find(query, names)
	idx := make([]int, 0, len(matches))
	for _, match := range matches {
		idx = append(idx, match.Index)
	}
	sort.Ints(idx)

	filtered := make([]chart.Bar, 0, len(idx))
	for _, i := range idx {
		filtered = append(filtered, bars[i])
	}
	return filtered
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	main := lipgloss.JoinVertical(lipgloss.Left, m.chart.View(), m.viewFooter())
	if m.modalStack.HasActive() {
		return m.modalStack.Render(main)
	}
	return main
}

func (m Model) viewFooter() string {
	summary := ui.SubtitleStyle.Render(fmt.Sprintf(
		"%d repositories  %.0f total clones  %.0f unique  mean %.1f  median %.1f",
		m.summary.Repos, m.summary.TotalClones, m.summary.UniqueClones, m.summary.MeanTotal, m.summary.MedianTotal))

	var line string
	switch {
	case m.filtering:
		line = m.filterInput.View()
	case m.status != "":
		line = ui.SelectedStyle.Render(m.status)
	case m.query != "":
		line = ui.SubtitleStyle.Render("filter: " + m.query + "  [esc] clear")
	}

	help := ui.HelpStyle.Render("[↑↓] select  [enter] daily  [/] filter  [y] copy  [?] help  [q] close")
	return summary + "\n" + line + "\n" + help
}
