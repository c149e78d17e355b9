package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kyleking/gh-clonestats/internal/ui"
)

// Context is a modal dialog layered over the chart.
type Context interface {
	Update(msg tea.Msg) (Context, tea.Cmd)
	View() string
	IsDone() bool
}

// Stack holds the open modals, topmost last.
type Stack struct {
	modals []Context
	width  int
	height int
}

// NewStack creates an empty modal stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push opens a modal on top of the stack.
func (s *Stack) Push(m Context) {
	s.modals = append(s.modals, m)
}

// HasActive reports whether any modal is open.
func (s *Stack) HasActive() bool {
	return len(s.modals) > 0
}

// Top returns the topmost modal, or nil.
func (s *Stack) Top() Context {
	if len(s.modals) == 0 {
		return nil
	}
	return s.modals[len(s.modals)-1]
}

// SetSize records the terminal size used to place modals.
func (s *Stack) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update forwards msg to the topmost modal and pops it once it is done.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	top := s.Top()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	s.modals[len(s.modals)-1] = next
	if next.IsDone() {
		s.modals = s.modals[:len(s.modals)-1]
	}
	return cmd
}

// Render draws the topmost modal centered over the background.
func (s *Stack) Render(background string) string {
	top := s.Top()
	if top == nil {
		return background
	}
	box := ui.BorderStyle.Padding(1, 2).Render(top.View())
	if s.width == 0 || s.height == 0 {
		return box
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, box)
}
