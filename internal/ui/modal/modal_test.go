package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/gh-clonestats/internal/chart"
	"github.com/kyleking/gh-clonestats/internal/github"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleBar() chart.Bar {
	return chart.Bar{
		Name:   "hello-world",
		Total:  9,
		Unique: 4,
		Status: github.StatusOK,
		Traffic: github.TrafficRecord{
			Count:   9,
			Uniques: 4,
			Clones: []github.CloneBucket{
				{Timestamp: "2024-06-01T00:00:00Z", Count: 6, Uniques: 3},
				{Timestamp: "2024-06-02T00:00:00Z", Count: 3, Uniques: 1},
			},
		},
	}
}

func TestDetailModal_View(t *testing.T) {
	m := NewDetailModal(sampleBar(), 100, 40)
	view := m.View()

	for _, want := range []string{"hello-world", "Total clones: 9", "2024-06-01", "2024-06-02"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDetailModal_NoClones(t *testing.T) {
	bar := chart.Bar{Name: "quiet", Status: github.StatusUnavailable, Traffic: github.EmptyTraffic()}
	m := NewDetailModal(bar, 100, 40)

	if !strings.Contains(m.View(), "No clone activity") {
		t.Errorf("empty series not reported:\n%s", m.View())
	}
}

func TestDetailModal_Close(t *testing.T) {
	for _, k := range []string{"esc", "q", "enter"} {
		m := NewDetailModal(sampleBar(), 100, 40)
		m.Update(keyMsg(k))
		if !m.IsDone() {
			t.Errorf("key %q should close the modal", k)
		}
	}
}

func TestStack(t *testing.T) {
	s := NewStack()
	if s.HasActive() {
		t.Fatal("new stack should be empty")
	}
	if got := s.Render("background"); got != "background" {
		t.Errorf("empty stack render = %q", got)
	}

	s.Push(NewHelpModal())
	if !s.HasActive() {
		t.Fatal("stack should have an active modal")
	}
	if !strings.Contains(s.Render("background"), "Keys") {
		t.Error("render should show the top modal")
	}

	s.Update(keyMsg("x"))
	if !s.HasActive() {
		t.Error("unbound key should not close the modal")
	}

	s.Update(keyMsg("?"))
	if s.HasActive() {
		t.Error("modal should be popped once done")
	}
}
