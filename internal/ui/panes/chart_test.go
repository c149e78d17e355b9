package panes

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kyleking/gh-clonestats/internal/chart"
	"github.com/kyleking/gh-clonestats/internal/github"
)

func testBars(n int) []chart.Bar {
	bars := make([]chart.Bar, 0, n)
	for i := 0; i < n; i++ {
		bars = append(bars, chart.Bar{
			Name:   fmt.Sprintf("repo-%02d", i),
			Total:  (n - i) * 10,
			Unique: n - i,
			Status: github.StatusOK,
		})
	}
	return bars
}

func TestRender_ContainsLabelsAndLegend(t *testing.T) {
	bars := []chart.Bar{
		{Name: "popular", Total: 40, Unique: 12},
		{Name: "quiet", Total: 0, Unique: 0, Status: github.StatusError},
	}

	out := Render(bars, 80, 0, false)

	for _, want := range []string{ChartTitle, TotalLabel, UniqueLabel, XAxisLabel, YAxisLabel, "popular", "quiet", " 40", " 12", "(fetch failed)"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered chart missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "> ") {
		t.Error("static render should not show a cursor")
	}
}

func TestRender_BarsAreAdjacentPerRepository(t *testing.T) {
	bars := []chart.Bar{{Name: "a", Total: 10, Unique: 5}, {Name: "b", Total: 4, Unique: 1}}

	lines := strings.Split(Render(bars, 60, 0, false), "\n")

	idxA, idxB := -1, -1
	for i, line := range lines {
		if strings.Contains(line, " a ") && idxA < 0 {
			idxA = i
		}
		if strings.Contains(line, " b ") && idxB < 0 {
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 {
		t.Fatalf("labels not found:\n%s", strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[idxA+1], uniqueCell) {
		t.Errorf("unique bar should follow total bar, got %q", lines[idxA+1])
	}
	if idxB != idxA+2 {
		t.Errorf("next repository should start two lines later: a=%d b=%d", idxA, idxB)
	}
}

func TestChartModel_Navigation(t *testing.T) {
	m := NewChartModel(testBars(3))

	m.MoveUp()
	if got := m.SelectedBar().Name; got != "repo-00" {
		t.Errorf("MoveUp at top: got %q", got)
	}

	m.MoveDown()
	m.MoveDown()
	m.MoveDown()
	if got := m.SelectedBar().Name; got != "repo-02" {
		t.Errorf("MoveDown at bottom: got %q", got)
	}

	m.SetBars(testBars(1))
	if got := m.SelectedBar().Name; got != "repo-00" {
		t.Errorf("selection not clamped after SetBars: got %q", got)
	}

	m.SetBars(nil)
	if m.SelectedBar() != nil {
		t.Error("SelectedBar should be nil with no bars")
	}
}

func TestChartModel_Scrolls(t *testing.T) {
	m := NewChartModel(testBars(20))
	m.SetSize(80, 2+chromeLines+6) // room for three bar pairs

	for i := 0; i < 10; i++ {
		m.MoveDown()
	}

	content := m.ViewContent()
	if !strings.Contains(content, "repo-10") {
		t.Errorf("selected row should be visible:\n%s", content)
	}
	if strings.Contains(content, "repo-00") {
		t.Errorf("first row should have scrolled out:\n%s", content)
	}
}

func TestChartModel_Empty(t *testing.T) {
	m := NewChartModel(nil)
	m.SetSize(80, 20)

	if !strings.Contains(m.ViewContent(), "No repositories match") {
		t.Errorf("empty view: %q", m.ViewContent())
	}
}
