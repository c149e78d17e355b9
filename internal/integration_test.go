package internal_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kyleking/gh-clonestats/internal/app"
	"github.com/kyleking/gh-clonestats/internal/chart"
	"github.com/kyleking/gh-clonestats/internal/exec"
	"github.com/kyleking/gh-clonestats/internal/github"
	"github.com/kyleking/gh-clonestats/internal/pipeline"
	"github.com/kyleking/gh-clonestats/internal/report"
)

var errMockCommand = errors.New("mock command failed")

// TestEndToEnd_ReportAndChart runs list, fetch, persist and render against a
// mocked gh CLI.
func TestEndToEnd_ReportAndChart(t *testing.T) {
	mockExec := exec.NewMockExecutor()
	setupAccountMocks(mockExec, 25)
	mockExec.AddGHTrafficClonesError("octocat", "repo-07", "HTTP 403: Must have push access", errMockCommand)

	client := github.NewClient(mockExec, 0)
	output := filepath.Join(t.TempDir(), report.DefaultPath)
	var progress bytes.Buffer
	p := pipeline.New(client, client, pipeline.Options{Output: output}, zap.NewNop().Sugar(), &progress)

	entries, err := p.Run(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if len(entries) != 25 {
		t.Fatalf("entries: got %d, want 25", len(entries))
	}
	if len(mockExec.CommandsFor("api")) != 25 {
		t.Errorf("traffic requests: got %d, want 25", len(mockExec.CommandsFor("api")))
	}

	saved, err := report.Read(output)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	for i := range entries {
		if saved[i].Name != entries[i].Name || saved[i].Traffic.Count != entries[i].Traffic.Count {
			t.Errorf("entry %d: saved %+v, in memory %+v", i, saved[i], entries[i])
		}
	}
	if saved[7].Traffic.Count != 0 || len(saved[7].Traffic.Clones) != 0 {
		t.Errorf("failed fetch should be zero-filled, got %+v", saved[7].Traffic)
	}

	bars, err := chart.Prepare(entries, chart.DefaultTopN)
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	if len(bars) != 20 {
		t.Fatalf("bars: got %d, want 20", len(bars))
	}
	if bars[0].Name != "repo-24" {
		t.Errorf("top repository: got %q, want repo-24", bars[0].Name)
	}

	var rendered bytes.Buffer
	if err := app.Show(context.Background(), bars, app.ShowOptions{Out: &rendered, Width: 100}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, excluded := range []string{"repo-03 ", "repo-07 "} {
		if strings.Contains(rendered.String(), excluded) {
			t.Errorf("%q is outside the top 20 and should not be charted", excluded)
		}
	}
	if !strings.Contains(rendered.String(), "repo-04 ") {
		t.Error("repo-04 moves into the top 20 once repo-07 fails")
	}
}

// setupAccountMocks registers n repositories where repo-i has i*3 clones.
func setupAccountMocks(m *exec.MockExecutor, n int) {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("repo-%02d", i)
		names = append(names, name)
		m.AddGHTrafficClones("octocat", name, fmt.Sprintf(
			`{"count":%d,"uniques":%d,"clones":[{"timestamp":"2024-01-01T00:00:00Z","count":%d,"uniques":%d}]}`,
			i*3, i, i*3, i))
	}
	m.AddGHRepoList("octocat", names...)
}
