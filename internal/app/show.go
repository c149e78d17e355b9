package app

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/gh-clonestats/internal/chart"
	"github.com/kyleking/gh-clonestats/internal/ui/panes"
)

// defaultWidth is used for the static chart when the terminal width is unknown.
const defaultWidth = 100

// ShowOptions controls how the chart is displayed.
type ShowOptions struct {
	// Interactive opens the full-screen viewer; otherwise the chart is
	// printed once to Out.
	Interactive bool
	Out         io.Writer
	Width       int
}

// Show displays bars and blocks until the viewer is closed.
func Show(ctx context.Context, bars []chart.Bar, opts ShowOptions) error {
	if len(bars) == 0 {
		return chart.ErrNoData
	}

	if !opts.Interactive {
		width := opts.Width
		if width <= 0 {
			width = defaultWidth
		}
		_, err := fmt.Fprintln(opts.Out, panes.Render(bars, width, 0, false))
		return err
	}

	p := tea.NewProgram(New(bars), tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(opts.Out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chart viewer failed: %w", err)
	}
	return nil
}
