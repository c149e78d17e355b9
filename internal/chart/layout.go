package chart

import (
	"github.com/mattn/go-runewidth"
	"github.com/montanaflynn/stats"
)

// Row is the laid-out geometry of one bar pair.
type Row struct {
	Bar       Bar
	TotalLen  int
	UniqueLen int
}

// Layout describes how bars fit into a given width.
type Layout struct {
	LabelWidth int
	BarWidth   int
	Max        int
	Rows       []Row
}

const (
	maxLabelWidth = 30
	minBarWidth   = 10
	// countWidth leaves room for the value printed after each bar.
	countWidth = 8
)

// NewLayout scales bars into width columns. Labels take the widest name up to
// maxLabelWidth and the largest total spans the remaining bar area.
func NewLayout(bars []Bar, width int) Layout {
	l := Layout{}
	for _, b := range bars {
		if w := runewidth.StringWidth(b.Name); w > l.LabelWidth {
			l.LabelWidth = w
		}
		if b.Total > l.Max {
			l.Max = b.Total
		}
		if b.Unique > l.Max {
			l.Max = b.Unique
		}
	}
	if l.LabelWidth > maxLabelWidth {
		l.LabelWidth = maxLabelWidth
	}

	l.BarWidth = width - l.LabelWidth - countWidth - 2
	if l.BarWidth < minBarWidth {
		l.BarWidth = minBarWidth
	}

	l.Rows = make([]Row, 0, len(bars))
	for _, b := range bars {
		l.Rows = append(l.Rows, Row{
			Bar:       b,
			TotalLen:  Scale(b.Total, l.Max, l.BarWidth),
			UniqueLen: Scale(b.Unique, l.Max, l.BarWidth),
		})
	}
	return l
}

// Scale maps value in [0, max] onto [0, width] cells. Any non-zero value gets
// at least one cell.
func Scale(value, max, width int) int {
	if value <= 0 || max <= 0 || width <= 0 {
		return 0
	}
	if value >= max {
		return width
	}
	n := value * width / max
	if n == 0 {
		n = 1
	}
	return n
}

// Summary aggregates the charted clone counts.
type Summary struct {
	Repos        int
	TotalClones  float64
	UniqueClones float64
	MeanTotal    float64
	MedianTotal  float64
}

// Summarize computes totals and central tendency of the bars' clone counts.
func Summarize(bars []Bar) Summary {
	s := Summary{Repos: len(bars)}
	if len(bars) == 0 {
		return s
	}

	totals := make(stats.Float64Data, 0, len(bars))
	uniques := make(stats.Float64Data, 0, len(bars))
	for _, b := range bars {
		totals = append(totals, float64(b.Total))
		uniques = append(uniques, float64(b.Unique))
	}

	s.TotalClones, _ = totals.Sum()
	s.UniqueClones, _ = uniques.Sum()
	s.MeanTotal, _ = totals.Mean()
	s.MedianTotal, _ = totals.Median()
	return s
}
