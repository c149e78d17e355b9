// Package chart prepares ranked clone counts for the bar chart.
package chart

import (
	"errors"
	"sort"

	"github.com/kyleking/gh-clonestats/internal/github"
	"github.com/kyleking/gh-clonestats/internal/report"
)

// DefaultTopN is the number of repositories shown in the chart.
const DefaultTopN = 20

// ErrNoData is returned when there is nothing to chart.
var ErrNoData = errors.New("no data available to visualize")

// Series holds the chart input as parallel sequences in report order.
type Series struct {
	Names   []string
	Totals  []int
	Uniques []int
	Status  []github.FetchStatus
}

// Len returns the number of repositories in the series.
func (s Series) Len() int {
	return len(s.Names)
}

// Bar is one repository in the chart.
type Bar struct {
	Name    string
	Total   int
	Unique  int
	Status  github.FetchStatus
	Traffic github.TrafficRecord
}

// FromEntries splits a report into parallel name/total/unique sequences.
func FromEntries(entries []report.Entry) Series {
	s := Series{
		Names:   make([]string, 0, len(entries)),
		Totals:  make([]int, 0, len(entries)),
		Uniques: make([]int, 0, len(entries)),
		Status:  make([]github.FetchStatus, 0, len(entries)),
	}
	for _, e := range entries {
		s.Names = append(s.Names, e.Name)
		s.Totals = append(s.Totals, e.Traffic.Count)
		s.Uniques = append(s.Uniques, e.Traffic.Uniques)
		s.Status = append(s.Status, e.Status)
	}
	return s
}

// Rank orders the series by total clones, then unique clones, then name,
// all descending.
func Rank(s Series) []Bar {
	bars := make([]Bar, 0, s.Len())
	for i := range s.Names {
		bar := Bar{Name: s.Names[i], Total: s.Totals[i], Unique: s.Uniques[i]}
		if i < len(s.Status) {
			bar.Status = s.Status[i]
		}
		bars = append(bars, bar)
	}
	sortBars(bars)
	return bars
}

// RankEntries ranks report entries and keeps each entry's traffic series.
func RankEntries(entries []report.Entry) []Bar {
	bars := make([]Bar, 0, len(entries))
	for _, e := range entries {
		bars = append(bars, Bar{
			Name:    e.Name,
			Total:   e.Traffic.Count,
			Unique:  e.Traffic.Uniques,
			Status:  e.Status,
			Traffic: e.Traffic,
		})
	}
	sortBars(bars)
	return bars
}

func sortBars(bars []Bar) {
	sort.SliceStable(bars, func(i, j int) bool {
		a, b := bars[i], bars[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Unique != b.Unique {
			return a.Unique > b.Unique
		}
		return a.Name > b.Name
	})
}

// Top returns the first n bars, or all of them when there are fewer.
func Top(bars []Bar, n int) []Bar {
	if n < 0 {
		n = 0
	}
	if len(bars) < n {
		n = len(bars)
	}
	return bars[:n]
}

// Prepare ranks entries and keeps the top n for rendering.
func Prepare(entries []report.Entry, n int) ([]Bar, error) {
	if len(entries) == 0 {
		return nil, ErrNoData
	}
	return Top(RankEntries(entries), n), nil
}
