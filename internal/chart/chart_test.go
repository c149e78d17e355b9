package chart

import (
	"fmt"
	"testing"

	"github.com/kyleking/gh-clonestats/internal/github"
	"github.com/kyleking/gh-clonestats/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name string, count, uniques int) report.Entry {
	return report.NewEntry(name, &github.TrafficRecord{Count: count, Uniques: uniques}, nil)
}

func names(bars []Bar) []string {
	out := make([]string, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Name)
	}
	return out
}

func TestFromEntries(t *testing.T) {
	entries := []report.Entry{
		entry("a", 5, 2),
		report.NewEntry("b", nil, github.ErrNoTraffic),
		entry("c", 9, 9),
	}

	s := FromEntries(entries)

	assert.Equal(t, []string{"a", "b", "c"}, s.Names)
	assert.Equal(t, []int{5, 0, 9}, s.Totals)
	assert.Equal(t, []int{2, 0, 9}, s.Uniques)
	assert.Equal(t, github.StatusUnavailable, s.Status[1])
	assert.Equal(t, 3, s.Len())
}

func TestRank(t *testing.T) {
	s := Series{
		Names:   []string{"five", "twenty-low", "twenty-high", "zero"},
		Totals:  []int{5, 20, 20, 0},
		Uniques: []int{5, 3, 10, 0},
	}

	bars := Rank(s)

	assert.Equal(t, []string{"twenty-high", "twenty-low", "five", "zero"}, names(bars))
}

func TestRank_NameTieBreakDescending(t *testing.T) {
	s := Series{
		Names:   []string{"apple", "cherry", "banana"},
		Totals:  []int{1, 1, 1},
		Uniques: []int{1, 1, 1},
	}

	assert.Equal(t, []string{"cherry", "banana", "apple"}, names(Rank(s)))
}

func TestRankEntries_MatchesRank(t *testing.T) {
	entries := []report.Entry{entry("x", 3, 1), entry("y", 7, 2), entry("z", 3, 2)}

	fromSeries := Rank(FromEntries(entries))
	fromEntries := RankEntries(entries)

	assert.Equal(t, names(fromSeries), names(fromEntries))
	assert.Equal(t, 7, fromEntries[0].Traffic.Count)
}

func TestTop(t *testing.T) {
	entries := make([]report.Entry, 0, 25)
	for i := 0; i < 25; i++ {
		entries = append(entries, entry(fmt.Sprintf("repo-%02d", i), i*10, i))
	}

	bars, err := Prepare(entries, DefaultTopN)
	require.NoError(t, err)

	require.Len(t, bars, 20)
	assert.Equal(t, 240, bars[0].Total)
	assert.Equal(t, 50, bars[19].Total)
	for _, b := range bars {
		assert.GreaterOrEqual(t, b.Total, 50)
	}
}

func TestTop_FewerThanN(t *testing.T) {
	bars := []Bar{{Name: "a"}, {Name: "b"}}
	assert.Len(t, Top(bars, 20), 2)
	assert.Empty(t, Top(bars, -1))
}

func TestPrepare_Empty(t *testing.T) {
	bars, err := Prepare(nil, DefaultTopN)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, bars)
}

func TestScale(t *testing.T) {
	testCases := []struct {
		value, max, width, expected int
	}{
		{0, 10, 40, 0},
		{10, 10, 40, 40},
		{5, 10, 40, 20},
		{1, 1000, 40, 1},
		{3, 0, 40, 0},
		{3, 10, 0, 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Scale(tc.value, tc.max, tc.width), "Scale(%d, %d, %d)", tc.value, tc.max, tc.width)
	}
}

func TestNewLayout(t *testing.T) {
	bars := []Bar{
		{Name: "big", Total: 100, Unique: 50},
		{Name: "a-much-longer-repository-name-that-overflows", Total: 25, Unique: 0},
	}

	l := NewLayout(bars, 80)

	assert.Equal(t, maxLabelWidth, l.LabelWidth)
	assert.Equal(t, 100, l.Max)
	assert.Equal(t, 80-maxLabelWidth-countWidth-2, l.BarWidth)
	require.Len(t, l.Rows, 2)
	assert.Equal(t, l.BarWidth, l.Rows[0].TotalLen)
	assert.Equal(t, l.BarWidth/2, l.Rows[0].UniqueLen)
	assert.Zero(t, l.Rows[1].UniqueLen)
}

func TestNewLayout_NarrowWidth(t *testing.T) {
	l := NewLayout([]Bar{{Name: "repo", Total: 1}}, 5)
	assert.Equal(t, minBarWidth, l.BarWidth)
}

func TestSummarize(t *testing.T) {
	bars := []Bar{
		{Total: 10, Unique: 2},
		{Total: 20, Unique: 4},
		{Total: 60, Unique: 6},
	}

	s := Summarize(bars)

	assert.Equal(t, 3, s.Repos)
	assert.Equal(t, 90.0, s.TotalClones)
	assert.Equal(t, 12.0, s.UniqueClones)
	assert.Equal(t, 30.0, s.MeanTotal)
	assert.Equal(t, 20.0, s.MedianTotal)

	assert.Equal(t, Summary{}, Summarize(nil))
}
