package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByTypesCaseInsensitive(t *testing.T) {
	f := NewFilter(DefaultConfig())
	places := []Place{
		testPlace("a", "A", []string{"Cafe"}, 4.0, 21, 105),
		testPlace("b", "B", []string{"lodging"}, 4.0, 21, 105),
	}

	out := f.ByTypes(places, []string{"cafe"})
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestByBlockHotelsSkipHoursCheck(t *testing.T) {
	f := NewFilter(DefaultConfig())
	h := hotel("h1", 4.0, 21, 105)
	h.Hours = hoursEveryDay(NewClock(9, 0), NewClock(17, 0)) // closed overnight

	out := f.ByBlock([]Place{h}, blockByKind(KindHotel), time.Monday)
	require.Len(t, out, 1)
	assert.Equal(t, "h1", out[0].ID)
}

func TestByBlockBreakfastRelaxedCoverage(t *testing.T) {
	f := NewFilter(DefaultConfig())

	// Open from 07:30: only half the breakfast window, which passes the
	// relaxed 0.3 threshold but would fail the regular 0.7 one.
	c := cafe("c1", 4.0, 21, 105)
	c.Hours = hoursEveryDay(NewClock(7, 30), NewClock(22, 0))

	out := f.ByBlock([]Place{c}, blockByKind(KindBreakfast), time.Monday)
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].ID)
}

func TestByInterests(t *testing.T) {
	f := NewFilter(DefaultConfig())
	places := []Place{
		testPlace("museum", "City Museum", []string{"museum"}, 4.2, 21, 105),
		testPlace("park", "Green Park", []string{"park"}, 4.0, 21, 105),
		testPlace("lowrated", "History House", []string{"museum"}, 3.0, 21, 105),
		testPlace("star", "Star Gallery", []string{"art_gallery"}, 4.6, 21, 105),
	}

	out := f.ByInterests(places, []string{"museum"}, 3.5)

	ids := make([]string, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	// Keyword matches the museum, the 4.6 gallery passes without a match,
	// the low-rated museum and the unrelated park are dropped.
	assert.ElementsMatch(t, []string{"museum", "star"}, ids)
}

func TestCandidatesSortedAndTruncated(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopK = 2
	f := NewFilter(cfg)

	places := []Place{
		attraction("low", 3.8, 21, 105),
		attraction("high", 4.8, 21, 105),
		attraction("mid", 4.2, 21, 105),
		attraction("below", 3.0, 21, 105),
	}

	out := f.Candidates(places, blockByKind(KindMorning), time.Monday, nil)
	require.Len(t, out, 2)
	assert.Equal(t, "high", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
}

func TestBreakfastFallbackIgnoresHours(t *testing.T) {
	f := NewFilter(DefaultConfig())

	// Opens at noon: zero breakfast coverage, so the regular pipeline
	// rejects it but the fallback still offers it.
	c := cafe("late", 4.5, 21, 105)
	c.Hours = hoursEveryDay(NewClock(12, 0), NewClock(22, 0))

	block := blockByKind(KindBreakfast)
	assert.Empty(t, f.Candidates([]Place{c}, block, time.Monday, nil))

	out := f.BreakfastFallback([]Place{c}, block)
	require.Len(t, out, 1)
	assert.Equal(t, "late", out[0].ID)
}
