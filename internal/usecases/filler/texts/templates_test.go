package texts

import (
	"strings"
	"testing"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStats_NoEvents(t *testing.T) {
	empty := &domain.Stats{}

	got := FormatStats(empty, empty, empty)

	assert.Equal(t, NoStatsMessage, got)
}

func TestFormatStats_AllWindows(t *testing.T) {
	daily := &domain.Stats{Total: 2, Breakdown: []domain.WordCount{{Word: "like", Count: 2}}}
	monthly := &domain.Stats{Total: 5, Breakdown: []domain.WordCount{{Word: "like", Count: 3}, {Word: "um", Count: 2}}}
	allTime := &domain.Stats{Total: 9, Breakdown: []domain.WordCount{{Word: "like", Count: 6}, {Word: "um", Count: 3}}}

	got := FormatStats(daily, monthly, allTime)

	assert.Contains(t, got, "Today: *2*")
	assert.Contains(t, got, "Last 30 days: *5*")
	assert.Contains(t, got, "All time: *9*")
	assert.Contains(t, got, "like: 6")
	assert.Contains(t, got, "um: 3")
}

func TestFormatStats_BreakdownLimitedToFive(t *testing.T) {
	breakdown := []domain.WordCount{
		{Word: "a", Count: 7}, {Word: "b", Count: 6}, {Word: "c", Count: 5},
		{Word: "d", Count: 4}, {Word: "e", Count: 3}, {Word: "f", Count: 2},
	}
	stats := &domain.Stats{Total: 27, Breakdown: breakdown}
	empty := &domain.Stats{}

	got := FormatStats(stats, empty, empty)

	assert.Contains(t, got, "e: 3")
	assert.NotContains(t, got, "f: 2")
}

func TestFormatDetected(t *testing.T) {
	single := FormatDetected([]string{"like"}, 1)
	assert.True(t, strings.HasPrefix(single, "Filler word detected: like"))

	multiple := FormatDetected([]string{"like", "um"}, 3)
	assert.True(t, strings.HasPrefix(multiple, "Filler words detected: like, um"))
}
