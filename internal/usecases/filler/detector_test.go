package filler

import (
	"testing"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_SubstringDoesNotMatch(t *testing.T) {
	d := NewDetector([]string{"like"})

	assert.Empty(t, d.Detect("unlikely"))
	assert.Empty(t, d.Detect("likely unlike dislike"))
}

func TestDetector_WholeWordMatches(t *testing.T) {
	d := NewDetector([]string{"like", "um", "uh"})

	got := d.Detect("I like this, um, thing like that")

	require.Len(t, got, 3)
	assert.Equal(t, []string{"like", "um", "like"}, got)
	assert.Equal(t, 3, d.Count("I like this, um, thing like that"))
}

func TestDetector_CaseInsensitive(t *testing.T) {
	d := NewDetector([]string{"like"})

	assert.Equal(t, []string{"like", "like"}, d.Detect("LIKE it or Like it not"))
}

func TestDetector_Breakdown(t *testing.T) {
	d := NewDetector([]string{"basically", "literally"})

	got := d.Breakdown("Basically, it's literally amazing, literally")

	require.Len(t, got, 2)
	// Порядок первого появления, не сортировка по count
	assert.Equal(t, domain.WordCount{Word: "basically", Count: 1}, got[0])
	assert.Equal(t, domain.WordCount{Word: "literally", Count: 2}, got[1])
}

func TestDetector_EmptyInputs(t *testing.T) {
	assert.Empty(t, NewDetector([]string{"like"}).Detect(""))
	assert.Empty(t, NewDetector(nil).Detect("whatever text"))
	assert.Empty(t, NewDetector([]string{"", "  "}).Detect("some text"))
}

func TestDetector_NormalizesTargets(t *testing.T) {
	d := NewDetector([]string{"  Like ", "LIKE", "um"})

	// Дубликаты после нормализации схлопываются
	assert.Equal(t, []string{"like", "um"}, d.Detect("like um"))
}

func TestDetector_UnicodeWords(t *testing.T) {
	d := NewDetector([]string{"короче"})

	assert.Equal(t, []string{"короче"}, d.Detect("Ну Короче, я пошёл"))
	// Внутри слова не матчится
	assert.Empty(t, d.Detect("некороченный"))
}

func TestDetector_LongestMatchWins(t *testing.T) {
	d := NewDetector([]string{"know", "you know"})

	got := d.Detect("you know it")

	// Фраза выигрывает у своего суффикса, без перекрытий
	assert.Equal(t, []string{"you know"}, got)
}

func TestDetector_MatchesAtStringEdges(t *testing.T) {
	d := NewDetector([]string{"um"})

	assert.Equal(t, []string{"um"}, d.Detect("um"))
	assert.Equal(t, []string{"um", "um"}, d.Detect("um... um"))
}
