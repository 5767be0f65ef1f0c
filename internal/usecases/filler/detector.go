package filler

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
)

// Detector ищет вхождения целевых слов в тексте.
// Поиск целыми словами, без учёта регистра, одним проходом слева направо.
// Состояние неизменяемо после конструктора - безопасен для конкурентных вызовов.
type Detector struct {
	words    []string // нормализованные, длинные первыми
	patterns [][]rune
}

// NewDetector нормализует список целевых слов: нижний регистр, trim,
// пустые и дубликаты отбрасываются. Более длинные цели проверяются первыми,
// чтобы фраза выигрывала у своего префикса.
func NewDetector(words []string) *Detector {
	seen := make(map[string]struct{}, len(words))
	normalized := make([]string, 0, len(words))

	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		normalized = append(normalized, word)
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		return utf8.RuneCountInString(normalized[i]) > utf8.RuneCountInString(normalized[j])
	})

	patterns := make([][]rune, len(normalized))
	for i, word := range normalized {
		patterns[i] = []rune(word)
	}

	return &Detector{
		words:    normalized,
		patterns: patterns,
	}
}

// Detect возвращает все вхождения целевых слов в порядке появления в тексте,
// дубликаты сохраняются. Пустой текст или пустой список целей - пустой результат.
func (d *Detector) Detect(text string) []string {
	if len(d.words) == 0 || text == "" {
		return nil
	}

	runes := []rune(strings.ToLower(text))

	var found []string
	for i := 0; i < len(runes); {
		matched := false
		for pi, pattern := range d.patterns {
			if !d.matchesAt(runes, i, pattern) {
				continue
			}
			found = append(found, d.words[pi])
			i += len(pattern)
			matched = true
			break
		}
		if !matched {
			i++
		}
	}

	return found
}

// Count количество вхождений целевых слов в тексте
func (d *Detector) Count(text string) int {
	return len(d.Detect(text))
}

// Breakdown разбивка по словам для одного текста,
// в порядке первого появления (не отсортирована)
func (d *Detector) Breakdown(text string) []domain.WordCount {
	occurrences := d.Detect(text)
	if len(occurrences) == 0 {
		return nil
	}

	index := make(map[string]int, len(occurrences))
	breakdown := make([]domain.WordCount, 0, len(occurrences))
	for _, word := range occurrences {
		if pos, ok := index[word]; ok {
			breakdown[pos].Count++
			continue
		}
		index[word] = len(breakdown)
		breakdown = append(breakdown, domain.WordCount{Word: word, Count: 1})
	}

	return breakdown
}

// matchesAt проверяет вхождение pattern в позиции i с границами слова
// с обеих сторон. Граница - край строки или несловесный символ.
func (d *Detector) matchesAt(runes []rune, i int, pattern []rune) bool {
	if i+len(pattern) > len(runes) {
		return false
	}
	for k, r := range pattern {
		if runes[i+k] != r {
			return false
		}
	}

	if i > 0 && isWordRune(runes[i-1]) && isWordRune(pattern[0]) {
		return false
	}
	end := i + len(pattern)
	if end < len(runes) && isWordRune(runes[end]) && isWordRune(pattern[len(pattern)-1]) {
		return false
	}

	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
