package domain

import "time"

// FillerEvent одно употребление слова-паразита: кто, где, какое слово, когда
type FillerEvent struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	ChatID    int64     `db:"chat_id"`
	Word      string    `db:"word"`
	Timestamp time.Time `db:"timestamp"`
}

// WordCount пара (слово, количество употреблений)
type WordCount struct {
	Word  string `db:"word"`
	Count int    `db:"count"`
}

// Stats агрегированная статистика за одно временное окно.
// Breakdown отсортирован по убыванию count, при равенстве — по порядку вставки.
type Stats struct {
	Total     int
	Breakdown []WordCount
}

// Window временное окно агрегации
type Window string

const (
	WindowDaily   Window = "daily"
	WindowMonthly Window = "monthly"
	WindowAllTime Window = "all_time"
)

// Since возвращает нижнюю границу окна (включительно) относительно now.
// nil означает отсутствие границы (all-time). Граница вычисляется заново при
// каждом запросе: daily — локальная полночь now, monthly — скользящие 30 суток.
func (w Window) Since(now time.Time) *time.Time {
	switch w {
	case WindowDaily:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &midnight
	case WindowMonthly:
		since := now.Add(-30 * 24 * time.Hour)
		return &since
	default:
		return nil
	}
}
