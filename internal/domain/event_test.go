package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSince_Daily(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 59, 0, 0, time.Local)

	since := WindowDaily.Since(now)

	require.NotNil(t, since)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local), *since)
}

func TestWindowSince_DailyResetAtMidnight(t *testing.T) {
	// Запись в 23:59 и запрос в 00:01 следующего дня - запись уже вне "сегодня"
	recorded := time.Date(2025, 3, 15, 23, 59, 0, 0, time.Local)
	queryTime := time.Date(2025, 3, 16, 0, 1, 0, 0, time.Local)

	since := WindowDaily.Since(queryTime)

	require.NotNil(t, since)
	assert.True(t, recorded.Before(*since))
}

func TestWindowSince_MonthlyIsRolling30Days(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	since := WindowMonthly.Since(now)

	require.NotNil(t, since)
	assert.Equal(t, now.Add(-30*24*time.Hour), *since)
}

func TestWindowSince_AllTimeUnbounded(t *testing.T) {
	assert.Nil(t, WindowAllTime.Since(time.Now()))
}
