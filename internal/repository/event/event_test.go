package eventRepo

import (
	"context"
	"io"
	"testing"
	"time"

	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flagro/FillerWordsDetector/internal/adapters/secondary/storage/pg"
	"github.com/Flagro/FillerWordsDetector/internal/domain"
	ports "github.com/Flagro/FillerWordsDetector/internal/ports/repository"
)

const testSchema = `
CREATE TABLE filler_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	chat_id INTEGER NOT NULL,
	word TEXT NOT NULL,
	timestamp TIMESTAMP NOT NULL
);
CREATE INDEX idx_filler_events_user_chat ON filler_events (user_id, chat_id);
CREATE INDEX idx_filler_events_timestamp ON filler_events (timestamp);
`

// openTestRepo поднимает репозиторий поверх in-memory SQLite.
// Запросы с '?' плейсхолдерами работают в обоих диалектах без изменений.
func openTestRepo(t *testing.T) (ports.IEventRepo, *sqlx.DB) {
	t.Helper()

	conn, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(testSchema)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(pg.NewDB(conn), log), conn
}

func record(t *testing.T, repo ports.IEventRepo, userID, chatID int64, word string, ts time.Time) {
	t.Helper()
	err := repo.Record(context.Background(), &domain.FillerEvent{
		UserID:    userID,
		ChatID:    chatID,
		Word:      word,
		Timestamp: ts,
	})
	require.NoError(t, err)
}

func TestRecord_StoresLowercase(t *testing.T) {
	repo, conn := openTestRepo(t)

	record(t, repo, 1, 100, "LIKE", time.Now())

	var word string
	require.NoError(t, conn.Get(&word, "SELECT word FROM filler_events"))
	assert.Equal(t, "like", word)
}

func TestRecord_DefaultsTimestampToNow(t *testing.T) {
	repo, conn := openTestRepo(t)

	err := repo.Record(context.Background(), &domain.FillerEvent{
		UserID: 1,
		ChatID: 100,
		Word:   "um",
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.Get(&count, "SELECT COUNT(*) FROM filler_events WHERE timestamp IS NOT NULL"))
	assert.Equal(t, 1, count)
}

func TestStats_AllTime(t *testing.T) {
	repo, _ := openTestRepo(t)
	now := time.Now()

	record(t, repo, 1, 100, "like", now)
	record(t, repo, 1, 100, "um", now)
	record(t, repo, 1, 100, "like", now)

	stats, err := repo.Stats(context.Background(), 1, 100, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	require.Len(t, stats.Breakdown, 2)
	// like впереди - count выше
	assert.Equal(t, domain.WordCount{Word: "like", Count: 2}, stats.Breakdown[0])
	assert.Equal(t, domain.WordCount{Word: "um", Count: 1}, stats.Breakdown[1])
}

func TestStats_TieBreakByInsertionOrder(t *testing.T) {
	repo, _ := openTestRepo(t)
	now := time.Now()

	record(t, repo, 1, 100, "um", now)
	record(t, repo, 1, 100, "like", now)

	stats, err := repo.Stats(context.Background(), 1, 100, nil)
	require.NoError(t, err)

	require.Len(t, stats.Breakdown, 2)
	assert.Equal(t, "um", stats.Breakdown[0].Word)
	assert.Equal(t, "like", stats.Breakdown[1].Word)
}

func TestStats_WindowExcludesOldEvents(t *testing.T) {
	repo, _ := openTestRepo(t)
	now := time.Now()

	record(t, repo, 1, 100, "like", now.Add(-72*time.Hour))

	since := domain.WindowDaily.Since(now)
	stats, err := repo.Stats(context.Background(), 1, 100, since)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.Breakdown)

	// А за всё время запись видна
	allTime, err := repo.Stats(context.Background(), 1, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, allTime.Total)
}

func TestStats_ScopedToUserAndChat(t *testing.T) {
	repo, _ := openTestRepo(t)
	now := time.Now()

	record(t, repo, 1, 100, "like", now)
	record(t, repo, 2, 100, "like", now)
	record(t, repo, 1, 200, "like", now)

	stats, err := repo.Stats(context.Background(), 1, 100, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Total)
}

func TestDeleteByUser(t *testing.T) {
	repo, _ := openTestRepo(t)
	now := time.Now()

	record(t, repo, 1, 100, "like", now)
	record(t, repo, 1, 100, "um", now)
	record(t, repo, 2, 100, "like", now)

	deleted, err := repo.DeleteByUser(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	stats, err := repo.Stats(context.Background(), 1, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)

	// Чужие записи не тронуты
	other, err := repo.Stats(context.Background(), 2, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, other.Total)
}

func TestDeleteByChat_Idempotent(t *testing.T) {
	repo, _ := openTestRepo(t)
	now := time.Now()

	record(t, repo, 1, 100, "like", now)
	record(t, repo, 2, 100, "um", now)

	deleted, err := repo.DeleteByChat(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	// Повторный сброс - успех с нулём строк
	deleted, err = repo.DeleteByChat(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	stats, err := repo.Stats(context.Background(), 1, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}
