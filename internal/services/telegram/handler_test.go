package telegram

import (
	"context"
	"io"
	"testing"

	"log/slog"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	commands []string
	texts    []string
	senders  []*domain.Sender
}

func (f *fakeBot) HandleCommand(_ context.Context, sender *domain.Sender, command string, _ int64) error {
	f.commands = append(f.commands, command)
	f.senders = append(f.senders, sender)
	return nil
}

func (f *fakeBot) HandleText(_ context.Context, sender *domain.Sender, text string, _ int64) error {
	f.texts = append(f.texts, text)
	f.senders = append(f.senders, sender)
	return nil
}

func newTestService(bot *fakeBot) *Service {
	return New(bot, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func strPtr(s string) *string { return &s }

func update(text string, isBot bool) *domain.Update {
	return &domain.Update{
		UpdateID: 42,
		Message: &domain.Message{
			MessageID: 1,
			From: &domain.TelegramUser{
				ID:       7,
				IsBot:    isBot,
				Username: strPtr("alice"),
			},
			Chat: &domain.Chat{ID: 100, Type: "group"},
			Text: strPtr(text),
		},
	}
}

func TestHandleUpdate_RoutesCommand(t *testing.T) {
	bot := &fakeBot{}
	svc := newTestService(bot)

	err := svc.HandleUpdate(context.Background(), update("/stats@filler_bot", false))

	require.NoError(t, err)
	assert.Equal(t, []string{"stats"}, bot.commands)
	assert.Empty(t, bot.texts)
	require.Len(t, bot.senders, 1)
	assert.Equal(t, int64(7), bot.senders[0].UserID)
	assert.Equal(t, int64(100), bot.senders[0].ChatID)
	assert.Equal(t, "alice", bot.senders[0].Username)
}

func TestHandleUpdate_RoutesPlainText(t *testing.T) {
	bot := &fakeBot{}
	svc := newTestService(bot)

	err := svc.HandleUpdate(context.Background(), update("just, like, a message", false))

	require.NoError(t, err)
	assert.Equal(t, []string{"just, like, a message"}, bot.texts)
	assert.Empty(t, bot.commands)
}

func TestHandleUpdate_IgnoresBots(t *testing.T) {
	bot := &fakeBot{}
	svc := newTestService(bot)

	err := svc.HandleUpdate(context.Background(), update("/start", true))

	require.NoError(t, err)
	assert.Empty(t, bot.commands)
	assert.Empty(t, bot.texts)
}

func TestHandleUpdate_SkipsEmptyUpdates(t *testing.T) {
	bot := &fakeBot{}
	svc := newTestService(bot)

	require.NoError(t, svc.HandleUpdate(context.Background(), &domain.Update{UpdateID: 1}))

	u := update("hello", false)
	u.Message.Text = nil
	require.NoError(t, svc.HandleUpdate(context.Background(), u))

	assert.Empty(t, bot.commands)
	assert.Empty(t, bot.texts)
}

func TestIsCommand(t *testing.T) {
	assert.True(t, IsCommand("/start"))
	assert.True(t, IsCommand("/stats@filler_bot"))
	assert.False(t, IsCommand("just a message"))
	assert.False(t, IsCommand(""))
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		text     string
		expected string
	}{
		{"/start", "start"},
		{"/stats@filler_bot", "stats"},
		{"/stats@filler_bot extra args", "stats"},
		{"/reset some args", "reset"},
		{"/group_reset", "group_reset"},
		{"/Start", "start"},
		{"/STATS@Filler_Bot", "stats"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ParseCommand(tc.text), "text: %s", tc.text)
	}
}
