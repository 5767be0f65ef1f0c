package telegram

import "context"

// IClient интерфейс клиента Telegram Bot API, используемый бизнес-логикой
type IClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error
}
