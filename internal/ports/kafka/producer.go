package kafka

import "context"

// IProducer интерфейс для публикации событий в Kafka
type IProducer interface {
	Send(ctx context.Context, key string, value []byte) error
	Close() error
}
