package app

import (
	"fmt"

	server "github.com/Flagro/FillerWordsDetector/internal/adapters/primary/http"
	"github.com/Flagro/FillerWordsDetector/internal/adapters/secondary/kafka"
	"github.com/Flagro/FillerWordsDetector/internal/adapters/secondary/storage/pg"
	"github.com/Flagro/FillerWordsDetector/internal/adapters/secondary/telegram"
	"github.com/Flagro/FillerWordsDetector/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// FillerConfig настройки детекции и доступа
type FillerConfig struct {
	Words          []string `envconfig:"WORDS"`           // список слов-паразитов через запятую
	AllowedHandles []string `envconfig:"ALLOWED_HANDLES"` // пустой список - разрешено всем
	AdminHandles   []string `envconfig:"ADMIN_HANDLES"`   // пустой список - администраторы все
}

type Config struct {
	Postgres *pg.Config       `envconfig:"POSTGRES"`
	Log      *logger.Config   `envconfig:"LOG"`
	Server   *server.Config   `envconfig:"APISERVER"`
	Telegram *telegram.Config `envconfig:"TELEGRAM"`
	Kafka    *kafka.Config    `envconfig:"KAFKA"`
	Filler   FillerConfig     `envconfig:"FILLER"`
}

// NewEnvConfig читает конфигурацию из переменных окружения с префиксом envPrefix.
// .env файл подхватывается, если есть (локальная разработка).
func NewEnvConfig(envPrefix string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	return cfg, nil
}
