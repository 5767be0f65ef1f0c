package kafka

import "strings"

// Config конфигурация для Kafka producer. Producer опционален - создаётся
// только если заданы брокеры и топик.
type Config struct {
	Brokers          string `envconfig:"BROKERS"`           // "broker1:9092,broker2:9092"
	Topic            string `envconfig:"TOPIC"`             // название топика
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"` // "SASL_SSL", "PLAINTEXT"
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`    // "PLAIN", "SCRAM-SHA-256"
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// IsConfigured возвращает true, если продюсер настроен
func (c *Config) IsConfigured() bool {
	return c != nil && c.Brokers != "" && c.Topic != ""
}

// GetBrokers возвращает список брокеров из строки
func (c *Config) GetBrokers() []string {
	return strings.Split(c.Brokers, ",")
}
