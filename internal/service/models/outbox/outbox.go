package outbox

import (
	"time"
)

// Message is an order event staged in the outbox table within the same
// transaction as the order mutation, to be published to RabbitMQ by the
// outbox worker.
type Message struct {
	ID           int64
	QueueName    string
	ExchangeName string
	RoutingKey   string
	Payload      []byte
	ContentType  string
	RetryCount   int
	MaxRetries   int
	LastError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	NextRetryAt  time.Time
}
