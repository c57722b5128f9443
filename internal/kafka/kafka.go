package kafka

import (
	"context"
	"encoding/json"
	"log"

	"cardlink/internal/model"

	"github.com/segmentio/kafka-go"
)

// --------------- Producer ---------------

// Producer wraps a kafka.Writer for publishing messages.
type Producer struct {
	w *kafka.Writer
}

// NewProducer creates a Kafka writer that routes messages by the topic set on
// each kafka.Message.
func NewProducer(brokers string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:     kafka.TCP(brokers),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish sends a single message to the given topic.
func (p *Producer) Publish(ctx context.Context, topic string, key, value []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error { return p.w.Close() }

// --------------- Consumer ---------------

type userCreated struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// StartUserCreatedConsumer listens on "auth.user.created" and seeds a
// profile row for every new user from their identity metadata
// (idempotent via ON CONFLICT DO NOTHING).
func StartUserCreatedConsumer(ctx context.Context, brokers string, repo interface {
	CreateIfNotExists(ctx context.Context, userID, firstName, lastName, email string) error
}) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{brokers},
		Topic:   "auth.user.created",
		GroupID: "cardlink",
	})
	defer r.Close()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			return
		}

		var e userCreated
		if err := json.Unmarshal(m.Value, &e); err != nil {
			log.Println("bad user.created payload:", err)
			continue
		}

		first, last := model.SplitName(e.Name)
		if err := repo.CreateIfNotExists(ctx, e.UserID, first, last, e.Email); err != nil {
			log.Println("idempotent create failed:", err)
		}
	}
}
