package outbox

import (
	"context"
	"time"

	"cardlink/internal/kafka"
	"cardlink/internal/observability"

	"go.uber.org/zap"
)

// Publisher polls the outbox table and publishes unpublished events to Kafka.
type Publisher struct {
	repo     *Repository
	producer *kafka.Producer
}

// NewPublisher creates a new outbox publisher.
func NewPublisher(repo *Repository, producer *kafka.Producer) *Publisher {
	return &Publisher{repo: repo, producer: producer}
}

// Start begins the polling loop. It blocks until the context is cancelled.
func (p *Publisher) Start(ctx context.Context) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.publishBatch(ctx)
		}
	}
}

func (p *Publisher) publishBatch(ctx context.Context) {
	log := observability.GetLogger(ctx)

	rows, err := p.repo.Fetch(ctx, 50)
	if err != nil {
		log.Error("outbox query error", zap.Error(err))
		return
	}

	for _, row := range rows {
		if err := p.producer.Publish(ctx, row.Topic, []byte(row.Key), row.Payload); err != nil {
			log.Error("kafka publish failed", zap.String("topic", row.Topic), zap.Error(err))
			continue
		}

		if err := p.repo.MarkPublished(ctx, row.ID); err != nil {
			log.Error("outbox mark published error", zap.Error(err))
		}
	}
}
