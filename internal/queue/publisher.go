package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const (
	keyApplicationReceived = "application.received"
	keyApplicationAccepted = "application.accepted"
)

type applicationEvent struct {
	ApplicationID string `json:"application_id"`
	BandID        string `json:"band_id"`
	BookingID     string `json:"booking_id"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}

// Publisher pushes application lifecycle events to a topic exchange.
// With an empty URL it runs disabled and only logs, so the service
// does not require a broker in local setups.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

func NewPublisher(url, exchange string, logger logger.Logger) (*Publisher, error) {
	if url == "" {
		logger.Warn("rabbitmq url is empty, application events disabled")
		return &Publisher{logger: logger}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (p *Publisher) ApplicationReceived(ctx context.Context, app *domain.Application) {
	p.publish(ctx, keyApplicationReceived, app)
}

func (p *Publisher) ApplicationAccepted(ctx context.Context, app *domain.Application) {
	p.publish(ctx, keyApplicationAccepted, app)
}

func (p *Publisher) publish(ctx context.Context, key string, app *domain.Application) {
	if p.ch == nil {
		p.logger.Debug("application event skipped (publisher disabled)",
			logger.String("key", key),
			logger.String("application_id", app.ID),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		p.logger.Debug("application event skipped (context cancelled)",
			logger.String("key", key),
			logger.String("application_id", app.ID),
		)
		return
	}

	body, err := json.Marshal(applicationEvent{
		ApplicationID: app.ID,
		BandID:        app.BandID,
		BookingID:     app.BookingID,
		Status:        string(app.Status),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		p.logger.Error("failed to marshal application event",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		p.logger.Error("failed to publish application event",
			logger.String("key", key),
			logger.String("application_id", app.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
