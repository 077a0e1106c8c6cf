package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"mention_launcher/internal/domain"
)

const (
	ActionLaunched = "launched"
	ActionMigrated = "migrated"
)

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// Event is the message body for both launches and migrations; exactly one
// of Launch and Migration is set.
type Event struct {
	ID        string            `json:"id"`
	Action    string            `json:"action"`
	Launch    *LaunchPayload    `json:"launch,omitempty"`
	Migration *MigrationPayload `json:"migration,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

type LaunchPayload struct {
	MentionID      string    `json:"mention_id"`
	ConversationID string    `json:"conversation_id"`
	AuthorID       string    `json:"author_id"`
	TokenAddress   string    `json:"token_address"`
	Name           string    `json:"name"`
	Symbol         string    `json:"symbol"`
	Description    string    `json:"description"`
	MetadataURI    string    `json:"metadata_uri"`
	Receiver       *string   `json:"receiver,omitempty"`
	LaunchURL      string    `json:"launch_url"`
	LaunchedAt     time.Time `json:"launched_at"`
}

type MigrationPayload struct {
	TokenAddress string    `json:"token_address"`
	TxHash       string    `json:"tx_hash"`
	MigratedAt   time.Time `json:"migrated_at"`
}

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "publisher"),
	}, nil
}

// declareTopology sets up a durable direct exchange with one durable queue
// bound to the routing key.
func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (r *RabbitMQ) PublishLaunch(ctx context.Context, launch *domain.Launch) error {
	return r.publish(ctx, NewLaunchEvent(launch, time.Now()))
}

func (r *RabbitMQ) PublishMigration(ctx context.Context, m *domain.Migration) error {
	return r.publish(ctx, NewMigrationEvent(m, time.Now()))
}

func (r *RabbitMQ) publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			MessageId:    ev.ID,
			Type:         ev.Action,
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    ev.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published event", "id", ev.ID, "action", ev.Action)
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

func NewLaunchEvent(l *domain.Launch, now time.Time) Event {
	return Event{
		ID:     uuid.NewString(),
		Action: ActionLaunched,
		Launch: &LaunchPayload{
			MentionID:      l.MentionID,
			ConversationID: l.ConversationID,
			AuthorID:       l.AuthorID,
			TokenAddress:   l.TokenAddress,
			Name:           l.Name,
			Symbol:         l.Symbol,
			Description:    l.Description,
			MetadataURI:    l.MetadataURI,
			Receiver:       l.Receiver,
			LaunchURL:      l.LaunchURL,
			LaunchedAt:     l.LaunchedAt,
		},
		Timestamp: now.UTC(),
	}
}

func NewMigrationEvent(m *domain.Migration, now time.Time) Event {
	return Event{
		ID:     uuid.NewString(),
		Action: ActionMigrated,
		Migration: &MigrationPayload{
			TokenAddress: m.TokenAddress,
			TxHash:       m.TxHash,
			MigratedAt:   m.MigratedAt,
		},
		Timestamp: now.UTC(),
	}
}
