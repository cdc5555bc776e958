package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/iliyamo/concert-watch-rooms/internal/config"
	"github.com/iliyamo/concert-watch-rooms/internal/model"
)

// Publisher sends room invites to the invite queue.  It dials per
// publish, so a broker outage only costs the invites sent during it.
type Publisher struct {
	cfg config.AMQPConfig
	log *zap.Logger
	now func() time.Time
}

// NewPublisher returns a publisher for cfg.InviteQueue.
func NewPublisher(cfg config.AMQPConfig, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{cfg: cfg, log: log, now: time.Now}
}

// Compose publishes inv as a persistent RoomInviteEvent.  Errors are
// logged and returned; the room creator treats them as non-fatal.
func (p *Publisher) Compose(ctx context.Context, inv model.Invite) error {
	body, err := json.Marshal(NewRoomInviteEvent(inv, p.now()))
	if err != nil {
		return fmt.Errorf("marshal invite: %w", err)
	}

	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		p.log.Warn("rabbitmq dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	if err := declareInviteQueue(ch, p.cfg.InviteQueue); err != nil {
		p.log.Warn("rabbitmq queue declare failed", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.cfg.InviteQueue, false, false, pub); err != nil {
		p.log.Warn("rabbitmq publish failed", zap.String("queue", p.cfg.InviteQueue), zap.Error(err))
		return err
	}
	return nil
}

// declareInviteQueue is idempotent; the queue is durable so invites
// survive a broker restart.
func declareInviteQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(name, true, false, false, false, nil)
	return err
}
