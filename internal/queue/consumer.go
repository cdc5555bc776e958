package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/iliyamo/concert-watch-rooms/internal/config"
	"github.com/iliyamo/concert-watch-rooms/internal/invite"
)

// Consumer renders queued room invites and appends them to a log file,
// standing in for the share sheet of a client.
type Consumer struct {
	cfg config.AMQPConfig
	log *zap.Logger
}

// NewConsumer returns a consumer for cfg.InviteQueue.
func NewConsumer(cfg config.AMQPConfig, log *zap.Logger) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{cfg: cfg, log: log}
}

// Run connects, consumes and reconnects with backoff until ctx is
// cancelled.  It only returns ctx.Err().
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.cfg.URL)
		if err != nil {
			c.log.Warn("invite consumer dial failed", zap.Error(err), zap.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn("invite consumer loop ended; reconnecting", zap.Error(err))
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.log.Warn("invite consumer set QoS failed", zap.Error(err))
	}
	if err := declareInviteQueue(ch, c.cfg.InviteQueue); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.ConsumeWithContext(ctx, c.cfg.InviteQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := c.handleMessage(d.Body); err != nil {
			c.log.Error("invite consumer handle message failed", zap.Error(err))
			_ = d.Nack(false, false) // no requeue; a bad payload would loop
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func (c *Consumer) handleMessage(body []byte) error {
	var ev RoomInviteEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.RoomName == "" || ev.PIN == "" {
		return errors.New("invite without room name or pin")
	}
	inv := ev.Invite()
	inv.PIN = maskPin(inv.PIN)
	msg := invite.RoomMessage(inv, c.cfg.AppLink)

	if err := os.MkdirAll(filepath.Dir(c.cfg.InviteLogPath), 0o755); err != nil {
		return fmt.Errorf("mkdir invite log dir: %w", err)
	}
	f, err := os.OpenFile(c.cfg.InviteLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open invite log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s | %s\n", ev.CreatedAt, msg.Title, strings.ReplaceAll(msg.Body, "\n", " / "))
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write invite log: %w", err)
	}
	c.log.Info("invite composed", zap.String("room", ev.RoomName))
	return nil
}

// maskPin hides all but the last two digits of a room PIN.
func maskPin(pin string) string {
	r := []rune(pin)
	if len(r) <= 2 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-2) + string(r[len(r)-2:])
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
