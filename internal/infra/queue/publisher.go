package queue

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher pushes task lifecycle events onto a durable queue for
// downstream consumers. Publishes are best effort and happen after the
// database transaction commits; callers log failures and move on.
type Publisher struct {
	conn  *amqp.Connection
	queue string
}

func NewPublisher(conn *amqp.Connection, queue string) *Publisher {
	return &Publisher{conn: conn, queue: queue}
}

// Publish serializes the event as JSON and sends it to the queue. A
// channel is opened per publish; the lifecycle event volume here is a
// handful per user action.
func (p *Publisher) Publish(ctx context.Context, event any) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := sonic.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}
