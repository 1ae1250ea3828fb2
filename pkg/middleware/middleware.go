package middleware

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/franciscopereira987/taisteala/pkg/middleware/id"
)

const contentType = "application/octet-stream"

var (
	ErrMiddleware = errors.New("rabbitMQ channel closed")
	ErrNoReplyTo  = errors.New("delivery has no reply queue")
)

type Delivery struct {
	Msg           []byte
	Tag           uint64
	ReplyTo       string
	CorrelationId string
}

type Middleware struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func Dial(url string) (*Middleware, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &Middleware{
		conn: conn,
		ch:   ch,
	}, nil
}

// QueueDeclare declares a durable queue, or a server named exclusive one
// when name is empty.
func (m *Middleware) QueueDeclare(name string) (string, error) {
	var durable, exclusive bool
	if name == "" {
		exclusive = true
	} else {
		durable = true
	}
	q, err := m.ch.QueueDeclare(
		name,      // name
		durable,   // durable
		false,     // delete when unused
		exclusive, // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return "", err
	}

	return q.Name, err
}

// Prefetch limits how many unacked deliveries the broker hands this consumer.
func (m *Middleware) Prefetch(count int) error {
	return m.ch.Qos(count, 0, false)
}

// Consume delivers messages from the queue until ctx is done or the channel
// closes. Deliveries must be acknowledged with Ack.
func (m *Middleware) Consume(ctx context.Context, name string) (<-chan Delivery, error) {
	msgs, err := m.ch.ConsumeWithContext(
		ctx,
		name,  // queue
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	ret := make(chan Delivery)
	go func() {
		defer close(ret)
		for d := range msgs {
			delivery := Delivery{
				Msg:           d.Body,
				Tag:           d.DeliveryTag,
				ReplyTo:       d.ReplyTo,
				CorrelationId: d.CorrelationId,
			}
			select {
			case ret <- delivery:
			case <-ctx.Done():
				return
			}
		}
		if ctx.Err() == nil {
			log.Error(ErrMiddleware)
		}
	}()

	return ret, nil
}

func (m *Middleware) Reply(ctx context.Context, d Delivery, body []byte) error {
	if d.ReplyTo == "" {
		return fmt.Errorf("%w: correlation id %q", ErrNoReplyTo, d.CorrelationId)
	}
	return m.ch.PublishWithContext(
		ctx,
		"",        // default exchange
		d.ReplyTo, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:   contentType,
			CorrelationId: d.CorrelationId,
			Body:          body,
		},
	)
}

func (m *Middleware) Ack(tag uint64) error {
	return m.ch.Ack(tag, false)
}

// Call publishes body into queue and waits for the reply carrying the same
// correlation id on a private reply queue.
func (m *Middleware) Call(ctx context.Context, queue string, body []byte) ([]byte, error) {
	replyQueue, err := m.QueueDeclare("")
	if err != nil {
		return nil, err
	}
	replies, err := m.ch.ConsumeWithContext(
		ctx,
		replyQueue, // queue
		"",         // consumer
		true,       // auto-ack
		true,       // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return nil, err
	}

	correlationId := id.Generate()
	err = m.ch.PublishWithContext(
		ctx,
		"",    // default exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:   contentType,
			CorrelationId: correlationId,
			ReplyTo:       replyQueue,
			Body:          body,
		},
	)
	if err != nil {
		return nil, err
	}
	log.Debugf("action: call | result: in_progress | queue: %s | correlation_id: %s", queue, correlationId)

	return awaitReply(ctx, replies, correlationId)
}

// awaitReply returns the body of the first delivery carrying correlationId,
// discarding any stale replies before it.
func awaitReply(ctx context.Context, replies <-chan amqp.Delivery, correlationId string) ([]byte, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, context.Cause(ctx)
		case d, ok := <-replies:
			if !ok {
				return nil, ErrMiddleware
			}
			if d.CorrelationId == correlationId {
				return d.Body, nil
			}
			log.Warnf("action: call | result: discarded | correlation_id: %s", d.CorrelationId)
		}
	}
}

func (m *Middleware) Close() {
	// the corresponding Channel is closed along with the Connection
	m.conn.Close()
	log.Info("closed rabbitMQ Connection")
}
