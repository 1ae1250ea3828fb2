package common

import (
	"bytes"
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/franciscopereira987/taisteala/pkg/distance"
	"github.com/franciscopereira987/taisteala/pkg/middleware"
	"github.com/franciscopereira987/taisteala/pkg/typing"
)

type Broker interface {
	Consume(ctx context.Context, queue string) (<-chan middleware.Delivery, error)
	Reply(ctx context.Context, d middleware.Delivery, body []byte) error
	Ack(tag uint64) error
}

// Worker answers journey requests from a queue against a fixed index.
type Worker struct {
	broker Broker
	queue  string
	index  distance.Index
}

func NewWorker(broker Broker, queue string, index distance.Index) *Worker {
	return &Worker{
		broker: broker,
		queue:  queue,
		index:  index,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	deliveries, err := w.broker.Consume(ctx, w.queue)
	if err != nil {
		return err
	}
	log.Infof("action: serve | result: in_progress | queue: %s | airports: %d", w.queue, len(w.index))

	served := 0
	for d := range deliveries {
		err := w.broker.Reply(ctx, d, w.Handle(d.Msg))
		if errors.Is(err, middleware.ErrNoReplyTo) {
			log.Warnf("action: reply | result: fail | reason: %s", err)
		} else if err != nil {
			return err
		}
		if err := w.broker.Ack(d.Tag); err != nil {
			return err
		}
		served++
	}
	log.Infof("action: serve | result: success | served: %d", served)

	if err := context.Cause(ctx); err != nil {
		return err
	}
	return middleware.ErrMiddleware
}

// Handle turns an encoded request into an encoded reply. Failures are
// encoded too, so one bad request never stops the worker.
func (w *Worker) Handle(msg []byte) []byte {
	b := new(bytes.Buffer)

	codes, err := typing.JourneyRequestUnmarshal(bytes.NewReader(msg))
	var journey distance.Journey
	if err == nil {
		journey, err = distance.CalculateJourney(codes, w.index)
	}
	if err != nil {
		log.Errorf("action: journey | result: fail | codes: %v | error: %s", codes, err)
		typing.JourneyErrorMarshal(b, err)
		return b.Bytes()
	}

	log.Debugf("action: journey | result: success | codes: %v | total: %.2f", codes, journey.Total)
	typing.JourneyResultMarshal(b, typing.JourneyResult{
		Legs:  journey.Distances(),
		Total: journey.Total,
	})
	return b.Bytes()
}
