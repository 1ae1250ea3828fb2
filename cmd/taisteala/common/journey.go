package common

import (
	"bytes"
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/franciscopereira987/taisteala/pkg/distance"
	"github.com/franciscopereira987/taisteala/pkg/typing"
)

type Caller interface {
	Call(ctx context.Context, queue string, body []byte) ([]byte, error)
}

// Journey computes the journey locally against the configured dataset.
func Journey(ctx context.Context, config Config, journey string, out io.Writer) error {
	codes := distance.ParseJourney(journey)
	if len(codes) < 2 {
		return distance.ErrInvalidInput
	}
	index, err := LoadIndex(ctx, config)
	if err != nil {
		return err
	}
	result, err := distance.CalculateJourney(codes, index)
	if err != nil {
		return err
	}
	log.Infof("action: journey | result: success | journey: %s | legs: %d", journey, len(result.Legs))
	return PrintJourney(out, codes, result.Distances(), result.Total)
}

// RemoteJourney asks a serving worker for the journey instead.
func RemoteJourney(ctx context.Context, caller Caller, queue string, journey string, out io.Writer) error {
	codes := distance.ParseJourney(journey)
	if len(codes) < 2 {
		return distance.ErrInvalidInput
	}

	b := new(bytes.Buffer)
	if err := typing.JourneyRequestMarshal(b, codes); err != nil {
		return err
	}
	reply, err := caller.Call(ctx, queue, b.Bytes())
	if err != nil {
		return err
	}
	result, err := typing.JourneyResultUnmarshal(bytes.NewReader(reply))
	if err != nil {
		return err
	}
	if len(result.Legs) != len(codes)-1 {
		return fmt.Errorf("%w: got %d legs for %d airports", typing.ErrJourney, len(result.Legs), len(codes))
	}
	log.Infof("action: remote_journey | result: success | journey: %s | legs: %d", journey, len(result.Legs))
	return PrintJourney(out, codes, result.Legs, result.Total)
}

func PrintJourney(out io.Writer, codes []string, legs []float64, total float64) error {
	for i, leg := range legs {
		if _, err := fmt.Fprintf(out, "%s -> %s: %.2f km\n", codes[i], codes[i+1], leg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "Total: %.2f km\n", total)
	return err
}
