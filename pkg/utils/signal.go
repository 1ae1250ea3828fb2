package utils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

var ErrSignal = errors.New("signal received")

// WithSignal returns a context cancelled with ErrSignal on SIGINT or SIGTERM.
// The returned stop func releases the signal handler.
func WithSignal(parentCtx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parentCtx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case s := <-sig:
			log.Infof("action: signal | result: success | signal: %s", s)
			cancel(fmt.Errorf("%w: %s", ErrSignal, s))
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sig)
		cancel(context.Canceled)
	}
}
