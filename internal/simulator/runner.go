// Package simulator runs the generate-emit-sleep loop shared by the
// headless and display variants.
package simulator

import (
	"context"
	"time"

	"github.com/luki/woundguard/internal/emit"
	"github.com/luki/woundguard/internal/sensor"
)

// Source supplies readings and the pause between them. sensor.Generator
// is the production implementation; tests substitute fixed sequences.
type Source interface {
	Next() sensor.Reading
	NextDelay() time.Duration
}

// Run emits readings from src to sink until ctx is cancelled or the sink
// fails. Cancellation is the user stopping the simulation: the sink is
// closed (printing its farewell) and Run returns nil. A sink failure is
// reported through Sink.Fault, the sink is closed, and the error is
// returned; the loop does not resume after a fault.
func Run(ctx context.Context, src Source, sink emit.Sink) error {
	for {
		if ctx.Err() != nil {
			return sink.Close()
		}

		r := src.Next()
		if err := sink.Emit(r); err != nil {
			sink.Fault(err)
			sink.Close()
			return err
		}

		timer := time.NewTimer(src.NextDelay())
		select {
		case <-ctx.Done():
			timer.Stop()
			return sink.Close()
		case <-timer.C:
		}
	}
}
