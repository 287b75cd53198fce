// Package emit defines the output sinks a simulator run writes to. The
// generator loop only ever sees the Sink interface; whether readings end
// up on a console, a terminal display surface, or in a recording file is
// decided at startup.
package emit

import (
	"fmt"
	"io"
	"strconv"

	"github.com/luki/woundguard/internal/sensor"
)

// Farewell is printed exactly once when a run is stopped by the user.
const Farewell = "Exiting sensor simulation..."

// Separator closes every emitted reading block.
const Separator = "-----------------------------------"

// Sink receives each reading as it is generated.
type Sink interface {
	// Emit writes one reading. An error aborts the run.
	Emit(r sensor.Reading) error
	// Fault reports a non-interrupt failure so the sink can surface it
	// (the display sink paints it on screen, the console prints it).
	Fault(err error)
	// Close releases the sink after the final reading.
	Close() error
}

// Lines renders a reading in the exact format the WoundGuard consumer
// parses by prefix matching. Do not reword these.
func Lines(r sensor.Reading) [4]string {
	return [4]string{
		"pH Sensor Value (Potentiometer 1): " + fmt1(r.PH),
		"Temperature (Simulated by Potentiometer 2): " + fmt1(r.TempC) + "°C",
		"Moisture Sensor Value (Photoresistor): " + strconv.Itoa(r.Moisture) + "%",
		Separator,
	}
}

// fmt1 renders a value with exactly one decimal digit ("5.0", not "5").
func fmt1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Console writes reading blocks to a writer, matching the headless
// variant of the original device byte for byte.
type Console struct {
	w      io.Writer
	closed bool
}

// NewConsole creates a console sink on w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Banner prints the startup header the consumer skips over.
func (c *Console) Banner() {
	fmt.Fprintln(c.w, "WoundGuard Sensor Simulator")
	fmt.Fprintln(c.w, Separator)
	fmt.Fprintln(c.w, "Generating simulated sensor data...")
	fmt.Fprintln(c.w)
}

func (c *Console) Emit(r sensor.Reading) error {
	for _, line := range Lines(r) {
		if _, err := fmt.Fprintln(c.w, line); err != nil {
			return fmt.Errorf("write reading: %w", err)
		}
	}
	return nil
}

func (c *Console) Fault(err error) {
	fmt.Fprintf(c.w, "Error: %v\n", err)
}

// Close prints the farewell. Safe to call more than once; the farewell
// is printed only on the first call.
func (c *Console) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, Farewell)
	return nil
}

// Multi fans every call out to each sink in order. Emit stops at the
// first failing sink; Close closes all of them and reports the first
// error.
type Multi struct {
	sinks []Sink
}

// NewMulti combines sinks into one.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

func (m *Multi) Emit(r sensor.Reading) error {
	for _, s := range m.sinks {
		if err := s.Emit(r); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) Fault(err error) {
	for _, s := range m.sinks {
		s.Fault(err)
	}
}

func (m *Multi) Close() error {
	var first error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
