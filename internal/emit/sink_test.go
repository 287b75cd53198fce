package emit

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luki/woundguard/internal/sensor"
)

// The consumer parses these lines by prefix; they must match the real
// device byte for byte.
func TestLinesWireFormat(t *testing.T) {
	r := sensor.Reading{PH: 5.3, TempC: 36.2, Moisture: 74}

	want := [4]string{
		"pH Sensor Value (Potentiometer 1): 5.3",
		"Temperature (Simulated by Potentiometer 2): 36.2°C",
		"Moisture Sensor Value (Photoresistor): 74%",
		"-----------------------------------",
	}
	require.Equal(t, want, Lines(r))
}

func TestLinesAlwaysOneDecimal(t *testing.T) {
	tests := []struct {
		name string
		r    sensor.Reading
		ph   string
		temp string
	}{
		{"whole values", sensor.Reading{PH: 5.0, TempC: 37.0, Moisture: 60}, "5.0", "37.0"},
		{"range edges", sensor.Reading{PH: 4.0, TempC: 38.0, Moisture: 90}, "4.0", "38.0"},
		{"fractional", sensor.Reading{PH: 6.9, TempC: 34.5, Moisture: 75}, "6.9", "34.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Lines(tt.r)
			assert.Equal(t, "pH Sensor Value (Potentiometer 1): "+tt.ph, lines[0])
			assert.Equal(t, "Temperature (Simulated by Potentiometer 2): "+tt.temp+"°C", lines[1])
		})
	}
}

func TestConsoleEmit(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	require.NoError(t, c.Emit(sensor.Reading{PH: 5.3, TempC: 36.2, Moisture: 74}))

	want := "pH Sensor Value (Potentiometer 1): 5.3\n" +
		"Temperature (Simulated by Potentiometer 2): 36.2°C\n" +
		"Moisture Sensor Value (Photoresistor): 74%\n" +
		"-----------------------------------\n"
	assert.Equal(t, want, buf.String())
}

func TestConsoleFarewellPrintedOnce(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	assert.Equal(t, 1, strings.Count(buf.String(), Farewell))
}

func TestConsoleFault(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Fault(errors.New("surface unavailable"))

	assert.Equal(t, "Error: surface unavailable\n", buf.String())
}

func TestConsoleBanner(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Banner()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "WoundGuard Sensor Simulator\n"))
	assert.Contains(t, out, Separator)
}

// fakeSink records calls for Multi tests.
type fakeSink struct {
	emitted []sensor.Reading
	faults  []error
	closed  int
	emitErr error
}

func (f *fakeSink) Emit(r sensor.Reading) error {
	if f.emitErr != nil {
		return f.emitErr
	}
	f.emitted = append(f.emitted, r)
	return nil
}

func (f *fakeSink) Fault(err error) { f.faults = append(f.faults, err) }

func (f *fakeSink) Close() error {
	f.closed++
	return nil
}

func TestMultiFansOut(t *testing.T) {
	a, b := &fakeSink{}, &fakeSink{}
	m := NewMulti(a, b)

	r := sensor.Reading{PH: 4.2, TempC: 35.0, Moisture: 61}
	require.NoError(t, m.Emit(r))
	m.Fault(errors.New("boom"))
	require.NoError(t, m.Close())

	for _, s := range []*fakeSink{a, b} {
		assert.Equal(t, []sensor.Reading{r}, s.emitted)
		assert.Len(t, s.faults, 1)
		assert.Equal(t, 1, s.closed)
	}
}

func TestMultiStopsAtFirstEmitError(t *testing.T) {
	a := &fakeSink{emitErr: errors.New("disk full")}
	b := &fakeSink{}
	m := NewMulti(a, b)

	err := m.Emit(sensor.Reading{PH: 4.2, TempC: 35.0, Moisture: 61})

	require.Error(t, err)
	assert.Empty(t, b.emitted)
}
