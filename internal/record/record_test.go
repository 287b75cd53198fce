package record

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/luki/woundguard/internal/sensor"
)

func TestRecorderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.csv")

	rec, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	now := time.Date(2026, 8, 20, 14, 30, 0, 0, time.Local)
	rec.now = func() time.Time { return now }

	readings := []sensor.Reading{
		{PH: 5.3, TempC: 36.2, Moisture: 74},
		{PH: 4.0, TempC: 38.0, Moisture: 90},
	}
	for _, r := range readings {
		if err := rec.Emit(r); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rows, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Reading != readings[0] {
		t.Errorf("first row: got %+v, want %+v", rows[0].Reading, readings[0])
	}
	if rows[1].Reading != readings[1] {
		t.Errorf("second row: got %+v, want %+v", rows[1].Reading, readings[1])
	}
	if !rows[0].Time.Equal(now) {
		t.Errorf("timestamp: got %v, want %v", rows[0].Time, now)
	}
}

func TestRecorderAppendsWithoutDuplicateHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.csv")

	for i := 0; i < 2; i++ {
		rec, err := Open(path)
		if err != nil {
			t.Fatalf("Open #%d: %v", i, err)
		}
		if err := rec.Emit(sensor.Reading{PH: 5.0, TempC: 35.0, Moisture: 70}); err != nil {
			t.Fatalf("Emit #%d: %v", i, err)
		}
		rec.Close()
	}

	rows, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows across sessions, got %d", len(rows))
	}
}
