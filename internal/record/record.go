// Package record appends emitted readings to a CSV file so a simulator
// session can be replayed against the WoundGuard pipeline. Format:
//
//	time,ph,temp_c,moisture_pct
package record

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/luki/woundguard/internal/sensor"
)

const timeLayout = "2006-01-02T15:04:05"

// Recorder is an emit.Sink that logs every reading to a CSV file.
type Recorder struct {
	f      *os.File
	writer *csv.Writer
	now    func() time.Time
}

// Open creates or appends to the CSV file at path. The header row is
// written only when the file is empty.
func Open(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}

	w := csv.NewWriter(f)
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat recording: %w", err)
	}
	if info.Size() == 0 {
		w.Write([]string{"time", "ph", "temp_c", "moisture_pct"})
	}

	return &Recorder{f: f, writer: w, now: time.Now}, nil
}

// Emit appends one reading row.
func (r *Recorder) Emit(reading sensor.Reading) error {
	r.writer.Write([]string{
		r.now().Format(timeLayout),
		strconv.FormatFloat(reading.PH, 'f', 1, 64),
		strconv.FormatFloat(reading.TempC, 'f', 1, 64),
		strconv.Itoa(reading.Moisture),
	})
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	return nil
}

// Fault is a no-op; faults belong to the presentation sinks.
func (r *Recorder) Fault(error) {}

// Close flushes and closes the file.
func (r *Recorder) Close() error {
	if r.writer != nil {
		r.writer.Flush()
	}
	if r.f != nil {
		err := r.f.Close()
		r.f = nil
		return err
	}
	return nil
}

// Row is a single parsed recording row.
type Row struct {
	Time    time.Time
	Reading sensor.Reading
}

// LoadFile reads all rows from a recording file.
func LoadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && rec[0] == "time" {
			continue
		}
		if len(rec) < 4 {
			continue
		}

		t, err := time.ParseInLocation(timeLayout, rec[0], time.Local)
		if err != nil {
			continue
		}
		ph, _ := strconv.ParseFloat(rec[1], 64)
		temp, _ := strconv.ParseFloat(rec[2], 64)
		moist, _ := strconv.Atoi(rec[3])

		rows = append(rows, Row{
			Time:    t,
			Reading: sensor.Reading{PH: ph, TempC: temp, Moisture: moist},
		})
	}

	return rows, nil
}
