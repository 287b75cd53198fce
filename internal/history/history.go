// Package history provides a ring-buffer history of emitted readings
// with per-channel min/peak/avg statistics for the display surface.
package history

import (
	"math"
	"time"
)

// Point is a single data point in a channel's history.
type Point struct {
	Value float64
	Time  time.Time
}

// Buffer stores a ring buffer of values for one sensor channel.
type Buffer struct {
	Points []Point
	Max    int // capacity
	Min    float64
	Peak   float64
}

// NewBuffer creates a history ring buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		Points: make([]Point, 0, capacity),
		Max:    capacity,
		Min:    math.MaxFloat64,
		Peak:   -math.MaxFloat64,
	}
}

// Push adds a value to the history, evicting the oldest if full.
func (b *Buffer) Push(v float64, t time.Time) {
	p := Point{Value: v, Time: t}
	if len(b.Points) >= b.Max {
		copy(b.Points, b.Points[1:])
		b.Points[len(b.Points)-1] = p
	} else {
		b.Points = append(b.Points, p)
	}
	if v < b.Min {
		b.Min = v
	}
	if v > b.Peak {
		b.Peak = v
	}
}

// Last returns the most recent value, or 0 if empty.
func (b *Buffer) Last() float64 {
	if len(b.Points) == 0 {
		return 0
	}
	return b.Points[len(b.Points)-1].Value
}

// Avg returns the mean of all buffered values.
func (b *Buffer) Avg() float64 {
	if len(b.Points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range b.Points {
		sum += p.Value
	}
	return sum / float64(len(b.Points))
}

// LastNPoints returns up to n most recent points, oldest first.
func (b *Buffer) LastNPoints(n int) []Point {
	if n <= 0 || len(b.Points) == 0 {
		return nil
	}
	if n > len(b.Points) {
		n = len(b.Points)
	}
	return b.Points[len(b.Points)-n:]
}

// Store keeps one Buffer per channel key.
type Store struct {
	buffers  map[string]*Buffer
	capacity int
}

// NewStore creates a history store where each channel holds up to
// capacity points.
func NewStore(capacity int) *Store {
	return &Store{
		buffers:  make(map[string]*Buffer),
		capacity: capacity,
	}
}

// Record appends a value to the named channel's history.
func (s *Store) Record(key string, v float64, t time.Time) {
	b, ok := s.buffers[key]
	if !ok {
		b = NewBuffer(s.capacity)
		s.buffers[key] = b
	}
	b.Push(v, t)
}

// Get returns the buffer for a channel, or nil if nothing was recorded.
func (s *Store) Get(key string) *Buffer {
	return s.buffers[key]
}
