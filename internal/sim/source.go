package sim

import (
	"context"
	"io"
	"time"
)

// FrameSource yields one timestamp (ms, monotonically increasing) per
// display refresh opportunity. It returns io.EOF when no frames remain.
type FrameSource interface {
	NextFrame(ctx context.Context) (float64, error)
}

// TickerSource produces opportunities from a wall-clock ticker.
type TickerSource struct {
	ticker *time.Ticker
	start  time.Time
}

// NewTickerSource ticks hz times per second. Timestamps count from creation.
func NewTickerSource(hz float64) *TickerSource {
	if hz <= 0 {
		hz = DefaultFPS
	}
	period := time.Duration(float64(time.Second) / hz)
	return &TickerSource{
		ticker: time.NewTicker(period),
		start:  time.Now(),
	}
}

func (s *TickerSource) NextFrame(ctx context.Context) (float64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case t := <-s.ticker.C:
		return s.Stamp(t), nil
	}
}

// C exposes the tick channel for hosts that select on it alongside their
// own events. Convert received ticks with Stamp.
func (s *TickerSource) C() <-chan time.Time { return s.ticker.C }

// Stamp converts a tick time to milliseconds since the source was created.
func (s *TickerSource) Stamp(t time.Time) float64 {
	return float64(t.Sub(s.start).Microseconds()) / 1000
}

// Close releases the ticker. Pending NextFrame calls only return on ctx.
func (s *TickerSource) Close() {
	s.ticker.Stop()
}

// FixedSource emits Start, Start+Period, ... without waiting, for headless
// rendering and deterministic tests. Count 0 means unbounded.
type FixedSource struct {
	Start  float64
	Period float64
	Count  int

	emitted int
}

func NewFixedSource(hz float64, count int) *FixedSource {
	return &FixedSource{Period: 1000 / hz, Count: count}
}

func (s *FixedSource) NextFrame(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.Count > 0 && s.emitted >= s.Count {
		return 0, io.EOF
	}
	s.emitted++
	return s.Start + float64(s.emitted)*s.Period, nil
}
