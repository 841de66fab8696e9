package sim

import "github.com/san-kum/threebody/internal/physics"

type Status int

const (
	Running Status = iota
	Stopped
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Frame describes one executed frame, delivered after the draw completes.
type Frame struct {
	Index     int
	Timestamp float64
	System    *physics.System
}

type Observer interface {
	OnFrame(f Frame)
}

// Resetter is implemented by observers that accumulate state which should
// start over when the loop is reset.
type Resetter interface {
	Reset()
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Options struct {
	FPS           float64
	ValidateState bool
}

func DefaultOptions() Options {
	return Options{
		FPS:           DefaultFPS,
		ValidateState: true,
	}
}
