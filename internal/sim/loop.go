package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/viz"
)

// Loop owns the system state and runs step, record, draw once per admitted
// frame until stopped.
type Loop struct {
	sys      *physics.System
	params   dynamo.Params
	surface  viz.Surface
	renderer *viz.Renderer
	gate     *Gate
	opts     Options

	stopped   atomic.Bool
	hidden    bool
	err       error
	observers []Observer
}

func New(sys *physics.System, params dynamo.Params, surface viz.Surface, renderer *viz.Renderer, opts Options) *Loop {
	return &Loop{
		sys:      sys,
		params:   params,
		surface:  surface,
		renderer: renderer,
		gate:     NewGate(opts.FPS),
		opts:     opts,
	}
}

func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) System() *physics.System { return l.sys }
func (l *Loop) Surface() viz.Surface    { return l.surface }
func (l *Loop) Renderer() *viz.Renderer { return l.renderer }
func (l *Loop) Params() dynamo.Params   { return l.params }
func (l *Loop) Gate() *Gate             { return l.gate }
func (l *Loop) Hidden() bool            { return l.hidden }

// Err reports why the loop stopped itself, if it did.
func (l *Loop) Err() error { return l.err }

func (l *Loop) Status() Status {
	if l.stopped.Load() {
		return Stopped
	}
	return Running
}

// Stop is terminal: no step or draw happens afterwards. Safe to call from
// any goroutine.
func (l *Loop) Stop() { l.stopped.Store(true) }

// Pause keeps the loop Running but skips opportunities until Resume, as when
// the surface is hidden. Resuming executes a single frame, not a catch-up.
func (l *Loop) Pause()  { l.hidden = true }
func (l *Loop) Resume() { l.hidden = false }

// Resize reassigns the surface size and recomputes the projection scale.
// Body state is untouched.
func (l *Loop) Resize(w, h int) {
	if r, ok := l.surface.(viz.Resizer); ok {
		r.Resize(w, h)
	}
	l.renderer.Resize(w, h)
}

// Reset re-seeds the bodies, clears the trails and resets every observer
// that implements Resetter.
func (l *Loop) Reset() {
	l.sys.Reset()
	for _, o := range l.observers {
		if r, ok := o.(Resetter); ok {
			r.Reset()
		}
	}
}

// Tick handles one refresh opportunity at ts milliseconds and reports
// whether a frame was executed.
func (l *Loop) Tick(ts float64) bool {
	if l.stopped.Load() || l.hidden {
		return false
	}
	if !l.gate.Admit(ts) {
		return false
	}

	l.sys.Step(l.params)
	if l.opts.ValidateState && !l.sys.Valid() {
		l.err = &dynamo.SimulationError{Frame: l.sys.Frames, Time: l.sys.Time, Wrapped: dynamo.ErrInvalidState}
		l.Stop()
		return false
	}
	l.sys.Record()
	l.renderer.Draw(l.surface, &l.sys.Bodies)

	f := Frame{Index: l.sys.Frames, Timestamp: ts, System: l.sys}
	for _, o := range l.observers {
		o.OnFrame(f)
	}
	return true
}

// Run pulls opportunities from src until the loop stops, ctx ends or the
// source is exhausted. A cancelled context stops the loop.
func (l *Loop) Run(ctx context.Context, src FrameSource) error {
	if l.stopped.Load() {
		return dynamo.ErrStopped
	}
	if w, h := l.surface.Size(); w <= 0 || h <= 0 {
		return fmt.Errorf("surface %dx%d: %w", w, h, dynamo.ErrInvalidSurface)
	}

	for !l.stopped.Load() {
		ts, err := src.NextFrame(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			l.Stop()
			return err
		}
		l.Tick(ts)
	}
	return l.err
}
