package sim

import (
	"context"
	"errors"
	"image/color"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/viz"
)

var monoColors = [physics.NumBodies]color.NRGBA{
	{0x55, 0x55, 0x55, 0xff},
	{0x88, 0x88, 0x88, 0xff},
	{0xaa, 0xaa, 0xaa, 0xff},
}

// countingSurface wraps an ImageSurface and counts clears as draws.
type countingSurface struct {
	*viz.ImageSurface
	draws int
}

func (s *countingSurface) ClearRect(x, y, w, h int) {
	s.draws++
	s.ImageSurface.ClearRect(x, y, w, h)
}

func newTestLoop(w, h int) (*Loop, *countingSurface) {
	sys := physics.NewSystem(monoColors, physics.DefaultTrailCapacity)
	surf := &countingSurface{ImageSurface: viz.NewImageSurface(w, h)}
	return New(sys, dynamo.DefaultParams(), surf, viz.NewRenderer(w, h), DefaultOptions()), surf
}

var _ = Describe("Loop", func() {
	var (
		loop *Loop
		surf *countingSurface
	)

	BeforeEach(func() {
		loop, surf = newTestLoop(800, 600)
	})

	It("starts running with the seed and empty trails", func() {
		Expect(loop.Status()).To(Equal(Running))
		Expect(loop.System().Frames).To(BeZero())
		for _, b := range loop.System().Bodies {
			Expect(b.Trail.Len()).To(BeZero())
		}
	})

	Describe("Tick", func() {
		It("skips opportunities below the frame interval", func() {
			for _, ts := range []float64{5, 10, 15} {
				Expect(loop.Tick(ts)).To(BeFalse())
			}
			Expect(loop.System().Frames).To(BeZero())
			Expect(surf.draws).To(BeZero())
		})

		It("steps, records and draws once per admitted frame", func() {
			Expect(loop.Tick(20)).To(BeTrue())

			Expect(loop.System().Frames).To(Equal(1))
			Expect(surf.draws).To(Equal(1))
			for _, b := range loop.System().Bodies {
				Expect(b.Trail.Len()).To(Equal(1))
				Expect(b.Trail.At(0)).To(Equal(b.Pos))
			}
		})

		It("notifies observers after the draw with a consistent frame", func() {
			var seen []Frame
			loop.AddObserver(ObserverFunc(func(f Frame) {
				Expect(surf.draws).To(Equal(f.Index))
				seen = append(seen, f)
			}))

			for ts := 5.0; ts <= 100; ts += 5 {
				loop.Tick(ts)
			}

			Expect(seen).To(HaveLen(5))
			Expect(seen[0].Timestamp).To(Equal(20.0))
			Expect(seen[4].Index).To(Equal(5))
		})

		It("keeps three bodies and bounded trails over many frames", func() {
			for i := 1; i <= 500; i++ {
				loop.Tick(float64(i) * 1000 / 120)
			}
			Expect(loop.System().Bodies).To(HaveLen(physics.NumBodies))
			for _, b := range loop.System().Bodies {
				Expect(b.Trail.Len()).To(Equal(physics.DefaultTrailCapacity))
			}
		})
	})

	Describe("Stop", func() {
		It("is terminal", func() {
			loop.Tick(20)
			loop.Stop()

			Expect(loop.Status()).To(Equal(Stopped))
			Expect(loop.Tick(1000)).To(BeFalse())
			Expect(loop.System().Frames).To(Equal(1))
			Expect(surf.draws).To(Equal(1))
		})

		It("refuses to run again", func() {
			loop.Stop()
			err := loop.Run(context.Background(), &FixedSource{Period: 20})
			Expect(err).To(MatchError(dynamo.ErrStopped))
		})

		It("cuts the run chain from an observer", func() {
			loop.AddObserver(ObserverFunc(func(f Frame) {
				if f.Index == 3 {
					loop.Stop()
				}
			}))
			err := loop.Run(context.Background(), &FixedSource{Period: 20})
			Expect(err).NotTo(HaveOccurred())
			Expect(loop.System().Frames).To(Equal(3))
		})
	})

	Describe("Run", func() {
		It("drains a finite source", func() {
			err := loop.Run(context.Background(), NewFixedSource(120, 240))
			Expect(err).NotTo(HaveOccurred())
			Expect(loop.System().Frames).To(BeNumerically("~", 120, 1))
			Expect(loop.Status()).To(Equal(Running))
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			loop.AddObserver(ObserverFunc(func(f Frame) {
				if f.Index == 2 {
					cancel()
				}
			}))

			err := loop.Run(ctx, &FixedSource{Period: 20})
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(loop.Status()).To(Equal(Stopped))
			Expect(loop.System().Frames).To(Equal(2))
		})

		It("rejects an empty surface", func() {
			l, _ := newTestLoop(0, 0)
			err := l.Run(context.Background(), NewFixedSource(60, 1))
			Expect(err).To(MatchError(dynamo.ErrInvalidSurface))
		})
	})

	Describe("Resize", func() {
		It("is idempotent and leaves bodies alone", func() {
			loop.Tick(20)
			before := loop.System().Bodies

			loop.Resize(1024, 768)
			scale := loop.Renderer().Scale()
			loop.Resize(1024, 768)

			Expect(loop.Renderer().Scale()).To(Equal(scale))
			Expect(scale).To(BeNumerically("~", 768*0.55, 1e-12))
			w, h := loop.Surface().Size()
			Expect([]int{w, h}).To(Equal([]int{1024, 768}))
			for i, b := range loop.System().Bodies {
				Expect(b.Pos).To(Equal(before[i].Pos))
				Expect(b.Vel).To(Equal(before[i].Vel))
			}
		})
	})

	Describe("Pause and Resume", func() {
		It("skips while hidden and executes one frame on resume", func() {
			loop.Tick(20)
			loop.Pause()
			Expect(loop.Tick(40)).To(BeFalse())
			Expect(loop.Tick(5000)).To(BeFalse())

			loop.Resume()
			Expect(loop.Tick(5010)).To(BeTrue())
			Expect(loop.Tick(5011)).To(BeFalse())
			Expect(loop.System().Frames).To(Equal(2))
		})
	})

	Describe("Reset", func() {
		It("restores the seed and clears trails", func() {
			for i := 1; i <= 10; i++ {
				loop.Tick(float64(i) * 20)
			}
			loop.Reset()

			seed := physics.FigureEight()
			for i, b := range loop.System().Bodies {
				Expect(b.Pos).To(Equal(seed[i].Pos))
				Expect(b.Trail.Len()).To(BeZero())
			}
		})
	})

	Describe("Reset with observers", func() {
		It("resets observers that accumulate state", func() {
			counter := &resettingObserver{}
			loop.AddObserver(counter)
			for i := 1; i <= 5; i++ {
				loop.Tick(float64(i) * 20)
			}
			Expect(counter.frames).To(Equal(5))

			loop.Reset()
			Expect(counter.frames).To(BeZero())
			Expect(counter.resets).To(Equal(1))
		})
	})

	Describe("state validation", func() {
		It("stops with ErrInvalidState once the state is non-finite", func() {
			loop.System().Bodies[0].Vel.X = math.NaN()

			Expect(loop.Tick(20)).To(BeFalse())
			Expect(loop.Status()).To(Equal(Stopped))
			Expect(loop.Err()).To(MatchError(dynamo.ErrInvalidState))

			var simErr *dynamo.SimulationError
			Expect(errors.As(loop.Err(), &simErr)).To(BeTrue())
			Expect(simErr.Frame).To(Equal(1))
			Expect(surf.draws).To(BeZero())
		})
	})
})

type resettingObserver struct {
	frames int
	resets int
}

func (o *resettingObserver) OnFrame(Frame) { o.frames++ }

func (o *resettingObserver) Reset() {
	o.frames = 0
	o.resets++
}
