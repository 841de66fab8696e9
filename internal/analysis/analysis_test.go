package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/threebody/internal/dynamo"
)

func TestPowerSpectrumFindsSine(t *testing.T) {
	const n, dt, freq = 1024, 0.01, 4.0
	data := make([]float64, n)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*freq*float64(i)*dt)
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}
	if ps[0] > 1e-9 {
		t.Errorf("mean should be removed, DC bin = %v", ps[0])
	}

	got := DominantFrequency(data, dt)
	if math.Abs(got-freq) > 0.1 {
		t.Errorf("expected ~%v Hz, got %v", freq, got)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if f := DominantFrequency([]float64{1, 1, 1, 1, 1, 1}, 0.1); f != 0 {
		t.Errorf("constant signal should have no peak, got %v", f)
	}
	if f := DominantFrequency(nil, 0.1); f != 0 {
		t.Errorf("empty signal should have no peak, got %v", f)
	}
}

func TestFigureEightPeriod(t *testing.T) {
	tr := Sample(dynamo.DefaultParams(), 4096)
	if tr.Len() != 4096 {
		t.Fatalf("expected 4096 samples, got %d", tr.Len())
	}

	if p := EstimatePeriod(tr.X[0], tr.Dt); p < 6.0 || p > 7.0 {
		t.Errorf("spectral period %v out of range", p)
	}
	if p := CrossingPeriod(tr.X[0], tr.Dt); p < 6.3 || p > 6.8 {
		t.Errorf("crossing period %v out of range", p)
	}
}

func TestCrossings(t *testing.T) {
	data := []float64{-1, 1, -1, 1}
	got := Crossings(data, 2)
	want := []float64{1, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("crossing %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if p := CrossingPeriod(data, 2); math.Abs(p-4) > 1e-12 {
		t.Errorf("expected period 4, got %v", p)
	}
	if p := CrossingPeriod([]float64{0, 1}, 1); p != 0 {
		t.Errorf("expected 0 with too few crossings, got %v", p)
	}
}

func TestLyapunovFinite(t *testing.T) {
	lambda := LyapunovExponent(dynamo.DefaultParams(), 500, 1e-8)
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		t.Fatalf("expected finite exponent, got %v", lambda)
	}
	if LyapunovExponent(dynamo.DefaultParams(), 0, 1e-8) != 0 {
		t.Error("expected 0 for no frames")
	}
}

func TestSweepSkipsInvalidSoftening(t *testing.T) {
	points := SweepSoftening(dynamo.DefaultParams(), 0, 0.02, 3, 3000)
	if len(points) != 2 {
		t.Fatalf("expected zero softening to be skipped, got %d points", len(points))
	}
	for _, p := range points {
		if p.Softening <= 0 || p.Period <= 0 || math.IsNaN(p.Drift) {
			t.Errorf("unexpected point %+v", p)
		}
	}
}

func TestPortraitToASCII(t *testing.T) {
	tr := Sample(dynamo.DefaultParams(), 800)
	out := PortraitToASCII(NewPortrait(tr, 0), 40, 12)

	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(lines))
	}
	if !strings.Contains(out, "•") {
		t.Error("expected plotted points")
	}
	if NewPortrait(tr, 3) != nil {
		t.Error("expected nil portrait for unknown body")
	}
	if PortraitToASCII(nil, 10, 10) != "" {
		t.Error("expected empty output for nil portrait")
	}
}
