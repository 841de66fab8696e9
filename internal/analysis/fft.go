package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the first half of the real FFT of
// data with its mean removed.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency finds the strongest non-DC bin of data sampled every dt
// and refines it by parabolic interpolation. It returns 0 when there is no
// usable peak.
func DominantFrequency(data []float64, dt float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 3 || dt <= 0 {
		return 0
	}

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	if ps[best] == 0 {
		return 0
	}

	bin := float64(best)
	if best+1 < len(ps) {
		a, b, c := ps[best-1], ps[best], ps[best+1]
		if denom := a - 2*b + c; denom != 0 {
			if off := 0.5 * (a - c) / denom; math.Abs(off) < 1 {
				bin += off
			}
		}
	}
	return bin / (float64(len(data)) * dt)
}

// EstimatePeriod is the reciprocal of the dominant frequency.
func EstimatePeriod(data []float64, dt float64) float64 {
	f := DominantFrequency(data, dt)
	if f == 0 {
		return 0
	}
	return 1 / f
}
