package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum is the one-sided power spectrum of a motion trace. Frequency
// is in cycles per frame, so the Nyquist bin sits at 0.5.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// nextPow2 pads the trace so the FFT stays radix-2.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// MotionSpectrum computes the power spectrum of a per-frame position
// trace. The mean is removed and a Hann window applied, so the DC bin
// reflects drift around the settled position rather than the position
// itself.
func MotionSpectrum(trace []float64) Spectrum {
	n := len(trace)
	if n < 4 {
		return Spectrum{}
	}

	mean := 0.0
	for _, v := range trace {
		mean += v
	}
	mean /= float64(n)

	padded := make([]float64, nextPow2(n))
	for i, v := range trace {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		padded[i] = (v - mean) * w
	}

	spectrum := fft.FFTReal(padded)
	half := len(padded) / 2

	s := Spectrum{
		Freqs: make([]float64, half),
		Power: make([]float64, half),
	}
	for i := 0; i < half; i++ {
		s.Freqs[i] = float64(i) / float64(len(padded))
		s.Power[i] = cmplx.Abs(spectrum[i])
	}
	return s
}

// Dominant returns the frequency and power of the strongest non-DC bin.
func (s Spectrum) Dominant() (freq, power float64) {
	for i := 1; i < len(s.Power); i++ {
		if s.Power[i] > power {
			power = s.Power[i]
			freq = s.Freqs[i]
		}
	}
	return freq, power
}

// Oscillating reports whether the tail of a trace still swings instead
// of settling. It compares peak-to-peak amplitude over the last window
// frames against eps.
func Oscillating(trace []float64, window int, eps float64) bool {
	if len(trace) < 2 {
		return false
	}
	if window > len(trace) {
		window = len(trace)
	}
	tail := trace[len(trace)-window:]
	lo, hi := tail[0], tail[0]
	for _, v := range tail {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi-lo > eps
}
