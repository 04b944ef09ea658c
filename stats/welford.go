// Package stats holds small numeric accumulators for history columns.
package stats

import "math"

// Welford accumulates running moments of a sample stream in one pass.
// The zero value is ready to use.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{}
}

// Update folds one sample into the moments.
func (w *Welford) Update(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (value - w.mean)
}

func (w *Welford) Count() uint64 {
	return w.count
}

func (w *Welford) Mean() float64 {
	return w.mean
}

// Variance is the population variance of the samples seen so far. It is
// zero until two samples arrive.
func (w *Welford) Variance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count)
}

// SampleVariance applies Bessel's correction.
func (w *Welford) SampleVariance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count-1)
}

// SD is the sample standard deviation.
func (w *Welford) SD() float64 {
	return math.Sqrt(w.SampleVariance())
}
