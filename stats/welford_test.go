package stats

import (
	"testing"

	"github.com/smaeyama/test-fig-stdout/utils"
)

func TestWelford(t *testing.T) {
	w := NewWelford()

	utils.AssertEqual(t, uint64(0), w.Count())
	utils.AssertEqual(t, 0.0, w.Mean())
	utils.AssertEqual(t, 0.0, w.Variance())
	utils.AssertEqual(t, 0.0, w.SampleVariance())

	for i := 1; i < 100; i++ {
		w.Update(float64(i))
	}

	utils.AssertEqual(t, uint64(99), w.Count())
	utils.AssertEqual(t, 50.0, w.Mean())
	utils.AssertClose(t, w.Variance(), 816.666667, 1e-4)
	utils.AssertClose(t, w.SampleVariance(), 825.0, 1e-4)
}

func TestWelfordConstantSamples(t *testing.T) {
	var w Welford
	for i := 0; i < 8; i++ {
		w.Update(0.005)
	}
	utils.AssertEqual(t, 0.005, w.Mean())
	utils.AssertEqual(t, 0.0, w.SD())
}
