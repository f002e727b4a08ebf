package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRegime(t *testing.T) {
	cases := []struct {
		e1, nfr float64
		want    FlowRegime
	}{
		{0.005, 1, Segregated},
		{0.5, 0.001, Segregated},
		{0.5, 0.1, Transition},
		{0.5, 1, Intermittent},
		{0.5, 100, Distributed},
		{0.2, 10, Intermittent},
		{0.2, 500, Distributed},
		{1, 0.01, Transition},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyRegime(c.e1, c.nfr), "e1=%v nfr=%v", c.e1, c.nfr)
	}
}

func TestClassifyRegime_OnBoundary(t *testing.T) {
	l := regimeBoundaries(0.5)
	assert.Equal(t, Distributed, ClassifyRegime(0.5, l.L2))
	assert.Equal(t, Distributed, ClassifyRegime(0.5, l.L3))
}

func TestHoldup_Bounds(t *testing.T) {
	for _, e1 := range []float64{0.001, 0.05, 0.2, 0.5, 0.9, 1} {
		for _, nfr := range []float64{0, 1e-4, 0.01, 0.1, 1, 10, 1000} {
			r := ClassifyRegime(e1, nfr)
			hl := Holdup(r, e1, nfr)
			assert.GreaterOrEqual(t, hl, e1)
			assert.LessOrEqual(t, hl, 1.0)
		}
	}
	assert.Equal(t, 1.0, Holdup(Segregated, 0.3, 0))
}

func TestFlowRegime_String(t *testing.T) {
	assert.Equal(t, "segregated", Segregated.String())
	assert.Equal(t, "transition", Transition.String())
	assert.Equal(t, "intermittent", Intermittent.String())
	assert.Equal(t, "distributed", Distributed.String())
	assert.Equal(t, "unknown", FlowRegime(9).String())
}
