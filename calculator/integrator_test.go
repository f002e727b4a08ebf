package calculator

import (
	"testing"

	"fluidlevel/deque"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate_Steps(t *testing.T) {
	w := referenceWell(t)
	p, path := w.Integrate(0, 1, 25, 10)

	depths, pressures := path.Split()
	require.Len(t, depths, 4)
	assert.Equal(t, []float64{0, 10, 20, 25}, depths)
	assert.Equal(t, 1.0, pressures[0])
	assert.Equal(t, p, pressures[3])
	for i := 1; i < len(pressures); i++ {
		assert.Greater(t, pressures[i], pressures[i-1])
	}
}

func TestIntegrate_TinyInterval(t *testing.T) {
	w := referenceWell(t)
	p, path := w.Integrate(100, 2, 100.0005, 10)
	assert.Equal(t, 2.0, p)
	assert.Equal(t, 1, path.Size())

	p, path = w.Integrate(100, 2, 100, 10)
	assert.Equal(t, 2.0, p)
	assert.Equal(t, deque.Sample{Depth: 100, Pressure: 2}, path.First())
}

// 一个大步长与多个小步长结果接近
func TestIntegrate_StepRefinement(t *testing.T) {
	w := referenceWell(t)
	coarse, _ := w.Integrate(1000, 0.5, 2200, 20)
	fine, _ := w.Integrate(1000, 0.5, 2200, 2)
	assert.InDelta(t, fine, coarse, 0.1)

	def, _ := w.Integrate(1000, 0.5, 2200, 0)
	ten, _ := w.Integrate(1000, 0.5, 2200, DefaultDepthStep)
	assert.Equal(t, ten, def)
}
