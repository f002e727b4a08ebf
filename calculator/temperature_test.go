package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureAt_Bounds(t *testing.T) {
	w := referenceWell(t)

	assert.InDelta(t, 35.0, w.TemperatureAt(0), 1e-6)
	assert.InDelta(t, 85.0, w.TemperatureAt(w.PumpDepth), 1e-9)
	prev := w.TemperatureAt(0)
	for d := 100.0; d <= w.PumpDepth; d += 100 {
		temp := w.TemperatureAt(d)
		assert.GreaterOrEqual(t, temp, prev)
		assert.LessOrEqual(t, temp, 85.0+1e-9)
		prev = temp
	}
}

// 弛豫距离过小时退化为地温
func TestTemperatureAt_Geothermal(t *testing.T) {
	p := referenceParams()
	p.WaterCut = 0
	p.LiquidRate = 0.1
	w, err := NewWell(p)
	require.NoError(t, err)
	require.LessOrEqual(t, w.relaxationDepth, 0.1)

	for _, d := range []float64{0, 500, 1234.5, 2200} {
		assert.Equal(t, p.TempWellhead+w.geoGradient*d, w.TemperatureAt(d))
	}
}
