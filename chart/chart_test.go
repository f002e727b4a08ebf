package chart

import (
	"bytes"
	"testing"

	"fluidlevel/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() model.LevelResult {
	return model.LevelResult{
		Level:       1000,
		Submergence: 1200,
		PIP:         10.5,
		State:       "converged",
		Curve: model.Curve{
			Depth:    []float64{0, 1000, 1010, 1500, 2200},
			Pressure: []float64{0.3, 0.375, 0.45, 5.1, 10.5},
		},
	}
}

func TestRender_PNG(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleResult(), SizeCm(12, 16), "png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRender_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), SizeCm(12, 16), "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRender_Invalid(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult()
	res.Curve.Pressure = res.Curve.Pressure[:2]
	assert.Error(t, Render(&buf, res, SizeCm(12, 16), "png"))

	assert.Error(t, Render(&buf, sampleResult(), SizeCm(12, 16), "bmp"))
}

func TestLevelPressure(t *testing.T) {
	assert.Equal(t, 0.375, levelPressure(sampleResult()))
	res := sampleResult()
	res.Level = 3000
	assert.Equal(t, 10.5, levelPressure(res))
}
