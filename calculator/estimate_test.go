package calculator

import (
	"testing"

	"fluidlevel/model"
	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	req := model.WellRequest{
		WellID:         7,
		PumpDepth:      1800,
		CasingPressure: 0.4,
		TubingPressure: 1.2,
		WaterCut:       0.6,
		TempWellhead:   30,
		TempBottom:     75,
	}
	p, pip := FromRequest(req)

	assert.Equal(t, defaultOilDensity, p.OilDensity)
	assert.Equal(t, defaultGasDensity, p.GasDensity)
	assert.Equal(t, defaultLiquidProd, p.LiquidRate)
	assert.Equal(t, DefaultGOR, p.GOR)
	assert.Equal(t, DefaultCasingOD, p.CasingOD)
	assert.Equal(t, DefaultTubingID, p.TubingID)
	assert.InDelta(t, 0.4+2.0+0.3, pip, 1e-12)
	assert.Equal(t, EstimateIntakePressure(p), pip)
}

func TestFromRequest_Explicit(t *testing.T) {
	gor, pip, oil := 40.0, 9.0, 0.9
	req := model.WellRequest{
		PumpDepth:          2000,
		CasingPressure:     0.5,
		OilDensity:         &oil,
		GOR:                &gor,
		PumpIntakePressure: &pip,
	}
	p, got := FromRequest(req)
	assert.Equal(t, 40.0, p.GOR)
	assert.Equal(t, 0.9, p.OilDensity)
	assert.Equal(t, 9.0, got)
}
