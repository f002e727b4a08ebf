package calculator

import (
	"fluidlevel/model"
)

// 前端表单缺省值
const (
	defaultOilDensity = 0.85
	defaultGasDensity = 0.7
	defaultLiquidProd = 10.0
)

// EstimateIntakePressure 经验估算泵入口压力：套压 + 一定液柱压力
// 实际应结合功图计算
func EstimateIntakePressure(p Params) float64 {
	return p.CasingPressure + 2.0 + p.WaterCut*0.5
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// FromRequest 请求转换为计算参数，返回参数与目标泵入口压力
func FromRequest(req model.WellRequest) (Params, float64) {
	p := Params{
		PumpDepth:      req.PumpDepth,
		CasingPressure: req.CasingPressure,
		TubingPressure: req.TubingPressure,
		WaterCut:       req.WaterCut,
		TempWellhead:   req.TempWellhead,
		TempBottom:     req.TempBottom,
		OilDensity:     valueOr(req.OilDensity, defaultOilDensity),
		GasDensity:     valueOr(req.GasDensity, defaultGasDensity),
		LiquidRate:     valueOr(req.LiquidProd, defaultLiquidProd),
		GOR:            valueOr(req.GOR, DefaultGOR),
		CasingOD:       valueOr(req.CasingOD, DefaultCasingOD),
		TubingID:       valueOr(req.TubingID, DefaultTubingID),
	}
	pip := valueOr(req.PumpIntakePressure, EstimateIntakePressure(p))
	return p, pip
}
