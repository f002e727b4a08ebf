package calculator

import (
	"fluidlevel/model"

	"github.com/shopspring/decimal"
)

// 银行家舍入，恰好为 5 时取偶
func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).RoundBank(places).InexactFloat64()
}

// Output 转换为接口输出结构，液面、沉没度、泵入口压力保留两位小数，剖面深度两位、压力四位
func (r *Result) Output() model.LevelResult {
	curve := model.Curve{
		Depth:    make([]float64, 0, r.Curve.Size()),
		Pressure: make([]float64, 0, r.Curve.Size()),
	}
	depths, pressures := r.Curve.Split()
	for i := range depths {
		curve.Depth = append(curve.Depth, round(depths[i], 2))
		curve.Pressure = append(curve.Pressure, round(pressures[i], 4))
	}
	return model.LevelResult{
		Level:       round(r.Level, 2),
		Submergence: round(r.Submergence, 2),
		PIP:         round(r.PIP, 2),
		State:       r.State.String(),
		Iterations:  r.Iterations,
		Curve:       curve,
	}
}
