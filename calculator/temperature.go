package calculator

import "math"

// TemperatureAt 基于 Ramey 指数模型计算深度 depth 处的流体温度 (℃)
//
//	T(z) = Tgeo(z) + (Tbottom - Tgeo(H)) · exp(-(H-z)/A) · f
//
// 流体从井底上返，逐渐冷却至地温，f 为产液量修正系数
func (w *Well) TemperatureAt(depth float64) float64 {
	tGeo := w.TempWellhead + w.geoGradient*depth
	if w.relaxationDepth <= 0.1 {
		return tGeo
	}

	distance := math.Max(0, w.PumpDepth-depth)
	tGeoBottom := w.TempWellhead + w.geoGradient*w.PumpDepth
	delta := (w.TempBottom - tGeoBottom) * math.Exp(-distance/w.relaxationDepth)

	return tGeo + delta*w.flowFactor
}
