package calculator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// 井身结构与流体参数的默认值
const (
	DefaultPumpDepth      = 2000.0 // 泵挂深度缺省值 (m)
	DefaultGOR            = 25.0   // 生产气油比 (m3/m3)
	DefaultCasingOD       = 139.7  // 套管外径 (mm)
	DefaultTubingID       = 62.0   // 油管内径 (mm)
	DefaultCasingPressure = 0.1    // 套压非正时的替代值 (MPa)

	minLiquidRate     = 0.1  // 日产液量下限 (m3/d)
	minAnnulusArea    = 0.01 // 环空截面积下限 (m2)
	minHydraulicDiam  = 0.05 // 水力直径下限 (m)
	casingWall        = 13.0 // 套管壁厚估算 (mm)
	tubingWall        = 6.5  // 油管壁厚估算 (mm)
	heatTransferCoeff = 1.6  // 综合导热系数 W/(m·℃)
	waterHeatCoeff    = 1.163
)

// Params 原始输入参数，单位: m, MPa, ℃, m3/d, mm
type Params struct {
	PumpDepth      float64 // 泵挂深度
	CasingPressure float64 // 套压
	TubingPressure float64 // 油压
	WaterCut       float64 // 含水率 0-1
	OilDensity     float64 // 原油相对密度 (水=1)
	GasDensity     float64 // 天然气相对密度 (空气=1)
	TempWellhead   float64 // 井口温度
	TempBottom     float64 // 井底温度
	LiquidRate     float64 // 日产液量

	GOR      float64 // 生产气油比
	CasingOD float64 // 套管外径
	TubingID float64 // 油管内径
}

// NewParams 可选参数取默认值
func NewParams() Params {
	return Params{
		PumpDepth: DefaultPumpDepth,
		GOR:       DefaultGOR,
		CasingOD:  DefaultCasingOD,
		TubingID:  DefaultTubingID,
	}
}

// Well 校验后的井配置，构造后不再修改，一次求解内被所有试算共享
type Well struct {
	Params

	waterCut   float64
	liquidRate float64
	gor        float64

	geoGradient     float64 // 地温梯度 ℃/m
	relaxationDepth float64 // 弛豫距离 A (m)
	flowFactor      float64 // 产液量修正系数

	casingID     float64 // 套管内径 (m)
	tubingOD     float64 // 油管外径 (m)
	hydraulicDia float64 // 环空水力直径 (m)
	annulusArea  float64 // 环空截面积 (m2)
}

// NewWell 校验参数并预先计算温度场与环空几何常数
func NewWell(p Params) (*Well, error) {
	required := []struct {
		name  string
		value float64
	}{
		{"pump_depth", p.PumpDepth},
		{"casing_pressure", p.CasingPressure},
		{"tubing_pressure", p.TubingPressure},
		{"water_cut", p.WaterCut},
		{"oil_density", p.OilDensity},
		{"gas_density", p.GasDensity},
		{"temp_wellhead", p.TempWellhead},
		{"temp_bottom", p.TempBottom},
		{"liquid_rate", p.LiquidRate},
		{"gor", p.GOR},
		{"casing_od", p.CasingOD},
		{"tubing_id", p.TubingID},
	}
	for _, f := range required {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return nil, fmt.Errorf("%w: %s is not finite", ErrInvalidConfiguration, f.name)
		}
	}
	if p.OilDensity <= 0 {
		return nil, fmt.Errorf("%w: oil_density must be positive", ErrInvalidConfiguration)
	}
	if p.PumpDepth <= 0 {
		log.WithField("pump_depth", p.PumpDepth).Debug("泵挂深度无效，使用默认值")
		p.PumpDepth = DefaultPumpDepth
	}
	if p.CasingOD <= 0 {
		p.CasingOD = DefaultCasingOD
	}
	if p.TubingID <= 0 {
		p.TubingID = DefaultTubingID
	}

	w := &Well{
		Params:     p,
		waterCut:   math.Max(0, math.Min(1, p.WaterCut)),
		liquidRate: math.Max(minLiquidRate, p.LiquidRate),
		gor:        math.Max(0, p.GOR),
	}
	w.initTemperature()
	w.initGeometry()
	return w, nil
}

// Ramey 温度场参数
func (w *Well) initTemperature() {
	w.geoGradient = (w.TempBottom - w.TempWellhead) / w.PumpDepth

	// 混合流体加权比热容项
	hs := w.waterCut
	unit := (1-hs)*w.geoGradient + hs*waterHeatCoeff + (1-hs)*w.gor*w.geoGradient/3/467
	// 质量流量热容因子
	wq := unit * w.liquidRate * 1000 / 24
	w.relaxationDepth = wq / heatTransferCoeff

	// 产液量极低时温度回归地温
	w.flowFactor = math.Min(1.0, w.liquidRate/5.0)
}

func (w *Well) initGeometry() {
	w.casingID = (w.CasingOD - casingWall*2) * 1e-3
	w.tubingOD = (w.TubingID + tubingWall*2) * 1e-3

	w.hydraulicDia = w.casingID - w.tubingOD
	if w.hydraulicDia <= 0 {
		w.hydraulicDia = minHydraulicDiam
	}
	w.annulusArea = math.Pi * (w.casingID*w.casingID - w.tubingOD*w.tubingOD) / 4
	if w.annulusArea <= 0 {
		w.annulusArea = minAnnulusArea
	}
}

// 套压非正时取默认值
func (w *Well) casingPressure() float64 {
	if w.CasingPressure <= 0 {
		return DefaultCasingPressure
	}
	return w.CasingPressure
}
