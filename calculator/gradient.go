package calculator

import (
	"math"

	log "github.com/sirupsen/logrus"
)

const (
	G = 9.8 // 重力加速度

	minMixtureVelocity = 0.001
	minReynolds        = 1000.0
	maxAccelTerm       = 0.9
	maxGradient        = 0.03 // MPa/m
)

// FlowState 某一深度处的流动状态，便于调试与测试
type FlowState struct {
	Fluid
	Vsl      float64 // 液相表观流速 (m/s)
	Vsg      float64 // 气相表观流速 (m/s)
	Vm       float64 // 混合流速 (m/s)
	E1       float64 // 输入含液率
	Nfr      float64 // 弗劳德数
	Regime   FlowRegime
	Holdup   float64
	RhoL     float64 // 混合液密度 (kg/m3)
	RhoMix   float64 // 两相混合密度 (kg/m3)
	Reynolds float64
	S        float64 // 摩阻修正因子
	Gradient float64 // 压力梯度 (MPa/m)
	Fallback bool    // 是否回退到静液柱梯度
}

// Gradient 多相流压力梯度 dP/dz (MPa/m)
func (w *Well) Gradient(p, t float64) float64 {
	return w.FlowAt(p, t).Gradient
}

// FlowAt Beggs-Brill 方法计算压力 p (MPa)、温度 t (℃) 下的流动状态与压力梯度
func (w *Well) FlowAt(p, t float64) FlowState {
	if p <= 0 {
		p = 0.01
	}
	hs := w.waterCut
	var s FlowState
	s.Fluid = w.FluidAt(p, t)

	// 流量与表观流速
	qo := w.liquidRate * (1 - hs)
	qw := w.liquidRate * hs
	qg := s.Z * qo * math.Max(0, w.gor-s.Rs) * (t + 273) / p * 0.1 / 273 // 井下自由气量
	ql := qo*s.Bo + qw

	s.Vsl = ql / 86400 / w.annulusArea
	s.Vsg = qg / 86400 / w.annulusArea
	s.Vm = s.Vsl + s.Vsg
	if s.Vm == 0 {
		s.Vm = minMixtureVelocity
	}

	s.E1 = s.Vsl / s.Vm
	s.Nfr = s.Vm * s.Vm / (G * w.hydraulicDia)

	s.Regime = ClassifyRegime(s.E1, s.Nfr)
	s.Holdup = Holdup(s.Regime, s.E1, s.Nfr)

	// 混合密度
	s.RhoL = (s.RhoO*qo*s.Bo + 1000*qw) / (qo*s.Bo + qw)
	s.RhoMix = s.RhoL*s.Holdup + s.RhoG*(1-s.Holdup)

	// 摩阻
	rhoNoSlip := s.RhoL*s.E1 + s.RhoG*(1-s.E1)
	muM := s.MuL*s.E1 + s.MuG*(1-s.E1)
	s.Reynolds = w.hydraulicDia * s.Vm * rhoNoSlip / (muM * 1e-3)
	if s.Reynolds <= 0 {
		s.Reynolds = minReynolds
	}
	fn := 0.0056 + 0.5/math.Pow(s.Reynolds, 0.32)
	s.S = frictionExponent(s.E1, s.Holdup)
	ftp := fn * math.Exp(s.S)
	friction := ftp * rhoNoSlip * s.Vm * s.Vm / (2 * w.hydraulicDia)

	// 总压力梯度 (ρg + 摩阻) / (1 - Ek)
	gravity := s.RhoMix * G
	accel := s.RhoMix * s.Vm * s.Vsg / (p * 1e6)
	if accel >= maxAccelTerm {
		accel = maxAccelTerm
	}
	s.Gradient = (gravity + friction) / (1 - accel) * 1e-6

	// 梯度异常时回退到静液柱梯度
	if !(s.Gradient >= 0 && s.Gradient <= maxGradient) {
		log.WithFields(log.Fields{"pressure": p, "gradient": s.Gradient}).Trace("梯度超出范围，回退到静液柱梯度")
		s.Gradient = (s.RhoL*(1-hs) + 1000*hs) * G * 1e-6
		s.Fallback = true
	}
	return s
}

// Beggs-Brill 摩阻修正因子 S，1 < y < 1.2 区间使用替代公式避开奇点
func frictionExponent(e1, hl float64) float64 {
	y := e1 / (hl * hl)
	if y > 1 && y < 1.2 {
		return math.Log(2.2*y - 1.2)
	}
	ln := math.Log(y)
	s := ln / (-0.0523 + 3.182*ln - 0.8725*ln*ln + 0.01853*math.Pow(ln, 4))
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return s
}
