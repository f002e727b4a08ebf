package calculator

import "math"

// 重油/轻油分界 (原油相对密度)
const heavyOilDensity = 0.8762

// 表面张力相关式失效时的兜底值 (dyn/cm)
const sigmaFallback = 20.0

// oilGrade Vasquez-Beggs 相关式系数组
type oilGrade int

const (
	lightOil oilGrade = iota
	heavyOil
)

func gradeOf(oilDensity float64) oilGrade {
	if oilDensity >= heavyOilDensity {
		return heavyOil
	}
	return lightOil
}

func (g oilGrade) vasquezBeggs() (c1, c2, c3 float64) {
	switch g {
	case heavyOil:
		return 0.0362, 1.0937, 25.724
	default:
		return 0.0178, 1.1870, 23.9310
	}
}

// Fluid 某一压力温度下的 PVT 物性
type Fluid struct {
	API    float64 // API 度
	Rs     float64 // 溶解气油比 (m3/m3)
	Bo     float64 // 原油体积系数
	RhoO   float64 // 原油密度 (kg/m3)
	Z      float64 // 气体压缩因子
	RhoG   float64 // 气体密度 (kg/m3)
	MuG    float64 // 气体粘度 (mPa·s)
	MuO    float64 // 活油粘度 (mPa·s)
	MuW    float64 // 水粘度 (mPa·s)
	MuL    float64 // 混合液粘度 (mPa·s)
	SigmaO float64 // 原油表面张力 (dyn/cm)
	SigmaW float64 // 水表面张力 (dyn/cm)
	SigmaL float64 // 混合液表面张力 (dyn/cm)
}

// FluidAt 计算压力 p (MPa)、温度 t (℃) 下的物性
func (w *Well) FluidAt(p, t float64) Fluid {
	yo := w.OilDensity
	yg := w.GasDensity
	hs := w.waterCut
	var f Fluid

	// 溶解气油比 Rs (Vasquez-Beggs)
	f.API = 141.5/yo - 131.5
	if f.API <= 0 {
		f.API = 0.1
	}
	c1, c2, c3 := gradeOf(yo).vasquezBeggs()
	f.Rs = 0.1845 * c1 * yg * math.Pow(145.3*p, c2) * math.Exp(c3*f.API/(1.8*yo*(273+t)))
	f.Rs = math.Min(f.Rs, w.gor) // Rs 不能超过总气油比

	// 体积系数与原油密度
	f.Bo = (1000*yo + 1.202*f.Rs*yg) / (yo * 1000)
	f.RhoO = (yo + 0.17812*f.Rs*yg*1.206/1000) / f.Bo * 1000
	f.RhoO = math.Max(f.RhoO, 700.0)

	// 气体
	f.Z = SolveZFactor(p, t, yg)
	f.RhoG = 3484.4 * yg * p / f.Z / (t + 273)

	tr := 1.8*t + 492 // °R
	tf := 1.8*t + 32  // °F

	// 气体粘度 (Lee-Gonzalez-Eakin)
	ma := 28.96 * yg
	x := 3.5 + 986/tr + 0.01*ma
	y := 2.4 - 0.2*x
	k := (9.4 + 0.02*ma) * math.Pow(tr, 1.5) / (701 + 19*ma + 1.8*t)
	r1 := 0.51008 * p * yg * 1.206 / (f.Z * tr)
	f.MuG = k * 1e-4 * math.Exp(x*math.Pow(r1, y))

	// 死油与活油粘度 (Beggs-Robinson)
	yd := math.Pow(10, 3.0324-0.02023*f.API) * math.Pow(tf, -1.163)
	ud := math.Pow(10, yd) - 1
	a := 10.715 * math.Pow(f.Rs+100, -0.515)
	b := 5.44 * math.Pow(f.Rs+150, -0.338)
	f.MuO = a * math.Pow(ud, b)

	// 水粘度
	f.MuW = math.Exp(1.003 - 0.01479*tf + 1.982e-5*tf*tf)
	f.MuL = f.MuW*hs + f.MuO*(1-hs)

	// 表面张力 (Baker-Swerdloff)
	tc, _ := pseudoCritical(yg)
	f.SigmaO = oilSurfaceTension(f.API, p, t, tc)
	f.SigmaW = 79.1 * math.Exp(-0.08366/f.MuW)
	f.SigmaL = f.SigmaO*(1-hs) + f.SigmaW*hs

	return f
}

// tc 为拟临界温度 (°R)
func oilSurfaceTension(api, p, t, tc float64) float64 {
	if tc == 528 {
		return sigmaFallback
	}
	term := (tc - 1.8*t - 492) / (tc - 528)
	if term < 0 {
		term = 0.1
	}
	a3 := (39.0964 - 0.2548*api) * (1.00783 * math.Exp(-0.01041*p-0.00783))
	sigma := a3 * math.Pow(term, 1.2)
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return sigmaFallback
	}
	return sigma
}
