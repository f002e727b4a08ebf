package calculator

import "math"

const (
	zLeft     = 0.01
	zRight    = 3.0
	zFallback = 0.9 // 无法收敛时的兜底值
	zIter     = 10
	zTol      = 0.001
)

// Dranchuk-Abu-Kassem Z 因子误差函数
func zResidual(z, pr, tt float64) float64 {
	if z <= 0 || tt <= 0 {
		return 1.0
	}
	r5 := 0.27 * pr / (z * tt)
	tt3 := tt * tt * tt
	return 1 + (0.31506-1.0467/tt-0.583/tt3)*r5 +
		(0.5353-0.6123/tt)*r5*r5 + 0.6815*r5*r5/tt3 - z
}

// 拟临界温度(°R)与拟临界压力(psia)
func pseudoCritical(gasDensity float64) (tc, pc float64) {
	tc = 168 + 325*gasDensity - 12.5*gasDensity*gasDensity
	pc = 667 + 15*gasDensity - 37.5*gasDensity*gasDensity
	return
}

// SolveZFactor 二分法求解气体压缩因子 Z，pressure 单位 MPa，temperature 单位 ℃。
// 该函数不会失败：区间两端同号或 10 次迭代内未达到精度时返回 0.9
func SolveZFactor(pressure, temperature, gasDensity float64) float64 {
	tc, pc := pseudoCritical(gasDensity)
	pr := 14.22 * pressure / pc        // 拟对比压力
	tt := (1.8*temperature + 492) / tc // 拟对比温度

	left, right := zLeft, zRight
	fLeft := zResidual(left, pr, tt)
	if fLeft*zResidual(right, pr, tt) > 0 || math.IsNaN(fLeft) {
		return zFallback
	}

	for i := 0; i < zIter; i++ {
		mid := (left + right) / 2
		fMid := zResidual(mid, pr, tt)
		if math.Abs(fMid) < zTol {
			return mid
		}
		if fMid*fLeft < 0 {
			right = mid
		} else {
			left = mid
			fLeft = fMid
		}
	}
	return zFallback
}
