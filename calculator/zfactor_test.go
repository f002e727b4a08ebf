package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveZFactor_Range(t *testing.T) {
	for _, p := range []float64{0.05, 0.3, 1, 5, 10, 20, 35} {
		for _, temp := range []float64{10, 35, 60, 90, 120} {
			for _, yg := range []float64{0.6, 0.75, 0.9} {
				z := SolveZFactor(p, temp, yg)
				assert.GreaterOrEqual(t, z, zLeft)
				assert.LessOrEqual(t, z, zRight)
				if z != zFallback {
					tc, pc := pseudoCritical(yg)
					f := zResidual(z, 14.22*p/pc, (1.8*temp+492)/tc)
					assert.Less(t, math.Abs(f), zTol, "p=%v t=%v yg=%v", p, temp, yg)
				}
			}
		}
	}
}

// 区间两端同号时返回兜底值
func TestSolveZFactor_NoSignChange(t *testing.T) {
	assert.Equal(t, 0.9, SolveZFactor(5000, 50, 0.7))
	// 拟对比温度非正
	assert.Equal(t, 0.9, SolveZFactor(10, -300, 0.7))
}

func TestZResidual_Guard(t *testing.T) {
	assert.Equal(t, 1.0, zResidual(0, 1, 1.5))
	assert.Equal(t, 1.0, zResidual(1, 1, 0))
	// 低压下近似理想气体
	assert.InDelta(t, 0.0, zResidual(1, 0, 1.5), 1e-12)
}
