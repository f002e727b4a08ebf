package calculator

import (
	"fmt"
	"math"

	"fluidlevel/deque"
	log "github.com/sirupsen/logrus"
)

const (
	MaxIterCount       = 30      // 最大迭代次数
	PressureTolerance  = 0.02    // 收敛误差 (MPa)
	gasColumnGradient  = 0.00025 // 气柱段线性近似系数 (1/m)
	curveMinDepthDelta = 0.01    // 剖面去重间隔 (m)
)

// State 求解终止状态
type State int

const (
	Degenerate           State = iota // 泵入口压力不高于套压
	Converged                         // 二分收敛
	MaxIterationsReached              // 迭代次数用尽，返回最后区间中点
)

func (s State) String() string {
	switch s {
	case Degenerate:
		return "degenerate"
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max_iterations_reached"
	}
	return "unknown"
}

// Result 动液面计算结果
type Result struct {
	Level       float64 // 动液面深度 (m)
	Submergence float64 // 沉没度 (m)
	PIP         float64 // 泵入口压力 (MPa)
	State       State
	Iterations  int
	Curve       *deque.ArrDeque // 压力剖面，深度严格递增，首点深度为 0
}

// Solver 动液面反算
type Solver struct {
	Step float64 // RK4 步长 (m)
}

func NewSolver(step float64) *Solver {
	if step <= 0 || math.IsNaN(step) {
		step = DefaultDepthStep
	}
	return &Solver{Step: step}
}

// GasColumnPressure 液面处气柱压力，简化为线性梯度
func GasColumnPressure(casingPressure, level float64) float64 {
	return casingPressure * (1 + gasColumnGradient*level)
}

// BottomPressure 给定液面深度，积分液柱得到泵入口压力
func (s *Solver) BottomPressure(w *Well, level float64) (float64, *deque.ArrDeque) {
	pInterface := GasColumnPressure(w.casingPressure(), level)
	return w.Integrate(level, pInterface, w.PumpDepth, s.Step)
}

// SolveParams 校验参数后求解
func (s *Solver) SolveParams(p Params, pip float64) (*Result, error) {
	w, err := NewWell(p)
	if err != nil {
		return nil, err
	}
	return s.Solve(w, pip)
}

// Solve 二分查找液面深度，使积分得到的泵入口压力与 pip 一致
func (s *Solver) Solve(w *Well, pip float64) (*Result, error) {
	if math.IsNaN(pip) || math.IsInf(pip, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIntakePressure, pip)
	}
	pCasing := w.casingPressure()

	// 泵入口压力不高于套压，液面在泵处
	if pip <= pCasing {
		curve := deque.NewArrDeque(2)
		curve.AddLast(deque.Sample{Depth: 0, Pressure: pCasing})
		curve.AddLast(deque.Sample{Depth: w.PumpDepth, Pressure: pCasing})
		return &Result{
			Level:       w.PumpDepth,
			Submergence: 0,
			PIP:         pip,
			State:       Degenerate,
			Curve:       curve,
		}, nil
	}

	levelMin, levelMax := 0.0, w.PumpDepth
	var (
		level float64
		path  *deque.ArrDeque
		state = MaxIterationsReached
		iter  int
	)
	for iter < MaxIterCount {
		iter++
		mid := (levelMin + levelMax) / 2

		var pBottom float64
		pBottom, path = s.BottomPressure(w, mid)
		log.WithFields(log.Fields{
			"iter":      iter,
			"candidate": mid,
			"bottom":    pBottom,
			"target":    pip,
		}).Debug("液面二分")

		if math.Abs(pBottom-pip) < PressureTolerance {
			level = mid
			state = Converged
			break
		}
		if pBottom > pip {
			// 压力偏大，液柱太高，液面需要加深
			levelMin = mid
		} else {
			levelMax = mid
		}
	}
	if state == MaxIterationsReached {
		level = (levelMin + levelMax) / 2
	}

	// 组装完整剖面: 井口、液面 (气柱段) + 液柱段
	path.AddFirst(deque.Sample{Depth: level, Pressure: GasColumnPressure(pCasing, level)})
	path.AddFirst(deque.Sample{Depth: 0, Pressure: pCasing})

	log.WithFields(log.Fields{
		"pump_depth":  w.PumpDepth,
		"pip":         pip,
		"fluid_level": level,
		"state":       state,
		"iterations":  iter,
	}).Info("动液面计算完成")

	return &Result{
		Level:       level,
		Submergence: w.PumpDepth - level,
		PIP:         pip,
		State:       state,
		Iterations:  iter,
		Curve:       deque.Dedup(path, curveMinDepthDelta),
	}, nil
}
