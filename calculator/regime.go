package calculator

import "math"

// FlowRegime Beggs-Brill 流型
type FlowRegime int

const (
	Segregated   FlowRegime = iota // 分离流
	Transition                     // 过渡流
	Intermittent                   // 间歇流
	Distributed                    // 分散流
)

func (r FlowRegime) String() string {
	switch r {
	case Segregated:
		return "segregated"
	case Transition:
		return "transition"
	case Intermittent:
		return "intermittent"
	case Distributed:
		return "distributed"
	}
	return "unknown"
}

// 持液率相关式系数 a·E1^b / Nfr^c，过渡流没有自己的系数
func (r FlowRegime) coefficients() (a, b, c float64) {
	switch r {
	case Segregated:
		return 0.98, 0.4846, 0.0868
	case Intermittent:
		return 0.845, 0.5351, 0.0173
	case Distributed:
		return 1.065, 0.5824, 0.0609
	}
	return 0, 0, 0
}

// 流型边界
type boundaries struct {
	L1, L2, L3, L4 float64
}

func regimeBoundaries(e1 float64) boundaries {
	return boundaries{
		L1: 316 * math.Pow(e1, 0.302),
		L2: 0.0009252 * math.Pow(e1, -2.4684),
		L3: 0.1 * math.Pow(e1, -1.4516),
		L4: 0.5 * math.Pow(e1, -6.738),
	}
}

// ClassifyRegime 根据输入含液率 e1 与弗劳德数 nfr 判断流型
func ClassifyRegime(e1, nfr float64) FlowRegime {
	l := regimeBoundaries(e1)
	switch {
	case (e1 < 0.01 && nfr < l.L1) || (e1 >= 0.01 && nfr < l.L2):
		return Segregated
	case e1 >= 0.01 && nfr > l.L2 && nfr < l.L3:
		return Transition
	case (e1 >= 0.01 && e1 < 0.4 && nfr > l.L3 && nfr <= l.L1) ||
		(e1 >= 0.4 && nfr > l.L3 && nfr <= l.L4):
		return Intermittent
	default:
		return Distributed
	}
}

func horizontalHoldup(r FlowRegime, e1, nfr float64) float64 {
	a, b, c := r.coefficients()
	if nfr <= 0 {
		return 1.0
	}
	return a * math.Pow(e1, b) / math.Pow(nfr, c)
}

// Holdup 无滑脱修正持液率，限制在 [e1, 1]
// 过渡流在 L2 与 L3 之间对分离流和间歇流持液率线性插值
func Holdup(r FlowRegime, e1, nfr float64) float64 {
	var hl float64
	if r == Transition {
		l := regimeBoundaries(e1)
		seg := horizontalHoldup(Segregated, e1, nfr)
		inter := horizontalHoldup(Intermittent, e1, nfr)
		a := (l.L3 - nfr) / (l.L3 - l.L2)
		hl = a*seg + (1-a)*inter
	} else {
		hl = horizontalHoldup(r, e1, nfr)
	}
	// 垂直井，倾角修正系数为 1
	return math.Max(e1, math.Min(1.0, hl))
}
