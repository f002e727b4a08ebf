package calculator

import "fluidlevel/deque"

// DefaultDepthStep 积分步长 (m)
const DefaultDepthStep = 10.0

const minStep = 0.001

// Integrate 四阶 Runge-Kutta 从 start 深度向下积分到 end 深度，返回终点压力与积分路径。
// 最后一步缩短以恰好落在 end 上
func (w *Well) Integrate(start, pStart, end, step float64) (float64, *deque.ArrDeque) {
	if step <= 0 {
		step = DefaultDepthStep
	}
	path := deque.NewArrDeque(int((end-start)/step) + 2)
	d, p := start, pStart
	path.AddLast(deque.Sample{Depth: d, Pressure: p})

	for d < end {
		h := step
		if d+h > end {
			h = end - d
		}
		if h < minStep {
			break
		}

		// RK4 中间点温度
		tCurr := w.TemperatureAt(d)
		tMid := w.TemperatureAt(d + h/2)
		tNext := w.TemperatureAt(d + h)

		k1 := w.Gradient(p, tCurr)
		k2 := w.Gradient(p+h*k1/2, tMid)
		k3 := w.Gradient(p+h*k2/2, tMid)
		k4 := w.Gradient(p+h*k3, tNext)

		p += h / 6 * (k1 + 2*k2 + 2*k3 + k4)
		d += h
		path.AddLast(deque.Sample{Depth: d, Pressure: p})
	}
	return p, path
}
