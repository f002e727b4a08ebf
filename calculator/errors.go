package calculator

import "errors"

// 对外暴露的错误类型
// 相关式内部的数值退化 (雷诺数 <= 0、表面张力定义域、S 因子奇点、Z 因子无根) 不返回错误，就地兜底
var (
	ErrInvalidConfiguration  = errors.New("invalid well configuration")
	ErrInvalidIntakePressure = errors.New("invalid pump intake pressure")
)
