package model

// 动液面计算请求，字段与前端表单一致
type WellRequest struct {
	WellID         int     `json:"well_id"`
	PumpDepth      float64 `json:"pump_depth"`      // 泵挂深度 (m)
	CasingPressure float64 `json:"casing_pressure"` // 套压 (MPa)
	TubingPressure float64 `json:"tubing_pressure"` // 油压 (MPa)
	WaterCut       float64 `json:"water_cut"`       // 含水率 0-1
	TempWellhead   float64 `json:"temp_wellhead"`   // 井口温度 (℃)
	TempBottom     float64 `json:"temp_bottom"`     // 井底温度 (℃)

	// 可选参数，缺省时取默认值
	OilDensity *float64 `json:"oil_density,omitempty"`
	GasDensity *float64 `json:"gas_density,omitempty"`
	LiquidProd *float64 `json:"liquid_prod,omitempty"` // 日产液量 (m3/d)
	GOR        *float64 `json:"gor,omitempty"`
	CasingOD   *float64 `json:"casing_od,omitempty"` // 套管外径 (mm)
	TubingID   *float64 `json:"tubing_id,omitempty"` // 油管内径 (mm)

	// 泵入口压力 (MPa)，缺省时按经验公式估算
	PumpIntakePressure *float64 `json:"pump_intake_pressure,omitempty"`
}

type BatchRequest struct {
	Wells []WellRequest `json:"wells"`
}

// 压力剖面
type Curve struct {
	Depth    []float64 `json:"depth"`
	Pressure []float64 `json:"pressure"`
}

// 动液面计算结果
type LevelResult struct {
	RequestID   string  `json:"request_id,omitempty"`
	WellID      int     `json:"well_id,omitempty"`
	Level       float64 `json:"level"`
	Submergence float64 `json:"submergence"`
	PIP         float64 `json:"pip"`
	State       string  `json:"state"`
	Iterations  int     `json:"iterations"`
	Curve       Curve   `json:"curve"`
}

// 接口统一返回结构
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// 批量计算中单口井的结果
type BatchItem struct {
	WellID  int          `json:"well_id"`
	Result  *LevelResult `json:"result,omitempty"`
	Message string       `json:"message,omitempty"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)
