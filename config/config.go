package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

type Config struct {
	Addr   string
	WsPath string
	Mode   string // gin 运行模式

	LogLevel  string
	LogFormat string // text / json

	Step    float64 // RK4 积分步长 (m)
	Workers int     // 批量计算并发数

	ChartWidth  float64 // cm
	ChartHeight float64 // cm
}

// Load 读取配置文件，缺失的键取默认值
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("配置文件读取错误，请检查文件路径: %w", err)
	}
	return loadCfg(file), nil
}

// Default 全部取默认值
func Default() *Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) *Config {
	server := file.Section("server")
	logSec := file.Section("log")
	solver := file.Section("solver")
	chart := file.Section("chart")
	return &Config{
		Addr:        server.Key("Addr").MustString(":9000"),
		WsPath:      server.Key("WsPath").MustString("/ws"),
		Mode:        server.Key("Mode").In("release", []string{"debug", "release", "test"}),
		LogLevel:    logSec.Key("Level").MustString("info"),
		LogFormat:   logSec.Key("Format").In("text", []string{"text", "json"}),
		Step:        solver.Key("Step").MustFloat64(10),
		Workers:     solver.Key("Workers").MustInt(4),
		ChartWidth:  chart.Key("Width").MustFloat64(12),
		ChartHeight: chart.Key("Height").MustFloat64(16),
	}
}
