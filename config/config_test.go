package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("../conf/config.ini")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/ws", cfg.WsPath)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 10.0, cfg.Step)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 16.0, cfg.ChartHeight)
}

func TestLoad_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	content := "[solver]\nStep = 5\n[log]\nFormat = xml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Step)
	assert.Equal(t, 4, cfg.Workers)
	// 非法取值回退默认值
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":9000", cfg.Addr)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)

	cfg := Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 12.0, cfg.ChartWidth)
}
