package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Default(t *testing.T) {
	conf, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, conf)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units: IP\naltitude: 5000\ninput: states.csv\n"), 0644))

	conf, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "IP", conf.Units)
	assert.Equal(t, 5000.0, conf.Altitude)
	assert.Equal(t, "states.csv", conf.InputPath)
	// 書かれていない項目は既定値
	assert.Equal(t, "relhum", conf.Humidity)
	assert.Equal(t, "ERROR", conf.LogLevel)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("altitude: [1, 2]\n"), 0644))
	_, err = loadConfig(bad)
	assert.Error(t, err)
}

// コマンドライン引数で指定した項目だけが上書きされる
func TestConfig_Override(t *testing.T) {
	base := Config{
		InputPath: "a.csv",
		Units:     "IP",
		Humidity:  "twetbulb",
		Altitude:  5000,
		LogLevel:  "ERROR",
	}
	got := base.override(Config{Units: "SI", Pressure: 101325, OutputPath: "out.csv"})

	assert.Equal(t, Config{
		InputPath:  "a.csv",
		OutputPath: "out.csv",
		Units:      "SI",
		Humidity:   "twetbulb",
		Pressure:   101325,
		Altitude:   5000,
		LogLevel:   "ERROR",
	}, got)
}
