package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psychrolib/psychrolib"
)

// CSV を入力して CSV が出力される
func TestRun(t *testing.T) {
	input := writeFile(t, "states.csv", "tdb,humidity,pressure\n25,0.5,\n40,0.2,95461\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	conf := defaultConfig.override(Config{InputPath: input, OutputPath: output, Pressure: 101325})
	require.NoError(t, run(conf, nil))

	file, err := os.Open(output)
	require.NoError(t, err)
	defer file.Close()

	var got []ResultRow
	require.NoError(t, gocsv.UnmarshalFile(file, &got))
	require.Len(t, got, 2)
	assert.InEpsilon(t, 0.009881043690749623, got[0].HumRatio, 1e-12)
	assert.InDelta(t, 17.889432172042596, got[0].TWetBulb, 1e-6)
	assert.InDelta(t, 0.2, got[1].RelHum, 1e-12)

	want, err := psychrolib.SI.CalcPsychrometricsFromRelHum(40, 0.2, 95461)
	require.NoError(t, err)
	assert.InEpsilon(t, want.MoistAirVolume, got[1].MoistAirVolume, 1e-12)
}

// --pressure を省略すると標高から標準大気の気圧を使う
func TestRun_Altitude(t *testing.T) {
	input := writeFile(t, "states.csv", "tdb,humidity\n77,0.5\n")

	var buf bytes.Buffer
	conf := defaultConfig.override(Config{InputPath: input, Units: "IP", Altitude: 5000})
	require.NoError(t, run(conf, &buf))

	var got []ResultRow
	require.NoError(t, gocsv.Unmarshal(&buf, &got))
	require.Len(t, got, 1)

	p, err := psychrolib.IP.StandardAtmPressure(5000)
	require.NoError(t, err)
	want, err := psychrolib.IP.HumRatioFromRelHum(77, 0.5, p)
	require.NoError(t, err)
	assert.InEpsilon(t, want, got[0].HumRatio, 1e-12)
}

func TestRun_Errors(t *testing.T) {
	input := writeFile(t, "states.csv", "tdb,humidity\n25,0.5\n25,1.5\n")

	conf := defaultConfig.override(Config{InputPath: input})
	err := run(conf, &bytes.Buffer{})
	require.ErrorIs(t, err, psychrolib.ErrInvalidInput)
	assert.Contains(t, err.Error(), "state 1")

	conf.Units = "CGS"
	assert.ErrorIs(t, run(conf, &bytes.Buffer{}), psychrolib.ErrInvalidInput)

	conf = defaultConfig.override(Config{InputPath: input, Humidity: "enthalpy"})
	assert.ErrorIs(t, run(conf, &bytes.Buffer{}), psychrolib.ErrInvalidInput)

	conf = defaultConfig.override(Config{InputPath: filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, run(conf, &bytes.Buffer{}))
}
