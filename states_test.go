package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psychrolib/psychrolib"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadStates(t *testing.T) {
	path := writeFile(t, "states.csv", "tdb,humidity,pressure\n25,0.5,\n30,0.4,95461\n")

	rows, err := readStates(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, StateRow{TDryBulb: 25, Humidity: 0.5}, rows[0])
	assert.Equal(t, StateRow{TDryBulb: 30, Humidity: 0.4, Pressure: "95461"}, rows[1])

	// pressure 列は省略できる
	rows, err = readStates(writeFile(t, "nopres.csv", "tdb,humidity\n25,0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, []StateRow{{TDryBulb: 25, Humidity: 0.5}}, rows)

	_, err = readStates(writeFile(t, "empty.csv", "tdb,humidity\n"))
	assert.Error(t, err)

	_, err = readStates(writeFile(t, "bad.csv", "tdb,humidity\nwarm,0.5\n"))
	assert.Error(t, err)
}

func TestStateVectors(t *testing.T) {
	rows := []StateRow{
		{TDryBulb: 25, Humidity: 0.5},
		{TDryBulb: 30, Humidity: 0.4, Pressure: " 95461 "},
	}
	tdb, hum, p, err := stateVectors(rows, 101325)
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 30}, tdb.RawVector().Data)
	assert.Equal(t, []float64{0.5, 0.4}, hum.RawVector().Data)
	assert.Equal(t, []float64{101325, 95461}, p.RawVector().Data)

	_, _, _, err = stateVectors([]StateRow{{TDryBulb: 25, Humidity: 0.5, Pressure: "high"}}, 101325)
	require.ErrorIs(t, err, psychrolib.ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "invalid syntax")

	// ヘッダの次の行が 2 行目
	_, _, _, err = stateVectors([]StateRow{rows[0], {TDryBulb: 25, Humidity: 0.5, Pressure: "1e400"}}, 101325)
	require.ErrorIs(t, err, psychrolib.ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "value out of range")
}

func TestWriteResultsAndSummary(t *testing.T) {
	rows := []StateRow{{TDryBulb: 25, Humidity: 0.5}, {TDryBulb: 35, Humidity: 0.3}}
	tdb, hum, p, err := stateVectors(rows, 101325)
	require.NoError(t, err)
	res, err := psychrolib.SI.CalcPsychrometricsVec(psychrolib.ByRelHum, tdb, hum, p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, res))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "tdb,hum_ratio,twb,tdp,rel_hum,vap_pres,enthalpy,volume,degree_of_saturation", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "25,0.0098810436907"), lines[1])

	meanRelHum, maxEnthalpy := summarize(res)
	assert.InDelta(t, 0.4, meanRelHum, 1e-12)
	assert.Equal(t, res.MoistAirEnthalpy.AtVec(1), maxEnthalpy)
}

// 書き込めない保存先はエラー
func TestWriteResultsFile(t *testing.T) {
	tdb, hum, p, err := stateVectors([]StateRow{{TDryBulb: 25, Humidity: 0.5}}, 101325)
	require.NoError(t, err)
	res, err := psychrolib.SI.CalcPsychrometricsVec(psychrolib.ByRelHum, tdb, hum, p)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, writeResultsFile(path, res))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "tdb,hum_ratio,"))

	assert.Error(t, writeResultsFile(filepath.Join(t.TempDir(), "missing", "out.csv"), res))
}
