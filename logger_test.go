package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DEBUG では各行の計算結果までログに出る
func TestSetupLogger_Debug(t *testing.T) {
	t.Cleanup(func() { setupLogger("ERROR", io.Discard) })

	var buf bytes.Buffer
	require.NoError(t, setupLogger("DEBUG", &buf))

	input := writeFile(t, "states.csv", "tdb,humidity\n25,0.5\n30,0.4\n")
	conf := defaultConfig.override(Config{InputPath: input, Pressure: 101325})
	require.NoError(t, run(conf, &bytes.Buffer{}))

	out := buf.String()
	assert.Contains(t, out, "INFO psychrolib: units=SI humidity=")
	assert.Contains(t, out, "DEBUG psychrolib: row 0:")
	assert.Contains(t, out, "DEBUG psychrolib: row 1:")
}

func TestSetupLogger_Level(t *testing.T) {
	t.Cleanup(func() { setupLogger("ERROR", io.Discard) })

	input := writeFile(t, "states.csv", "tdb,humidity\n25,0.5\n")
	conf := defaultConfig.override(Config{InputPath: input, Pressure: 101325})

	var buf bytes.Buffer
	require.NoError(t, setupLogger("INFO", &buf))
	require.NoError(t, run(conf, &bytes.Buffer{}))
	assert.Contains(t, buf.String(), "INFO psychrolib: units=SI")
	assert.NotContains(t, buf.String(), "DEBUG")

	// 付け直したハンドラだけに出力される
	var quiet bytes.Buffer
	require.NoError(t, setupLogger("ERROR", &quiet))
	buf.Reset()
	require.NoError(t, run(conf, &bytes.Buffer{}))
	assert.Empty(t, quiet.String())
	assert.Empty(t, buf.String())

	assert.Error(t, setupLogger("VERBOSE", &buf))
}
