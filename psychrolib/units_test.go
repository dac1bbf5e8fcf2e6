package psychrolib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitSystem(t *testing.T) {
	for in, want := range map[string]UnitSystem{
		"SI":  SI,
		"si":  SI,
		"IP":  IP,
		" ip": IP,
	} {
		got, err := ParseUnitSystem(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseUnitSystem("metric")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTemperatureConversions(t *testing.T) {
	assert.Equal(t, 77.0, TFahrenheitFromTCelsius(25))
	assert.Equal(t, 25.0, TCelsiusFromTFahrenheit(77))
	assert.Equal(t, -40.0, TFahrenheitFromTCelsius(-40))
	assert.InDelta(t, 536.67, TRankineFromTFahrenheit(77), 1e-12)
	assert.InDelta(t, 77, TFahrenheitFromTRankine(536.67), 1e-12)
	assert.InDelta(t, 298.15, TKelvinFromTCelsius(25), 1e-12)
	assert.InDelta(t, 25, TCelsiusFromTKelvin(298.15), 1e-12)
}

func TestTemperatureBounds(t *testing.T) {
	lo, hi := SI.TemperatureBounds()
	assert.Equal(t, -100.0, lo)
	assert.Equal(t, 200.0, hi)

	lo, hi = IP.TemperatureBounds()
	assert.Equal(t, -148.0, lo)
	assert.Equal(t, 392.0, hi)

	assert.Equal(t, 0.001, SI.Tolerance())
	assert.InDelta(t, 0.0018, IP.Tolerance(), 1e-15)
}

// 未定義の単位系はプログラムの誤りなので panic する
func TestUnitSystem_Invalid(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = UnitSystem("CGS").SatVapPres(25)
	})
	assert.Panics(t, func() {
		UnitSystem("").Tolerance()
	})
}
