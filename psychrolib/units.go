package psychrolib

import (
	"fmt"
	"strings"
)

// 単位系
type UnitSystem string

// 単位系の定数
const (
	IP UnitSystem = "IP" // °F, psi, lb, Btu, ft
	SI UnitSystem = "SI" // °C, Pa, kg, J, m
)

/*
文字列 ("SI", "ip" など) を単位系に変換する。

	Returns:
		単位系。変換できない場合は ErrInvalidInput を包んだエラー
*/
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch UnitSystem(strings.ToUpper(strings.TrimSpace(s))) {
	case IP:
		return IP, nil
	case SI:
		return SI, nil
	default:
		return "", fmt.Errorf("%w: the system of units has to be either SI or IP, got %q", ErrInvalidInput, s)
	}
}

func (u UnitSystem) String() string {
	return string(u)
}

// 単位系ごとの定数表。式の形は SI と IP で共通で、これらの値だけが異なる。
type unitTable struct {
	// 飽和水蒸気圧の式の適用範囲
	tMin, tMax float64

	// 反復計算の温度の許容誤差
	tol float64

	// TDewPointFromVapPres の数値微分の刻み
	dewPointStep float64

	// 氷面と水面の式を切り替える温度
	tFreezing float64

	// 温度目盛の 0 度の絶対温度 (K or °R)
	tAbsZero float64

	// 乾き空気の気体定数
	rDryAir float64

	// 気圧の単位から状態式の圧力の単位への換算係数 (psi -> lbf/ft2)
	pressureFactor float64

	// 比エンタルピー: scale * (cpAir*T + W*(hWater + cpVapor*T))
	cpAir, hWater, cpVapor, enthalpyScale float64

	// 湿球温度の関係式, ASHRAE eqn 33 / 35
	wetBulbAbove, wetBulbBelow wetBulbCoeffs

	// ln(p_ws) の近似式, ASHRAE eqn 5 (氷面) / 6 (水面)
	satIce, satWater [7]float64

	// 標準大気, eqn 3 / 4
	stdPressure, stdAltitudeCoeff, stdTemperature, stdLapseRate float64

	// 海面気圧換算の気温減率とスケールハイトの係数
	columnLapseRate, scaleHeightR, scaleHeightG float64
}

// W = ((a - b*Twb)*Ws - c*(T - Twb)) / (a + d*T - e*Twb)
type wetBulbCoeffs struct {
	a, b, c, d, e float64
}

var siTable = unitTable{
	tMin:           -100,
	tMax:           200,
	tol:            0.001,
	dewPointStep:   0.01,
	tFreezing:      0,
	tAbsZero:       zeroCelsiusAsKelvin,
	rDryAir:        rDryAirSI,
	pressureFactor: 1,
	cpAir:          1.006,
	hWater:         2501,
	cpVapor:        1.86,
	enthalpyScale:  1000,
	wetBulbAbove:   wetBulbCoeffs{a: 2501, b: 2.326, c: 1.006, d: 1.86, e: 4.186},
	wetBulbBelow:   wetBulbCoeffs{a: 2830, b: 0.24, c: 1.006, d: 1.86, e: 2.1},
	satIce: [7]float64{
		-5.6745359e+03, 6.3925247, -9.677843e-03, 6.2215701e-07, 2.0747825e-09, -9.484024e-13, 4.1635019,
	},
	satWater: [7]float64{
		-5.8002206e+03, 1.3914993, -4.8640239e-02, 4.1764768e-05, -1.4452093e-08, 0, 6.5459673,
	},
	stdPressure:      101325,
	stdAltitudeCoeff: 2.25577e-05,
	stdTemperature:   15,
	stdLapseRate:     0.0065,
	columnLapseRate:  0.0065,
	scaleHeightR:     287.055,
	scaleHeightG:     9.807,
}

var ipTable = unitTable{
	tMin:           -148,
	tMax:           392,
	tol:            0.001 * 9 / 5,
	dewPointStep:   0.01 * 9 / 5,
	tFreezing:      32,
	tAbsZero:       zeroFahrenheitAsRankine,
	rDryAir:        rDryAirIP,
	pressureFactor: 144,
	cpAir:          0.240,
	hWater:         1061,
	cpVapor:        0.444,
	enthalpyScale:  1,
	wetBulbAbove:   wetBulbCoeffs{a: 1093, b: 0.556, c: 0.240, d: 0.444, e: 1},
	wetBulbBelow:   wetBulbCoeffs{a: 1220, b: 0.04, c: 0.240, d: 0.444, e: 0.48},
	satIce: [7]float64{
		-1.0214165e+04, -4.8932428, -5.3765794e-03, 1.9202377e-07, 3.5575832e-10, -9.0344688e-14, 4.1635019,
	},
	satWater: [7]float64{
		-1.0440397e+04, -1.1294650e+01, -2.7022355e-02, 1.2890360e-05, -2.4780681e-09, 0, 6.5459673,
	},
	stdPressure:      14.696,
	stdAltitudeCoeff: 6.8754e-06,
	stdTemperature:   59,
	stdLapseRate:     0.00356620,
	columnLapseRate:  0.0036,
	scaleHeightR:     53.351,
	scaleHeightG:     1,
}

/*
単位系に応じた定数表を取得する。

	Notes:
		SI と IP 以外の値はプログラムの誤りとして panic する。
*/
func (u UnitSystem) table() *unitTable {
	switch u {
	case IP:
		return &ipTable
	case SI:
		return &siTable
	default:
		panic("invalid unit system")
	}
}

// 反復計算の温度の許容誤差 (SI で 0.001 K、IP では同じ温度差を °R で表した値)
func (u UnitSystem) Tolerance() float64 {
	return u.table().tol
}

// 飽和水蒸気圧の式の適用範囲, °F [IP] or °C [SI]
func (u UnitSystem) TemperatureBounds() (float64, float64) {
	t := u.table()
	return t.tMin, t.tMax
}

// 絶対温度 (K or °R)
func (u UnitSystem) absolute(t float64) float64 {
	return t + u.table().tAbsZero
}

// 0 °C の絶対温度 (K) と 0 °F の絶対温度 (°R)
const (
	zeroCelsiusAsKelvin     = 273.15
	zeroFahrenheitAsRankine = 459.67
)

// °C から °F への換算
func TFahrenheitFromTCelsius(tCelsius float64) float64 {
	return tCelsius*9/5 + 32
}

// °F から °C への換算
func TCelsiusFromTFahrenheit(tFahrenheit float64) float64 {
	return (tFahrenheit - 32) * 5 / 9
}

// °F から °R への換算
func TRankineFromTFahrenheit(tFahrenheit float64) float64 {
	return tFahrenheit + zeroFahrenheitAsRankine
}

// °R から °F への換算
func TFahrenheitFromTRankine(tRankine float64) float64 {
	return tRankine - zeroFahrenheitAsRankine
}

// °C から K への換算
func TKelvinFromTCelsius(tCelsius float64) float64 {
	return tCelsius + zeroCelsiusAsKelvin
}

// K から °C への換算
func TCelsiusFromTKelvin(tKelvin float64) float64 {
	return tKelvin - zeroCelsiusAsKelvin
}
