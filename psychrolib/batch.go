package psychrolib

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// 湿度の与え方
type HumidityKind string

// 湿度の与え方の定数
const (
	ByRelHum    HumidityKind = "relhum"    // 相対湿度, [0, 1]
	ByTWetBulb  HumidityKind = "twetbulb"  // 湿球温度
	ByTDewPoint HumidityKind = "tdewpoint" // 露点温度
	ByHumRatio  HumidityKind = "humratio"  // 絶対湿度
)

// 文字列を湿度の与え方に変換する
func ParseHumidityKind(s string) (HumidityKind, error) {
	k := HumidityKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case ByRelHum, ByTWetBulb, ByTDewPoint, ByHumRatio:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown humidity input %q", ErrInvalidInput, s)
	}
}

func (u UnitSystem) calcFunc(k HumidityKind) (func(tDryBulb, humidity, pressure float64) (Psychrometrics, error), error) {
	switch k {
	case ByRelHum:
		return u.CalcPsychrometricsFromRelHum, nil
	case ByTWetBulb:
		return u.CalcPsychrometricsFromTWetBulb, nil
	case ByTDewPoint:
		return u.CalcPsychrometricsFromTDewPoint, nil
	case ByHumRatio:
		return u.CalcPsychrometricsFromHumRatio, nil
	default:
		return nil, fmt.Errorf("%w: unknown humidity input %q", ErrInvalidInput, string(k))
	}
}

// PsychrometricsVec は状態量を列ごとに保持する。
type PsychrometricsVec struct {
	TDryBulb           *mat.VecDense
	HumRatio           *mat.VecDense
	TWetBulb           *mat.VecDense
	TDewPoint          *mat.VecDense
	RelHum             *mat.VecDense
	VapPres            *mat.VecDense
	MoistAirEnthalpy   *mat.VecDense
	MoistAirVolume     *mat.VecDense
	DegreeOfSaturation *mat.VecDense
}

func newPsychrometricsVec(n int) *PsychrometricsVec {
	return &PsychrometricsVec{
		TDryBulb:           mat.NewVecDense(n, nil),
		HumRatio:           mat.NewVecDense(n, nil),
		TWetBulb:           mat.NewVecDense(n, nil),
		TDewPoint:          mat.NewVecDense(n, nil),
		RelHum:             mat.NewVecDense(n, nil),
		VapPres:            mat.NewVecDense(n, nil),
		MoistAirEnthalpy:   mat.NewVecDense(n, nil),
		MoistAirVolume:     mat.NewVecDense(n, nil),
		DegreeOfSaturation: mat.NewVecDense(n, nil),
	}
}

// 状態の数
func (v *PsychrometricsVec) Len() int {
	return v.TDryBulb.Len()
}

// i 番目の状態
func (v *PsychrometricsVec) At(i int) Psychrometrics {
	return Psychrometrics{
		TDryBulb:           v.TDryBulb.AtVec(i),
		HumRatio:           v.HumRatio.AtVec(i),
		TWetBulb:           v.TWetBulb.AtVec(i),
		TDewPoint:          v.TDewPoint.AtVec(i),
		RelHum:             v.RelHum.AtVec(i),
		VapPres:            v.VapPres.AtVec(i),
		MoistAirEnthalpy:   v.MoistAirEnthalpy.AtVec(i),
		MoistAirVolume:     v.MoistAirVolume.AtVec(i),
		DegreeOfSaturation: v.DegreeOfSaturation.AtVec(i),
	}
}

func (v *PsychrometricsVec) set(i int, p Psychrometrics) {
	v.TDryBulb.SetVec(i, p.TDryBulb)
	v.HumRatio.SetVec(i, p.HumRatio)
	v.TWetBulb.SetVec(i, p.TWetBulb)
	v.TDewPoint.SetVec(i, p.TDewPoint)
	v.RelHum.SetVec(i, p.RelHum)
	v.VapPres.SetVec(i, p.VapPres)
	v.MoistAirEnthalpy.SetVec(i, p.MoistAirEnthalpy)
	v.MoistAirVolume.SetVec(i, p.MoistAirVolume)
	v.DegreeOfSaturation.SetVec(i, p.DegreeOfSaturation)
}

/*
各状態 i = (tDryBulb[i], humidity[i], pressure[i]) の状態量を一括で求める。

	Args:
		kind: humidity の種類
		tDryBulb: 乾球温度, °F [IP] or °C [SI], [i]
		humidity: kind で指定した湿度, [i]
		pressure: 大気圧, psi [IP] or Pa [SI], [i]

	Returns:
		列ごとの状態量, [i]

	Notes:
		最初に失敗した状態で計算を打ち切る。エラーには状態の番号を付けるが、
		ErrInvalidInput / ErrConvergence との一致はそのまま保たれる。
*/
func (u UnitSystem) CalcPsychrometricsVec(kind HumidityKind, tDryBulb, humidity, pressure mat.Vector) (*PsychrometricsVec, error) {
	calc, err := u.calcFunc(kind)
	if err != nil {
		return nil, err
	}

	n := tDryBulb.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: no states given", ErrInvalidInput)
	}
	if humidity.Len() != n || pressure.Len() != n {
		return nil, fmt.Errorf("%w: vector lengths differ (%d, %d, %d)", ErrInvalidInput, n, humidity.Len(), pressure.Len())
	}

	out := newPsychrometricsVec(n)
	for i := 0; i < n; i++ {
		p, err := calc(tDryBulb.AtVec(i), humidity.AtVec(i), pressure.AtVec(i))
		if err != nil {
			return nil, fmt.Errorf("state %d: %w", i, err)
		}
		out.set(i, p)
	}
	return out, nil
}

/*
共通の大気圧のもとで絶対湿度の列から水蒸気圧を求める。

	Args:
		humRatio: 絶対湿度, lb_H2O/lb_Air [IP] or kg_H2O/kg_Air [SI], [i]
		pressure: 大気圧, psi [IP] or Pa [SI]

	Returns:
		水蒸気圧, psi [IP] or Pa [SI], [i]
*/
func VapPresFromHumRatioVec(humRatio mat.Vector, pressure float64) ([]float64, error) {
	vapPres := make([]float64, humRatio.Len())
	for i := 0; i < humRatio.Len(); i++ {
		v, err := VapPresFromHumRatio(humRatio.AtVec(i), pressure)
		if err != nil {
			return nil, fmt.Errorf("state %d: %w", i, err)
		}
		vapPres[i] = v
	}
	return vapPres, nil
}
