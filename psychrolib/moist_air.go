package psychrolib

import "math"

/*
乾球温度・絶対湿度・大気圧から飽差を求める。

	Returns:
		飽差, psi [IP] or Pa [SI]

	Notes:
		Oke (1987) eqn 2.13a
*/
func (u UnitSystem) VaporPressureDeficit(tDryBulb, humRatio, pressure float64) (float64, error) {
	relHum, err := u.RelHumFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return u.satVapPres(tDryBulb) * (1 - relHum), nil
}

/*
飽和度（同じ温度・圧力の飽和空気の絶対湿度に対する絶対湿度の比）を求める。

	Notes:
		ASHRAE Handbook - Fundamentals (2009) ch. 1 eqn 12
		2017 年版には定義がない。
*/
func (u UnitSystem) DegreeOfSaturation(tDryBulb, humRatio, pressure float64) (float64, error) {
	if err := checkHumRatio(humRatio); err != nil {
		return 0, err
	}
	satHumRatio, err := u.SatHumRatio(tDryBulb, pressure)
	if err != nil {
		return 0, err
	}
	return humRatio / satHumRatio, nil
}

/*
乾球温度・絶対湿度から湿り空気の比エンタルピーを求める。

	Returns:
		湿り空気の比エンタルピー, Btu/lb [IP] or J/kg [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 30
*/
func (u UnitSystem) MoistAirEnthalpy(tDryBulb, humRatio float64) (float64, error) {
	if err := checkFinite([]string{"dry bulb temperature"}, tDryBulb); err != nil {
		return 0, err
	}
	if err := checkHumRatio(humRatio); err != nil {
		return 0, err
	}
	return u.moistAirEnthalpy(tDryBulb, humRatio), nil
}

func (u UnitSystem) moistAirEnthalpy(tDryBulb, humRatio float64) float64 {
	tb := u.table()
	return (tb.cpAir*tDryBulb + humRatio*(tb.hWater+tb.cpVapor*tDryBulb)) * tb.enthalpyScale
}

/*
乾球温度・絶対湿度・大気圧から湿り空気の比容積を求める。

	Returns:
		湿り空気の比容積, ft3/lb of dry air [IP] or m3/kg of dry air [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 26
		IP では R_DA / 144 が eqn 26 の係数 0.370486 になる。
*/
func (u UnitSystem) MoistAirVolume(tDryBulb, humRatio, pressure float64) (float64, error) {
	if err := u.checkAbsolute(tDryBulb); err != nil {
		return 0, err
	}
	if err := checkHumRatio(humRatio); err != nil {
		return 0, err
	}
	if err := checkPressure(pressure); err != nil {
		return 0, err
	}
	tb := u.table()
	return tb.rDryAir * u.absolute(tDryBulb) * (1 + vaporVolumeFactor*humRatio) / (tb.pressureFactor * pressure), nil
}

/*
比容積・絶対湿度・大気圧から乾球温度を求める。

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 26 を T について解いたもの
*/
func (u UnitSystem) TDryBulbFromMoistAirVolumeAndHumRatio(moistAirVolume, humRatio, pressure float64) (float64, error) {
	if err := checkFinite([]string{"moist air volume"}, moistAirVolume); err != nil {
		return 0, err
	}
	if moistAirVolume <= 0 {
		return 0, invalid("moist air volume must be positive, got %g", moistAirVolume)
	}
	if err := checkHumRatio(humRatio); err != nil {
		return 0, err
	}
	if err := checkPressure(pressure); err != nil {
		return 0, err
	}
	tb := u.table()
	return moistAirVolume*tb.pressureFactor*pressure/(tb.rDryAir*(1+vaporVolumeFactor*humRatio)) - tb.tAbsZero, nil
}

// 乾球温度・絶対湿度・大気圧から湿り空気の密度を求める, lb/ft3 [IP] or kg/m3 [SI]
// ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 11
func (u UnitSystem) MoistAirDensity(tDryBulb, humRatio, pressure float64) (float64, error) {
	volume, err := u.MoistAirVolume(tDryBulb, humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return (1 + humRatio) / volume, nil
}

/*
比エンタルピー・絶対湿度から乾球温度を求める。

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 30 を T について解いたもの
		解が絶対零度以下になる比エンタルピーは ErrInvalidInput
*/
func (u UnitSystem) TDryBulbFromEnthalpyAndHumRatio(moistAirEnthalpy, humRatio float64) (float64, error) {
	if err := checkFinite([]string{"moist air enthalpy"}, moistAirEnthalpy); err != nil {
		return 0, err
	}
	if err := checkHumRatio(humRatio); err != nil {
		return 0, err
	}
	tb := u.table()
	tDryBulb := (moistAirEnthalpy/tb.enthalpyScale - tb.hWater*humRatio) / (tb.cpAir + tb.cpVapor*humRatio)
	if err := u.checkAbsolute(tDryBulb); err != nil {
		return 0, err
	}
	return tDryBulb, nil
}

/*
比エンタルピー・乾球温度から絶対湿度を求める。

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 30 を W について解いたもの
		同じ温度の乾き空気の比エンタルピーを下回る場合は ErrInvalidInput
*/
func (u UnitSystem) HumRatioFromEnthalpyAndTDryBulb(moistAirEnthalpy, tDryBulb float64) (float64, error) {
	if err := checkFinite([]string{"moist air enthalpy"}, moistAirEnthalpy); err != nil {
		return 0, err
	}
	if err := u.checkAbsolute(tDryBulb); err != nil {
		return 0, err
	}
	tb := u.table()
	if moistAirEnthalpy < u.moistAirEnthalpy(tDryBulb, 0) {
		return 0, invalid("enthalpy %g is below the dry air enthalpy at %g", moistAirEnthalpy, tDryBulb)
	}
	humRatio := (moistAirEnthalpy/tb.enthalpyScale - tb.cpAir*tDryBulb) / (tb.hWater + tb.cpVapor*tDryBulb)

	// 丸め誤差による負値
	return math.Max(humRatio, 0), nil
}

// 乾球温度・比エンタルピー・大気圧から湿球温度を求める
func (u UnitSystem) TWetBulbFromEnthalpy(tDryBulb, moistAirEnthalpy, pressure float64) (float64, error) {
	humRatio, err := u.HumRatioFromEnthalpyAndTDryBulb(moistAirEnthalpy, tDryBulb)
	if err != nil {
		return 0, err
	}
	return u.TWetBulbFromHumRatio(tDryBulb, humRatio, pressure)
}
