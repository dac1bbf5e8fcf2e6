package psychrolib

import "math"

/*
標高から標準大気の気圧を求める。

	Args:
		altitude: 標高, ft [IP] or m [SI]

	Returns:
		標準大気の気圧, psi [IP] or Pa [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 3
*/
func (u UnitSystem) StandardAtmPressure(altitude float64) (float64, error) {
	if err := checkFinite([]string{"altitude"}, altitude); err != nil {
		return 0, err
	}
	tb := u.table()
	base := 1 - tb.stdAltitudeCoeff*altitude
	if base <= 0 {
		return 0, invalid("altitude %g is above the top of the standard atmosphere", altitude)
	}
	return tb.stdPressure * math.Pow(base, 5.2559), nil
}

/*
標高から標準大気の気温を求める。

	Returns:
		標準大気の乾球温度, °F [IP] or °C [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 4
*/
func (u UnitSystem) StandardAtmTemperature(altitude float64) (float64, error) {
	if err := checkFinite([]string{"altitude"}, altitude); err != nil {
		return 0, err
	}
	tb := u.table()
	return tb.stdTemperature - tb.stdLapseRate*altitude, nil
}

/*
観測地点の気圧・標高・乾球温度から海面気圧を求める。

	Args:
		stationPressure: 観測地点の気圧, psi [IP] or Pa [SI]
		altitude: 標高, ft [IP] or m [SI]
		tDryBulb: 乾球温度, °F [IP] or °C [SI]

	Returns:
		海面気圧, psi [IP] or Pa [SI]

	Notes:
		Hess SL, Introduction to theoretical meteorology, 1959, ch. 6.5;
		Stull RB, Meteorology for scientists and engineers, 2nd ed., 2000, ch. 1.
		米国では現在と 12 時間前の観測地点の気温の平均を tDryBulb に用いる。
*/
func (u UnitSystem) SeaLevelPressure(stationPressure, altitude, tDryBulb float64) (float64, error) {
	if err := checkPressure(stationPressure); err != nil {
		return 0, err
	}
	h, err := u.scaleHeight(altitude, tDryBulb)
	if err != nil {
		return 0, err
	}
	return stationPressure * math.Exp(altitude/h), nil
}

// 海面気圧から観測地点の気圧を求める。SeaLevelPressure の逆関数。
func (u UnitSystem) StationPressure(seaLevelPressure, altitude, tDryBulb float64) (float64, error) {
	if err := checkPressure(seaLevelPressure); err != nil {
		return 0, err
	}
	h, err := u.scaleHeight(altitude, tDryBulb)
	if err != nil {
		return 0, err
	}
	return seaLevelPressure / math.Exp(altitude/h), nil
}

// 気柱の平均温度（気温減率 6.5 °C/km, 3.6 °F/1000ft）によるスケールハイト
func (u UnitSystem) scaleHeight(altitude, tDryBulb float64) (float64, error) {
	if err := checkFinite([]string{"altitude", "dry bulb temperature"}, altitude, tDryBulb); err != nil {
		return 0, err
	}
	tb := u.table()
	tColumn := tDryBulb + tb.columnLapseRate*altitude/2
	if u.absolute(tColumn) <= 0 {
		return 0, invalid("mean air column temperature %g is at or below absolute zero", tColumn)
	}
	return tb.scaleHeightR * u.absolute(tColumn) / tb.scaleHeightG, nil
}
