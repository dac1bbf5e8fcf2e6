package psychrolib

import "math"

//--------------------------------------
// 露点温度、湿球温度および相対湿度の相互変換
//--------------------------------------

/*
乾球温度・露点温度・大気圧から湿球温度を求める。

	Args:
		tDryBulb: 乾球温度, °F [IP] or °C [SI]
		tDewPoint: 露点温度, °F [IP] or °C [SI]
		pressure: 大気圧, psi [IP] or Pa [SI]

	Returns:
		湿球温度, °F [IP] or °C [SI]
*/
func (u UnitSystem) TWetBulbFromTDewPoint(tDryBulb, tDewPoint, pressure float64) (float64, error) {
	if tDewPoint > tDryBulb {
		return 0, invalid("dew point temperature %g is above dry bulb temperature %g", tDewPoint, tDryBulb)
	}

	humRatio, err := u.HumRatioFromTDewPoint(tDewPoint, pressure)
	if err != nil {
		return 0, err
	}
	return u.TWetBulbFromHumRatio(tDryBulb, humRatio, pressure)
}

/*
乾球温度・相対湿度・大気圧から湿球温度を求める。

	Args:
		relHum: 相対湿度, [0, 1]
*/
func (u UnitSystem) TWetBulbFromRelHum(tDryBulb, relHum, pressure float64) (float64, error) {
	humRatio, err := u.HumRatioFromRelHum(tDryBulb, relHum, pressure)
	if err != nil {
		return 0, err
	}
	return u.TWetBulbFromHumRatio(tDryBulb, humRatio, pressure)
}

/*
乾球温度・露点温度から相対湿度を求める。

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 22
*/
func (u UnitSystem) RelHumFromTDewPoint(tDryBulb, tDewPoint float64) (float64, error) {
	if err := u.checkTemperature("dry bulb temperature", tDryBulb); err != nil {
		return 0, err
	}
	if err := u.checkTemperature("dew point temperature", tDewPoint); err != nil {
		return 0, err
	}
	if tDewPoint > tDryBulb {
		return 0, invalid("dew point temperature %g is above dry bulb temperature %g", tDewPoint, tDryBulb)
	}
	return u.satVapPres(tDewPoint) / u.satVapPres(tDryBulb), nil
}

// 乾球温度・湿球温度・大気圧から相対湿度を求める
func (u UnitSystem) RelHumFromTWetBulb(tDryBulb, tWetBulb, pressure float64) (float64, error) {
	humRatio, err := u.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
	if err != nil {
		return 0, err
	}
	return u.RelHumFromHumRatio(tDryBulb, humRatio, pressure)
}

// 乾球温度・相対湿度から露点温度を求める。
// 相対湿度 0 の空気には露点温度がないので ErrInvalidInput とする。
func (u UnitSystem) TDewPointFromRelHum(tDryBulb, relHum float64) (float64, error) {
	vapPres, err := u.VapPresFromRelHum(tDryBulb, relHum)
	if err != nil {
		return 0, err
	}
	return u.TDewPointFromVapPres(tDryBulb, vapPres)
}

// 乾球温度・湿球温度・大気圧から露点温度を求める
func (u UnitSystem) TDewPointFromTWetBulb(tDryBulb, tWetBulb, pressure float64) (float64, error) {
	humRatio, err := u.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
	if err != nil {
		return 0, err
	}
	return u.TDewPointFromHumRatio(tDryBulb, humRatio, pressure)
}

//--------------------------------------
// 露点温度・相対湿度と水蒸気圧の変換
//--------------------------------------

/*
相対湿度と乾球温度から水蒸気分圧を求める。

	Returns:
		湿り空気中の水蒸気分圧, psi [IP] or Pa [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 12, 22
*/
func (u UnitSystem) VapPresFromRelHum(tDryBulb, relHum float64) (float64, error) {
	if err := checkRelHum(relHum); err != nil {
		return 0, err
	}
	satVapPres, err := u.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return relHum * satVapPres, nil
}

// 乾球温度と水蒸気分圧から相対湿度を求める
func (u UnitSystem) RelHumFromVapPres(tDryBulb, vapPres float64) (float64, error) {
	if err := checkVapPres(vapPres); err != nil {
		return 0, err
	}
	satVapPres, err := u.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return vapPres / satVapPres, nil
}

/*
乾球温度と水蒸気分圧から露点温度を求める。

	Args:
		tDryBulb: 乾球温度, °F [IP] or °C [SI]
		vapPres: 湿り空気中の水蒸気分圧, psi [IP] or Pa [SI]

	Returns:
		露点温度, °F [IP] or °C [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 5, 6
		飽和水蒸気圧の式を ln(p_ws) についてニュートン法で逆に解く。
		ln(p_ws) は滑らかなので 3〜5 回程度で収束し、eqn 37, 38 の回帰式より
		精度が高く適用範囲も広い。
		初期値は乾球温度とし、結果は乾球温度を超えない。
*/
func (u UnitSystem) TDewPointFromVapPres(tDryBulb, vapPres float64) (float64, error) {
	if err := u.checkTemperature("dry bulb temperature", tDryBulb); err != nil {
		return 0, err
	}
	if err := checkVapPres(vapPres); err != nil {
		return 0, err
	}

	tb := u.table()
	if vapPres < u.satVapPres(tb.tMin) || vapPres > u.satVapPres(tb.tMax) {
		return 0, invalid("partial pressure of water vapor %g is outside range of validity of equations", vapPres)
	}

	return u.tDewPointFromVapPres(u.solver(), tDryBulb, vapPres)
}

func (u UnitSystem) tDewPointFromVapPres(s solver, tDryBulb, vapPres float64) (float64, error) {
	tb := u.table()

	// 適用範囲の中点
	tMidPoint := (tb.tMin + tb.tMax) / 2

	lnVP := math.Log(vapPres)
	f := func(t float64) float64 {
		return math.Log(u.satVapPres(t)) - lnVP
	}

	// 差分の向きは曲線の右側で負、左側で正とし、適用範囲の外で評価しないようにする
	step := func(t float64) float64 {
		if t > tMidPoint {
			return -tb.dewPointStep
		}
		return tb.dewPointStep
	}

	tDewPoint, err := s.newton("TDewPointFromVapPres", f, tDryBulb, tb.tMin, tb.tMax, step)
	if err != nil {
		return 0, err
	}
	return math.Min(tDewPoint, tDryBulb), nil
}

/*
大気圧での沸点（飽和水蒸気圧が全圧に達する温度）から許容誤差を引いた温度。
湿球温度や飽和温度の探索範囲の上限に用いる。

	Returns:
		探索範囲の上限温度。適用範囲内で沸騰しない場合は適用範囲の上限
*/
func (u UnitSystem) tBelowBoiling(s solver, pressure float64) (float64, error) {
	tb := u.table()
	if u.satVapPres(tb.tMax) < pressure {
		return tb.tMax, nil
	}
	tBoil, err := u.tDewPointFromVapPres(s, tb.tMax, pressure)
	if err != nil {
		return 0, err
	}
	return tBoil - s.tol, nil
}

/*
露点温度から水蒸気分圧を求める。

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 36
*/
func (u UnitSystem) VapPresFromTDewPoint(tDewPoint float64) (float64, error) {
	if err := u.checkTemperature("dew point temperature", tDewPoint); err != nil {
		return 0, err
	}
	return u.satVapPres(tDewPoint), nil
}

//--------------------------------------
// 湿球温度・露点温度・相対湿度から絶対湿度への変換
//--------------------------------------

/*
乾球温度・絶対湿度・大気圧から湿球温度を求める。

	Args:
		tDryBulb: 乾球温度, °F [IP] or °C [SI]
		humRatio: 絶対湿度, lb_H2O/lb_Air [IP] or kg_H2O/kg_Air [SI]
		pressure: 大気圧, psi [IP] or Pa [SI]

	Returns:
		湿球温度, °F [IP] or °C [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 33, 35 を
		露点温度と乾球温度の間で二分法により解く。
		露点温度が適用範囲を下回るほど乾燥した空気では適用範囲の下限を、
		乾球温度が大気圧での沸点を超える場合は沸点の直下を探索範囲の端とする。
*/
func (u UnitSystem) TWetBulbFromHumRatio(tDryBulb, humRatio, pressure float64) (float64, error) {
	return u.tWetBulbFromHumRatio(u.solver(), tDryBulb, humRatio, pressure)
}

func (u UnitSystem) tWetBulbFromHumRatio(s solver, tDryBulb, humRatio, pressure float64) (float64, error) {
	if err := u.checkTemperature("dry bulb temperature", tDryBulb); err != nil {
		return 0, err
	}
	if err := checkHumRatio(humRatio); err != nil {
		return 0, err
	}
	if err := checkPressure(pressure); err != nil {
		return 0, err
	}

	tb := u.table()

	// 探索範囲の下限
	tWetBulbInf := tb.tMin
	if vapPres := vapPresFromHumRatio(humRatio, pressure); vapPres >= u.satVapPres(tb.tMin) {
		if vapPres > u.satVapPres(tb.tMax) {
			return 0, invalid("partial pressure of water vapor %g is outside range of validity of equations", vapPres)
		}
		tDewPoint, err := u.tDewPointFromVapPres(s, tDryBulb, vapPres)
		if err != nil {
			return 0, err
		}
		tWetBulbInf = tDewPoint
	}

	f := func(tWetBulb float64) float64 {
		return u.humRatioFromTWetBulb(tDryBulb, tWetBulb, pressure) - humRatio
	}

	// 探索範囲の上限
	// 沸点以上では飽和絶対湿度が負になり式が成り立たないため、沸点の直下で止める
	tWetBulbSup := tDryBulb
	if u.satVapPres(tDryBulb) >= pressure {
		tSup, err := u.tBelowBoiling(s, pressure)
		if err != nil {
			return 0, err
		}
		tWetBulbSup = tSup
		if f(tWetBulbSup) < 0 {
			return 0, invalid("humidity ratio %g has no wet bulb temperature below the boiling point at pressure %g", humRatio, pressure)
		}
	}

	return s.bisect("TWetBulbFromHumRatio", f, tWetBulbInf, tWetBulbSup)
}

/*
乾球温度・湿球温度・大気圧から絶対湿度を求める。

	Returns:
		絶対湿度, lb_H2O/lb_Air [IP] or kg_H2O/kg_Air [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 33, 35
*/
func (u UnitSystem) HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure float64) (float64, error) {
	if err := u.checkTemperature("dry bulb temperature", tDryBulb); err != nil {
		return 0, err
	}
	if err := u.checkTemperature("wet bulb temperature", tWetBulb); err != nil {
		return 0, err
	}
	if err := checkPressure(pressure); err != nil {
		return 0, err
	}
	if tWetBulb > tDryBulb {
		return 0, invalid("wet bulb temperature %g is above dry bulb temperature %g", tWetBulb, tDryBulb)
	}
	if u.satVapPres(tWetBulb) >= pressure {
		return 0, invalid("saturation pressure at wet bulb temperature %g reaches the total pressure %g", tWetBulb, pressure)
	}

	humRatio := u.humRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
	if humRatio < 0 {
		return 0, invalid("wet bulb temperature %g is too low for dry bulb temperature %g", tWetBulb, tDryBulb)
	}
	return humRatio, nil
}

func (u UnitSystem) humRatioFromTWetBulb(tDryBulb, tWetBulb, pressure float64) float64 {
	tb := u.table()

	wsStar := humRatioFromVapPres(u.satVapPres(tWetBulb), pressure)

	c := tb.wetBulbAbove
	if tWetBulb < tb.tFreezing {
		c = tb.wetBulbBelow
	}

	return ((c.a-c.b*tWetBulb)*wsStar - c.c*(tDryBulb-tWetBulb)) /
		(c.a + c.d*tDryBulb - c.e*tWetBulb)
}

// 乾球温度・相対湿度・大気圧から絶対湿度を求める
func (u UnitSystem) HumRatioFromRelHum(tDryBulb, relHum, pressure float64) (float64, error) {
	vapPres, err := u.VapPresFromRelHum(tDryBulb, relHum)
	if err != nil {
		return 0, err
	}
	return HumRatioFromVapPres(vapPres, pressure)
}

// 乾球温度・絶対湿度・大気圧から相対湿度を求める。絶対湿度 0 なら 0。
func (u UnitSystem) RelHumFromHumRatio(tDryBulb, humRatio, pressure float64) (float64, error) {
	vapPres, err := VapPresFromHumRatio(humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return u.RelHumFromVapPres(tDryBulb, vapPres)
}

// 露点温度・大気圧から絶対湿度を求める
func (u UnitSystem) HumRatioFromTDewPoint(tDewPoint, pressure float64) (float64, error) {
	vapPres, err := u.VapPresFromTDewPoint(tDewPoint)
	if err != nil {
		return 0, err
	}
	return HumRatioFromVapPres(vapPres, pressure)
}

// 乾球温度・絶対湿度・大気圧から露点温度を求める。
// 乾き空気（絶対湿度 0）には露点温度がないので ErrInvalidInput とする。
func (u UnitSystem) TDewPointFromHumRatio(tDryBulb, humRatio, pressure float64) (float64, error) {
	vapPres, err := VapPresFromHumRatio(humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return u.TDewPointFromVapPres(tDryBulb, vapPres)
}

//--------------------------------------
// 絶対湿度と水蒸気圧の変換
//--------------------------------------

/*
水蒸気分圧と大気圧から絶対湿度を求める。単位系によらない。

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 20
*/
func HumRatioFromVapPres(vapPres, pressure float64) (float64, error) {
	if err := checkVapPres(vapPres); err != nil {
		return 0, err
	}
	if err := checkPressure(pressure); err != nil {
		return 0, err
	}
	if vapPres >= pressure {
		return 0, invalid("partial pressure of water vapor %g must be below the total pressure %g", vapPres, pressure)
	}
	return humRatioFromVapPres(vapPres, pressure), nil
}

func humRatioFromVapPres(vapPres, pressure float64) float64 {
	return molWeightRatio * vapPres / (pressure - vapPres)
}

/*
絶対湿度と大気圧から水蒸気分圧を求める。

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 20 を pw について解いたもの
*/
func VapPresFromHumRatio(humRatio, pressure float64) (float64, error) {
	if err := checkHumRatio(humRatio); err != nil {
		return 0, err
	}
	if err := checkPressure(pressure); err != nil {
		return 0, err
	}
	return vapPresFromHumRatio(humRatio, pressure), nil
}

func vapPresFromHumRatio(humRatio, pressure float64) float64 {
	return pressure * humRatio / (molWeightRatio + humRatio)
}

//--------------------------------------
// 比湿
//--------------------------------------

/*
絶対湿度から比湿（湿り空気単位質量あたりの水蒸気の質量）を求める。

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 9b
*/
func SpecificHumFromHumRatio(humRatio float64) (float64, error) {
	if err := checkHumRatio(humRatio); err != nil {
		return 0, err
	}
	return humRatio / (1 + humRatio), nil
}

// 比湿から絶対湿度を求める。比湿は [0, 1) とする。
func HumRatioFromSpecificHum(specificHum float64) (float64, error) {
	if err := checkFinite([]string{"specific humidity"}, specificHum); err != nil {
		return 0, err
	}
	if specificHum < 0 || specificHum >= 1 {
		return 0, invalid("specific humidity is outside range [0, 1), got %g", specificHum)
	}
	return specificHum / (1 - specificHum), nil
}
