package psychrolib

import "math"

// 飽和水蒸気圧の計算式本体。温度範囲の確認は呼び出し側で行う。
func (u UnitSystem) satVapPres(tDryBulb float64) float64 {
	tb := u.table()

	c := &tb.satWater
	if tDryBulb <= tb.tFreezing {
		c = &tb.satIce
	}

	// 絶対温度
	t := tDryBulb + tb.tAbsZero

	lnPws := c[0]/t + c[1] + c[2]*t + c[3]*t*t + c[4]*math.Pow(t, 3) + c[5]*math.Pow(t, 4) + c[6]*math.Log(t)
	return math.Exp(lnPws)
}

/*
乾球温度から飽和水蒸気圧を求める。

	Args:
		tDryBulb: 乾球温度, °F [IP] or °C [SI]

	Returns:
		飽和空気の水蒸気圧, psi [IP] or Pa [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 5（氷点以下、氷面）,
		eqn 6（水面）
		適用範囲は -100〜200 °C (-148〜392 °F)
*/
func (u UnitSystem) SatVapPres(tDryBulb float64) (float64, error) {
	if err := u.checkTemperature("dry bulb temperature", tDryBulb); err != nil {
		return 0, err
	}
	return u.satVapPres(tDryBulb), nil
}

/*
乾球温度・大気圧から飽和空気の絶対湿度を求める。

	Args:
		tDryBulb: 乾球温度, °F [IP] or °C [SI]
		pressure: 大気圧, psi [IP] or Pa [SI]

	Returns:
		飽和空気の絶対湿度, lb_H2O/lb_Air [IP] or kg_H2O/kg_Air [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 36 を W について解いたもの
		飽和水蒸気圧が全圧に達する（沸点以上の）場合は ErrInvalidInput
*/
func (u UnitSystem) SatHumRatio(tDryBulb, pressure float64) (float64, error) {
	satVapPres, err := u.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return HumRatioFromVapPres(satVapPres, pressure)
}

/*
乾球温度・大気圧から飽和空気の比エンタルピーを求める。

	Returns:
		飽和空気の比エンタルピー, Btu/lb [IP] or J/kg [SI]
*/
func (u UnitSystem) SatAirEnthalpy(tDryBulb, pressure float64) (float64, error) {
	satHumRatio, err := u.SatHumRatio(tDryBulb, pressure)
	if err != nil {
		return 0, err
	}
	return u.moistAirEnthalpy(tDryBulb, satHumRatio), nil
}

/*
比エンタルピーから飽和温度（等エンタルピー線と飽和曲線の交点の温度）を求める。
その等エンタルピー線上の空気の湿球温度の近似値になる。

	Args:
		enthalpy: 湿り空気の比エンタルピー, Btu/lb [IP] or J/kg [SI]
		pressure: 大気圧, psi [IP] or Pa [SI]

	Returns:
		飽和温度, °F [IP] or °C [SI]

	Notes:
		ニュートン法で解く。初期値は同じ比エンタルピーの乾き空気の温度で、
		常に解より高い。飽和空気の比エンタルピーは下に凸なので推定値は単調に減少する。
*/
func (u UnitSystem) TSatAirFromEnthalpy(enthalpy, pressure float64) (float64, error) {
	return u.tSatAirFromEnthalpy(u.solver(), enthalpy, pressure)
}

func (u UnitSystem) tSatAirFromEnthalpy(s solver, enthalpy, pressure float64) (float64, error) {
	if err := checkFinite([]string{"enthalpy"}, enthalpy); err != nil {
		return 0, err
	}
	if err := checkPressure(pressure); err != nil {
		return 0, err
	}

	tb := u.table()

	// 沸点の直下を上限とする
	tMax, err := u.tBelowBoiling(s, pressure)
	if err != nil {
		return 0, err
	}

	hMin := u.moistAirEnthalpy(tb.tMin, humRatioFromVapPres(u.satVapPres(tb.tMin), pressure))
	hMax := u.moistAirEnthalpy(tMax, humRatioFromVapPres(u.satVapPres(tMax), pressure))
	if enthalpy < hMin || enthalpy > hMax {
		return 0, invalid("enthalpy %g is outside the saturation range [%g, %g] at pressure %g", enthalpy, hMin, hMax, pressure)
	}

	f := func(t float64) float64 {
		return u.moistAirEnthalpy(t, humRatioFromVapPres(u.satVapPres(t), pressure)) - enthalpy
	}

	// 乾き空気として同じエンタルピーを持つ温度から始める
	t0 := enthalpy / (tb.cpAir * tb.enthalpyScale)
	t0 = math.Min(math.Max(t0, tb.tMin), tMax)

	step := func(t float64) float64 {
		// 上限付近では後退差分
		if t+tb.dewPointStep > tMax {
			return -tb.dewPointStep
		}
		return tb.dewPointStep
	}

	return s.newton("TSatAirFromEnthalpy", f, t0, tb.tMin, tMax, step)
}
