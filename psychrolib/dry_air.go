package psychrolib

/*
乾球温度から乾き空気の比エンタルピーを求める。

	Returns:
		乾き空気の比エンタルピー, Btu/lb [IP] or J/kg [SI]

	Notes:
		ASHRAE Handbook - Fundamentals (2017) ch. 1 eqn 28
*/
func (u UnitSystem) DryAirEnthalpy(tDryBulb float64) (float64, error) {
	if err := checkFinite([]string{"dry bulb temperature"}, tDryBulb); err != nil {
		return 0, err
	}
	tb := u.table()
	return tb.cpAir * tb.enthalpyScale * tDryBulb, nil
}

/*
乾球温度・大気圧から乾き空気の密度を求める。

	Returns:
		乾き空気の密度, lb/ft3 [IP] or kg/m3 [SI]

	Notes:
		乾き空気の理想気体の式 eqn 14、一般気体定数 eqn 1
		IP では係数 144 で psi を lb/ft2 に換算する。
*/
func (u UnitSystem) DryAirDensity(tDryBulb, pressure float64) (float64, error) {
	volume, err := u.DryAirVolume(tDryBulb, pressure)
	if err != nil {
		return 0, err
	}
	return 1 / volume, nil
}

// 乾球温度・大気圧から乾き空気の比容積を求める, ft3/lb [IP] or m3/kg [SI]
func (u UnitSystem) DryAirVolume(tDryBulb, pressure float64) (float64, error) {
	if err := u.checkAbsolute(tDryBulb); err != nil {
		return 0, err
	}
	if err := checkPressure(pressure); err != nil {
		return 0, err
	}
	tb := u.table()
	return u.absolute(tDryBulb) * tb.rDryAir / (tb.pressureFactor * pressure), nil
}

// 絶対零度より高い有限の温度であることを確認する。
// 気体の状態式は飽和水蒸気圧の式の適用範囲に限られない。
func (u UnitSystem) checkAbsolute(tDryBulb float64) error {
	if err := checkFinite([]string{"dry bulb temperature"}, tDryBulb); err != nil {
		return err
	}
	if u.absolute(tDryBulb) <= 0 {
		return invalid("dry bulb temperature %g is at or below absolute zero", tDryBulb)
	}
	return nil
}
