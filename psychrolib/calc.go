package psychrolib

// 湿り空気の一つの状態の状態量。単位は計算に用いた UnitSystem に従う。
type Psychrometrics struct {
	TDryBulb           float64 // 乾球温度, °F [IP] or °C [SI]
	HumRatio           float64 // 絶対湿度, lb_H2O/lb_Air [IP] or kg_H2O/kg_Air [SI]
	TWetBulb           float64 // 湿球温度, °F [IP] or °C [SI]
	TDewPoint          float64 // 露点温度, °F [IP] or °C [SI]
	RelHum             float64 // 相対湿度, [0, 1]
	VapPres            float64 // 水蒸気圧, psi [IP] or Pa [SI]
	MoistAirEnthalpy   float64 // 湿り空気の比エンタルピー, Btu/lb [IP] or J/kg [SI]
	MoistAirVolume     float64 // 湿り空気の比容積, ft3/lb [IP] or m3/kg [SI]
	DegreeOfSaturation float64 // 飽和度, -
}

// 乾球温度・湿球温度・大気圧から、絶対湿度・露点温度・相対湿度・水蒸気圧・
// 比エンタルピー・比容積・飽和度を求める
func (u UnitSystem) CalcPsychrometricsFromTWetBulb(tDryBulb, tWetBulb, pressure float64) (Psychrometrics, error) {
	humRatio, err := u.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	tDewPoint, err := u.TDewPointFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	return u.completePsychrometrics(tDryBulb, humRatio, tWetBulb, tDewPoint, pressure)
}

// 乾球温度・露点温度・大気圧から残りの状態量を求める
func (u UnitSystem) CalcPsychrometricsFromTDewPoint(tDryBulb, tDewPoint, pressure float64) (Psychrometrics, error) {
	if tDewPoint > tDryBulb {
		return Psychrometrics{}, invalid("dew point temperature %g is above dry bulb temperature %g", tDewPoint, tDryBulb)
	}
	humRatio, err := u.HumRatioFromTDewPoint(tDewPoint, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	tWetBulb, err := u.TWetBulbFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	return u.completePsychrometrics(tDryBulb, humRatio, tWetBulb, tDewPoint, pressure)
}

// 乾球温度・相対湿度・大気圧から残りの状態量を求める
func (u UnitSystem) CalcPsychrometricsFromRelHum(tDryBulb, relHum, pressure float64) (Psychrometrics, error) {
	humRatio, err := u.HumRatioFromRelHum(tDryBulb, relHum, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	return u.CalcPsychrometricsFromHumRatio(tDryBulb, humRatio, pressure)
}

// 乾球温度・絶対湿度・大気圧から残りの状態量を求める
func (u UnitSystem) CalcPsychrometricsFromHumRatio(tDryBulb, humRatio, pressure float64) (Psychrometrics, error) {
	tWetBulb, err := u.TWetBulbFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	tDewPoint, err := u.TDewPointFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	return u.completePsychrometrics(tDryBulb, humRatio, tWetBulb, tDewPoint, pressure)
}

// 温度と絶対湿度が決まった後の残りの状態量
func (u UnitSystem) completePsychrometrics(tDryBulb, humRatio, tWetBulb, tDewPoint, pressure float64) (Psychrometrics, error) {
	relHum, err := u.RelHumFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	vapPres, err := VapPresFromHumRatio(humRatio, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	moistAirEnthalpy, err := u.MoistAirEnthalpy(tDryBulb, humRatio)
	if err != nil {
		return Psychrometrics{}, err
	}
	moistAirVolume, err := u.MoistAirVolume(tDryBulb, humRatio, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}
	degreeOfSaturation, err := u.DegreeOfSaturation(tDryBulb, humRatio, pressure)
	if err != nil {
		return Psychrometrics{}, err
	}

	return Psychrometrics{
		TDryBulb:           tDryBulb,
		HumRatio:           humRatio,
		TWetBulb:           tWetBulb,
		TDewPoint:          tDewPoint,
		RelHum:             relHum,
		VapPres:            vapPres,
		MoistAirEnthalpy:   moistAirEnthalpy,
		MoistAirVolume:     moistAirVolume,
		DegreeOfSaturation: degreeOfSaturation,
	}, nil
}
