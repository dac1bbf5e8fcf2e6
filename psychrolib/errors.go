package psychrolib

import (
	"errors"
	"fmt"
	"math"
)

// 引数が物理的に有効な範囲外の場合のエラーはすべてこれを包む
var ErrInvalidInput = errors.New("psychrolib: invalid input")

// errors.Is ですべての *ConvergenceError と一致する
var ErrConvergence = errors.New("psychrolib: convergence not reached")

// 反復計算が許容誤差に達する前に最大反復回数に達したことを表す。
// Last は調査用の最後の推定値で、計算結果ではない。
type ConvergenceError struct {
	Func       string
	Iterations int
	Last       float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("psychrolib: convergence not reached in %s after %d iterations (last iterate %g)", e.Func, e.Iterations, e.Last)
}

// target が ErrConvergence かどうか
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrConvergence
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidInput}, args...)...)
}

// NaN と ±Inf を拒否する
func checkFinite(names []string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("%s must be finite, got %v", names[i], v)
		}
	}
	return nil
}

func (u UnitSystem) checkTemperature(name string, t float64) error {
	if err := checkFinite([]string{name}, t); err != nil {
		return err
	}
	tb := u.table()
	if t < tb.tMin || t > tb.tMax {
		if u == IP {
			return invalid("%s must be in range [%g, %g]°F, got %g", name, tb.tMin, tb.tMax, t)
		}
		return invalid("%s must be in range [%g, %g]°C, got %g", name, tb.tMin, tb.tMax, t)
	}
	return nil
}

func checkPressure(pressure float64) error {
	if err := checkFinite([]string{"pressure"}, pressure); err != nil {
		return err
	}
	if pressure <= 0 {
		return invalid("pressure must be positive, got %g", pressure)
	}
	return nil
}

func checkHumRatio(humRatio float64) error {
	if err := checkFinite([]string{"humidity ratio"}, humRatio); err != nil {
		return err
	}
	if humRatio < 0 {
		return invalid("humidity ratio cannot be negative, got %g", humRatio)
	}
	return nil
}

func checkRelHum(relHum float64) error {
	if err := checkFinite([]string{"relative humidity"}, relHum); err != nil {
		return err
	}
	if relHum < 0 || relHum > 1 {
		return invalid("relative humidity is outside range [0, 1], got %g", relHum)
	}
	return nil
}

func checkVapPres(vapPres float64) error {
	if err := checkFinite([]string{"vapor pressure"}, vapPres); err != nil {
		return err
	}
	if vapPres < 0 {
		return invalid("partial pressure of water vapor in moist air cannot be negative, got %g", vapPres)
	}
	return nil
}
