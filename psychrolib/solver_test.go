package psychrolib

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewton(t *testing.T) {
	s := solver{tol: 1e-10, maxIter: maxIterCount}
	step := func(float64) float64 { return 1e-7 }

	x, err := s.newton("sqrt2", func(x float64) float64 { return x*x - 2 }, 1, 0, 10, step)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-6)
}

// 立方根はニュートン法で発散する（反復のたびに符号が反転して倍になる）
func TestNewton_Diverges(t *testing.T) {
	s := solver{tol: 1e-9, maxIter: maxIterCount}
	step := func(float64) float64 { return 1e-6 }

	x, err := s.newton("cbrt", math.Cbrt, 1, -100, 200, step)
	assert.Equal(t, 0.0, x)
	require.ErrorIs(t, err, ErrConvergence)

	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "cbrt", ce.Func)
	assert.Equal(t, maxIterCount, ce.Iterations)
	assert.False(t, errors.Is(err, ErrInvalidInput))
}

func TestNewton_ZeroDerivative(t *testing.T) {
	s := solver{tol: 1e-9, maxIter: maxIterCount}
	step := func(float64) float64 { return 1e-3 }

	_, err := s.newton("flat", func(float64) float64 { return 1 }, 0, -1, 1, step)
	assert.ErrorIs(t, err, ErrConvergence)
}

func TestBisect(t *testing.T) {
	s := solver{tol: 1e-9, maxIter: maxIterCount}

	x, err := s.bisect("line", func(x float64) float64 { return x - 0.3 }, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, x, 1e-9)

	s.maxIter = 5
	_, err = s.bisect("line", func(x float64) float64 { return x - 0.3 }, 0, 1)
	assert.ErrorIs(t, err, ErrConvergence)
}

// 反復回数の上限が足りない場合、途中の値を返さずにエラーとする
func TestSolvers_IterationBudget(t *testing.T) {
	starved := solver{tol: SI.Tolerance(), maxIter: 1}

	_, err := SI.tDewPointFromVapPres(starved, 25, 1584.608235071814)
	assert.ErrorIs(t, err, ErrConvergence)

	_, err = SI.tWetBulbFromHumRatio(starved, 25, 0.01, 101325)
	assert.ErrorIs(t, err, ErrConvergence)

	_, err = SI.tSatAirFromEnthalpy(starved, 50321.958802184665, 101325)
	assert.ErrorIs(t, err, ErrConvergence)

	// 同じ入力でも通常の上限なら収束する
	_, err = SI.tWetBulbFromHumRatio(SI.solver(), 25, 0.01, 101325)
	assert.NoError(t, err)
}

func TestConvergenceError_Message(t *testing.T) {
	err := &ConvergenceError{Func: "TDewPointFromVapPres", Iterations: 100, Last: 12.5}
	assert.Equal(t, "psychrolib: convergence not reached in TDewPointFromVapPres after 100 iterations (last iterate 12.5)", err.Error())
}
