package psychrolib

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// solver はニュートン法・二分法に共通する収束条件
type solver struct {
	tol     float64 // 解の変化量の許容値
	maxIter int     // 最大反復回数
}

func (u UnitSystem) solver() solver {
	return solver{tol: u.table().tol, maxIter: maxIterCount}
}

/*
ニュートン法により f(x) = 0 を解く。

	Args:
		name: エラーメッセージに使う関数名
		f: 目的関数
		x0: 初期値
		lo, hi: 解の存在範囲。各反復の推定値はこの範囲に丸める。
		step: x における数値微分の刻み。負の値は後退差分になる。

	Returns:
		解。収束しなかった場合は *ConvergenceError

	Notes:
		推定値の変化量が tol 以下になった時点で収束とみなす。
*/
func (s solver) newton(
	name string,
	f func(float64) float64,
	x0, lo, hi float64,
	step func(x float64) float64,
) (float64, error) {
	x := x0
	for i := 0; i < s.maxIter; i++ {
		fx := f(x)
		df := fd.Derivative(f, x, &fd.Settings{
			Formula:     fd.Forward,
			Step:        step(x),
			OriginKnown: true,
			OriginValue: fx,
		})

		next := x - fx/df
		if df == 0 || math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, &ConvergenceError{Func: name, Iterations: i + 1, Last: x}
		}
		next = math.Min(math.Max(next, lo), hi)

		if math.Abs(next-x) <= s.tol {
			return next, nil
		}
		x = next
	}
	return 0, &ConvergenceError{Func: name, Iterations: s.maxIter, Last: x}
}

/*
二分法により単調増加関数 f の f(x) = 0 を [lo, hi] で解く。

	Returns:
		区間幅が tol 以下になったときの中点。収束しなかった場合は *ConvergenceError
*/
func (s solver) bisect(name string, f func(float64) float64, lo, hi float64) (float64, error) {
	x := (lo + hi) / 2
	for i := 0; hi-lo > s.tol; i++ {
		if i >= s.maxIter {
			return 0, &ConvergenceError{Func: name, Iterations: i, Last: x}
		}

		if f(x) > 0 {
			hi = x
		} else {
			lo = x
		}
		x = (lo + hi) / 2
	}
	return x, nil
}
