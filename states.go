package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"psychrolib/psychrolib"
)

// 入力 CSV の 1 行
type StateRow struct {
	TDryBulb float64 `csv:"tdb"`      // 乾球温度, °F [IP] or °C [SI]
	Humidity float64 `csv:"humidity"` // 湿度。種類は --humidity で指定
	Pressure string  `csv:"pressure"` // 大気圧, psi [IP] or Pa [SI]。空欄は既定値
}

// 出力 CSV の 1 行
type ResultRow struct {
	TDryBulb           float64 `csv:"tdb"`
	HumRatio           float64 `csv:"hum_ratio"`
	TWetBulb           float64 `csv:"twb"`
	TDewPoint          float64 `csv:"tdp"`
	RelHum             float64 `csv:"rel_hum"`
	VapPres            float64 `csv:"vap_pres"`
	MoistAirEnthalpy   float64 `csv:"enthalpy"`
	MoistAirVolume     float64 `csv:"volume"`
	DegreeOfSaturation float64 `csv:"degree_of_saturation"`
}

/*
状態量の CSV ファイルを読み込む。

	Args:
		path: CSV ファイルのパス。列は tdb, humidity, pressure (省略可)

	Returns:
		行のスライス
*/
func readStates(path string) ([]StateRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []StateRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no rows", path)
	}
	return rows, nil
}

/*
行を列ベクトルに並べ替える。

	Args:
		rows: 入力行, [n]
		pressure: pressure 列が空欄の行に使う大気圧

	Returns:
		乾球温度, 湿度, 大気圧, [n]
*/
func stateVectors(rows []StateRow, pressure float64) (*mat.VecDense, *mat.VecDense, *mat.VecDense, error) {
	n := len(rows)
	tdb := mat.NewVecDense(n, nil)
	hum := mat.NewVecDense(n, nil)
	p := mat.NewVecDense(n, nil)

	for i, row := range rows {
		// ヘッダが 1 行目なので i 番目のデータは i+2 行目
		line := i + 2

		tdb.SetVec(i, row.TDryBulb)
		hum.SetVec(i, row.Humidity)

		if s := strings.TrimSpace(row.Pressure); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("line %d: %w: pressure %q (%v)", line, psychrolib.ErrInvalidInput, row.Pressure, err)
			}
			p.SetVec(i, v)
		} else {
			p.SetVec(i, pressure)
		}
	}
	return tdb, hum, p, nil
}

func resultRows(v *psychrolib.PsychrometricsVec) []ResultRow {
	rows := make([]ResultRow, v.Len())
	for i := range rows {
		s := v.At(i)
		rows[i] = ResultRow{
			TDryBulb:           s.TDryBulb,
			HumRatio:           s.HumRatio,
			TWetBulb:           s.TWetBulb,
			TDewPoint:          s.TDewPoint,
			RelHum:             s.RelHum,
			VapPres:            s.VapPres,
			MoistAirEnthalpy:   s.MoistAirEnthalpy,
			MoistAirVolume:     s.MoistAirVolume,
			DegreeOfSaturation: s.DegreeOfSaturation,
		}
	}
	return rows
}

// 計算結果を CSV で書き出す
func writeResults(w io.Writer, v *psychrolib.PsychrometricsVec) error {
	rows := resultRows(v)
	return gocsv.Marshal(&rows, w)
}

// 計算結果を CSV ファイルに保存する。閉じる際の書き込みエラーも返す。
func writeResultsFile(path string, v *psychrolib.PsychrometricsVec) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeResults(file, v); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// 相対湿度の平均値とエンタルピーの最大値
func summarize(v *psychrolib.PsychrometricsVec) (float64, float64) {
	meanRelHum := stat.Mean(v.RelHum.RawVector().Data, nil)
	maxEnthalpy := floats.Max(v.MoistAirEnthalpy.RawVector().Data)
	return meanRelHum, maxEnthalpy
}
