package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config は計算条件。YAML ファイルで与え、コマンドライン引数で上書きする。
type Config struct {
	InputPath  string  `yaml:"input"`    // 入力 CSV のパス
	OutputPath string  `yaml:"output"`   // 出力 CSV のパス。空なら標準出力
	Units      string  `yaml:"units"`    // 単位系 SI or IP
	Humidity   string  `yaml:"humidity"` // 入力 CSV の humidity 列の種類
	Pressure   float64 `yaml:"pressure"` // 既定の大気圧, psi [IP] or Pa [SI]。0 なら標高から求める
	Altitude   float64 `yaml:"altitude"` // 標高, ft [IP] or m [SI]
	LogLevel   string  `yaml:"log"`      // ログレベル
}

// 既定値
var defaultConfig = Config{
	Units:    "SI",
	Humidity: "relhum",
	LogLevel: "ERROR",
}

/*
YAML ファイルから計算条件を読み込む。

	Args:
		path: YAML ファイルのパス。空の場合は既定値を返す。

	Notes:
		ファイルに書かれていない項目は既定値のまま。
*/
func loadConfig(path string) (Config, error) {
	conf := defaultConfig
	if path == "" {
		return conf, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &conf); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// override はゼロ値でない項目を上書きした設定を返す。
func (c Config) override(o Config) Config {
	if o.InputPath != "" {
		c.InputPath = o.InputPath
	}
	if o.OutputPath != "" {
		c.OutputPath = o.OutputPath
	}
	if o.Units != "" {
		c.Units = o.Units
	}
	if o.Humidity != "" {
		c.Humidity = o.Humidity
	}
	if o.Pressure != 0 {
		c.Pressure = o.Pressure
	}
	if o.Altitude != 0 {
		c.Altitude = o.Altitude
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	return c
}
