package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"

	"psychrolib/psychrolib"
)

/*
空気状態の一括計算を実行する

	Args:
		conf: 計算条件
		stdout: 出力ファイルが指定されない場合の書き出し先

	Notes:
		いずれかの行で計算に失敗した場合は何も書き出さずにエラーを返す。
*/
func run(conf Config, stdout io.Writer) error {
	logger := logging.GetLogger(loggerName)

	units, err := psychrolib.ParseUnitSystem(conf.Units)
	if err != nil {
		return err
	}
	kind, err := psychrolib.ParseHumidityKind(conf.Humidity)
	if err != nil {
		return err
	}

	// 既定の大気圧
	pressure := conf.Pressure
	if pressure <= 0 {
		pressure, err = units.StandardAtmPressure(conf.Altitude)
		if err != nil {
			return err
		}
	}
	logger.Infof("units=%s humidity=%s pressure=%g", units, kind, pressure)

	log.Printf("状態量CSVファイルの読み込み開始")
	rows, err := readStates(conf.InputPath)
	if err != nil {
		return err
	}

	tdb, hum, p, err := stateVectors(rows, pressure)
	if err != nil {
		return fmt.Errorf("%s: %w", conf.InputPath, err)
	}

	log.Printf("空気状態の計算開始 (%d rows)", len(rows))
	res, err := units.CalcPsychrometricsVec(kind, tdb, hum, p)
	if err != nil {
		return fmt.Errorf("%s: %w", conf.InputPath, err)
	}
	for i := 0; i < res.Len(); i++ {
		logger.Debugf("row %d: %+v", i, res.At(i))
	}

	if conf.OutputPath == "" {
		if err := writeResults(stdout, res); err != nil {
			return err
		}
	} else {
		log.Printf("CSV保存: %s", conf.OutputPath)
		if err := writeResultsFile(conf.OutputPath, res); err != nil {
			return err
		}
	}

	meanRelHum, maxEnthalpy := summarize(res)
	log.Printf("rows: %d, mean relative humidity: %.4f, max enthalpy: %g", res.Len(), meanRelHum, maxEnthalpy)
	return nil
}

func main() {
	log.SetFlags(log.Lmicroseconds)

	// コマンドライン引数の処理
	parser := argparse.NewParser("psychrolib", "Calculates psychrometric properties of moist air from a CSV of states")

	input := parser.String("i", "input", &argparse.Options{
		Help: "状態量CSVファイルのパス (列: tdb, humidity, pressure)"})

	output := parser.String("o", "output", &argparse.Options{
		Help: "保存ファイルパス。省略時は標準出力"})

	units := parser.Selector("", "units", []string{"SI", "IP"}, &argparse.Options{
		Help: "単位系 SI(デフォルト) or IP"})

	humidity := parser.Selector("", "humidity", []string{"relhum", "twetbulb", "tdewpoint", "humratio"}, &argparse.Options{
		Help: "humidity列の種類 相対湿度=relhum(デフォルト), 湿球温度=twetbulb, 露点温度=tdewpoint, 絶対湿度=humratio"})

	pressure := parser.Float("", "pressure", &argparse.Options{
		Help: "pressure列が空欄の行の大気圧, psi [IP] or Pa [SI]"})

	altitude := parser.Float("", "altitude", &argparse.Options{
		Help: "標高, ft [IP] or m [SI]。--pressure省略時に標準大気の気圧を求める"})

	configPath := parser.String("", "config", &argparse.Options{
		Help: "計算条件YAMLファイルのパス"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Help: "ログレベルの設定 (Default=ERROR)"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	conf, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	conf = conf.override(Config{
		InputPath:  *input,
		OutputPath: *output,
		Units:      *units,
		Humidity:   *humidity,
		Pressure:   *pressure,
		Altitude:   *altitude,
		LogLevel:   *logLevel,
	})
	if conf.InputPath == "" {
		fmt.Print(parser.Usage("--input or `input` in the config file is required"))
		os.Exit(2)
	}
	if err := setupLogger(conf.LogLevel, os.Stderr); err != nil {
		log.Fatal(err)
	}

	startTime := time.Now()
	if err := run(conf, os.Stdout); err != nil {
		log.Fatal(err)
	}
	log.Printf("elapsed_time: %v [sec]", time.Since(startTime).Seconds())
}
