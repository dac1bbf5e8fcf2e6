package main

import (
	"fmt"
	"io"

	"github.com/hhkbp2/go-logging"
)

const loggerName = "psychrolib"

// --log で指定できるログレベル
var logLevels = map[string]logging.LogLevelType{
	"DEBUG":    logging.LevelDebug,
	"INFO":     logging.LevelInfo,
	"WARN":     logging.LevelWarn,
	"ERROR":    logging.LevelError,
	"CRITICAL": logging.LevelCritical,
}

// io.Writer に書き出すログのストリーム
type writerStream struct {
	w io.Writer
}

func (s *writerStream) Tell() (int64, error) {
	return 0, nil
}

func (s *writerStream) Write(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

func (s *writerStream) Flush() error {
	return nil
}

func (s *writerStream) Close() error {
	return nil
}

/*
ログレベルを設定し、ログの出力先を w にする。

	Args:
		level: ログレベル DEBUG, INFO, WARN, ERROR or CRITICAL
		w: 出力先。CSV を標準出力に書くため通常は標準エラー出力

	Notes:
		既に取り付けたハンドラは外してから付け直す。
*/
func setupLogger(level string, w io.Writer) error {
	lv, ok := logLevels[level]
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}

	logger := logging.GetLogger(loggerName)
	for _, h := range logger.GetHandlers() {
		logger.RemoveHandler(h)
	}

	handler := logging.NewStreamHandler(loggerName, logging.LevelNotset, &writerStream{w: w})
	handler.SetFormatter(logging.NewStandardFormatter("%(levelname)s %(name)s: %(message)s", ""))
	logger.AddHandler(handler)

	return logger.SetLevel(lv)
}
