package loggers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// NewFileLogger returns a logger writing JSON entries at all levels to
// a rotated log file in dir. The file is named after name and the
// current time. dir is created if it does not exist.
func NewFileLogger(name, dir string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "could not create log directory %q",
			dir)
	}

	fileName := fmt.Sprintf("%s-%s.log", name,
		time.Now().UTC().Format("20060102T150405Z"))
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, fileName),
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     60, // days
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		w,
		zap.DebugLevel,
	)

	return zap.New(core), nil
}

// Tee returns a logger writing every entry to each of the loggers
func Tee(loggers ...*zap.Logger) *zap.Logger {
	cores := make([]zapcore.Core, len(loggers))
	for i := range loggers {
		cores[i] = loggers[i].Core()
	}
	return zap.New(zapcore.NewTee(cores...))
}
