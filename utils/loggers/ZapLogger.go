// Package loggers provides the structured logger used by the gymenv
// command and server
package loggers

import (
	"fmt"
	"log"

	"go.uber.org/zap"
)

var (
	zapLogger      *zap.Logger
	zapLoggerDebug bool
)

// ZapLogger returns the process logger, creating it on first use. A
// development logger is created if debug is true, and a production
// logger otherwise. The logger is recreated when debug differs from
// the previous call. If no logger can be created, a no-op logger is
// returned.
func ZapLogger(debug bool) *zap.Logger {
	if zapLogger != nil && zapLoggerDebug == debug {
		return zapLogger
	}
	ZapLoggerSync()

	zapLoggerDebug = debug
	var err error
	if debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		// Fall back to standard logging
		log.Println(fmt.Errorf("unable to create Zap logger: %w", err))
		zapLogger = zap.NewNop()
	}

	return zapLogger
}

// ZapLoggerSync flushes the process logger
func ZapLoggerSync() {
	if zapLogger != nil {
		// Errors from Sync on stdout/stderr are expected, see
		// https://github.com/uber-go/zap/issues/880
		_ = zapLogger.Sync()
	}
}
