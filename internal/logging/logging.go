// Package logging sets up the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Initialize installs a console logger at the given level as the zap
// global, so packages can use zap.S().Named(...) without plumbing a
// logger through every constructor.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		lvl,
	)

	zap.ReplaceGlobals(zap.New(core))
	return nil
}

// Sync flushes buffered log entries; called on exit.
func Sync() {
	_ = zap.L().Sync()
}
