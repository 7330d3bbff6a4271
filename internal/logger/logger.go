// Package logger builds the zap logger shared by the server and the seeder.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON zap logger at the given level ("debug", "info", "warn", "error").
// When file is set, output goes to a rotating file instead of stdout.
func New(level, file string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	var writer zapcore.WriteSyncer
	if file != "" {
		writer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    100, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
			Compress:   true,
		})
	} else {
		writer = zapcore.Lock(os.Stdout)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, lvl)
	return zap.New(core, zap.AddCaller())
}
