// Package log sets up the zap logger of the bn command.
package log

import (
	"io"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/bnstr/internal/config"
)

// New returns a console logger at the configured level. It writes to a
// rotated file when one is configured and to w otherwise.
func New(cfg config.LogConfig, w io.Writer) *zap.Logger {
	core := zapcore.NewCore(getEncoder(), getWriteSyncer(cfg, w), getLevelEnabler(cfg.Level))

	return zap.New(core, zap.AddCaller())
}

// Init builds the logger with New and installs it as the zap global.
func Init(cfg config.LogConfig, w io.Writer) *zap.Logger {
	logger := New(cfg, w)
	zap.ReplaceGlobals(logger)

	return logger
}

func getEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(
		zapcore.EncoderConfig{
			TimeKey:          "ts",
			LevelKey:         "level",
			NameKey:          "logger",
			FunctionKey:      zapcore.OmitKey,
			MessageKey:       "msg",
			StacktraceKey:    "stacktrace",
			LineEnding:       zapcore.DefaultLineEnding,
			EncodeLevel:      cEncodeLevel,
			EncodeTime:       cEncodeTime,
			EncodeDuration:   zapcore.SecondsDurationEncoder,
			ConsoleSeparator: " ",
		})
}

func getWriteSyncer(cfg config.LogConfig, w io.Writer) zapcore.WriteSyncer {
	if cfg.File == "" {
		return zapcore.AddSync(w)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(cfg.Path, cfg.File),
		MaxSize:    20,
		MaxBackups: 3,
		MaxAge:     30,
	})
}

func getLevelEnabler(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func cEncodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(level.CapitalString())
}

func cEncodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05.000") + "]")
}
