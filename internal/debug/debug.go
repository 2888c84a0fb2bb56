package debug

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "PIN_DEBUG"

var (
	once   sync.Once
	logger *zap.Logger
)

// Logger returns the process-wide debug logger. It is built on first use
// from PIN_DEBUG and never changes afterwards.
func Logger() *zap.Logger {
	once.Do(func() {
		logger = New(os.Getenv(EnvVar))
	})
	return logger
}

// New builds a debug logger writing to path. An empty path yields a no-op
// logger.
func New(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 2,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, zap.DebugLevel)
	return zap.New(core).Named("pin")
}
