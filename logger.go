package wasmbe

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance. It uses a no-op logger by
// default so callers that never configure logging pay no cost.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger. This must be called before any
// encoding starts; it is not safe to call concurrently with Encode.
func SetLogger(l *zap.Logger) {
	logger = l
}
