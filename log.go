package ttcnplus

/*
log.go contains the package logger.
*/

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger     atomic.Pointer[zap.Logger]
	loggerOnce sync.Once
)

/*
Logger returns the package logger. A no-op logger is used until
[SetLogger] is called.
*/
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		logger.CompareAndSwap(nil, zap.NewNop())
	})
	return logger.Load()
}

/*
SetLogger replaces the package logger. A nil input restores the no-op
logger.
*/
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
