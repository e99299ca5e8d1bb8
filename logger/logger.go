package logger

import (
	"go.uber.org/zap"
)

var Log *zap.Logger

func Init() {
	var err error
	Log, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
}

// Nop swaps in a no-op logger, used by tests.
func Nop() {
	Log = zap.NewNop()
}
