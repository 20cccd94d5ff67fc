package exception

import (
	"runtime/debug"

	"github.com/mezonai/wavesgo/logx"
	"github.com/mezonai/wavesgo/monitoring"
)

// SafeGo runs fn in a goroutine, logging and counting a panic instead of crashing.
func SafeGo(name string, fn func()) {
	go func() {
		defer Recover(name)
		fn()
	}()
}

// Recover must be deferred. It swallows a panic after logging it with its stack.
func Recover(name string) {
	if r := recover(); r != nil {
		monitoring.IncreasePanicCount()
		logx.Error("PANIC", "Panic in: ", name, " ", r, " ", string(debug.Stack()))
	}
}
