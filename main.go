package main

import (
	"os"
	"runtime/debug"

	"github.com/mezonai/wavesgo/cmd"
	"github.com/mezonai/wavesgo/logx"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			_ = logx.Errorf("waves cli crashed: %v\n%s", r, debug.Stack())
			code = 2
		}
	}()
	return cmd.Execute()
}
