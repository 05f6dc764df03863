package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
)

func init() {
	// GLFW and the surface must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
