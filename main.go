// Package main is the entry point for faktorial.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vadiminshakov/faktorial/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
