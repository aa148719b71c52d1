package main

import (
	"os"

	"github.com/jcorbin/bfi/internal/logio"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)

	cmd := newCommand(os.Stdin, os.Stdout, &log)
	cmd.SetErr(os.Stderr)

	err := cmd.Execute()
	log.ErrorIf(err)
	os.Exit(GetExitCode(err))
}
