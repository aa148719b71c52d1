package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jcorbin/bfi/internal/fileinput"
	"github.com/jcorbin/bfi/internal/logio"
	"github.com/jcorbin/bfi/internal/mem"
	"github.com/jcorbin/bfi/internal/panicerr"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type cliOptions struct {
	program string
	file    string
	cells   int
	eof     EOFPolicy
	tee     string
	config  string
	verbose bool
}

// newCommand builds the bfi command, running programs against the given
// standard streams; the logger receives diagnostics when verbose.
func newCommand(stdin io.Reader, stdout io.Writer, log *logio.Logger) *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "bfi (-i PROGRAM | -f FILE)",
		Short: "Simple brainfuck interpreter",
		Long: `Simple brainfuck interpreter.

Runs a brainfuck program given inline with --interpret, or read from a file
with --file, on a circular tape of --cells byte cells. Inline programs keep
only their ASCII characters; files are run as raw bytes.

The --eof value decides what a read instruction stores once input runs out:
"unchanged" leaves the cell alone; otherwise it is a number from -128 to 255,
or a character in single quotes like 'X' or one of the escapes '\0' '\a'
'\b' '\t' '\n' '\v' '\r' '\f' '\e'.

A --config TOML file may provide cells and eof defaults; eof takes the same
values as the flag, either quoted or as a bare number:

  cells = 4096
  eof = "unchanged"

With --tee, everything the program writes to stdout is also written to the
given file, which is created or truncated before the program runs.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, stdin, stdout, log)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)

	flags := cmd.Flags()
	flags.StringVarP(&opts.program, "interpret", "i", "", "code to interpret")
	flags.StringVarP(&opts.file, "file", "f", "", "path to brainfuck file")
	flags.IntVarP(&opts.cells, "cells", "c", mem.DefaultTapeSize, "number of cells in tape")
	flags.Var(&opts.eof, "eof", "value when out of input (default 0)")
	flags.StringVar(&opts.tee, "tee", "", "also write program output to this file")
	flags.StringVar(&opts.config, "config", "", "TOML file providing cells and eof defaults")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log run and halt to stderr")
	cmd.MarkFlagsMutuallyExclusive("interpret", "file")
	cmd.MarkFlagsOneRequired("interpret", "file")

	return cmd
}

func (opts *cliOptions) run(cmd *cobra.Command, stdin io.Reader, stdout io.Writer, log *logio.Logger) error {
	if opts.config != "" {
		cfg, err := loadConfig(opts.config)
		if err != nil {
			return WrapExitError(ExitUsage, "", err)
		}
		cfg.applyTo(opts, cmd.Flags().Changed)
	}
	if opts.cells < 1 {
		return WrapExitError(ExitUsage, fmt.Sprintf("invalid cells %v", opts.cells), ErrCells)
	}

	src, err := opts.source(cmd)
	if err != nil {
		return WrapExitError(ExitUsage, "couldn't get file", err)
	}

	vmOpts := []VMOption{
		WithProgram(src.Code),
		WithCells(opts.cells),
		WithEOF(opts.eof),
		WithInput(stdin),
		WithOutput(stdout),
	}
	var debugf func(mess string, args ...interface{})
	if opts.verbose && log != nil {
		debugf = log.Leveledf("DEBUG")
		vmOpts = append(vmOpts, WithLogf(debugf))
	}

	if opts.tee != "" {
		f, err := os.Create(opts.tee)
		if err != nil {
			return WrapExitError(ExitUsage, "couldn't create tee file", err)
		}
		defer f.Close()
		vmOpts = append(vmOpts, WithTee(f))
	}

	if err := New(vmOpts...).Run(); err != nil {
		var loopErr *LoopError
		if errors.As(err, &loopErr) {
			return WrapExitError(ExitFailure, src.Locate(loopErr.Pos).String(), err)
		}
		if stack := panicerr.PanicStack(err); stack != "" {
			if debugf != nil {
				debugf("panic stack: %s", stack)
			}
			return WrapExitError(ExitFailure, "internal error", err)
		}
		return WrapExitError(ExitFailure, "", err)
	}
	return nil
}

func (opts *cliOptions) source(cmd *cobra.Command) (fileinput.Source, error) {
	if cmd.Flags().Changed("interpret") {
		return fileinput.FromString("<interpret>", opts.program), nil
	}
	return fileinput.ReadFile(opts.file)
}
