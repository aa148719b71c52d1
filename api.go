package main

import (
	"errors"
	"io"

	"github.com/jcorbin/bfi/internal/panicerr"
)

// New creates a VM: by default it has an empty program, 30000 cells, stores 0
// at end of input, reads no input, and discards its output.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run executes the program until the instruction pointer runs off its end,
// returning nil in that case. Otherwise it returns a *LoopError for an
// unmatched bracket, an *IOError for an input or output failure, or an error
// wrapping ErrCells for a cell count under 1.
//
// Only io.EOF and io.ErrUnexpectedEOF from the input count as end of input and
// apply the EOF policy; any other read error halts with an *IOError rather
// than being treated as end of input.
func (vm *VM) Run() error {
	err := panicerr.Recover("VM", func() error {
		vm.run()
		return nil
	})
	var halted haltError
	if errors.As(err, &halted) {
		return halted.error
	}
	return err
}

func WithProgram(prog []byte) VMOption       { return withProgram(prog) }
func WithProgramString(prog string) VMOption { return withProgram([]byte(prog)) }
func WithCells(n int) VMOption               { return withCells(n) }
func WithEOF(p EOFPolicy) VMOption           { return withEOF(p) }
func WithInput(r io.Reader) VMOption         { return withInput(r) }
func WithOutput(w io.Writer) VMOption        { return withOutput(w) }
func WithTee(w io.Writer) VMOption           { return withTee(w) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
