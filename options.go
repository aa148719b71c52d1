package main

import (
	"bytes"
	"io"

	"github.com/jcorbin/bfi/internal/byteio"
	"github.com/jcorbin/bfi/internal/flushio"
	"github.com/jcorbin/bfi/internal/mem"
)

// VMOption configures a VM before it runs.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, applied in order.
func VMOptions(opts ...VMOption) VMOption {
	var all vmOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case vmOptions:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	return all
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
	withCells(mem.DefaultTapeSize),
	withEOF(EOFByte(0)),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type programOption []byte
type cellsOption int
type eofOption EOFPolicy
type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

func withProgram(prog []byte) programOption { return programOption(prog) }
func withCells(n int) cellsOption           { return cellsOption(n) }
func withEOF(p EOFPolicy) eofOption         { return eofOption(p) }
func withInput(r io.Reader) inputOption     { return inputOption{r} }
func withOutput(w io.Writer) outputOption   { return outputOption{w} }
func withTee(w io.Writer) teeOption         { return teeOption{w} }

func (prog programOption) apply(vm *VM) {
	vm.prog = append([]byte(nil), prog...)
	vm.ip = 0
}

func (n cellsOption) apply(vm *VM) {
	vm.cells = int(n)
	vm.tape = nil
	vm.dp = 0
}

func (p eofOption) apply(vm *VM) {
	vm.eof = EOFPolicy(p)
}

func (i inputOption) apply(vm *VM) {
	vm.in = byteio.NewReader(i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, flushio.NewWriteFlusher(o.Writer))
}
