package main

import (
	"io"

	"github.com/jcorbin/bfi/internal/byteio"
	"github.com/jcorbin/bfi/internal/flushio"
)

type ioCore struct {
	in  io.ByteReader
	out flushio.WriteFlusher

	logfn func(mess string, args ...interface{})
}

func (ioc ioCore) logf(mess string, args ...interface{}) {
	if ioc.logfn != nil {
		ioc.logfn(mess, args...)
	}
}

// halt stops the VM by panicking with a haltError, which Run recovers;
// halt(nil) is a normal halt. Any output is flushed first.
func (vm *VM) halt(err error) {
	func() {
		// ignore any panics while trying to flush output
		defer func() { recover() }()
		if vm.out == nil {
			return
		}
		if ferr := vm.out.Flush(); ferr != nil && err == nil {
			err = &IOError{Pos: vm.ip, Op: "flush", Err: ferr}
		}
	}()

	if err == nil {
		vm.logf("halt @%v", vm.ip)
	} else {
		vm.logf("halt @%v error: %v", vm.ip, err)
	}
	panic(haltError{err})
}

// readByte returns the next input byte, or the EOF policy's value for cell
// once input is exhausted. Output is flushed before blocking on input.
func (vm *VM) readByte(cell byte) byte {
	if err := vm.out.Flush(); err != nil {
		vm.halt(&IOError{Pos: vm.ip, Op: "write", Err: err})
	}
	b, err := vm.in.ReadByte()
	if err == nil {
		return b
	}
	if byteio.IsEnd(err) {
		return vm.eof.Apply(cell)
	}
	vm.halt(&IOError{Pos: vm.ip, Op: "read", Err: err})
	return cell
}

func (vm *VM) writeByte(b byte) {
	if err := flushio.WriteByte(vm.out, b); err != nil {
		vm.halt(&IOError{Pos: vm.ip, Op: "write", Err: err})
	}
}
