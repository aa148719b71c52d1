package main

import (
	"fmt"

	"github.com/jcorbin/bfi/internal/mem"
)

// ErrCells is returned by Run when the VM has been given fewer than one cell.
var ErrCells = mem.ErrTapeSize

// LoopError reports a loop instruction whose jump found no matching bracket.
type LoopError struct {
	Pos int  // position of the offending instruction
	Op  byte // '[' or ']'
}

func (le *LoopError) Error() string {
	return fmt.Sprintf("unmatched %q at %v", rune(le.Op), le.Pos)
}

// IOError reports the failure of the input or output stream underlying a
// read or write instruction.
type IOError struct {
	Pos int    // position of the instruction, or the program length when flushing at halt
	Op  string // "read" "write" or "flush"
	Err error
}

func (ioe *IOError) Error() string {
	return fmt.Sprintf("%v failed at %v: %v", ioe.Op, ioe.Pos, ioe.Err)
}

func (ioe *IOError) Unwrap() error { return ioe.Err }

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }
