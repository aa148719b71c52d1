package main

import (
	"fmt"

	"github.com/jcorbin/bfi/internal/mem"
)

// VM implements a brainfuck machine. It owns the program, a tape of byte
// cells, and the two pointers into them; nothing is shared, so a VM must only
// be driven by one goroutine at a time.
type VM struct {
	ioCore

	// The program is an immutable sequence of instruction bytes. The
	// instruction pointer ranges over [0, len(prog)]; reaching len(prog) is
	// the only way to halt normally.
	prog []byte
	ip   int

	// The tape is allocated at the start of Run with cells cells, unless some
	// option already provided one; the data pointer always lies in
	// [0, tape.Len()).
	cells int
	tape  *mem.Tape
	dp    int

	eof EOFPolicy
}

// Tape returns a copy of the VM's tape cells, or nil before Run.
func (vm *VM) Tape() []byte {
	if vm.tape == nil {
		return nil
	}
	return vm.tape.Bytes()
}

// DataPointer returns the index of the current tape cell.
func (vm *VM) DataPointer() int { return vm.dp }

// InstructionPointer returns the index of the next instruction to execute,
// which equals the program length after a normal halt.
func (vm *VM) InstructionPointer() int { return vm.ip }

func (vm *VM) cell() byte { return vm.tape.Load(vm.dp) }

//// Instructions

// Symbol   Name         Function
//    +     increment    add 1 to the current cell, wrapping 255 to 0
func (vm *VM) inc() { vm.tape.Add(vm.dp, 1) }

// Symbol   Name         Function
//    -     decrement    subtract 1 from the current cell, wrapping 0 to 255
func (vm *VM) dec() { vm.tape.Add(vm.dp, -1) }

// Symbol   Name         Function
//    >     right        move the data pointer right, wrapping to cell 0
func (vm *VM) right() { vm.dp = vm.tape.Move(vm.dp, 1) }

// Symbol   Name         Function
//    <     left         move the data pointer left, wrapping to the last cell
func (vm *VM) left() { vm.dp = vm.tape.Move(vm.dp, -1) }

// Symbol   Name         Function
//    [     loop         if the current cell is 0, jump to the matching ]
func (vm *VM) loop() {
	if vm.cell() == 0 {
		vm.ip = vm.matchForward(vm.ip)
	}
}

// Symbol   Name         Function
//    ]     again        if the current cell is not 0, jump to the matching [
func (vm *VM) again() {
	if vm.cell() != 0 {
		vm.ip = vm.matchBackward(vm.ip)
	}
}

// Symbol   Name         Function
//    ,     read         read one input byte into the current cell; at the end
//                       of input, the EOF policy decides the cell's value
func (vm *VM) read() { vm.tape.Stor(vm.dp, vm.readByte(vm.cell())) }

// Symbol   Name         Function
//    .     write        write the current cell as one output byte
func (vm *VM) write() { vm.writeByte(vm.cell()) }

// Since the instruction pointer advances after every instruction, a taken
// jump lands on the partner bracket itself, and execution continues just
// past it.

// matchForward finds the ] matching the [ at at, by nesting depth.
func (vm *VM) matchForward(at int) int {
	depth := 0
	for i := at + 1; i < len(vm.prog); i++ {
		switch vm.prog[i] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	vm.halt(&LoopError{Pos: at, Op: '['})
	return at
}

// matchBackward finds the [ matching the ] at at, by nesting depth.
func (vm *VM) matchBackward(at int) int {
	depth := 0
	for i := at - 1; i >= 0; i-- {
		switch vm.prog[i] {
		case ']':
			depth++
		case '[':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	vm.halt(&LoopError{Pos: at, Op: ']'})
	return at
}

// Every byte maps to an instruction; all but the eight above are no-ops.
var vmCodeTable [256]func(vm *VM)

var vmCodeNames [256]string

func init() {
	for _, code := range []struct {
		b    byte
		name string
		op   func(vm *VM)
	}{
		{'+', "inc", (*VM).inc},
		{'-', "dec", (*VM).dec},
		{'>', "right", (*VM).right},
		{'<', "left", (*VM).left},
		{'[', "loop", (*VM).loop},
		{']', "again", (*VM).again},
		{',', "read", (*VM).read},
		{'.', "write", (*VM).write},
	} {
		vmCodeTable[code.b] = code.op
		vmCodeNames[code.b] = code.name
	}
	for b, op := range vmCodeTable {
		if op == nil {
			vmCodeTable[b] = (*VM).nop
			vmCodeNames[b] = "nop"
		}
	}
}

func (vm *VM) nop() {}

func (vm *VM) step() {
	vmCodeTable[vm.prog[vm.ip]](vm)
	vm.ip++
}

func (vm *VM) init() {
	if vm.tape == nil {
		tape, err := mem.NewTape(vm.cells)
		if err != nil {
			vm.halt(fmt.Errorf("cannot allocate %v cells: %w", vm.cells, err))
		}
		vm.tape = tape
	}
	vm.dp = vm.tape.Move(vm.dp, 0)
}

func (vm *VM) run() {
	vm.init()
	vm.logf("run %v program bytes on %v cells, eof:%v", len(vm.prog), vm.tape.Len(), vm.eof)
	for vm.ip < len(vm.prog) {
		vm.step()
	}
	vm.halt(nil)
}
