package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/bfi/internal/byteio"
)

// vmDumper writes a human readable snapshot of a VM: its pointers, and every
// row of tape cells that holds a non-zero value or the data pointer.
type vmDumper struct {
	vm  *VM
	out io.Writer

	rowSize int
}

func (dump vmDumper) dump() {
	vm := dump.vm
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  prog: %v/%v", vm.ip, len(vm.prog))
	if vm.ip < len(vm.prog) {
		b := vm.prog[vm.ip]
		fmt.Fprintf(dump.out, " %v %q", vmCodeNames[b], rune(b))
	}
	fmt.Fprintf(dump.out, "\n")
	fmt.Fprintf(dump.out, "  eof: %v\n", vm.eof)
	if vm.tape == nil {
		fmt.Fprintf(dump.out, "  tape: <nil>\n")
		return
	}
	fmt.Fprintf(dump.out, "  dp: %v %v\n", vm.dp, formatCell(vm.cell()))
	dump.dumpTape()
}

func (dump vmDumper) dumpTape() {
	tape := dump.vm.tape
	if dump.rowSize == 0 {
		dump.rowSize = 16
	}
	width := len(fmt.Sprint(tape.Len()))

	row := make([]byte, dump.rowSize)
	var sb strings.Builder
	for base := 0; base < tape.Len(); base += dump.rowSize {
		n := dump.rowSize
		if rem := tape.Len() - base; n > rem {
			n = rem
		}
		tape.LoadInto(base, row[:n])

		hasDP := base <= dump.vm.dp && dump.vm.dp < base+n
		if !hasDP && isZero(row[:n]) {
			continue
		}

		sb.Reset()
		fmt.Fprintf(&sb, "  @%*v", width, base)
		for i, b := range row[:n] {
			if base+i == dump.vm.dp {
				fmt.Fprintf(&sb, " [%02x]", b)
			} else {
				fmt.Fprintf(&sb, " %02x", b)
			}
		}
		sb.WriteByte('\n')
		io.WriteString(dump.out, sb.String())
	}
}

func formatCell(b byte) string {
	if name := byteio.Name(b); name != "" {
		return fmt.Sprintf("%v %v", b, name)
	}
	if b < 0x80 {
		return fmt.Sprintf("%v %q", b, rune(b))
	}
	return fmt.Sprint(b)
}

func isZero(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}
	return true
}
