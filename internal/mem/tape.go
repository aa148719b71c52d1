package mem

import "errors"

// DefaultTapeSize is the classic cell count for a brainfuck tape.
const DefaultTapeSize = 30000

// ErrTapeSize is returned when asking for a tape without any cells.
var ErrTapeSize = errors.New("tape must have at least one cell")

// Tape implements a fixed length circular byte memory.
// Every index passed to a Tape method is wrapped modulo Len, so moving left
// from cell 0 lands on the last cell, and moving right from the last cell
// lands on cell 0.
type Tape struct {
	cells []byte
}

// NewTape allocates a zeroed tape of n cells.
func NewTape(n int) (*Tape, error) {
	if n < 1 {
		return nil, ErrTapeSize
	}
	return &Tape{cells: make([]byte, n)}, nil
}

// Len returns the number of cells.
func (t *Tape) Len() int { return len(t.cells) }

func (t *Tape) wrap(i int) int {
	n := len(t.cells)
	if i %= n; i < 0 {
		i += n
	}
	return i
}

// Move returns the index delta cells away from i, wrapped into [0, Len).
func (t *Tape) Move(i, delta int) int { return t.wrap(i + delta) }

// Load returns the value of cell i.
func (t *Tape) Load(i int) byte { return t.cells[t.wrap(i)] }

// Add adds delta to cell i with byte wrap around, returning the new value.
func (t *Tape) Add(i, delta int) byte {
	i = t.wrap(i)
	t.cells[i] += byte(delta)
	return t.cells[i]
}

// Stor stores values into consecutive cells starting at i, wrapping around
// the end of the tape as needed.
func (t *Tape) Stor(i int, values ...byte) {
	i = t.wrap(i)
	for len(values) > 0 {
		n := copy(t.cells[i:], values)
		values = values[n:]
		i = 0
	}
}

// LoadInto reads len(buf) consecutive cells starting at i, wrapping around
// the end of the tape as needed.
func (t *Tape) LoadInto(i int, buf []byte) {
	i = t.wrap(i)
	for len(buf) > 0 {
		n := copy(buf, t.cells[i:])
		buf = buf[n:]
		i = 0
	}
}

// Bytes returns a copy of all cells.
func (t *Tape) Bytes() []byte {
	return append([]byte(nil), t.cells...)
}
