package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jcorbin/bfi/internal/byteio"
	"github.com/spf13/pflag"
)

// EOFPolicy decides the value a read instruction leaves in the current cell
// once input is exhausted: either a fixed byte, or the cell's prior value.
// The zero EOFPolicy stores 0.
type EOFPolicy struct {
	unchanged bool
	value     byte
}

// EOFUnchanged leaves the current cell as it was.
var EOFUnchanged = EOFPolicy{unchanged: true}

// EOFByte stores b into the current cell.
func EOFByte(b byte) EOFPolicy { return EOFPolicy{value: b} }

// Apply returns the value to store in place of cell.
func (p EOFPolicy) Apply(cell byte) byte {
	if p.unchanged {
		return cell
	}
	return p.value
}

// Byte returns the fixed byte value, and false if the policy is unchanged.
func (p EOFPolicy) Byte() (byte, bool) { return p.value, !p.unchanged }

// String renders the policy in a form accepted by ParseEOF.
func (p EOFPolicy) String() string {
	if p.unchanged {
		return "unchanged"
	}
	return strconv.Itoa(int(p.value))
}

// ErrEOFSyntax is returned by ParseEOF for text outside its grammar.
var ErrEOFSyntax = errors.New(`eof must be "unchanged", a number between -128 and 255, or an (escaped) ascii character in 'single quotes'`)

// ParseEOF parses an end-of-input policy from text, trying in order:
//   - the word "unchanged", in any case
//   - an unsigned decimal byte, e.g. "88" or "255"
//   - a signed decimal byte, reinterpreted as its bit pattern, e.g. "-1" is 255
//   - a single byte in single quotes, e.g. 'X'
//   - an escape in single quotes, one of '\0' '\a' '\b' '\t' '\n' '\v' '\r' '\f' '\e'
func ParseEOF(s string) (EOFPolicy, error) {
	if strings.EqualFold(s, "unchanged") {
		return EOFUnchanged, nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return EOFByte(byte(n)), nil
	}
	if n, err := strconv.ParseInt(s, 10, 8); err == nil {
		return EOFByte(byte(int8(n))), nil
	}
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		switch lit := s[1 : len(s)-1]; {
		case len(lit) == 1:
			return EOFByte(lit[0]), nil
		case len(lit) == 2 && lit[0] == '\\':
			if b, ok := byteio.Escape(lit[1]); ok {
				return EOFByte(b), nil
			}
		}
	}
	return EOFPolicy{}, fmt.Errorf("invalid eof %q: %w", s, ErrEOFSyntax)
}

var _ pflag.Value = (*EOFPolicy)(nil)

// Set implements pflag.Value.
func (p *EOFPolicy) Set(s string) error {
	policy, err := ParseEOF(s)
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// Type implements pflag.Value.
func (p *EOFPolicy) Type() string { return "eof" }
