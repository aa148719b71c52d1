package fileinput

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"
)

// Location names a line and column in a Source.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col) }

// Source holds a program's bytes along with a name for user feedback.
type Source struct {
	Name string
	Code []byte
}

// FromString builds a Source from inline program text, keeping only its
// ASCII characters; every other rune, including invalid UTF-8, is dropped.
func FromString(name, s string) Source {
	code := make([]byte, 0, len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			code = append(code, byte(r))
		}
	}
	return Source{Name: name, Code: code}
}

// ReadFile loads a Source from the named file, keeping its bytes unfiltered.
func ReadFile(path string) (Source, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return Source{}, err
	}
	return Source{Name: path, Code: code}, nil
}

// Locate returns the 1-based line and column of the byte at offset.
// Offsets past the end locate just after the last byte.
func (src Source) Locate(offset int) Location {
	if offset > len(src.Code) {
		offset = len(src.Code)
	}
	if offset < 0 {
		offset = 0
	}
	head := src.Code[:offset]
	loc := Location{Name: src.Name, Line: 1 + bytes.Count(head, []byte{'\n'})}
	loc.Col = offset + 1
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		loc.Col = offset - i
	}
	return loc
}
