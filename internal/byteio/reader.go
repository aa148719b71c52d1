package byteio

import (
	"bufio"
	"io"
)

// NewReader returns an io.ByteReader from r; if r already implements it, it
// is simply returned. Otherwise a bufio.Reader provides byte reading.
func NewReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// IsEnd returns true if err marks the end of an input stream, rather than
// some failure to read it.
func IsEnd(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
