package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that emits each completed line through Logf, so that
// program output may be routed into something like testing.T.Logf.
type Writer struct {
	Logf func(string, ...interface{})

	mu      sync.Mutex
	partial bytes.Buffer
}

// Write buffers p, logging any lines that it completes; it never fails.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.partial.Write(p)
	for {
		i := bytes.IndexByte(lw.partial.Bytes(), '\n')
		if i < 0 {
			break
		}
		lw.Logf("%s", lw.partial.Next(i+1)[:i])
	}
	return len(p), nil
}

// Close logs any final partial line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if lw.partial.Len() > 0 {
		lw.Logf("%s", lw.partial.Next(lw.partial.Len()))
	}
	return nil
}
