package flushio

import (
	"errors"
	"io"
)

// Tee returns a WriteFlusher that copies every write and flush to each of wfs,
// in order. A failing writer does not stop the rest from receiving the same
// bytes; every failure is joined into the returned error.
// Nil and Discard entries are dropped, so Tee() is Discard and Tee(wf) is wf.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var t tee
	for _, wf := range wfs {
		t = t.add(wf)
	}
	switch len(t) {
	case 0:
		return Discard
	case 1:
		return t[0]
	}
	return t
}

type tee []WriteFlusher

func (t tee) add(wf WriteFlusher) tee {
	switch impl := wf.(type) {
	case nil:
	case tee:
		t = append(t, impl...)
	default:
		if wf != Discard {
			t = append(t, wf)
		}
	}
	return t
}

func (t tee) Write(p []byte) (int, error) {
	var errs []error
	for _, wf := range t {
		if n, err := wf.Write(p); err != nil {
			errs = append(errs, err)
		} else if n != len(p) {
			errs = append(errs, io.ErrShortWrite)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter so that a single cell write reaches each
// writer as one byte.
func (t tee) WriteByte(b byte) error {
	errs := make([]error, 0, len(t))
	for _, wf := range t {
		errs = append(errs, writeByte(wf, b))
	}
	return errors.Join(errs...)
}

func (t tee) Flush() error {
	errs := make([]error, 0, len(t))
	for _, wf := range t {
		errs = append(errs, wf.Flush())
	}
	return errors.Join(errs...)
}
