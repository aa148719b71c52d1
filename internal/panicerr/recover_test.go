package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/jcorbin/bfi/internal/panicerr"
	"github.com/stretchr/testify/assert"
)

func Test_Recover(t *testing.T) {
	bang := errors.New("bang")
	for _, tc := range []struct {
		name    string
		fun     func() error
		err     string
		wraps   error
		isPanic bool
	}{
		{name: "normal", fun: func() error { return nil }},
		{name: "normal err", fun: func() error { return bang }, err: "bang", wraps: bang},
		{
			name:    "panic err",
			fun:     func() error { panic(bang) },
			err:     "panic err paniced: bang",
			wraps:   bang,
			isPanic: true,
		},
		{
			name:    "hello panic",
			fun:     func() error { panic("hello") },
			err:     "hello panic paniced: hello",
			isPanic: true,
		},
		{
			name: "exit",
			fun:  func() error { runtime.Goexit(); return nil },
			err:  "exit called runtime.Goexit",
		},
		{
			name: "",
			fun:  func() error { runtime.Goexit(); return nil },
			err:  "runtime.Goexit called",
		},
	} {
		t.Run(fmt.Sprintf("%q", tc.name), func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.err)
			if tc.wraps != nil {
				assert.ErrorIs(t, err, tc.wraps)
			}
			assert.Equal(t, tc.isPanic, panicerr.IsPanic(err), "expected IsPanic")
			if tc.isPanic {
				assert.NotEmpty(t, panicerr.PanicStack(err), "expected a panic stack")
				assert.Contains(t, fmt.Sprintf("%+v", err), "Panic stack:")
			} else {
				assert.Empty(t, panicerr.PanicStack(err))
			}
		})
	}
}
