package mem_test

import (
	"math/rand"
	"testing"

	"github.com/jcorbin/bfi/internal/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewTape(t *testing.T) {
	for _, n := range []int{0, -1, -30000} {
		tape, err := mem.NewTape(n)
		assert.ErrorIs(t, err, mem.ErrTapeSize, "expected size error for %v cells", n)
		assert.Nil(t, tape)
	}

	tape, err := mem.NewTape(mem.DefaultTapeSize)
	require.NoError(t, err)
	assert.Equal(t, mem.DefaultTapeSize, tape.Len())
	assert.Equal(t, make([]byte, mem.DefaultTapeSize), tape.Bytes(), "expected zeroed cells")
}

func Test_Tape_Move(t *testing.T) {
	for _, tc := range []struct {
		name  string
		n     int
		i     int
		delta int
		want  int
	}{
		{"single cell right", 1, 0, 1, 0},
		{"single cell left", 1, 0, -1, 0},
		{"right", 5, 1, 1, 2},
		{"right off the end", 5, 4, 1, 0},
		{"left off the start", 5, 0, -1, 4},
		{"far right", 5, 3, 12, 0},
		{"far left", 5, 3, -12, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tape, err := mem.NewTape(tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tape.Move(tc.i, tc.delta))
		})
	}
}

func Test_Tape_Move_inRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 9; n++ {
		tape, err := mem.NewTape(n)
		require.NoError(t, err)
		i := 0
		for step := 0; step < 1000; step++ {
			delta := 1
			if rng.Intn(2) == 0 {
				delta = -1
			}
			i = tape.Move(i, delta)
			require.True(t, 0 <= i && i < n, "index %v escaped [0, %v) at step %v", i, n, step)
		}
	}
}

func Test_Tape_Add(t *testing.T) {
	tape, err := mem.NewTape(3)
	require.NoError(t, err)

	assert.Equal(t, byte(255), tape.Add(0, -1), "expected 0 - 1 to wrap")
	assert.Equal(t, byte(0), tape.Add(0, 1), "expected 255 + 1 to wrap")
	assert.Equal(t, byte(7), tape.Add(4, 7), "expected index to wrap")
	assert.Equal(t, []byte{0, 7, 0}, tape.Bytes())
}

func Test_Tape_StorLoad(t *testing.T) {
	tape, err := mem.NewTape(4)
	require.NoError(t, err)

	tape.Stor(2, 1, 2, 3)
	assert.Equal(t, []byte{3, 0, 1, 2}, tape.Bytes(), "expected stor to wrap")
	assert.Equal(t, byte(3), tape.Load(-4))

	buf := make([]byte, 6)
	tape.LoadInto(3, buf)
	assert.Equal(t, []byte{2, 3, 0, 1, 2, 3}, buf, "expected load to wrap")

	tape.Bytes()[0] = 99
	assert.Equal(t, byte(3), tape.Load(0), "expected Bytes to return a copy")
}
