package fileinput_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jcorbin/bfi/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FromString(t *testing.T) {
	src := fileinput.FromString("<inline>", "+é+\xff.日")
	assert.Equal(t, "<inline>", src.Name)
	assert.Equal(t, []byte("++."), src.Code, "expected non-ASCII runes to be dropped")
}

func Test_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.b")
	require.NoError(t, os.WriteFile(path, []byte("+\xff."), 0o644))

	src, err := fileinput.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Name)
	assert.Equal(t, []byte("+\xff."), src.Code, "expected file bytes to be unfiltered")

	_, err = fileinput.ReadFile(filepath.Join(t.TempDir(), "missing.b"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_Locate(t *testing.T) {
	src := fileinput.Source{Name: "prog.b", Code: []byte("++\n[>\n\n-]")}
	for _, tc := range []struct {
		offset int
		want   string
	}{
		{0, "prog.b:1:1"},
		{1, "prog.b:1:2"},
		{2, "prog.b:1:3"},
		{3, "prog.b:2:1"},
		{4, "prog.b:2:2"},
		{6, "prog.b:3:1"},
		{8, "prog.b:4:2"},
		{99, "prog.b:4:3"},
		{-1, "prog.b:1:1"},
	} {
		assert.Equal(t, tc.want, src.Locate(tc.offset).String(), "expected location of offset %v", tc.offset)
	}
}
