package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOverwritesPreviousLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time.txt")
	f := NewFile(path)

	require.NoError(t, f.Emit("T: 00:05"))
	require.NoError(t, f.Emit("T: 00:04"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "T: 00:04", string(data))
	assert.Equal(t, path, f.Path())
}

func TestFileWritesEmptyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time.txt")
	f := NewFile(path)
	require.NoError(t, f.Emit("T: 00:01"))
	require.NoError(t, f.Emit(""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "time.txt")
	err := NewFile(path).Emit("x")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrite))
	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, path, werr.Target)
	assert.Equal(t, path, werr.Destination())
	assert.Contains(t, err.Error(), path)
}

func TestConsoleAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	require.NoError(t, c.Emit("a"))
	require.NoError(t, c.Emit(""))
	assert.Equal(t, "a\n\n", buf.String())
}

func TestLabelForwardsLine(t *testing.T) {
	var got []string
	l := Label(func(line string) { got = append(got, line) })
	require.NoError(t, l.Emit("one"))
	require.NoError(t, l.Emit("two"))
	assert.Equal(t, []string{"one", "two"}, got)

	var nilLabel Label
	assert.NoError(t, nilLabel.Emit("ignored"))
}

func TestMultiContinuesPastFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	failing := NewMockSink(ctrl)
	failing.EXPECT().Emit("line").Return(errors.New("disk full"))

	rec := &Recorder{}
	m := Multi{failing, nil, rec}

	err := m.Emit("line")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, []string{"line"}, rec.Lines())
}

func TestMultiEmpty(t *testing.T) {
	assert.NoError(t, Multi{}.Emit("x"))
}
