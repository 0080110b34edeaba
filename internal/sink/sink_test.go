package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flushRecorder struct {
	bytes.Buffer
	flushed int
}

func (f *flushRecorder) Flush() error {
	f.flushed++

	return nil
}

func TestOpenAppend(t *testing.T) {
	t.Run("creates and appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "modem.log")

		file, err := OpenAppend(path)
		require.NoError(t, err)

		_, err = file.WriteString("first\n")
		require.NoError(t, err)
		require.NoError(t, file.Close())

		file, err = OpenAppend(path)
		require.NoError(t, err)

		_, err = file.WriteString("second\n")
		require.NoError(t, err)
		require.NoError(t, file.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond\n", string(data))
	})

	t.Run("missing directory fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent", "modem.log")

		file, err := OpenAppend(path)
		require.Error(t, err)
		assert.Nil(t, file)

		// The parent directory must not have been created as a side effect.
		_, statErr := os.Stat(filepath.Dir(path))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("empty path fails", func(t *testing.T) {
		file, err := OpenAppend("")
		require.Error(t, err)
		assert.Nil(t, file)
	})
}

func TestFlush(t *testing.T) {
	t.Run("invokes Flush when available", func(t *testing.T) {
		rec := &flushRecorder{}

		require.NoError(t, Flush(rec))
		assert.Equal(t, 1, rec.flushed)
	})

	t.Run("plain writer is a no-op", func(t *testing.T) {
		assert.NoError(t, Flush(&bytes.Buffer{}))
	})
}

func TestIsStandardStream(t *testing.T) {
	assert.True(t, IsStandardStream(os.Stdout))
	assert.True(t, IsStandardStream(os.Stderr))

	file, err := os.CreateTemp(t.TempDir(), "sink")
	require.NoError(t, err)

	defer file.Close()

	assert.False(t, IsStandardStream(file))
}

func TestIsTerminal(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "sink")
	require.NoError(t, err)

	defer file.Close()

	assert.False(t, IsTerminal(file), "regular files are never terminals")
	assert.False(t, IsTerminal(&bytes.Buffer{}), "non-file writers are never terminals")
}
