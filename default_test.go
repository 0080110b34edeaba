package modemlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageLevelLogger(t *testing.T) {
	buf := &bytes.Buffer{}

	SetOutput(buf)
	defer SetOutput(os.Stderr)

	prev := SetLevel(DebugLevel)
	defer SetLevel(prev)

	assert.Equal(t, DebugLevel, GetLevel())

	Info("package info")
	Debugf("package debug %d", 1)

	require.EqualError(t, Errorf("package error %d", 2), "package error 2")
	require.EqualError(t, Warn("package warning"), "package warning")
	require.EqualError(t, Error("package plain error"), "package plain error")
	require.EqualError(t, Warnf("package warning %d", 4), "package warning 4")

	Debug("package plain debug")
	Infof("package info %d", 5)

	out := buf.String()
	assert.Contains(t, out, "|INFO|")
	assert.Contains(t, out, "|DEBUG|")
	assert.Contains(t, out, "|ERROR|")
	assert.Contains(t, out, "|WARNING|")
	assert.Contains(t, out, "|package debug 1\n")
	assert.Contains(t, out, "|package info 5\n")

	assert.Same(t, std, Default())
}

func TestPackageLevelFatal(t *testing.T) {
	buf := &bytes.Buffer{}

	SetOutput(buf)
	defer SetOutput(os.Stderr)

	exitCode := -1
	prevExit := std.exitFunc
	std.exitFunc = func(code int) { exitCode = code }

	defer func() { std.exitFunc = prevExit }()

	Fatalf("package abort %d", 3)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, buf.String(), "|ABORT|")
	assert.Contains(t, buf.String(), "package abort 3")

	exitCode = -1

	Fatal("package abort")
	assert.Equal(t, 1, exitCode)
}

func TestPackageLevelFile(t *testing.T) {
	defer SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "std-0.log")

	require.NoError(t, Open(path, 2))
	Info("std to file")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "std to file")
}
