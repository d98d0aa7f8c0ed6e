package logger_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winfx/internal/logger"
)

func TestNewLogger_DefaultOptions(t *testing.T) {
	// Set custom LOCALAPPDATA for testing
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)
	defer log.Close()

	assert.NotNil(t, log)

	logPath := log.GetLogPath()
	assert.NotEmpty(t, logPath)
	assert.Contains(t, logPath, "winfx.log")
	assert.True(t, filepath.IsAbs(logPath), "Log path should be absolute")
}

func TestNewLogger_CreatesLogDirectory(t *testing.T) {
	// Set custom LOCALAPPDATA for testing
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)
	defer log.Close()

	expectedDir := filepath.Join(tmpDir, "winfx")
	assert.DirExists(t, expectedDir)
}

func TestNewLogger_CustomLogDir(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir: tmpDir,
	})
	require.NoError(t, err)
	defer log.Close()

	logPath := log.GetLogPath()
	expectedPath := filepath.Join(tmpDir, "winfx.log")
	assert.Equal(t, expectedPath, logPath)
}

func TestNewLogger_Verbose(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	// Test with verbose=true
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose: true,
	})
	require.NoError(t, err)
	defer log.Close()

	assert.NotNil(t, log)
}

func TestNewLogger_NonVerbose(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	// Test with verbose=false
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose: false,
	})
	require.NoError(t, err)
	defer log.Close()

	assert.NotNil(t, log)
}

func TestNewLogger_FallbackToUserProfile(t *testing.T) {
	// Clear LOCALAPPDATA and set USERPROFILE
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("USERPROFILE", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)
	defer log.Close()

	logPath := log.GetLogPath()
	assert.NotEmpty(t, logPath)

	// Should use USERPROFILE/AppData/Local/winfx/winfx.log
	expectedPath := filepath.Join(tmpDir, "AppData", "Local", "winfx", "winfx.log")
	assert.Equal(t, expectedPath, logPath)
}

func TestNewLogger_WithCompression(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:   tmpDir,
		Compress: true,
	})
	require.NoError(t, err)
	defer log.Close()

	assert.NotNil(t, log)
}

func TestLogger_Close(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{})
	require.NoError(t, err)

	// Close should not panic
	assert.NotPanics(t, func() {
		log.Close()
	})
}

func TestLogger_LogMethods(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir: tmpDir,
	})
	require.NoError(t, err)
	defer log.Close()

	// Test that logging methods don't panic
	assert.NotPanics(t, func() {
		log.Debug("debug message", slog.String("key", "value"))
		log.Info("info message", slog.Int("count", 42))
		log.Warn("warn message", slog.Bool("flag", true))
		log.Error("error message", slog.Any("error", assert.AnError))
	})
}

func TestNoOpLogger(t *testing.T) {
	log := logger.NewNoOpLogger()
	assert.NotNil(t, log)

	// NoOp logger should not panic on any operations
	assert.NotPanics(t, func() {
		log.Debug("test")
		log.With("k", "v").Info("test")
		log.Warn("test")
		log.Error("test")
	})
}

func TestLogger_ConsoleOutput(t *testing.T) {
	tmpDir := t.TempDir()
	var buf bytes.Buffer

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:  tmpDir,
		Console: &buf,
	})
	require.NoError(t, err)
	defer log.Close()

	log.Info("Applied effect", slog.String("level", "blur"))
	log.Warn("Composition disabled", slog.Uint64("hwnd", 0x1234))
	log.Debug("hidden without verbose")
	log.Trace("never on console")

	output := buf.String()
	assert.Contains(t, output, "Applied effect level=blur")
	assert.Contains(t, output, "WARNING: Composition disabled hwnd=4660")
	assert.NotContains(t, output, "hidden without verbose")
	assert.NotContains(t, output, "never on console")
}

func TestLogger_ConsoleVerbose(t *testing.T) {
	tmpDir := t.TempDir()
	var buf bytes.Buffer

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:  tmpDir,
		Console: &buf,
		Verbose: true,
	})
	require.NoError(t, err)
	defer log.Close()

	log.Debug("SetWindowPos", slog.Int("flags", 0x23))
	log.Info("  dpi: 144x144", slog.String("ignored", "yes"))

	output := buf.String()
	assert.Contains(t, output, "VERBOSE: SetWindowPos flags=35")
	assert.Contains(t, output, "  dpi: 144x144\n")
	assert.NotContains(t, output, "ignored=yes")
}

func TestLogger_With(t *testing.T) {
	tmpDir := t.TempDir()
	var buf bytes.Buffer

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:  tmpDir,
		Console: &buf,
	})
	require.NoError(t, err)
	defer log.Close()

	scoped := log.With(slog.String("window", "notepad"))
	scoped.Warn("SetWindowLongPtr failed")

	assert.Contains(t, buf.String(), "SetWindowLongPtr failed window=notepad")
	assert.Equal(t, log.GetLogPath(), scoped.GetLogPath())
}

func TestLogger_WritesFile(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{
		LogDir:  tmpDir,
		Console: io.Discard,
	})
	require.NoError(t, err)

	log.Trace("trace line", slog.String("k", "v"))
	log.Info("info line")
	log.Close()

	data, err := os.ReadFile(log.GetLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=TRACE")
	assert.Contains(t, string(data), "trace line")
	assert.Contains(t, string(data), "info line")
}

func TestPrintLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	opts := logger.LoggerOptions{LogDir: tmpDir}

	require.NoError(t, os.WriteFile(logger.GetLogPath(opts), []byte("line 1\nline 2\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, logger.PrintLogFile(&buf, opts))
	assert.Equal(t, "line 1\nline 2\n", buf.String())
}

func TestPrintLogFile_Missing(t *testing.T) {
	err := logger.PrintLogFile(io.Discard, logger.LoggerOptions{LogDir: t.TempDir()})
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
