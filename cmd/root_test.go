package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/profile"
	"github.com/Norgate-AV/winfx/internal/version"
)

// resetFlags resets all flags to their default values between tests
func resetFlags() {
	_ = RootCmd.PersistentFlags().Set("verbose", "false")
	_ = RootCmd.PersistentFlags().Set("logs", "false")
	_ = RootCmd.PersistentFlags().Set("elevate", "false")
	_ = RootCmd.PersistentFlags().Set("hwnd", "")
	_ = RootCmd.PersistentFlags().Set("title", "")
	_ = RootCmd.PersistentFlags().Set("profile", "")
}

// TestRootCmd_Version tests --version flag
func TestRootCmd_Version(t *testing.T) {
	resetFlags()

	output := captureCommandOutput(t, []string{"--version"})

	assert.Contains(t, output, version.GetVersion(), "Should print version information")
}

// TestRootCmd_Help tests --help flag
func TestRootCmd_Help(t *testing.T) {
	resetFlags()

	output := captureCommandOutput(t, []string{"--help"})

	assert.Contains(t, output, "winfx", "Should show usage")
	assert.Contains(t, output, "applies blur, z-order and style changes", "Should show description")
	assert.Contains(t, output, "--verbose", "Should list verbose flag")
	assert.Contains(t, output, "--hwnd", "Should list hwnd flag")
	assert.Contains(t, output, "--title", "Should list title flag")
	assert.Contains(t, output, "--profile", "Should list profile flag")
	assert.Contains(t, output, "--logs", "Should list logs flag")

	for _, sub := range []string{"blur", "front", "back", "move", "clickthrough", "alttab", "maximize", "monitor", "list", "apply", "watch"} {
		assert.Contains(t, output, sub, "Should list %s command", sub)
	}
}

// TestRootCmd_Flags tests flag parsing into a Config
func TestRootCmd_Flags(t *testing.T) {
	t.Setenv(profile.EnvProfilePath, filepath.Join("C:", "profiles", "default.yaml"))

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "no flags",
			args:     []string{},
			expected: Config{Profile: filepath.Join("C:", "profiles", "default.yaml")},
		},
		{
			name:     "verbose flag short",
			args:     []string{"-V"},
			expected: Config{Verbose: true, Profile: filepath.Join("C:", "profiles", "default.yaml")},
		},
		{
			name:     "logs flag long",
			args:     []string{"--logs"},
			expected: Config{ShowLogs: true, Profile: filepath.Join("C:", "profiles", "default.yaml")},
		},
		{
			name:     "hex hwnd",
			args:     []string{"--hwnd", "0x1A2B"},
			expected: Config{Hwnd: 0x1A2B, Profile: filepath.Join("C:", "profiles", "default.yaml")},
		},
		{
			name:     "decimal hwnd",
			args:     []string{"--hwnd", "4660"},
			expected: Config{Hwnd: 0x1234, Profile: filepath.Join("C:", "profiles", "default.yaml")},
		},
		{
			name:     "title and profile",
			args:     []string{"-t", "Notepad", "-p", "mine.yaml"},
			expected: Config{Title: "Notepad", Profile: "mine.yaml"},
		},
		{
			name:     "all flags",
			args:     []string{"--verbose", "--logs", "--elevate", "--hwnd", "0x10", "--title", "x", "--profile", "p.yaml"},
			expected: Config{Verbose: true, ShowLogs: true, Elevate: true, Hwnd: 0x10, Title: "x", Profile: "p.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newFlagCommand()
			require.NoError(t, cmd.ParseFlags(tt.args), "Flag parsing should not error")

			cfg, err := NewConfigFromFlags(cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}

func TestNewConfigFromFlags_InvalidHwnd(t *testing.T) {
	t.Parallel()

	cmd := newFlagCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--hwnd", "window"}))

	_, err := NewConfigFromFlags(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid window handle")
}

// newFlagCommand declares the root flags on a fresh command
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}

	cmd.PersistentFlags().BoolP("verbose", "V", false, "")
	cmd.PersistentFlags().BoolP("logs", "l", false, "")
	cmd.PersistentFlags().Bool("elevate", false, "")
	cmd.PersistentFlags().String("hwnd", "", "")
	cmd.PersistentFlags().StringP("title", "t", "", "")
	cmd.PersistentFlags().StringP("profile", "p", "", "")

	return cmd
}

// TestRootCmd_InvalidFlag tests behavior with unknown flags
func TestRootCmd_InvalidFlag(t *testing.T) {
	resetFlags()

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	RootCmd.SetArgs([]string{"--invalid-flag"})
	err := RootCmd.Execute()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()

	assert.Error(t, err, "Should return error for invalid flag")
	assert.Contains(t, output, "unknown flag", "Error message should mention unknown flag")
}

// TestRootCmd_SubcommandArgs tests argument count validation
func TestRootCmd_SubcommandArgs(t *testing.T) {
	resetFlags()

	tests := []struct {
		name string
		args []string
	}{
		{name: "blur without level", args: []string{"blur"}},
		{name: "move with three numbers", args: []string{"move", "1", "2", "3"}},
		{name: "front with argument", args: []string{"front", "now"}},
		{name: "alttab without mode", args: []string{"alttab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldStderr := os.Stderr
			_, w, _ := os.Pipe()
			os.Stderr = w

			RootCmd.SetArgs(tt.args)
			err := RootCmd.Execute()

			w.Close()
			os.Stderr = oldStderr

			assert.Error(t, err)
		})
	}
}

// Helper function to capture command output
func captureCommandOutput(_ *testing.T, args []string) string {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Execute command
	RootCmd.SetArgs(args)
	_ = RootCmd.Execute()

	// Restore stdout
	w.Close()
	os.Stdout = oldStdout

	// Read output
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	return buf.String()
}

// TestHandleLogsFlag tests the --logs flag functionality
func TestHandleLogsFlag(t *testing.T) {
	// Create temp directory for log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "winfx", "winfx.log")

	// Setup logger to temp directory
	t.Setenv("LOCALAPPDATA", tmpDir)

	// Initialize logger
	log, err := logger.NewLogger(logger.LoggerOptions{Verbose: false})
	assert.NoError(t, err)
	defer log.Close()

	// Write some test content to log file
	testContent := "Test log content\nLine 2\nLine 3"
	err = os.MkdirAll(filepath.Dir(logPath), 0o755)
	assert.NoError(t, err)
	err = os.WriteFile(logPath, []byte(testContent), 0o644)
	assert.NoError(t, err)

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Test handleLogsFlag directly with a mock exit function
	exitCalled := false
	var exitCode int
	mockExit := func(code int) {
		exitCalled = true
		exitCode = code
	}

	// Create Config with ShowLogs flag
	cfg := &Config{ShowLogs: true}

	// Call handleLogsFlag directly instead of through Execute
	err = handleLogsFlag(cfg, mockExit)
	assert.NoError(t, err)

	// Restore stdout
	w.Close()
	os.Stdout = oldStdout

	// Read captured output
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()

	// Verify results
	assert.True(t, exitCalled, "Should call exit function for --logs flag")
	assert.Equal(t, 0, exitCode, "Should exit with code 0 for --logs")
	assert.Contains(t, output, testContent, "Should print log file content to stdout")
}

// TestEnsureElevated_AlreadyElevated tests when process is already elevated
func TestEnsureElevated_AlreadyElevated(t *testing.T) {
	t.Parallel()

	mockLog := logger.NewNoOpLogger()
	exitCalled := false
	relaunchCalled := false

	isElevated := func() bool { return true }
	relaunchAsAdmin := func() error {
		relaunchCalled = true
		return nil
	}
	exitFunc := func(code int) {
		exitCalled = true
	}

	err := ensureElevatedWithDeps(mockLog, isElevated, relaunchAsAdmin, exitFunc)

	assert.NoError(t, err, "Should not error when already elevated")
	assert.False(t, relaunchCalled, "Should not relaunch when already elevated")
	assert.False(t, exitCalled, "Should not exit when already elevated")
}

// TestEnsureElevated_NotElevated_SuccessfulRelaunch tests auto-elevation flow
func TestEnsureElevated_NotElevated_SuccessfulRelaunch(t *testing.T) {
	t.Parallel()

	mockLog := logger.NewNoOpLogger()
	exitCode := -1
	exitCalled := false
	relaunchCalled := false

	isElevated := func() bool { return false }
	relaunchAsAdmin := func() error {
		relaunchCalled = true
		return nil
	}
	exitFunc := func(code int) {
		exitCode = code
		exitCalled = true
	}

	err := ensureElevatedWithDeps(mockLog, isElevated, relaunchAsAdmin, exitFunc)

	// The function should not return an error - it calls exitFunc instead
	assert.NoError(t, err, "Should not return error on successful relaunch")
	assert.True(t, relaunchCalled, "Should call relaunch when not elevated")
	assert.True(t, exitCalled, "Should call exit after successful relaunch")
	assert.Equal(t, 0, exitCode, "Should exit with code 0 after successful relaunch")
}

// TestEnsureElevated_NotElevated_RelaunchFails tests relaunch failure handling
func TestEnsureElevated_NotElevated_RelaunchFails(t *testing.T) {
	t.Parallel()

	mockLog := logger.NewNoOpLogger()
	exitCalled := false
	relaunchCalled := false
	relaunchErr := fmt.Errorf("failed to relaunch")

	isElevated := func() bool { return false }
	relaunchAsAdmin := func() error {
		relaunchCalled = true
		return relaunchErr
	}
	exitFunc := func(code int) {
		exitCalled = true
	}

	err := ensureElevatedWithDeps(mockLog, isElevated, relaunchAsAdmin, exitFunc)

	assert.Error(t, err, "Should return error when relaunch fails")
	assert.True(t, relaunchCalled, "Should attempt to relaunch")
	assert.False(t, exitCalled, "Should not exit when relaunch fails")
	assert.Contains(t, err.Error(), "error relaunching as admin", "Error should mention relaunch failure")
	assert.ErrorIs(t, err, relaunchErr, "Should wrap the relaunch error")
}

func TestHandleLogsFlag_NotSet(t *testing.T) {
	t.Parallel()

	exitCalled := false
	err := handleLogsFlag(&Config{}, func(int) { exitCalled = true })

	assert.NoError(t, err)
	assert.False(t, exitCalled, "Should not exit without --logs")
}
