package cmd

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winfx/internal/effects"
	"github.com/Norgate-AV/winfx/internal/interfaces"
	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/platform"
	"github.com/Norgate-AV/winfx/internal/profile"
	"github.com/Norgate-AV/winfx/internal/testutil"
	"github.com/Norgate-AV/winfx/internal/win32"
)

var win11 = platform.New(platform.Version{Major: 10, Minor: 0, Build: 22631})

type fakeDesktop struct {
	api     *testutil.MockNativeAPI
	windows []win32.WindowInfo
	fg      uintptr
	events  chan win32.WindowInfo
	hostErr error

	mu     sync.Mutex
	opened []uintptr
}

func newFakeDesktop(windows ...win32.WindowInfo) *fakeDesktop {
	return &fakeDesktop{
		api:     testutil.NewMockNativeAPI(),
		windows: windows,
		events:  make(chan win32.WindowInfo),
	}
}

func (d *fakeDesktop) API() interfaces.NativeAPI { return d.api }
func (d *fakeDesktop) Capabilities() platform.Capabilities { return win11 }
func (d *fakeDesktop) Windows() ([]win32.WindowInfo, error) { return d.windows, nil }
func (d *fakeDesktop) Foreground() uintptr { return d.fg }
func (d *fakeDesktop) IsElevated() bool { return true }
func (d *fakeDesktop) RelaunchAsAdmin() error { return nil }
func (d *fakeDesktop) OnConsoleControl(func(event string)) error { return nil }

func (d *fakeDesktop) Host(hwnd uintptr) (interfaces.Host, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hostErr != nil {
		return nil, d.hostErr
	}

	d.opened = append(d.opened, hwnd)
	return testutil.NewMockHost(hwnd).WithoutHookSource(), nil
}

func (d *fakeDesktop) WatchWindows(ctx context.Context, _ time.Duration) <-chan win32.WindowInfo {
	return d.events
}

func (d *fakeDesktop) openedWindows() []uintptr {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]uintptr(nil), d.opened...)
}

var (
	shell   = win32.WindowInfo{Hwnd: 0x100, Title: "Windows PowerShell", Class: "ConsoleWindowClass"}
	shell2  = win32.WindowInfo{Hwnd: 0x200, Title: "PowerShell 7", Class: "ConsoleWindowClass"}
	notepad = win32.WindowInfo{Hwnd: 0x300, Title: "notes.txt - Notepad", Class: "Notepad"}
)

func testSession(cfg *Config, d *fakeDesktop) *session {
	return newSession(cfg, logger.NewNoOpLogger(), d)
}

func TestSessionTargets(t *testing.T) {
	t.Parallel()

	d := newFakeDesktop(shell, shell2, notepad)
	d.fg = notepad.Hwnd

	tests := []struct {
		name     string
		cfg      Config
		expected []win32.WindowInfo
		err      error
	}{
		{name: "hwnd", cfg: Config{Hwnd: shell2.Hwnd, Title: "Notepad"}, expected: []win32.WindowInfo{shell2}},
		{name: "hidden hwnd", cfg: Config{Hwnd: 0x999}, expected: []win32.WindowInfo{{Hwnd: 0x999}}},
		{name: "title", cfg: Config{Title: "powershell"}, expected: []win32.WindowInfo{shell, shell2}},
		{name: "foreground", cfg: Config{}, expected: []win32.WindowInfo{notepad}},
		{name: "no title match", cfg: Config{Title: "Calculator"}, err: ErrNoWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			got, err := testSession(&cfg, d).targets()

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSessionTargets_NoForeground(t *testing.T) {
	t.Parallel()

	_, err := testSession(&Config{}, newFakeDesktop(shell)).targets()
	assert.ErrorIs(t, err, ErrNoWindow)
}

func TestBlur_EveryTitleMatch(t *testing.T) {
	t.Parallel()

	d := newFakeDesktop(shell, shell2, notepad)
	s := testSession(&Config{Title: "PowerShell"}, d)

	require.NoError(t, s.blur(effects.AcrylicBlur, effects.Color{A: 0x80, R: 0x10, G: 0x20, B: 0x30}))

	require.Len(t, d.api.AccentPolicyCalls, 2)
	assert.Equal(t, shell.Hwnd, d.api.AccentPolicyCalls[0].Hwnd)
	assert.Equal(t, shell2.Hwnd, d.api.AccentPolicyCalls[1].Hwnd)
	assert.Equal(t, win32.ACCENT_ENABLE_ACRYLICBLURBEHIND, d.api.AccentPolicyCalls[0].Accent.AccentState)
	assert.Equal(t, uint32(0x80302010), d.api.AccentPolicyCalls[0].Accent.GradientColor)
}

func TestZOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		order       string
		insertAfter uintptr
	}{
		{order: profile.ZOrderFront, insertAfter: win32.HWND_TOPMOST},
		{order: profile.ZOrderBack, insertAfter: win32.HWND_BOTTOM},
		{order: profile.ZOrderNormal, insertAfter: win32.HWND_NOTOPMOST},
	}

	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			t.Parallel()

			d := newFakeDesktop(notepad)
			require.NoError(t, testSession(&Config{Hwnd: notepad.Hwnd}, d).zOrder(tt.order))

			require.Len(t, d.api.SetWindowPosCalls, 1)
			assert.Equal(t, tt.insertAfter, d.api.SetWindowPosCalls[0].InsertAfter)
		})
	}
}

func TestForEachTarget_JoinsErrors(t *testing.T) {
	t.Parallel()

	d := newFakeDesktop(shell, shell2)
	hostErr := errors.New("access denied")
	d.hostErr = hostErr

	err := testSession(&Config{Title: "PowerShell"}, d).zOrder(profile.ZOrderFront)

	require.Error(t, err)
	assert.ErrorIs(t, err, hostErr)
	assert.Contains(t, err.Error(), "0x100")
	assert.Contains(t, err.Error(), "0x200")
}

func TestParseSwitch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg     string
		want    bool
		wantErr bool
	}{
		{arg: "on", want: true},
		{arg: "OFF", want: false},
		{arg: "true", want: true},
		{arg: "0", want: false},
		{arg: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseSwitch(tt.arg, "on", "off")
		if tt.wantErr {
			assert.Error(t, err, tt.arg)
			continue
		}

		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got, tt.arg)
	}

	show, err := parseSwitch("show", "show", "hide")
	require.NoError(t, err)
	assert.True(t, show)
}

func TestParseBounds(t *testing.T) {
	t.Parallel()

	b, err := parseBounds([]string{"-10", "20", "800", "600"})
	require.NoError(t, err)
	assert.Equal(t, win32.Bounds{X: -10, Y: 20, Width: 800, Height: 600}, b)

	for _, args := range [][]string{
		{"1", "2", "3"},
		{"a", "2", "3", "4"},
		{"1", "2", "0", "4"},
		{"1", "2", "3", "-4"},
	} {
		_, err := parseBounds(args)
		assert.Error(t, err, "%v", args)
	}
}

const testProfile = `
rules:
  - name: notes
    match: {class: Notepad}
    alt_tab: false
  - match: {title: nothing-matches-this}
    effect: blur
`

func TestRunApply(t *testing.T) {
	t.Parallel()

	dir := testutil.CreateTempDir(t)
	path := testutil.WriteProfile(t, dir, "profile.yaml", testProfile)

	d := newFakeDesktop(shell, notepad)
	d.api.WithExtendedStyle(notepad.Hwnd, win32.WS_EX_APPWINDOW)

	require.NoError(t, runApply(nil, testSession(&Config{Profile: path}, d), nil))

	assert.Equal(t, []uintptr{notepad.Hwnd}, d.openedWindows())
	assert.Equal(t, uint32(win32.WS_EX_TOOLWINDOW), d.api.ExtendedStyles[notepad.Hwnd])
	assert.Empty(t, d.api.EffectCalls())
}

func TestRunApply_InvalidProfile(t *testing.T) {
	t.Parallel()

	dir := testutil.CreateTempDir(t)
	path := testutil.WriteProfile(t, dir, "profile.yaml", "rules:\n  - effect: blur\n")

	err := runApply(nil, testSession(&Config{Profile: path}, newFakeDesktop()), nil)
	assert.ErrorIs(t, err, profile.ErrInvalidProfile)
}

func TestProfileRunner_NewWindows(t *testing.T) {
	t.Parallel()

	dir := testutil.CreateTempDir(t)
	path := testutil.WriteProfile(t, dir, "profile.yaml", testProfile)

	p, err := profile.Load(path)
	require.NoError(t, err)

	d := newFakeDesktop(shell)
	r := newProfileRunner(testSession(&Config{Profile: path}, d), p)
	r.settle = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- r.run(ctx, path) }()

	d.events <- notepad

	assert.Eventually(t, func() bool {
		opened := d.openedWindows()
		return len(opened) == 1 && opened[0] == notepad.Hwnd
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}

	assert.Equal(t, uint32(win32.WS_EX_TOOLWINDOW), d.api.ExtendedStyles[notepad.Hwnd])
}

func TestProfileRunner_Reload(t *testing.T) {
	t.Parallel()

	d := newFakeDesktop(shell, notepad)
	r := newProfileRunner(testSession(&Config{}, d), &profile.Profile{})

	r.applyAll()
	assert.Empty(t, d.openedWindows())

	p, err := profile.Parse([]byte("rules:\n  - match: {title: powershell}\n    zorder: back\n"))
	require.NoError(t, err)

	r.reload(p)

	assert.Equal(t, []uintptr{shell.Hwnd}, d.openedWindows())
	require.Len(t, d.api.SetWindowPosCalls, 1)
	assert.Equal(t, win32.HWND_BOTTOM, d.api.SetWindowPosCalls[0].InsertAfter)
}
