package effects_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winfx/internal/effects"
	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/platform"
	"github.com/Norgate-AV/winfx/internal/testutil"
	"github.com/Norgate-AV/winfx/internal/win32"
)

var (
	vista     = platform.New(platform.Version{Major: 6, Minor: 0, Build: 6002})
	win7      = platform.New(platform.Version{Major: 6, Minor: 1, Build: 7601})
	win81     = platform.New(platform.Version{Major: 6, Minor: 3, Build: 9600})
	win10Old  = platform.New(platform.Version{Major: 10, Minor: 0, Build: 19041})
	win10New  = platform.New(platform.Version{Major: 10, Minor: 0, Build: 19628})
	win11     = platform.New(platform.Version{Major: 10, Minor: 0, Build: 22631})
	winXP     = platform.New(platform.Version{Major: 5, Minor: 1, Build: 2600})
	allLevels = []effects.Level{effects.Opaque, effects.Transparent, effects.Blur, effects.AcrylicBlur}
)

const hwnd uintptr = 0xBEEF

func newDispatcher(caps platform.Capabilities, api *testutil.MockNativeAPI) *effects.Dispatcher {
	return effects.NewDispatcher(logger.NewNoOpLogger(), caps, api)
}

func TestColorPack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color effects.Color
		want  uint32
	}{
		{name: "channel order", color: effects.Color{A: 0xFF, R: 0x10, G: 0x20, B: 0x30}, want: 0xFF302010},
		{name: "default", color: effects.DefaultColor, want: 0x01000000},
		{name: "red only", color: effects.Color{R: 0xFF}, want: 0x000000FF},
		{name: "zero", color: effects.Color{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.color.Pack())
		})
	}
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := effects.ParseColor("#FF102030")
	require.NoError(t, err)
	assert.Equal(t, effects.Color{A: 0xFF, R: 0x10, G: 0x20, B: 0x30}, c)
	assert.Equal(t, "#FF102030", c.String())

	c, err = effects.ParseColor("102030")
	require.NoError(t, err)
	assert.Equal(t, effects.Color{A: 0xFF, R: 0x10, G: 0x20, B: 0x30}, c)

	for _, bad := range []string{"", "#12345", "#GG102030", "#1122334455"} {
		_, err := effects.ParseColor(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for _, level := range allLevels {
		got, err := effects.ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}

	got, err := effects.ParseLevel(" None ")
	require.NoError(t, err)
	assert.Equal(t, effects.Opaque, got)

	_, err = effects.ParseLevel("frosted")
	assert.Error(t, err)
}

func TestStrategyFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, effects.StrategyNone, effects.StrategyFor(platform.TierUnsupported))
	assert.Equal(t, effects.StrategyLegacyBlur, effects.StrategyFor(platform.TierLegacy))
	assert.Equal(t, effects.StrategyAccentPolicyBlur, effects.StrategyFor(platform.TierAccentPolicy))
	assert.Equal(t, effects.StrategyFullAccentBlur, effects.StrategyFor(platform.TierFullAccent))
}

func TestNewPlan_Legacy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requested   effects.Level
		wantLevel   effects.Level
		wantEnabled int32
	}{
		{effects.Opaque, effects.Opaque, 0},
		{effects.Transparent, effects.Opaque, 0},
		{effects.Blur, effects.Blur, 1},
		{effects.AcrylicBlur, effects.Blur, 1},
	}

	for _, caps := range []platform.Capabilities{vista, win7} {
		for _, tt := range tests {
			plan := effects.NewPlan(caps, tt.requested, effects.DefaultColor)

			assert.Equal(t, effects.StrategyLegacyBlur, plan.Strategy)
			assert.Equal(t, tt.wantLevel, plan.Level, "requested %s on %s", tt.requested, caps)
			assert.Nil(t, plan.Accent)
			require.NotNil(t, plan.BlurBehind)
			assert.Equal(t, uint32(win32.DWM_BB_ENABLE), plan.BlurBehind.Flags)
			assert.Equal(t, tt.wantEnabled, plan.BlurBehind.Enable)
		}
	}
}

func TestNewPlan_AccentPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requested      effects.Level
		wantLevel      effects.Level
		wantState      win32.AccentState
		wantBlurBehind bool
	}{
		{effects.Opaque, effects.Opaque, win32.ACCENT_DISABLED, false},
		{effects.Transparent, effects.Transparent, win32.ACCENT_ENABLE_BLURBEHIND, false},
		{effects.Blur, effects.Blur, win32.ACCENT_DISABLED, true},
		{effects.AcrylicBlur, effects.Blur, win32.ACCENT_DISABLED, true},
	}

	for _, tt := range tests {
		plan := effects.NewPlan(win81, tt.requested, effects.Color{A: 0xFF, R: 1, G: 2, B: 3})

		assert.Equal(t, effects.StrategyAccentPolicyBlur, plan.Strategy)
		assert.Equal(t, tt.wantLevel, plan.Level, "requested %s", tt.requested)
		require.NotNil(t, plan.Accent)
		assert.Equal(t, tt.wantState, plan.Accent.AccentState)
		assert.Zero(t, plan.Accent.AccentFlags)
		assert.Zero(t, plan.Accent.GradientColor, "the middle tier ignores colors")

		if tt.wantBlurBehind {
			require.NotNil(t, plan.BlurBehind)
			assert.Equal(t, int32(1), plan.BlurBehind.Enable)
		} else {
			assert.Nil(t, plan.BlurBehind)
		}
	}
}

func TestNewPlan_FullAccent(t *testing.T) {
	t.Parallel()

	color := effects.Color{A: 0xFF, R: 0x10, G: 0x20, B: 0x30}

	tests := []struct {
		name      string
		caps      platform.Capabilities
		requested effects.Level
		wantLevel effects.Level
		wantState win32.AccentState
	}{
		{"opaque", win11, effects.Opaque, effects.Opaque, win32.ACCENT_DISABLED},
		{"transparent", win11, effects.Transparent, effects.Transparent, win32.ACCENT_ENABLE_TRANSPARENTGRADIENT},
		{"blur", win11, effects.Blur, effects.Blur, win32.ACCENT_ENABLE_BLURBEHIND},
		{"acrylic", win11, effects.AcrylicBlur, effects.AcrylicBlur, win32.ACCENT_ENABLE_ACRYLICBLURBEHIND},
		{"acrylic at threshold", win10New, effects.AcrylicBlur, effects.AcrylicBlur, win32.ACCENT_ENABLE_ACRYLICBLURBEHIND},
		{"acrylic below threshold", win10Old, effects.AcrylicBlur, effects.Blur, win32.ACCENT_ENABLE_BLURBEHIND},
		{"unknown level", win11, effects.Level(42), effects.Opaque, win32.ACCENT_DISABLED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan := effects.NewPlan(tt.caps, tt.requested, color)

			assert.Equal(t, effects.StrategyFullAccentBlur, plan.Strategy)
			assert.Equal(t, tt.wantLevel, plan.Level)
			assert.Nil(t, plan.BlurBehind)
			require.NotNil(t, plan.Accent)
			assert.Equal(t, tt.wantState, plan.Accent.AccentState)
			assert.Equal(t, uint32(2), plan.Accent.AccentFlags)
			assert.Equal(t, uint32(0xFF302010), plan.Accent.GradientColor)
		})
	}
}

func TestNewPlan_NeverAcrylicBelowFullAccent(t *testing.T) {
	t.Parallel()

	for _, caps := range []platform.Capabilities{winXP, vista, win7, win81, win10Old} {
		for _, level := range allLevels {
			plan := effects.NewPlan(caps, level, effects.DefaultColor)
			assert.NotEqual(t, effects.AcrylicBlur, plan.Level, "%s on %s", level, caps)

			if plan.Accent != nil {
				assert.NotEqual(t, win32.ACCENT_ENABLE_ACRYLICBLURBEHIND, plan.Accent.AccentState)
			}
		}
	}
}

func TestDispatcher_Unsupported(t *testing.T) {
	t.Parallel()

	api := testutil.NewMockNativeAPI()
	d := newDispatcher(winXP, api)

	for _, level := range allLevels {
		assert.Equal(t, effects.Opaque, d.Apply(hwnd, level, effects.DefaultColor))
	}

	assert.Zero(t, api.CompositionQueries)
	assert.Empty(t, api.EffectCalls())
}

func TestDispatcher_CompositionDisabled(t *testing.T) {
	t.Parallel()

	for _, caps := range []platform.Capabilities{win7, win81, win11} {
		api := testutil.NewMockNativeAPI().WithComposition(false, nil)
		d := newDispatcher(caps, api)

		for _, level := range allLevels {
			assert.Equal(t, effects.Opaque, d.Apply(hwnd, level, effects.DefaultColor))
		}

		assert.Equal(t, len(allLevels), api.CompositionQueries)
		assert.Empty(t, api.EffectCalls(), "no effect call when composition is off on %s", caps)
	}
}

func TestDispatcher_CompositionQueryFails(t *testing.T) {
	t.Parallel()

	api := testutil.NewMockNativeAPI().WithComposition(true, errors.New("DwmIsCompositionEnabled: 0x80263001"))
	d := newDispatcher(win11, api)

	assert.Equal(t, effects.Opaque, d.Apply(hwnd, effects.Blur, effects.DefaultColor))
	assert.Empty(t, api.EffectCalls())
}

func TestDispatcher_Legacy(t *testing.T) {
	t.Parallel()

	api := testutil.NewMockNativeAPI()
	d := newDispatcher(win7, api)

	assert.Equal(t, effects.Blur, d.Apply(hwnd, effects.AcrylicBlur, effects.DefaultColor))
	assert.Equal(t, effects.Opaque, d.Apply(hwnd, effects.Transparent, effects.DefaultColor))

	assert.Equal(t, []string{"blur-behind", "blur-behind"}, api.EffectCalls())
	require.Len(t, api.BlurBehindCalls, 2)
	assert.Equal(t, hwnd, api.BlurBehindCalls[0].Hwnd)
	assert.Equal(t, int32(1), api.BlurBehindCalls[0].BlurBehind.Enable)
	assert.Equal(t, int32(0), api.BlurBehindCalls[1].BlurBehind.Enable)
}

func TestDispatcher_AccentPolicyLayersBlurBehind(t *testing.T) {
	t.Parallel()

	api := testutil.NewMockNativeAPI()
	d := newDispatcher(win81, api)

	assert.Equal(t, effects.Blur, d.Apply(hwnd, effects.Blur, effects.DefaultColor))
	assert.Equal(t, []string{"accent-policy", "blur-behind"}, api.EffectCalls())

	require.Len(t, api.AccentPolicyCalls, 1)
	assert.Equal(t, win32.ACCENT_DISABLED, api.AccentPolicyCalls[0].Accent.AccentState)
}

func TestDispatcher_AccentPolicyTransparent(t *testing.T) {
	t.Parallel()

	api := testutil.NewMockNativeAPI()
	d := newDispatcher(win81, api)

	assert.Equal(t, effects.Transparent, d.Apply(hwnd, effects.Transparent, effects.DefaultColor))
	assert.Equal(t, []string{"accent-policy"}, api.EffectCalls())
	assert.Equal(t, win32.ACCENT_ENABLE_BLURBEHIND, api.AccentPolicyCalls[0].Accent.AccentState)
}

func TestDispatcher_FullAccent(t *testing.T) {
	t.Parallel()

	api := testutil.NewMockNativeAPI()
	d := newDispatcher(win11, api)

	color := effects.Color{A: 0xCC, R: 0x11, G: 0x22, B: 0x33}
	assert.Equal(t, effects.AcrylicBlur, d.Apply(hwnd, effects.AcrylicBlur, color))

	require.Len(t, api.AccentPolicyCalls, 1)
	call := api.AccentPolicyCalls[0]
	assert.Equal(t, hwnd, call.Hwnd)
	assert.Equal(t, win32.ACCENT_ENABLE_ACRYLICBLURBEHIND, call.Accent.AccentState)
	assert.Equal(t, uint32(0xCC332211), call.Accent.GradientColor)
	assert.Empty(t, api.BlurBehindCalls)
}

func TestDispatcher_FailuresAreNotSurfaced(t *testing.T) {
	t.Parallel()

	api := testutil.NewMockNativeAPI().WithEffectErrors(errors.New("blur failed"), errors.New("accent failed"))

	assert.Equal(t, effects.Blur, newDispatcher(win81, api).Apply(hwnd, effects.Blur, effects.DefaultColor))
	assert.Equal(t, effects.AcrylicBlur, newDispatcher(win11, api).Apply(hwnd, effects.AcrylicBlur, effects.DefaultColor))
	assert.Equal(t, effects.Blur, newDispatcher(win7, api).Apply(hwnd, effects.Blur, effects.DefaultColor))
}

func TestDispatcher_Capabilities(t *testing.T) {
	t.Parallel()

	d := newDispatcher(win10Old, testutil.NewMockNativeAPI())
	assert.Equal(t, win10Old, d.Capabilities())
}
