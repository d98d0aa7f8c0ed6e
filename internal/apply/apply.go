// Package apply carries out profile rules on windows.
package apply

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winfx/internal/effects"
	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/profile"
	"github.com/Norgate-AV/winfx/internal/win32"
	"github.com/Norgate-AV/winfx/internal/window"
)

// Target is the set of window operations a rule can use
type Target interface {
	Handle() uintptr
	SetPosition(b win32.Bounds) error
	BringToFront() error
	BringToBack() error
	ClearTopmost() error
	IgnoreMouseEvents() error
	StopIgnoreMouseEvents() error
	HideFromAltTab() error
	ShowInAltTab() error
	SetMaximizeBox(enabled bool) error
	SetCornerPreference(pref win32.CornerPreference) error
	UseDarkMode(enabled bool) error
	EnableBlur(level effects.Level, color effects.Color) (effects.Level, error)
}

var _ Target = (*window.Window)(nil)

// Result describes what applying a rule did
type Result struct {
	Rule   string
	Effect effects.Level
	// EffectSet is false when the rule has no effect
	EffectSet bool
}

// Applier applies rules and logs each step
type Applier struct {
	log logger.LoggerInterface
}

// NewApplier creates an Applier
func NewApplier(log logger.LoggerInterface) *Applier {
	return &Applier{log: log}
}

// Apply carries out every field the rule sets. All steps run even when one
// fails; the failures are joined into the returned error.
func (a *Applier) Apply(t Target, rule *profile.Rule) (Result, error) {
	log := a.log.With(slog.String("rule", rule.Label()), slog.Uint64("hwnd", uint64(t.Handle())))
	res := Result{Rule: rule.Label()}

	var errs []error
	step := func(name string, err error) {
		if err != nil {
			log.Warn("Rule step failed", slog.String("step", name), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}

		log.Debug("Rule step applied", slog.String("step", name))
	}

	if rule.Position != nil {
		step("position", t.SetPosition(*rule.Position))
	}

	switch rule.ZOrder {
	case profile.ZOrderFront:
		step("zorder", t.BringToFront())
	case profile.ZOrderBack:
		step("zorder", t.BringToBack())
	case profile.ZOrderNormal:
		step("zorder", t.ClearTopmost())
	}

	if rule.ClickThrough != nil {
		if *rule.ClickThrough {
			step("click_through", t.IgnoreMouseEvents())
		} else {
			step("click_through", t.StopIgnoreMouseEvents())
		}
	}

	if rule.AltTab != nil {
		if *rule.AltTab {
			step("alt_tab", t.ShowInAltTab())
		} else {
			step("alt_tab", t.HideFromAltTab())
		}
	}

	if rule.Maximize != nil {
		step("maximize", t.SetMaximizeBox(*rule.Maximize))
	}

	if rule.Corners != "" {
		pref, err := window.ParseCorners(rule.Corners)
		if err == nil {
			err = t.SetCornerPreference(pref)
		}
		step("corners", err)
	}

	if rule.DarkMode != nil {
		step("dark_mode", t.UseDarkMode(*rule.DarkMode))
	}

	if rule.Effect != nil {
		color := effects.DefaultColor
		if rule.Tint != nil {
			color = *rule.Tint
		}

		level, err := t.EnableBlur(*rule.Effect, color)
		step("effect", err)

		if err == nil {
			res.Effect = level
			res.EffectSet = true

			log.Info("Effect applied",
				slog.String("requested", rule.Effect.String()),
				slog.String("effective", level.String()))
		}
	}

	return res, errors.Join(errs...)
}
