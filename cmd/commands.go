package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winfx/internal/apply"
	"github.com/Norgate-AV/winfx/internal/effects"
	"github.com/Norgate-AV/winfx/internal/profile"
	"github.com/Norgate-AV/winfx/internal/win32"
	"github.com/Norgate-AV/winfx/internal/window"
)

func addWindowCommands(root *cobra.Command) {
	blurCmd := &cobra.Command{
		Use:   "blur <opaque|transparent|blur|acrylic>",
		Short: "Set the background effect of the target windows",
		Args:  cobra.ExactArgs(1),
		RunE:  withSession(runBlur),
	}
	blurCmd.Flags().String("tint", "", "acrylic tint as #AARRGGBB or #RRGGBB")

	root.AddCommand(
		blurCmd,
		&cobra.Command{
			Use:   "front",
			Short: "Make the target windows topmost",
			Args:  cobra.NoArgs,
			RunE:  withSession(runZOrder(profile.ZOrderFront)),
		},
		&cobra.Command{
			Use:   "back",
			Short: "Send the target windows to the bottom of the z-order",
			Args:  cobra.NoArgs,
			RunE:  withSession(runZOrder(profile.ZOrderBack)),
		},
		&cobra.Command{
			Use:   "move <x> <y> <width> <height>",
			Short: "Move and resize the target windows",
			Args:  cobra.ExactArgs(4),
			RunE:  withSession(runMove),
		},
		&cobra.Command{
			Use:   "clickthrough <on|off>",
			Short: "Let mouse input pass through the target windows",
			Args:  cobra.ExactArgs(1),
			RunE:  withSession(runClickThrough),
		},
		&cobra.Command{
			Use:   "alttab <show|hide>",
			Short: "Show or hide the target windows in Alt+Tab and the taskbar",
			Args:  cobra.ExactArgs(1),
			RunE:  withSession(runAltTab),
		},
		&cobra.Command{
			Use:   "maximize <on|off>",
			Short: "Enable or disable the maximize box of the target windows",
			Args:  cobra.ExactArgs(1),
			RunE:  withSession(runMaximize),
		},
		&cobra.Command{
			Use:   "monitor",
			Short: "Show the display monitor of the target windows",
			Args:  cobra.NoArgs,
			RunE:  withSession(runMonitor),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List visible top-level windows",
			Args:  cobra.NoArgs,
			RunE:  withSession(runList),
		},
		&cobra.Command{
			Use:   "apply",
			Short: "Apply the profile to every matching window once",
			Args:  cobra.NoArgs,
			RunE:  withSession(runApply),
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Apply the profile to matching windows as they appear and when it changes",
			Args:  cobra.NoArgs,
			RunE:  withSession(runWatch),
		},
	)
}

// parseSwitch maps on/off style words to a bool
func parseSwitch(arg, on, off string) (bool, error) {
	switch strings.ToLower(arg) {
	case on, "true", "yes", "1":
		return true, nil
	case off, "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected %s or %s, got %q", on, off, arg)
	}
}

func parseBounds(args []string) (win32.Bounds, error) {
	if len(args) != 4 {
		return win32.Bounds{}, fmt.Errorf("expected x y width height")
	}

	var v [4]int32
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return win32.Bounds{}, fmt.Errorf("invalid coordinate %q", a)
		}
		v[i] = int32(n)
	}

	b := win32.Bounds{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	if b.Width <= 0 || b.Height <= 0 {
		return win32.Bounds{}, fmt.Errorf("width and height must be > 0")
	}

	return b, nil
}

func runBlur(cmd *cobra.Command, s *session, args []string) error {
	level, err := effects.ParseLevel(args[0])
	if err != nil {
		return err
	}

	color := effects.DefaultColor
	if tint, _ := cmd.Flags().GetString("tint"); tint != "" {
		if color, err = effects.ParseColor(tint); err != nil {
			return err
		}
	}

	return s.blur(level, color)
}

func (s *session) blur(level effects.Level, color effects.Color) error {
	return s.forEachTarget(func(w *window.Window, info win32.WindowInfo) error {
		got, err := w.EnableBlur(level, color)
		if err != nil {
			return err
		}

		s.log.Info("Effect applied",
			slog.String("window", info.String()),
			slog.String("requested", level.String()),
			slog.String("effective", got.String()))

		return nil
	})
}

func runZOrder(order string) sessionFunc {
	return func(_ *cobra.Command, s *session, _ []string) error {
		return s.zOrder(order)
	}
}

func (s *session) zOrder(order string) error {
	return s.forEachTarget(func(w *window.Window, _ win32.WindowInfo) error {
		switch order {
		case profile.ZOrderFront:
			return w.BringToFront()
		case profile.ZOrderBack:
			return w.BringToBack()
		default:
			return w.ClearTopmost()
		}
	})
}

func runMove(_ *cobra.Command, s *session, args []string) error {
	b, err := parseBounds(args)
	if err != nil {
		return err
	}

	return s.forEachTarget(func(w *window.Window, _ win32.WindowInfo) error {
		return w.SetPosition(b)
	})
}

func runClickThrough(_ *cobra.Command, s *session, args []string) error {
	on, err := parseSwitch(args[0], "on", "off")
	if err != nil {
		return err
	}

	return s.forEachTarget(func(w *window.Window, _ win32.WindowInfo) error {
		if on {
			return w.IgnoreMouseEvents()
		}
		return w.StopIgnoreMouseEvents()
	})
}

func runAltTab(_ *cobra.Command, s *session, args []string) error {
	show, err := parseSwitch(args[0], "show", "hide")
	if err != nil {
		return err
	}

	return s.forEachTarget(func(w *window.Window, _ win32.WindowInfo) error {
		if show {
			return w.ShowInAltTab()
		}
		return w.HideFromAltTab()
	})
}

func runMaximize(_ *cobra.Command, s *session, args []string) error {
	on, err := parseSwitch(args[0], "on", "off")
	if err != nil {
		return err
	}

	return s.forEachTarget(func(w *window.Window, _ win32.WindowInfo) error {
		return w.SetMaximizeBox(on)
	})
}

func runMonitor(_ *cobra.Command, s *session, _ []string) error {
	return s.forEachTarget(func(w *window.Window, info win32.WindowInfo) error {
		mi, err := w.MonitorInfo(win32.MONITOR_DEFAULTTONEAREST)
		if err != nil {
			return err
		}

		s.log.Info(info.String())
		s.log.Info(fmt.Sprintf("  monitor: %s", mi.DeviceName))
		s.log.Info(fmt.Sprintf("  bounds: %s", mi.Monitor))
		s.log.Info(fmt.Sprintf("  work area: %s", mi.WorkArea))
		s.log.Info(fmt.Sprintf("  primary: %t", mi.Primary()))

		if dev, ok := w.DisplayInfo(win32.MONITOR_DEFAULTTONEAREST); ok {
			s.log.Info(fmt.Sprintf("  display: %s", dev.DeviceString))
		}

		if scale, err := w.ScaleFactor(win32.MONITOR_DEFAULTTONEAREST); err == nil {
			s.log.Info(fmt.Sprintf("  scale: %.2f", scale))
		} else {
			s.log.Debug("Scale factor unavailable", slog.Any("error", err))
		}

		if dpi, err := w.Dpi(win32.MONITOR_DEFAULTTONEAREST); err == nil {
			s.log.Info(fmt.Sprintf("  dpi: %dx%d", dpi.DpiX, dpi.DpiY))
		} else {
			s.log.Debug("DPI unavailable", slog.Any("error", err))
		}

		return nil
	})
}

func runList(_ *cobra.Command, s *session, _ []string) error {
	all, err := s.desktop.Windows()
	if err != nil {
		return err
	}

	s.log.Info(fmt.Sprintf("%d windows on %s", len(all), s.desktop.Capabilities()))
	for _, w := range all {
		if w.Title == "" {
			continue
		}
		s.log.Info("  " + w.String())
	}

	return nil
}

func runApply(_ *cobra.Command, s *session, _ []string) error {
	p, err := profile.Load(s.cfg.Profile)
	if err != nil {
		return err
	}

	all, err := s.desktop.Windows()
	if err != nil {
		return err
	}

	applied, err := s.applyProfile(apply.NewApplier(s.log), p, all)
	s.log.Info(fmt.Sprintf("Profile applied to %d window(s)", applied))

	return err
}
