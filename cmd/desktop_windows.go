//go:build windows

package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/Norgate-AV/winfx/internal/interfaces"
	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/platform"
	"github.com/Norgate-AV/winfx/internal/win32"
	"github.com/Norgate-AV/winfx/internal/windows"
)

type nativeDesktop struct {
	api  *windows.WindowsAPI
	caps platform.Capabilities
	log  logger.LoggerInterface
}

func openDesktop(log logger.LoggerInterface) (Desktop, error) {
	if err := windows.EnablePerMonitorDpiAwareness(); err != nil {
		log.Debug("Per-monitor DPI awareness unavailable", slog.Any("error", err))
	}

	caps := platform.Detect()
	log.Debug("Platform detected", slog.String("platform", caps.String()))

	return &nativeDesktop{
		api:  windows.NewWindowsAPI(log),
		caps: caps,
		log:  log,
	}, nil
}

func (d *nativeDesktop) API() interfaces.NativeAPI { return d.api }
func (d *nativeDesktop) Capabilities() platform.Capabilities { return d.caps }
func (d *nativeDesktop) Windows() ([]win32.WindowInfo, error) { return d.api.EnumerateWindows() }
func (d *nativeDesktop) Foreground() uintptr { return windows.GetForegroundWindow() }
func (d *nativeDesktop) IsElevated() bool { return windows.IsElevated() }
func (d *nativeDesktop) RelaunchAsAdmin() error { return windows.RelaunchAsAdmin() }
func (d *nativeDesktop) Host(hwnd uintptr) (interfaces.Host, error) { return windows.HostFor(hwnd, d.log) }

func (d *nativeDesktop) WatchWindows(ctx context.Context, interval time.Duration) <-chan win32.WindowInfo {
	events := d.api.Client().Monitor.StartWindowMonitor(ctx, interval, false)
	out := make(chan win32.WindowInfo)

	go func() {
		defer close(out)

		for ev := range events {
			select {
			case out <- ev.WindowInfo:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (d *nativeDesktop) OnConsoleControl(handler func(event string)) error {
	return windows.SetConsoleCtrlHandler(func(ctrlType uint32) uintptr {
		handler(windows.GetCtrlTypeName(ctrlType))
		return 1
	})
}
