//go:build windows

package windows

import (
	"context"
	"log/slog"
	"time"

	"github.com/Norgate-AV/winfx/internal/logger"
)

// monitorManager watches for new top-level windows
type monitorManager struct {
	log logger.LoggerInterface
}

// newMonitorManager creates a new monitor manager
func newMonitorManager(log logger.LoggerInterface) *monitorManager {
	return &monitorManager{log: log}
}

// StartWindowMonitor launches a background goroutine that enumerates windows
// every interval and sends each window it has not seen before. Windows that
// exist when the monitor starts are sent only if includeExisting is set.
// The channel is closed when the context is canceled.
func (m *monitorManager) StartWindowMonitor(ctx context.Context, interval time.Duration, includeExisting bool) <-chan WindowEvent {
	events := make(chan WindowEvent, 64)
	seen := make(map[uintptr]bool)

	if !includeExisting {
		if windows, err := EnumerateWindows(); err == nil {
			for _, w := range windows {
				seen[w.Hwnd] = true
			}
		}
	}

	go func() {
		defer close(events)

		m.log.Debug("Window monitor started", slog.Duration("interval", interval))

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			windows, err := EnumerateWindows()
			if err != nil {
				m.log.Warn("Window enumeration failed", slog.Any("error", err))
			}

			current := make(map[uintptr]bool, len(windows))

			for _, w := range windows {
				current[w.Hwnd] = true
				if seen[w.Hwnd] {
					continue
				}
				seen[w.Hwnd] = true

				m.log.Debug("Window detected",
					slog.Uint64("hwnd", uint64(w.Hwnd)),
					slog.Uint64("pid", uint64(w.Pid)),
					slog.String("class", w.Class),
					slog.String("title", w.Title),
				)

				select {
				case events <- WindowEvent{WindowInfo: w}:
				case <-ctx.Done():
					m.log.Debug("Window monitor stopped")
					return
				}
			}

			// Forget closed windows so a reused handle is reported again
			if err == nil {
				for hwnd := range seen {
					if !current[hwnd] {
						delete(seen, hwnd)
					}
				}
			}

			select {
			case <-ctx.Done():
				m.log.Debug("Window monitor stopped")
				return
			case <-ticker.C:
			}
		}
	}()

	return events
}
