package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winfx/internal/apply"
	"github.com/Norgate-AV/winfx/internal/profile"
	"github.com/Norgate-AV/winfx/internal/timeouts"
	"github.com/Norgate-AV/winfx/internal/win32"
)

// applyProfile applies the first matching rule to each window and returns how
// many windows matched
func (s *session) applyProfile(applier *apply.Applier, p *profile.Profile, windows []win32.WindowInfo) (int, error) {
	applied := 0

	var errs []error
	for _, info := range windows {
		rule, ok := p.Find(info.Title, info.Class)
		if !ok {
			continue
		}

		applied++

		w, err := s.window(info.Hwnd)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if _, err := applier.Apply(w, rule); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", info, err))
		}
	}

	return applied, errors.Join(errs...)
}

// profileRunner re-applies a profile when it changes or a window appears
type profileRunner struct {
	s       *session
	applier *apply.Applier
	settle  time.Duration

	mu      sync.Mutex
	current *profile.Profile

	// Serializes rule application across the reload and window goroutines
	applyMu sync.Mutex
	pending sync.WaitGroup
}

func newProfileRunner(s *session, p *profile.Profile) *profileRunner {
	return &profileRunner{
		s:       s,
		applier: apply.NewApplier(s.log),
		settle:  timeouts.NewWindowSettlingDelay,
		current: p,
	}
}

func (r *profileRunner) profile() *profile.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current
}

func (r *profileRunner) applyAll() {
	all, err := r.s.desktop.Windows()
	if err != nil {
		r.s.log.Warn("Window enumeration failed", slog.Any("error", err))
		return
	}

	r.applyMu.Lock()
	defer r.applyMu.Unlock()

	n, err := r.s.applyProfile(r.applier, r.profile(), all)
	if err != nil {
		r.s.log.Warn("Profile partially applied", slog.Any("error", err))
	}

	r.s.log.Info("Profile applied", slog.Int("windows", n))
}

func (r *profileRunner) reload(p *profile.Profile) {
	r.mu.Lock()
	r.current = p
	r.mu.Unlock()

	r.s.log.Info("Profile reloaded", slog.Int("rules", len(p.Rules)))
	r.applyAll()
}

// windowAppeared applies the profile to a new window once it has settled
func (r *profileRunner) windowAppeared(ctx context.Context, info win32.WindowInfo) {
	r.pending.Add(1)

	go func() {
		defer r.pending.Done()

		select {
		case <-ctx.Done():
			return
		case <-time.After(r.settle):
		}

		r.applyMu.Lock()
		defer r.applyMu.Unlock()

		n, err := r.s.applyProfile(r.applier, r.profile(), []win32.WindowInfo{info})
		if err != nil {
			r.s.log.Warn("Rule failed on new window", slog.String("window", info.String()), slog.Any("error", err))
		} else if n > 0 {
			r.s.log.Info("Rule applied to new window", slog.String("window", info.String()))
		}
	}()
}

// wait waits for in-flight applications, giving up after timeout
func (r *profileRunner) wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		r.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// run applies the profile now and then on every change until ctx ends
func (r *profileRunner) run(ctx context.Context, path string) error {
	watcher, err := profile.NewWatcher(path, timeouts.ProfileReloadDebounce, r.reload, func(err error) {
		r.s.log.Warn("Profile not reloaded", slog.Any("error", err))
	})
	if err != nil {
		return fmt.Errorf("failed to watch profile: %w", err)
	}

	watcher.Start()
	defer watcher.Stop()

	r.applyAll()

	events := r.s.desktop.WatchWindows(ctx, timeouts.MonitorPollingInterval)

	for {
		select {
		case <-ctx.Done():
			if !r.wait(timeouts.ShutdownGracePeriod) {
				r.s.log.Warn("Timed out waiting for rule applications")
			}
			return nil

		case info, ok := <-events:
			if !ok {
				return nil
			}

			r.windowAppeared(ctx, info)
		}
	}
}

func runWatch(_ *cobra.Command, s *session, _ []string) error {
	p, err := profile.Load(s.cfg.Profile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Closing the console window does not raise a signal
	if err := s.desktop.OnConsoleControl(func(event string) {
		s.log.Debug("Received console control event", slog.String("type", event))
		stop()
	}); err != nil {
		s.log.Debug("Console control handler not installed", slog.Any("error", err))
	}

	s.log.Info("Watching profile", slog.String("path", s.cfg.Profile), slog.Int("rules", len(p.Rules)))

	err = newProfileRunner(s, p).run(ctx, s.cfg.Profile)

	s.log.Info("Stopped watching")

	return err
}
