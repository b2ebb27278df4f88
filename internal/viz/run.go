package viz

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/san-kum/asciisweep/internal/art"
	"github.com/san-kum/asciisweep/internal/sweep"
)

// Run animates img full screen until the pass completes, q is pressed, the
// process is interrupted or ctx is done. The terminal is restored before Run
// returns, on error paths too.
func Run(ctx context.Context, img *art.Image, pal sweep.Palettes, opts Options) (Stats, error) {
	if opts.Stop == nil {
		opts.Stop = &atomic.Bool{}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	defer close(done)
	go watchStop(ctx, sigCh, done, opts.Stop)

	m := NewModel(img, pal, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithoutSignalHandler())

	final, err := p.Run()
	if err != nil {
		return m.Stats(), fmt.Errorf("viz: terminal session: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Stats(), nil
	}
	return m.Stats(), nil
}

// watchStop sets stop when a signal arrives or ctx ends. It does nothing else.
func watchStop(ctx context.Context, sigCh <-chan os.Signal, done <-chan struct{}, stop *atomic.Bool) {
	select {
	case sig := <-sigCh:
		log.Debug().Str("signal", sig.String()).Msg("stop signal received")
		stop.Store(true)
	case <-ctx.Done():
		stop.Store(true)
	case <-done:
	}
}
