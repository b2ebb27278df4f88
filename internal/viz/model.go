package viz

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/san-kum/asciisweep/internal/art"
	"github.com/san-kum/asciisweep/internal/sweep"
)

type frameMsg struct{}

// Options configures the render loop.
type Options struct {
	Forever bool
	Delay   time.Duration
	Step    int
	// Rand supplies cell jitter and rotation indexes. Defaults to an unseeded source.
	Rand sweep.Source
	// Stop is the shared stop flag. One is allocated when nil.
	Stop   *atomic.Bool
	Logger *zerolog.Logger
}

// Model is the render loop. It owns the sweep time and the palettes.
type Model struct {
	img     *art.Image
	pal     sweep.Palettes
	rng     sweep.Source
	styles  *styleSet
	stop    *atomic.Bool
	logger  zerolog.Logger
	forever bool
	delay   time.Duration

	times []int
	idx   int

	width, height int
	frame         string
	frames        int
	rotations     int
	passes        int
	finished      bool
}

// NewModel builds a render loop positioned at the first sweep time.
func NewModel(img *art.Image, pal sweep.Palettes, opts Options) Model {
	rng := opts.Rand
	if rng == nil {
		rng = sweep.NewSource(0)
	}
	stop := opts.Stop
	if stop == nil {
		stop = &atomic.Bool{}
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return Model{
		img:     img,
		pal:     pal,
		rng:     rng,
		styles:  newStyleSet(),
		stop:    stop,
		logger:  logger,
		forever: opts.Forever,
		delay:   opts.Delay,
		times:   sweep.Timeline(img.Height(), opts.Step),
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return frameMsg{} }
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return frameMsg{} })
}

// Update handles input, terminal size and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q":
			m.logger.Debug().Msg("quit key pressed")
			m.stop.Store(true)
			return m, tea.Quit
		case "ctrl+c":
			m.logger.Debug().Msg("interrupt key pressed")
			m.stop.Store(true)
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case frameMsg:
		return m.step()
	}
	return m, nil
}

func (m Model) step() (tea.Model, tea.Cmd) {
	if m.stop.Load() {
		m.logger.Debug().Int("frames", m.frames).Msg("stop requested")
		return m, tea.Quit
	}
	if m.finished {
		m.logger.Debug().Int("frames", m.frames).Msg("single pass complete")
		return m, tea.Quit
	}

	t := m.times[m.idx]
	m.frame = m.compose(t)
	m.frames++

	if t == 0 {
		idx := m.pal.Rotate(m.rng)
		m.rotations++
		m.logger.Debug().
			Int("index", idx).
			Stringer("moved", m.pal.Incoming.Last()).
			Msg("palette rotated")
	}

	m.idx++
	if m.idx == len(m.times) {
		m.idx = 0
		m.passes++
		if !m.forever {
			m.finished = true
		}
	}
	return m, m.tick()
}

func (m Model) View() string {
	return m.frame
}

// Time returns the sweep time of the next frame.
func (m Model) Time() int {
	return m.times[m.idx]
}

// Palettes returns the current palettes.
func (m Model) Palettes() sweep.Palettes {
	return m.pal
}

// Stats summarizes a finished or running loop.
type Stats struct {
	Frames    int
	Rotations int
	Passes    int
	Stopped   bool
}

func (m Model) Stats() Stats {
	return Stats{
		Frames:    m.frames,
		Rotations: m.rotations,
		Passes:    m.passes,
		Stopped:   m.stop.Load(),
	}
}
