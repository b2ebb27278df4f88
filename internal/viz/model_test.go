package viz

import (
	"context"
	"os"
	"regexp"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/san-kum/asciisweep/internal/art"
	"github.com/san-kum/asciisweep/internal/sweep"
)

// countingSource returns the low end of every range and counts draws by kind.
type countingSource struct {
	jitter    int
	rotations int
}

func (s *countingSource) Intn(lo, hi int) int {
	switch {
	case lo == 1 && hi == 15:
		s.jitter++
	case lo == 1 && hi == 3:
		s.rotations++
	}
	return lo
}

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

// drive feeds the model its own commands until it quits or limit frames were drawn.
func drive(m Model, limit int) (Model, bool) {
	msg := m.Init()()
	for i := 0; i < limit*2+2; i++ {
		next, cmd := m.Update(msg)
		m = next.(Model)
		if cmd == nil {
			return m, false
		}
		if m.Stats().Frames >= limit {
			return m, false
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return m, true
		}
	}
	return m, false
}

var _ = Describe("Model", func() {
	var (
		img    *art.Image
		src    *countingSource
		stop   *atomic.Bool
		logger zerolog.Logger
	)

	newModel := func(forever bool) Model {
		return NewModel(img, sweep.DefaultPalettes(), Options{
			Forever: forever,
			Delay:   time.Millisecond,
			Step:    sweep.DefaultStep,
			Rand:    src,
			Stop:    stop,
			Logger:  &logger,
		})
	}

	BeforeEach(func() {
		img = art.Parse("AB\nCD\n")
		src = &countingSource{}
		stop = &atomic.Bool{}
		logger = zerolog.Nop()
	})

	Describe("single pass", func() {
		It("evaluates every cell for every sweep time and rotates once", func() {
			m, quit := drive(newModel(false), 100)

			Expect(quit).To(BeTrue())
			Expect(src.jitter).To(Equal(5 * 4))
			Expect(src.rotations).To(Equal(1))
			Expect(m.Stats()).To(Equal(Stats{Frames: 5, Rotations: 1, Passes: 1}))
		})

		It("ignores other keys", func() {
			m := newModel(false)
			next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
			Expect(cmd).To(BeNil())
			Expect(next.(Model).Stats().Stopped).To(BeFalse())
		})
	})

	Describe("forever mode", func() {
		It("restarts the timeline after the last sweep time", func() {
			img = art.Parse("1\n2\n3\n4\n5\n")
			m := newModel(true)

			var seen []int
			msg := m.Init()()
			for len(seen) < 22 {
				seen = append(seen, m.Time())
				next, cmd := m.Update(msg)
				m = next.(Model)
				msg = cmd()
				Expect(msg).To(BeAssignableToTypeOf(frameMsg{}))
			}

			pass := []int{-15, -12, -9, -6, -3, 0, 3, 6, 9, 12, 15}
			Expect(seen).To(Equal(append(append([]int{}, pass...), pass...)))
			Expect(m.Stats().Rotations).To(Equal(2))
			Expect(m.Stats().Passes).To(Equal(2))
		})

		It("keeps drawing past a full pass", func() {
			m, quit := drive(newModel(true), 12)
			Expect(quit).To(BeFalse())
			Expect(m.Stats().Frames).To(Equal(12))
			Expect(src.jitter).To(Equal(12 * 4))
		})
	})

	Describe("stopping", func() {
		DescribeTable("quit keys set the stop flag",
			func(key tea.KeyMsg) {
				next, cmd := newModel(true).Update(key)
				Expect(stop.Load()).To(BeTrue())
				Expect(cmd).NotTo(BeNil())
				Expect(cmd()).To(Equal(tea.QuitMsg{}))
				Expect(next.(Model).Stats().Stopped).To(BeTrue())
			},
			Entry("q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}),
			Entry("Q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}}),
			Entry("ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}),
		)

		It("draws no further frame once the flag is set", func() {
			m := newModel(true)
			next, _ := m.Update(frameMsg{})
			m = next.(Model)
			drawn := m.View()

			stop.Store(true)
			next, cmd := m.Update(frameMsg{})
			m = next.(Model)

			Expect(cmd()).To(Equal(tea.QuitMsg{}))
			Expect(m.Stats().Frames).To(Equal(1))
			Expect(m.View()).To(Equal(drawn))
			Expect(src.jitter).To(Equal(4))
		})

		It("stops mid-pass in single pass mode", func() {
			m := newModel(false)
			next, _ := m.Update(frameMsg{})
			stop.Store(true)
			m, quit := drive(next.(Model), 100)
			Expect(quit).To(BeTrue())
			Expect(m.Stats().Frames).To(Equal(1))
			Expect(m.Stats().Rotations).To(BeZero())
		})
	})

	Describe("layout", func() {
		frameAt := func(m Model, w, h int) []string {
			next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
			next, _ = next.(Model).Update(frameMsg{})
			return strings.Split(plain(next.(Model).View()), "\n")
		}

		It("centers the image in a larger terminal", func() {
			Expect(frameAt(newModel(false), 10, 6)).To(Equal([]string{"", "", "    AB", "    CD"}))
		})

		It("anchors at the origin in a smaller terminal", func() {
			Expect(frameAt(newModel(false), 1, 1)).To(Equal([]string{"AB", "CD"}))
		})

		It("only paints characters present on each line", func() {
			img = art.Parse("ABCD\nE\n")
			lines := frameAt(newModel(false), 4, 2)
			Expect(lines).To(Equal([]string{"ABCD", "E"}))
			Expect(src.jitter).To(Equal(5))
		})

		DescribeTable("offsets",
			func(rows, cols, h, w, wantY, wantX int) {
				y, x := offsets(rows, cols, h, w)
				Expect([]int{y, x}).To(Equal([]int{wantY, wantX}))
			},
			Entry("larger terminal", 24, 80, 4, 20, 10, 30),
			Entry("equal size", 4, 20, 4, 20, 0, 0),
			Entry("narrow terminal", 24, 10, 4, 20, 10, 0),
			Entry("short terminal", 2, 80, 4, 20, 0, 30),
			Entry("unknown size", 0, 0, 4, 20, 0, 0),
		)
	})

	Describe("palettes", func() {
		It("rotates the incoming palette on the t == 0 frame", func() {
			m, _ := drive(newModel(false), 3)
			want := sweep.DefaultPalettes()
			want.Incoming = sweep.Palette{sweep.Grey, sweep.Yellow, sweep.Blue, sweep.Magenta, sweep.Cyan, sweep.Green, sweep.Red}
			Expect(m.Palettes()).To(Equal(want))
		})
	})
})

var _ = Describe("watchStop", func() {
	It("sets the flag on a signal", func() {
		stop := &atomic.Bool{}
		sigCh := make(chan os.Signal, 1)
		sigCh <- syscall.SIGINT
		watchStop(context.Background(), sigCh, make(chan struct{}), stop)
		Expect(stop.Load()).To(BeTrue())
	})

	It("sets the flag when the context ends", func() {
		stop := &atomic.Bool{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		watchStop(ctx, make(chan os.Signal), make(chan struct{}), stop)
		Expect(stop.Load()).To(BeTrue())
	})

	It("leaves the flag alone on shutdown", func() {
		stop := &atomic.Bool{}
		done := make(chan struct{})
		close(done)
		watchStop(context.Background(), make(chan os.Signal), done, stop)
		Expect(stop.Load()).To(BeFalse())
	})
})
