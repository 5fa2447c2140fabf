package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

const (
	frame     = 100 * time.Millisecond
	countStep = 500 * time.Millisecond
	liftStep  = 250 * time.Millisecond

	ignitionAt = 3 * countStep
	bannerAt   = ignitionAt + 4*liftStep
	// No more frames are scheduled after this.
	settledAt = bannerAt + 500*time.Millisecond
)

const rocketArt = `    /\
   /  \
  | 12 |
  | +7 |
 /|    |\
/_|____|_\`

var flames = [...]string{"  ' ** '", "  * '' *"}

type frameMsg time.Time

type phase int

const (
	phaseCountdown phase = iota
	phaseLiftoff
	phaseBanner
)

// WelcomeScreen counts down, launches the rocket, shows the banner and
// waits for a key before handing over to the launch pad.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	frames  int
	leaving bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next's screen.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.leaving || w.elapsed >= settledAt {
			return w, nil
		}
		w.elapsed += frame
		w.frames++
		return w, nextFrame()

	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

func (w *WelcomeScreen) leave() tea.Cmd {
	if w.leaving {
		return nil
	}
	w.leaving = true
	s := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
}

func (w *WelcomeScreen) phase() phase {
	switch {
	case w.elapsed < ignitionAt:
		return phaseCountdown
	case w.elapsed < bannerAt:
		return phaseLiftoff
	default:
		return phaseBanner
	}
}

// countdown returns 3, 2 or 1 before ignition and 0 after.
func (w *WelcomeScreen) countdown() int {
	if w.elapsed >= ignitionAt {
		return 0
	}
	return 3 - int(w.elapsed/countStep)
}

// lift returns how many rows the rocket has climbed.
func (w *WelcomeScreen) lift() int {
	if w.elapsed < ignitionAt {
		return 0
	}
	return min(4, int((w.elapsed-ignitionAt)/liftStep))
}

func (w *WelcomeScreen) View(width, height int) string {
	star := "✦"
	if w.frames%2 == 1 {
		star = "·"
	}
	star = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(star)

	var lines []string
	switch w.phase() {
	case phaseCountdown, phaseLiftoff:
		rocket := lipgloss.NewStyle().Foreground(theme.Primary).Render(rocketArt)
		caption := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
		label := caption.Render(fmt.Sprintf("T-%d", w.countdown()))
		if w.phase() == phaseLiftoff {
			rocket += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(flames[w.frames%len(flames)])
			label = caption.Render("LIFTOFF!")
		}
		rocket += strings.Repeat("\n", 4-w.lift())
		lines = append(lines, star+"        "+star, rocket, "", label)

	case phaseBanner:
		lines = append(lines,
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render(star+"  Ready for liftoff!  "+star),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
