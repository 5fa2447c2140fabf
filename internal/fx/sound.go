package fx

import (
	"io"
	"sync"
	"time"

	"github.com/abhisek/numberrush/internal/game"
)

// Cue is a short sound pattern.
type Cue struct {
	Name string
	// Beeps is the number of bell strokes; Gap separates them.
	Beeps int
	Gap   time.Duration
}

var (
	CueCorrect   = Cue{Name: "correct", Beeps: 1}
	CueIncorrect = Cue{Name: "incorrect", Beeps: 2, Gap: 120 * time.Millisecond}
	CueTick      = Cue{Name: "tick", Beeps: 1}
	CueMilestone = Cue{Name: "milestone", Beeps: 2, Gap: 80 * time.Millisecond}
	CueBadge     = Cue{Name: "badge", Beeps: 3, Gap: 100 * time.Millisecond}
	CueFinish    = Cue{Name: "finish", Beeps: 3, Gap: 100 * time.Millisecond}
)

// CueFor maps a game event to its cue. Plain ticks are silent; only the
// low-timer tick is heard.
func CueFor(e game.Event) (Cue, bool) {
	switch e.Kind {
	case game.EventCorrect:
		return CueCorrect, true
	case game.EventIncorrect:
		return CueIncorrect, true
	case game.EventTimerLow:
		return CueTick, true
	case game.EventStreakMilestone:
		return CueMilestone, true
	case game.EventBadgeUnlocked:
		return CueBadge, true
	case game.EventFinished:
		return CueFinish, true
	default:
		return Cue{}, false
	}
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
}

// Bell plays cues as terminal bell characters written to w.
type Bell struct {
	mu    sync.Mutex // guards muted
	muted bool

	// ringing serializes cues on w so strokes of two cues never interleave.
	// Play never takes it.
	ringing sync.Mutex
	w       io.Writer
	sleep   func(time.Duration)
}

// NewBell creates a Bell writing to w, typically os.Stderr.
func NewBell(w io.Writer, muted bool) *Bell {
	return &Bell{w: w, muted: muted, sleep: time.Sleep}
}

// SetMuted turns sound off or on.
func (b *Bell) SetMuted(muted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = muted
}

// Muted reports whether sound is off.
func (b *Bell) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// Play rings the bell for c in the background.
func (b *Bell) Play(c Cue) {
	if b.Muted() || c.Beeps <= 0 {
		return
	}
	go b.ring(c)
}

func (b *Bell) ring(c Cue) {
	b.ringing.Lock()
	defer b.ringing.Unlock()
	for i := 0; i < c.Beeps; i++ {
		if i > 0 && c.Gap > 0 {
			b.sleep(c.Gap)
		}
		_, _ = io.WriteString(b.w, "\a")
	}
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Play(Cue) {}
