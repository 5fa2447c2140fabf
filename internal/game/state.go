package game

import (
	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/problemgen"
)

// Unbounded is the TimeLeft of a practice session, which has no countdown.
const Unbounded = -1

// DefaultDuration is the blitz countdown, in seconds, when none is configured.
const DefaultDuration = 10

// Status is the session lifecycle state.
type Status int

const (
	StatusIdle     Status = iota // No session, or a session was discarded
	StatusPlaying                // Accepting answers
	StatusFinished               // Timed out or ended; results are final
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Mode selects between a timed and an untimed session.
type Mode string

const (
	ModeBlitz    Mode = "blitz"
	ModePractice Mode = "practice"
)

// ParseMode maps user input to a Mode. Anything unrecognized is blitz.
func ParseMode(s string) Mode {
	if Mode(s) == ModePractice {
		return ModePractice
	}
	return ModeBlitz
}

// Label returns the display name of the mode.
func (m Mode) Label() string {
	if m == ModePractice {
		return "Practice"
	}
	return "Blitz Rush"
}

// Record is one answered question in the session history.
type Record struct {
	Question     problemgen.Question
	PlayerAnswer int
	Answered     bool // false when the input was empty or not a number
	Correct      bool
}

func cloneHistory(h []Record) []Record {
	if h == nil {
		return nil
	}
	out := make([]Record, len(h))
	for i, r := range h {
		r.Question = *r.Question.Clone()
		out[i] = r
	}
	return out
}

// Snapshot is a read-only copy of everything the presentation layer shows.
type Snapshot struct {
	Status   Status
	Mode     Mode
	Advanced bool
	Level    problemgen.Level
	Score    int
	Streak   int
	TimeLeft int
	Duration int
	Question *problemgen.Question
	History  []Record

	// NewBadges are the badges unlocked during this session, in order.
	NewBadges []badges.ID
	// NewHigh is set when this session beat the high score it started with.
	NewHigh bool

	Stats Stats
}

// Answered returns the number of questions answered this session.
func (s Snapshot) Answered() int {
	return len(s.History)
}

// Correct returns the number of correct answers this session.
func (s Snapshot) Correct() int {
	n := 0
	for _, r := range s.History {
		if r.Correct {
			n++
		}
	}
	return n
}

// Accuracy returns the fraction of correct answers, or 0 before any answer.
func (s Snapshot) Accuracy() float64 {
	if len(s.History) == 0 {
		return 0
	}
	return float64(s.Correct()) / float64(len(s.History))
}

// SessionBestStreak returns the longest run of correct answers this session.
func (s Snapshot) SessionBestStreak() int {
	best, run := 0, 0
	for _, r := range s.History {
		if r.Correct {
			run++
			best = max(best, run)
		} else {
			run = 0
		}
	}
	return best
}

// IsUnlocked reports whether the badge has been earned.
func (s Snapshot) IsUnlocked(id badges.ID) bool {
	for _, u := range s.Stats.UnlockedBadges {
		if u == id {
			return true
		}
	}
	return false
}

// Points returns the score awarded for a correct answer given the streak
// before it: 10 per tier, one tier per 5 in a row.
func Points(streak int) int {
	return 10 * (streak/5 + 1)
}

// NextLevel returns the difficulty earned by a score.
func NextLevel(score int) problemgen.Level {
	return min(problemgen.MaxLevel, problemgen.Level(score/100+1))
}
