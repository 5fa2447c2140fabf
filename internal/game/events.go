package game

import "github.com/abhisek/numberrush/internal/badges"

// EventKind names a notification emitted by the Manager.
type EventKind int

const (
	EventCorrect EventKind = iota
	EventIncorrect
	EventTick
	EventTimerLow
	EventStreakMilestone
	EventBadgeUnlocked
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventCorrect:
		return "correct"
	case EventIncorrect:
		return "incorrect"
	case EventTick:
		return "tick"
	case EventTimerLow:
		return "timer_low"
	case EventStreakMilestone:
		return "streak_milestone"
	case EventBadgeUnlocked:
		return "badge_unlocked"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for sound and animation.
type Event struct {
	Kind     EventKind
	Score    int
	Streak   int
	TimeLeft int
	Badge    badges.ID // set for EventBadgeUnlocked
}

// eventBuffer is the capacity of the Events channel.
const eventBuffer = 64

// streakMilestone is the run length that earns a milestone event.
const streakMilestone = 5

// timerLowFraction is the share of the countdown below which ticks are "low".
const timerLowFraction = 0.4

// emit sends without blocking; a full channel drops the event.
func (m *Manager) emit(e Event) {
	select {
	case m.events <- e:
	default:
	}
}
