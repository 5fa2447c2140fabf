package settings

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/numberrush/internal/store"
)

// Store keys. Settings are not statistics, so a stats reset keeps them.
const (
	KeyName  = "numberrush_name"
	KeyTimer = "numberrush_timer"
)

// MaxNameLen is the longest display name kept, in runes.
const MaxNameLen = 20

// DefaultTimer is the blitz countdown when nothing valid is configured.
const DefaultTimer = 10

// TimerChoices are the blitz countdowns a player may pick, in seconds.
var TimerChoices = []int{5, 10, 15, 20}

// ErrInvalidTimer is returned when a countdown is not one of TimerChoices.
var ErrInvalidTimer = errors.New("settings: timer must be one of 5, 10, 15, 20")

// Settings are the player's preferences.
type Settings struct {
	Name  string
	Timer int
}

// Repo reads and writes settings in a key-value store.
type Repo struct {
	kv store.KVRepo
}

// New creates a Repo over kv.
func New(kv store.KVRepo) *Repo {
	return &Repo{kv: kv}
}

// ValidTimer reports whether seconds is an allowed countdown.
func ValidTimer(seconds int) bool {
	return slices.Contains(TimerChoices, seconds)
}

// NormalizeName trims whitespace and cuts the name to MaxNameLen runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxNameLen {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:MaxNameLen]))
}

// Load returns the stored settings. A missing or invalid timer falls back
// to fallbackTimer, or DefaultTimer when that is not a valid choice either.
func (r *Repo) Load(ctx context.Context, fallbackTimer int) (Settings, error) {
	if !ValidTimer(fallbackTimer) {
		fallbackTimer = DefaultTimer
	}
	s := Settings{Timer: fallbackTimer}

	name, err := r.kv.Get(ctx, KeyName)
	switch {
	case err == nil:
		s.Name = NormalizeName(name)
	case !errors.Is(err, store.ErrNotFound):
		return s, fmt.Errorf("load name: %w", err)
	}

	raw, err := r.kv.Get(ctx, KeyTimer)
	switch {
	case err == nil:
		if n, convErr := strconv.Atoi(strings.TrimSpace(raw)); convErr == nil && ValidTimer(n) {
			s.Timer = n
		}
	case !errors.Is(err, store.ErrNotFound):
		return s, fmt.Errorf("load timer: %w", err)
	}

	return s, nil
}

// SetName stores the normalized name and returns it. An empty name
// removes the stored one.
func (r *Repo) SetName(ctx context.Context, name string) (string, error) {
	name = NormalizeName(name)
	if name == "" {
		if err := r.kv.Remove(ctx, KeyName); err != nil {
			return "", fmt.Errorf("clear name: %w", err)
		}
		return "", nil
	}
	if err := r.kv.Set(ctx, KeyName, name); err != nil {
		return "", fmt.Errorf("save name: %w", err)
	}
	return name, nil
}

// SetTimer stores the blitz countdown.
func (r *Repo) SetTimer(ctx context.Context, seconds int) error {
	if !ValidTimer(seconds) {
		return ErrInvalidTimer
	}
	if err := r.kv.Set(ctx, KeyTimer, strconv.Itoa(seconds)); err != nil {
		return fmt.Errorf("save timer: %w", err)
	}
	return nil
}

// NextTimer returns the choice after seconds, wrapping around.
func NextTimer(seconds int) int {
	i := slices.Index(TimerChoices, seconds)
	return TimerChoices[(i+1)%len(TimerChoices)]
}

// PrevTimer returns the choice before seconds, wrapping around.
func PrevTimer(seconds int) int {
	i := slices.Index(TimerChoices, seconds)
	if i <= 0 {
		return TimerChoices[len(TimerChoices)-1]
	}
	return TimerChoices[i-1]
}
