package game

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/store"
)

// Persisted statistics keys.
const (
	KeyHighScore    = "numberrush_highscore"
	KeyBestStreak   = "numberrush_beststreak"
	KeyTotalCorrect = "numberrush_total_correct"
	KeyTotalChaos   = "numberrush_total_chaos"
	KeyMoonGames    = "numberrush_moon_games"
	KeyMarsGames    = "numberrush_mars_games"
	KeySpaceGames   = "numberrush_space_games"
	KeyBadges       = "numberrush_badges"
)

// StatsKeys lists every key cleared by a stats reset.
var StatsKeys = []string{
	KeyHighScore, KeyBestStreak, KeyBadges, KeyTotalCorrect,
	KeyTotalChaos, KeyMoonGames, KeyMarsGames, KeySpaceGames,
}

// levelGameKeys maps a level to its completed-game counter key.
var levelGameKeys = map[problemgen.Level]string{
	problemgen.LevelMoon:  KeyMoonGames,
	problemgen.LevelMars:  KeyMarsGames,
	problemgen.LevelSpace: KeySpaceGames,
}

// Stats are the statistics that survive across sessions.
type Stats struct {
	HighScore        int
	BestStreak       int
	TotalCorrect     int
	TotalChaosSolved int
	LevelGames       [3]int // completed games per level, index = level-1
	UnlockedBadges   []badges.ID
}

// GamesOn returns the completed-game count for a level.
func (s Stats) GamesOn(level problemgen.Level) int {
	return s.LevelGames[level.Clamp()-1]
}

func (s Stats) clone() Stats {
	s.UnlockedBadges = append([]badges.ID(nil), s.UnlockedBadges...)
	return s
}

// LoadStats reads persisted statistics from kv. Absent keys are zero.
// Corrupted values are logged and also treated as zero.
func LoadStats(ctx context.Context, kv store.KVRepo, logger *log.Logger) Stats {
	var s Stats
	s.HighScore = loadCount(ctx, kv, logger, KeyHighScore)
	s.BestStreak = loadCount(ctx, kv, logger, KeyBestStreak)
	s.TotalCorrect = loadCount(ctx, kv, logger, KeyTotalCorrect)
	s.TotalChaosSolved = loadCount(ctx, kv, logger, KeyTotalChaos)
	for level, key := range levelGameKeys {
		s.LevelGames[level-1] = loadCount(ctx, kv, logger, key)
	}

	raw, ok := loadRaw(ctx, kv, logger, KeyBadges)
	if ok {
		ids, err := badges.DecodeList(raw)
		if err != nil {
			logger.Printf("stats: ignoring corrupted %s: %v", KeyBadges, err)
		} else {
			s.UnlockedBadges = ids
		}
	}
	return s
}

func loadRaw(ctx context.Context, kv store.KVRepo, logger *log.Logger, key string) (string, bool) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return "", false
	}
	if err != nil {
		logger.Printf("stats: read %s: %v", key, err)
		return "", false
	}
	return raw, true
}

func loadCount(ctx context.Context, kv store.KVRepo, logger *log.Logger, key string) int {
	raw, ok := loadRaw(ctx, kv, logger, key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		logger.Printf("stats: ignoring corrupted %s=%q", key, raw)
		return 0
	}
	return n
}

// saveCount persists a counter. Failures are logged; play continues.
func saveCount(ctx context.Context, kv store.KVRepo, logger *log.Logger, key string, n int) {
	if err := kv.Set(ctx, key, strconv.Itoa(n)); err != nil {
		logger.Printf("stats: save %s: %v", key, err)
	}
}

func saveBadges(ctx context.Context, kv store.KVRepo, logger *log.Logger, ids []badges.ID) {
	if err := kv.Set(ctx, KeyBadges, badges.EncodeList(ids)); err != nil {
		logger.Printf("stats: save %s: %v", KeyBadges, err)
	}
}
