package badges

import "github.com/abhisek/numberrush/internal/problemgen"

// ID identifies a badge. IDs are persisted, so they never change.
type ID string

const (
	FirstBlastoff ID = "first_blastoff"
	StreakKing    ID = "streak_king"
	SpeedDemon    ID = "speed_demon"
	MathMarathon  ID = "math_marathon"
	PerfectFlight ID = "perfect_flight"
	BlitzPro      ID = "blitz_pro"
	ChaosLegend   ID = "chaos_legend"
	Brainiac      ID = "brainiac"
	MoonWalker    ID = "moon_walker"
	MarsColonist  ID = "mars_colonist"
	GalaxyGuide   ID = "galaxy_guide"
)

// Badge is a catalog entry. Condition is a pure predicate over Progress.
type Badge struct {
	ID          ID
	Name        string
	Icon        string
	Description string
	Rarity      Rarity
	Condition   func(Progress) bool
}

// Progress is the combined session and lifetime state badge conditions read.
type Progress struct {
	// Session.
	Score    int
	Streak   int
	Finished bool
	Outcomes []bool // correctness of each answer this session, in order

	// Lifetime.
	HighScore        int
	BestStreak       int
	TotalCorrect     int
	TotalChaosSolved int
	LevelGames       [3]int // completed games per level, index = level-1
}

// GamesOn returns the completed-game count for a level.
func (p Progress) GamesOn(level problemgen.Level) int {
	level = level.Clamp()
	return p.LevelGames[level-1]
}

// AllCorrect reports whether every answer this session was correct.
// It is false when nothing has been answered.
func (p Progress) AllCorrect() bool {
	if len(p.Outcomes) == 0 {
		return false
	}
	for _, ok := range p.Outcomes {
		if !ok {
			return false
		}
	}
	return true
}
