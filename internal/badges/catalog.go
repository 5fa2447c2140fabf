package badges

import "github.com/abhisek/numberrush/internal/problemgen"

// minPerfectAnswers is the fewest answers a perfect game needs.
const minPerfectAnswers = 5

var catalog = []Badge{
	{
		ID: FirstBlastoff, Name: "First Blastoff", Icon: "🚀", Rarity: RarityCommon,
		Description: "Finish your first game!",
		Condition:   func(p Progress) bool { return p.TotalCorrect > 0 },
	},
	{
		ID: StreakKing, Name: "Streak King", Icon: "🔥", Rarity: RarityRare,
		Description: "Get a streak of 10!",
		Condition:   func(p Progress) bool { return p.BestStreak >= 10 },
	},
	{
		ID: SpeedDemon, Name: "Speed Demon", Icon: "⚡", Rarity: RarityEpic,
		Description: "Perfect streak of 20!",
		Condition:   func(p Progress) bool { return p.BestStreak >= 20 },
	},
	{
		ID: MathMarathon, Name: "Math Marathon", Icon: "🏃", Rarity: RarityRare,
		Description: "Solve 50 questions total!",
		Condition:   func(p Progress) bool { return p.TotalCorrect >= 50 },
	},
	{
		ID: PerfectFlight, Name: "Perfect Flight", Icon: "⭐", Rarity: RarityEpic,
		Description: "100% accuracy in a Blitz game!",
		Condition: func(p Progress) bool {
			return p.Finished && len(p.Outcomes) >= minPerfectAnswers && p.AllCorrect()
		},
	},
	{
		ID: BlitzPro, Name: "Blitz Pro", Icon: "🎯", Rarity: RarityRare,
		Description: "Score over 200 points!",
		Condition:   func(p Progress) bool { return p.HighScore >= 200 },
	},
	{
		ID: ChaosLegend, Name: "Chaos Legend", Icon: "🛡️", Rarity: RarityEpic,
		Description: "Solve 25 chaos questions!",
		Condition:   func(p Progress) bool { return p.TotalChaosSolved >= 25 },
	},
	{
		ID: Brainiac, Name: "Brainiac", Icon: "🧠", Rarity: RarityLegendary,
		Description: "Reach 500 points!",
		Condition:   func(p Progress) bool { return p.HighScore >= 500 },
	},
	{
		ID: MoonWalker, Name: "Moon Walker", Icon: "🌙", Rarity: RarityCommon,
		Description: "Finish 5 games on the Moon!",
		Condition:   func(p Progress) bool { return p.GamesOn(problemgen.LevelMoon) >= 5 },
	},
	{
		ID: MarsColonist, Name: "Mars Colonist", Icon: "🔴", Rarity: RarityRare,
		Description: "Finish 5 games on Mars!",
		Condition:   func(p Progress) bool { return p.GamesOn(problemgen.LevelMars) >= 5 },
	},
	{
		ID: GalaxyGuide, Name: "Galaxy Guide", Icon: "🌌", Rarity: RarityLegendary,
		Description: "Finish 5 games in Deep Space!",
		Condition:   func(p Progress) bool { return p.GamesOn(problemgen.LevelSpace) >= 5 },
	},
}

// Catalog returns every badge in display order.
func Catalog() []Badge {
	out := make([]Badge, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the badge with the given ID.
func Lookup(id ID) (Badge, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Evaluate returns the badges in catalog order whose condition holds for p
// and that are not already in unlocked.
func Evaluate(unlocked []ID, p Progress) []ID {
	have := make(map[ID]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}

	var fresh []ID
	for _, b := range catalog {
		if have[b.ID] {
			continue
		}
		if b.Condition(p) {
			fresh = append(fresh, b.ID)
		}
	}
	return fresh
}
