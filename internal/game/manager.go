package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/store"
)

// Options configures a Manager. KV is required; everything else has a default.
type Options struct {
	KV         store.KVRepo
	Results    store.ResultRepo // nil disables the results log
	Generator  *problemgen.Generator
	Clock      Clock
	Duration   int // blitz seconds per question
	PlayerName string
	Logger     *log.Logger
}

// Manager owns the live game session and the persisted statistics.
// All operations are serialized by one mutex, so countdown ticks and
// answers are applied one at a time in arrival order. Operations never
// return errors: persistence failures are logged and play continues.
type Manager struct {
	mu sync.Mutex

	kv      store.KVRepo
	results store.ResultRepo
	gen     *problemgen.Generator
	clock   Clock
	logger  *log.Logger
	events  chan Event

	duration   int
	playerName string

	status     Status
	mode       Mode
	advanced   bool
	level      problemgen.Level
	score      int
	streak     int
	timeLeft   int
	question   *problemgen.Question
	history    []Record
	newBadges  []badges.ID
	startHigh  int
	lastResult *store.GameResult

	stats Stats

	// timerGen identifies the running countdown. A tick carrying an older
	// generation belongs to a stopped timer and is ignored.
	timerGen  uint64
	stopTimer func()
}

// NewManager creates a Manager in the idle state and loads persisted
// statistics from opts.KV.
func NewManager(opts Options) *Manager {
	if opts.KV == nil {
		opts.KV = store.NewMemoryKV()
	}
	if opts.Generator == nil {
		opts.Generator = problemgen.New(nil)
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}

	m := &Manager{
		kv:         opts.KV,
		results:    opts.Results,
		gen:        opts.Generator,
		clock:      opts.Clock,
		logger:     opts.Logger,
		events:     make(chan Event, eventBuffer),
		duration:   opts.Duration,
		playerName: opts.PlayerName,
		status:     StatusIdle,
		mode:       ModeBlitz,
		level:      problemgen.LevelMoon,
		timeLeft:   opts.Duration,
	}
	m.stats = LoadStats(context.Background(), m.kv, m.logger)
	return m
}

// Events returns the notification channel. Events are dropped, not queued,
// when nobody drains it.
func (m *Manager) Events() <-chan Event {
	return m.events
}

// SetDuration changes the blitz countdown. It applies from the next
// question; an idle manager shows it immediately.
func (m *Manager) SetDuration(seconds int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if seconds <= 0 {
		seconds = DefaultDuration
	}
	m.duration = seconds
	if m.status == StatusIdle {
		m.timeLeft = seconds
	}
}

// SetPlayerName sets the name stored with finished games.
func (m *Manager) SetPlayerName(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playerName = name
}

// StartGame begins a new session. Out-of-range levels are clamped and
// unknown modes are treated as blitz.
func (m *Manager) StartGame(level problemgen.Level, mode Mode, advanced bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTimerLocked()

	if mode != ModePractice {
		mode = ModeBlitz
	}
	level = level.Clamp()

	m.status = StatusPlaying
	m.mode = mode
	m.advanced = advanced
	m.level = level
	m.score = 0
	m.streak = 0
	m.history = nil
	m.newBadges = nil
	m.lastResult = nil
	m.startHigh = m.stats.HighScore
	m.question = m.gen.Generate(level, advanced)

	if mode == ModeBlitz {
		m.timeLeft = m.duration
		m.startTimerLocked()
	} else {
		m.timeLeft = Unbounded
	}
}

// SubmitAnswer scores answer against the current question and moves on to
// the next one. It returns false without doing anything unless a session
// is playing.
func (m *Manager) SubmitAnswer(answer int) bool {
	return m.submit(answer, true)
}

// SubmitInput scores raw keypad input. Empty or non-numeric input counts
// as an incorrect answer.
func (m *Manager) SubmitInput(raw string) bool {
	n, ok := problemgen.ParseAnswer(raw)
	return m.submit(n, ok)
}

func (m *Manager) submit(answer int, answered bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusPlaying || m.question == nil {
		return false
	}

	ctx := context.Background()
	q := m.question
	correct := answered && problemgen.CheckAnswer(answer, q)

	if correct {
		m.score += Points(m.streak)
		m.streak++
		m.stats.TotalCorrect++
		saveCount(ctx, m.kv, m.logger, KeyTotalCorrect, m.stats.TotalCorrect)
		if q.IsMultiStep() {
			m.stats.TotalChaosSolved++
			saveCount(ctx, m.kv, m.logger, KeyTotalChaos, m.stats.TotalChaosSolved)
		}
	} else {
		m.streak = 0
	}

	if m.score > m.stats.HighScore {
		m.stats.HighScore = m.score
		saveCount(ctx, m.kv, m.logger, KeyHighScore, m.stats.HighScore)
	}
	if m.streak > m.stats.BestStreak {
		m.stats.BestStreak = m.streak
		saveCount(ctx, m.kv, m.logger, KeyBestStreak, m.stats.BestStreak)
	}

	// Each question gets a full countdown, measured from the answer.
	if m.mode == ModeBlitz {
		m.timeLeft = m.duration
		m.stopTimerLocked()
		m.startTimerLocked()
	}

	m.history = append(m.history, Record{
		Question:     *q.Clone(),
		PlayerAnswer: answer,
		Answered:     answered,
		Correct:      correct,
	})

	m.level = NextLevel(m.score)
	m.question = m.gen.Generate(m.level, m.advanced)

	if correct {
		m.emit(Event{Kind: EventCorrect, Score: m.score, Streak: m.streak, TimeLeft: m.timeLeft})
		if m.streak%streakMilestone == 0 {
			m.emit(Event{Kind: EventStreakMilestone, Score: m.score, Streak: m.streak, TimeLeft: m.timeLeft})
		}
	} else {
		m.emit(Event{Kind: EventIncorrect, Score: m.score, TimeLeft: m.timeLeft})
	}

	m.checkBadgesLocked(ctx)
	return correct
}

// EndGame finalizes a playing session. It is a no-op in any other state.
func (m *Manager) EndGame() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finalizeLocked()
}

// ResetGame discards the live session and returns to idle. Statistics
// already committed are kept.
func (m *Manager) ResetGame() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTimerLocked()
	m.status = StatusIdle
	m.timeLeft = m.duration
	m.score = 0
	m.streak = 0
	m.question = nil
	m.history = nil
	m.newBadges = nil
	m.lastResult = nil
}

// ResetStats clears every persisted statistic and the results log, in
// the store and in memory. The live session is left alone.
func (m *Manager) ResetStats() {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctx := context.Background()
	if err := m.kv.Remove(ctx, StatsKeys...); err != nil {
		m.logger.Printf("stats: reset: %v", err)
	}
	if m.results != nil {
		if err := m.results.Clear(ctx); err != nil {
			m.logger.Printf("stats: clear results: %v", err)
		}
	}
	m.stats = Stats{}
	m.startHigh = 0
}

// Snapshot returns a copy of the observable state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		Status:    m.status,
		Mode:      m.mode,
		Advanced:  m.advanced,
		Level:     m.level,
		Score:     m.score,
		Streak:    m.streak,
		TimeLeft:  m.timeLeft,
		Duration:  m.duration,
		History:   cloneHistory(m.history),
		NewBadges: append([]badges.ID(nil), m.newBadges...),
		NewHigh:   m.score > 0 && m.score > m.startHigh,
		Stats:     m.stats.clone(),
	}
	if m.question != nil {
		s.Question = m.question.Clone()
	}
	return s
}

// LastResult returns the results-log entry of the most recently finished
// session, or nil.
func (m *Manager) LastResult() *store.GameResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastResult == nil {
		return nil
	}
	r := *m.lastResult
	return &r
}

// Close stops the countdown, if any.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
}

func (m *Manager) startTimerLocked() {
	m.timerGen++
	gen := m.timerGen
	m.stopTimer = m.clock.Every(time.Second, func() { m.tick(gen) })
}

func (m *Manager) stopTimerLocked() {
	m.timerGen++
	if m.stopTimer != nil {
		m.stopTimer()
		m.stopTimer = nil
	}
}

// tick advances the countdown by one second. Reaching zero finalizes the
// session with TimeLeft pinned at 0.
func (m *Manager) tick(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.timerGen || m.status != StatusPlaying || m.mode != ModeBlitz {
		return
	}

	if m.timeLeft <= 1 {
		m.timeLeft = 0
		m.finalizeLocked()
		return
	}

	m.timeLeft--
	m.emit(Event{Kind: EventTick, Score: m.score, Streak: m.streak, TimeLeft: m.timeLeft})
	if float64(m.timeLeft) < float64(m.duration)*timerLowFraction {
		m.emit(Event{Kind: EventTimerLow, Score: m.score, Streak: m.streak, TimeLeft: m.timeLeft})
	}
}

// finalizeLocked ends a playing session. Only a playing session can be
// finalized, so a second call is a no-op.
func (m *Manager) finalizeLocked() {
	if m.status != StatusPlaying {
		return
	}
	m.stopTimerLocked()

	ctx := context.Background()
	level := m.level.Clamp()
	m.stats.LevelGames[level-1]++
	saveCount(ctx, m.kv, m.logger, levelGameKeys[level], m.stats.LevelGames[level-1])

	m.status = StatusFinished
	m.checkBadgesLocked(ctx)
	m.recordResultLocked(ctx)

	m.emit(Event{Kind: EventFinished, Score: m.score, Streak: m.streak, TimeLeft: m.timeLeft})
}

func (m *Manager) progressLocked() badges.Progress {
	outcomes := make([]bool, len(m.history))
	for i, r := range m.history {
		outcomes[i] = r.Correct
	}
	return badges.Progress{
		Score:            m.score,
		Streak:           m.streak,
		Finished:         m.status == StatusFinished,
		Outcomes:         outcomes,
		HighScore:        m.stats.HighScore,
		BestStreak:       m.stats.BestStreak,
		TotalCorrect:     m.stats.TotalCorrect,
		TotalChaosSolved: m.stats.TotalChaosSolved,
		LevelGames:       m.stats.LevelGames,
	}
}

// checkBadgesLocked unlocks every newly satisfied badge and persists the
// whole unlocked set.
func (m *Manager) checkBadgesLocked(ctx context.Context) {
	fresh := badges.Evaluate(m.stats.UnlockedBadges, m.progressLocked())
	if len(fresh) == 0 {
		return
	}
	m.stats.UnlockedBadges = append(m.stats.UnlockedBadges, fresh...)
	m.newBadges = append(m.newBadges, fresh...)
	saveBadges(ctx, m.kv, m.logger, m.stats.UnlockedBadges)

	for _, id := range fresh {
		m.emit(Event{Kind: EventBadgeUnlocked, Score: m.score, Streak: m.streak, TimeLeft: m.timeLeft, Badge: id})
	}
}

func (m *Manager) recordResultLocked(ctx context.Context) {
	snap := Snapshot{History: m.history}
	res := &store.GameResult{
		PlayedAt:   time.Now(),
		Mode:       string(m.mode),
		Level:      int(m.level),
		Advanced:   m.advanced,
		Score:      m.score,
		Answered:   snap.Answered(),
		Correct:    snap.Correct(),
		BestStreak: snap.SessionBestStreak(),
		PlayerName: m.playerName,
	}
	m.lastResult = res

	if m.results == nil {
		return
	}
	if err := m.results.Append(ctx, res); err != nil {
		m.logger.Printf("results: append: %v", err)
	}
}
