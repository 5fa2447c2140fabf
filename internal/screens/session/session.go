package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/screens/summary"
	"github.com/abhisek/numberrush/internal/ui/components"
	"github.com/abhisek/numberrush/internal/ui/layout"
)

// feedbackDuration is how long the correct/incorrect flash stays up.
const feedbackDuration = 700 * time.Millisecond

// inputLimit caps the answer buffer, sign included.
const inputLimit = 4

// Setup is what the player picked on the launch pad.
type Setup struct {
	Mode     game.Mode
	Level    problemgen.Level
	Advanced bool
}

// feedback describes the last answer for the flash line.
type feedback struct {
	correct  bool
	points   int
	question problemgen.Question
}

// SessionScreen runs one game: question, countdown, keypad and quit dialog.
type SessionScreen struct {
	deps  screen.Deps
	setup Setup

	input string
	pad   components.Numpad

	showingQuitConfirm bool
	feedback           *feedback
	feedbackSeq        int
	done               bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.BackInterceptor = (*SessionScreen)(nil)

// New creates a game screen. The game starts when the screen is pushed.
func New(deps screen.Deps, setup Setup) *SessionScreen {
	return &SessionScreen{
		deps:  deps,
		setup: setup,
		pad:   components.NewNumpad(),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.deps.Game.StartGame(s.setup.Level, s.setup.Mode, s.setup.Advanced)
	return nil
}

func (s *SessionScreen) Title() string {
	return s.setup.Mode.Label()
}

// InterceptsBack keeps Esc for the quit dialog.
func (s *SessionScreen) InterceptsBack() bool {
	return true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "D", Description: "Discard"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Type"},
		{Key: "Enter", Description: "Submit"},
		{Key: "←↑↓→", Description: "Keypad"},
		{Key: "Space", Description: "Press key"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, s.setup.Mode)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case game.Event:
		if msg.Kind == game.EventFinished {
			return s, s.finish()
		}
		return s, nil

	case feedbackDoneMsg:
		if msg.seq == s.feedbackSeq {
			s.feedback = nil
		}
		return s, nil

	case components.PadPressedMsg:
		if msg.Key == components.PadSubmit {
			return s, s.submit()
		}
		s.input = components.ApplyPadKey(s.input, msg.Key, inputLimit)
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch msg.String() {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.deps.Game.EndGame()
			return s, s.finish()
		case "d", "D":
			s.showingQuitConfirm = false
			s.done = true
			s.deps.Game.ResetGame()
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	key := msg.String()
	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s, s.submit()
	case "backspace":
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
		return s, nil
	case "-":
		s.input = components.ApplyPadKey(s.input, components.PadMinus, inputLimit)
		return s, nil
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		s.input = components.ApplyPadKey(s.input, key, inputLimit)
		return s, nil
	}

	var cmd tea.Cmd
	s.pad, cmd = s.pad.Update(msg)
	return s, cmd
}

// submit scores the buffer and flashes the result. An empty buffer is
// ignored so a stray Enter does not cost a streak.
func (s *SessionScreen) submit() tea.Cmd {
	if s.done || s.input == "" {
		return nil
	}
	before := s.deps.Game.Snapshot()
	if before.Status != game.StatusPlaying || before.Question == nil {
		return nil
	}

	s.deps.Game.SubmitInput(s.input)
	after := s.deps.Game.Snapshot()
	s.input = ""

	fb := scoredFeedback(before, after)
	if fb == nil {
		return nil
	}
	s.feedbackSeq++
	s.feedback = fb
	seq := s.feedbackSeq
	return tea.Tick(feedbackDuration, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

// scoredFeedback describes the answer recorded between two snapshots. The
// countdown can end the game between them, in which case nothing was
// scored, the result is nil and the finished event takes over.
func scoredFeedback(before, after game.Snapshot) *feedback {
	if len(after.History) <= len(before.History) {
		return nil
	}
	scored := after.History[len(after.History)-1]
	return &feedback{
		correct:  scored.Correct,
		points:   after.Score - before.Score,
		question: *scored.Question.Clone(),
	}
}

// finish replaces this screen with the results, once.
func (s *SessionScreen) finish() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	deps, setup := s.deps, s.setup
	results := summary.New(deps, func() screen.Screen { return New(deps, setup) })
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results}
	}
}
