package play

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
	sess "github.com/abhisek/tabuada/internal/session"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/layout"
)

// answerDigits bounds typed answers; the largest product is 100.
const answerDigits = 3

// Screen runs one game. It is the engine's presenter: every event the
// engine reports lands in the fields below and is drawn by View.
type Screen struct {
	env    Env
	create func(ctx context.Context, opts sess.Options) (*sess.Engine, error)
	engine *sess.Engine
	input  components.TextInput

	// Mirrored from the presenter callbacks.
	question   string
	remaining  int
	lives      int
	maxLives   int
	score      int
	phases     []sess.PhaseProgress
	wrong      *quiz.Question
	summary    *sess.PhaseSummary
	over       *sess.GameOverSummary
	lastResult sess.Outcome

	cursor      int // phase map selection while paused
	showStats   bool
	confirmQuit bool

	warn   string // last persistence failure
	errMsg string // the game could not be started
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.EscapeHandler   = (*Screen)(nil)
	_ screen.StatusProvider  = (*Screen)(nil)
	_ sess.Presenter         = (*Screen)(nil)
)

// New returns a screen that starts a fresh game.
func New(env Env, cfg sess.GameConfig) *Screen {
	return newScreen(env, func(_ context.Context, opts sess.Options) (*sess.Engine, error) {
		return sess.NewGame(opts, cfg)
	})
}

// Continue returns a screen that resumes the saved game id.
func Continue(env Env, id string) *Screen {
	return newScreen(env, func(ctx context.Context, opts sess.Options) (*sess.Engine, error) {
		return sess.Restore(ctx, opts, id)
	})
}

func newScreen(env Env, create func(context.Context, sess.Options) (*sess.Engine, error)) *Screen {
	return &Screen{
		env:    env,
		create: create,
		input:  components.NewTextInput("?", true, answerDigits),
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startMsg{} },
		s.input.Init(),
	)
}

func (s *Screen) Title() string {
	if s.engine == nil {
		return "Play"
	}
	st := s.engine.State()
	return fmt.Sprintf("%s · %s %s", st.PlayerName, quiz.PhaseName(st.CurrentPhase), st.CurrentSubPhase)
}

// HandlesEscape reports that Esc pauses the game instead of leaving it.
func (s *Screen) HandlesEscape() bool {
	return true
}

// Status shows lives and score in the header.
func (s *Screen) Status() string {
	if s.engine == nil {
		return ""
	}
	return fmt.Sprintf("%s  ★ %d", components.Hearts(s.lives, s.maxLives), s.score)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.engine == nil:
		return nil
	case s.over != nil:
		return []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave game"},
			{Key: "N", Description: "Keep playing"},
		}
	}

	st := s.engine.State()
	if !st.Paused {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Pause"},
		}
	}

	switch st.PauseReason {
	case sess.PauseWrongAnswer:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case sess.PauseManual:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Resume"},
			{Key: "←→", Description: "Phase"},
			{Key: "G", Description: "Go to phase"},
			{Key: "S", Description: "Stats"},
			{Key: "Q", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Q", Description: "Quit"},
		}
	}
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.engine == nil {
		return renderLoading(width, height)
	}
	if s.over != nil {
		return s.renderGameOver(width, height)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	st := s.engine.State()
	if !st.Paused {
		return s.renderQuestion(width, height, st)
	}
	switch st.PauseReason {
	case sess.PauseWrongAnswer:
		return s.renderWrongAnswer(width, height)
	case sess.PauseNextPhase:
		return s.renderPhaseIntro(width, height, st)
	case sess.PauseManual:
		if s.showStats {
			return s.renderStats(width, height, st)
		}
		return s.renderPauseMenu(width, height, st)
	default:
		return s.renderReady(width, height, st)
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return s.handleStart()

	case timerTickMsg:
		if msg.owner != s {
			return s, nil
		}
		return s.handleTick()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleStart() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	engine, err := s.create(ctx, s.env.options(s))
	if err != nil {
		s.env.logger().Error("start game failed", "error", err)
		s.errMsg = err.Error()
		return s, nil
	}
	s.engine = engine
	s.report(engine.Start(ctx))
	return s, s.tickCmd()
}

func (s *Screen) handleTick() (screen.Screen, tea.Cmd) {
	if s.engine == nil || s.over != nil {
		return s, nil
	}
	s.report(s.engine.Tick(context.Background()))
	if s.over != nil {
		return s, nil
	}
	return s, s.tickCmd()
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.engine == nil {
		return s, nil
	}
	if s.over != nil {
		if key == "enter" || key == "esc" || key == "q" {
			return s, leave
		}
		return s, nil
	}
	if s.confirmQuit {
		switch key {
		case "y":
			s.report(s.engine.Save(context.Background()))
			return s, leave
		case "n", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	st := s.engine.State()
	if !st.Paused {
		return s.handleAnswerKey(msg)
	}

	switch st.PauseReason {
	case sess.PauseWrongAnswer:
		s.resume()
	case sess.PauseManual:
		s.handlePauseMenuKey(key, st)
	default:
		switch key {
		case "enter", "space", " ":
			s.resume()
		case "q", "esc":
			s.confirmQuit = true
		}
	}
	return s, nil
}

func (s *Screen) handleAnswerKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "p":
		s.engine.Pause(sess.PauseManual)
		s.cursor = s.phaseIndex(s.engine.State().CurrentPhase)
		s.showStats = false
		return s, nil

	case "enter":
		if s.input.Value() == "" {
			return s, nil
		}
		outcome, err := s.engine.SubmitAnswer(context.Background(), s.input.Value())
		s.report(err)
		s.input.Reset()
		if outcome != sess.OutcomeIgnored {
			s.lastResult = outcome
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handlePauseMenuKey(key string, st sess.State) {
	if s.showStats {
		if key == "s" || key == "esc" {
			s.showStats = false
		}
		return
	}

	switch key {
	case "esc", "p", "enter":
		s.resume()
	case "left", "h":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor < len(s.phases)-1 && s.phases[s.cursor+1].Phase <= st.HighestPhase {
			s.cursor++
		}
	case "g":
		if s.cursor < 0 || s.cursor >= len(s.phases) {
			return
		}
		err := s.engine.ChangePhase(context.Background(), s.phases[s.cursor].Phase)
		if errors.Is(err, sess.ErrPhaseLocked) {
			return
		}
		s.report(err)
	case "s":
		s.showStats = true
	case "q":
		s.confirmQuit = true
	}
}

func (s *Screen) resume() {
	s.wrong = nil
	s.summary = nil
	s.showStats = false
	s.input.Reset()
	s.engine.Resume()
}

// report records a persistence failure. The game keeps running.
func (s *Screen) report(err error) {
	if err == nil {
		return
	}
	s.env.logger().Warn("game event not saved", "error", err)
	s.warn = "Progress not saved: " + err.Error()
}

func (s *Screen) phaseIndex(phase int) int {
	for i, p := range s.phases {
		if p.Phase == phase {
			return i
		}
	}
	return 0
}

func (s *Screen) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{owner: s}
	})
}

func leave() tea.Msg {
	return router.PopToRootMsg{Refresh: RefreshMsg{}}
}

// Presenter callbacks.

func (s *Screen) QuestionChanged(multiplicand, multiplier int) {
	s.question = quiz.NewQuestion(multiplicand, multiplier).Text()
	s.input.Reset()
}

func (s *Screen) TimerChanged(remaining int) {
	s.remaining = remaining
}

func (s *Screen) LivesChanged(lives, maxLives int) {
	s.lives, s.maxLives = lives, maxLives
}

func (s *Screen) ScoreChanged(score int) {
	s.score = score
}

func (s *Screen) PhaseProgressChanged(phases []sess.PhaseProgress) {
	s.phases = phases
}

func (s *Screen) WrongAnswer(q quiz.Question) {
	s.wrong = &q
}

func (s *Screen) PhaseCompleted(summary sess.PhaseSummary) {
	s.summary = &summary
}

func (s *Screen) GameOver(summary sess.GameOverSummary) {
	s.over = &summary
}
