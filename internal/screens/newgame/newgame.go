package newgame

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
	"github.com/abhisek/tabuada/internal/screens/play"
	sess "github.com/abhisek/tabuada/internal/session"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/layout"
	"github.com/abhisek/tabuada/internal/ui/theme"
)

const nameLimit = 20

type field int

const (
	fieldName field = iota
	fieldDifficulty
	fieldLives
	fieldStart
	fieldCount
)

// Screen is the new game form: player name, difficulty and lives.
type Screen struct {
	env        play.Env
	name       components.TextInput
	difficulty quiz.Difficulty
	lives      int
	focus      field
	errMsg     string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New creates the form with the configured defaults.
func New(env play.Env) *Screen {
	difficulty := env.Defaults.Difficulty
	if _, err := quiz.ParseDifficulty(string(difficulty)); err != nil {
		difficulty = quiz.DifficultyMedium
	}
	lives := env.Defaults.MaxLives
	if quiz.ValidateLives(lives) != nil {
		lives = quiz.DefaultMaxLives
	}

	name := components.NewTextInput("your name", false, nameLimit)
	name.SetValue(env.Defaults.PlayerName)

	return &Screen{
		env:        env,
		name:       name,
		difficulty: difficulty,
		lives:      lives,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *Screen) Title() string {
	return "New Game"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "shift+tab":
		s.focus = (s.focus + fieldCount - 1) % fieldCount
		return s, nil
	case "down", "tab":
		s.focus = (s.focus + 1) % fieldCount
		return s, nil
	case "enter":
		return s, s.submit()
	case "left", "right":
		step := 1
		if kmsg.String() == "left" {
			step = -1
		}
		switch s.focus {
		case fieldDifficulty:
			s.cycleDifficulty(step)
			return s, nil
		case fieldLives:
			s.lives = max(quiz.MinLives, min(s.lives+step, quiz.MaxLivesLimit))
			return s, nil
		}
	}

	if s.focus != fieldName {
		return s, nil
	}
	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	s.errMsg = ""
	return s, cmd
}

func (s *Screen) cycleDifficulty(step int) {
	all := quiz.AllDifficulties()
	i := slices.Index(all, s.difficulty)
	s.difficulty = all[(i+step+len(all))%len(all)]
}

// config returns the game choices, or an error message.
func (s *Screen) config() (sess.GameConfig, string) {
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		return sess.GameConfig{}, "Please type a name"
	}
	return sess.GameConfig{
		PlayerName: name,
		Difficulty: s.difficulty,
		MaxLives:   s.lives,
	}, ""
}

func (s *Screen) submit() tea.Cmd {
	cfg, errMsg := s.config()
	if errMsg != "" {
		s.errMsg = errMsg
		s.focus = fieldName
		return nil
	}
	game := play.New(s.env, cfg)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: game}
	}
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	label := func(f field, text string) string {
		style := lipgloss.NewStyle().Width(12).Foreground(theme.TextDim)
		if s.focus == f {
			style = style.Foreground(theme.ArcadeYellow).Bold(true)
		}
		return style.Render(text)
	}
	value := func(f field, text string) string {
		if s.focus == f {
			return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("◂ " + text + " ▸")
		}
		return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + text + "  ")
	}

	settings := s.difficulty.Settings()
	rows := []string{
		label(fieldName, "Name") + s.name.View(),
		label(fieldDifficulty, "Difficulty") + value(fieldDifficulty, s.difficulty.DisplayName()),
		label(fieldLives, "Lives") + value(fieldLives, fmt.Sprintf("%d", s.lives)) + "  " + components.Hearts(s.lives, s.lives),
	}
	hint := theme.Hint.Render(fmt.Sprintf("%ds per question", settings.BaseSeconds()))

	var sections []string
	sections = append(sections, components.ArcadeBanner("NEW GAME", theme.ArcadeCyan, cw))
	sections = append(sections, components.ArcadeCard(strings.Join(rows, "\n\n"), cw))
	sections = append(sections, hint)
	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}
	sections = append(sections, components.ArcadeButton("START", s.focus == fieldStart, 22))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
