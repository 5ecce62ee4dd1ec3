package play

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/progress"
	"github.com/abhisek/tabuada/internal/quiz"
	sess "github.com/abhisek/tabuada/internal/session"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/theme"
)

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderQuestion renders the active question with its countdown.
func (s *Screen) renderQuestion(width, height int, st sess.State) string {
	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · part %s", quiz.PhaseName(st.CurrentPhase), st.CurrentSubPhase))
	timer := s.renderTimer()
	line := info
	if pad := width - lipgloss.Width(info) - lipgloss.Width(timer) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + timer
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	question := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(s.question + " = " + s.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ArcadeCard(question, cw)))
	b.WriteString("\n\n")

	switch s.lastResult {
	case sess.OutcomeCorrect:
		b.WriteString(centered(width).Foreground(theme.Success).Bold(true).Render(fmt.Sprintf("Correct! +%d", sess.PointsPerCorrect)))
	case sess.OutcomeWrong:
		b.WriteString(centered(width).Foreground(theme.Error).Bold(true).Render("Keep trying!"))
	}
	b.WriteString("\n\n")

	b.WriteString(centered(width).Render(components.History(st.AttemptsHistory, sess.MaxAttemptsHistory)))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Render(s.renderPhaseMap(-1)))

	if s.warn != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width).Foreground(theme.Accent).Render("⚠ " + s.warn))
	}

	return b.String()
}

func (s *Screen) renderTimer() string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.remaining <= 5 {
		style = style.Foreground(theme.Error).Bold(true)
	}
	return style.Render(fmt.Sprintf("⏱ %2ds", s.remaining))
}

// renderPhaseMap draws one cell per phase. selected marks the cursor, -1
// for none.
func (s *Screen) renderPhaseMap(selected int) string {
	cells := make([]string, 0, len(s.phases))
	for i, p := range s.phases {
		label := fmt.Sprintf("%d", p.Phase)
		if p.Phase == quiz.TerminalPhase {
			label = "★"
		}
		cell := phaseStyle(p.State).Render(phaseMark(p.State) + label)
		if i == selected {
			cell = lipgloss.NewStyle().Underline(true).Render("[" + cell + "]")
		} else {
			cell = " " + cell + " "
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}

func phaseStyle(state progress.DisplayState) lipgloss.Style {
	switch state {
	case progress.DisplayComplete:
		return theme.PhaseComplete
	case progress.DisplayHalf:
		return theme.PhaseHalf
	case progress.DisplayStarted:
		return theme.PhaseStarted
	case progress.DisplayNone:
		return theme.PhaseNotStarted
	default:
		return theme.PhaseLocked
	}
}

func phaseMark(state progress.DisplayState) string {
	switch state {
	case progress.DisplayComplete:
		return "●"
	case progress.DisplayHalf:
		return "◑"
	case progress.DisplayStarted:
		return "◔"
	case progress.DisplayNone:
		return "○"
	default:
		return "▪"
	}
}

func (s *Screen) renderReady(width, height int, st sess.State) string {
	cw := components.ContentWidth(width)
	var sections []string
	sections = append(sections, components.ArcadeBanner("READY, "+strings.ToUpper(st.PlayerName)+"?", theme.ArcadeCyan, cw))
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("%s · part %s · %s", quiz.PhaseName(st.CurrentPhase), st.CurrentSubPhase, st.Difficulty.DisplayName())))
	sections = append(sections, components.NewProgressBar("Mastered", s.masteredInBank(), quiz.QuestionsPerBank, cw-4).View())
	sections = append(sections, s.renderPhaseMap(-1))
	sections = append(sections, theme.Hint.Render("press Enter to start"))
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

// masteredInBank counts answers the player has nailed twice in a row.
func (s *Screen) masteredInBank() int {
	if s.engine == nil {
		return 0
	}
	return s.engine.MasteredCount()
}

func (s *Screen) renderWrongAnswer(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string
	sections = append(sections, components.ArcadeBanner("NOT QUITE", theme.Error, cw))
	if s.wrong != nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(fmt.Sprintf("%s = %d", s.wrong.Text(), s.wrong.Answer)))
	}
	sections = append(sections, components.Hearts(s.lives, s.maxLives))
	sections = append(sections, theme.Hint.Render("press any key to continue"))
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *Screen) renderPhaseIntro(width, height int, st sess.State) string {
	cw := components.ContentWidth(width)
	var sections []string

	if sum := s.summary; sum != nil {
		title := fmt.Sprintf("%s PART %s CLEARED!", strings.ToUpper(quiz.PhaseName(sum.Phase)), sum.SubPhase)
		if sum.GameCompleted {
			title = "ALL TABLES CLEARED!"
		}
		sections = append(sections, components.ArcadeBanner(title, theme.Success, cw))
		sections = append(sections, renderStatLine(sum.Stats))
		if sum.LifeGained {
			sections = append(sections, theme.HeartFull.Render("+1 ♥"))
		}
	}

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Render(fmt.Sprintf("Next: %s · part %s", quiz.PhaseName(st.CurrentPhase), st.CurrentSubPhase)))
	sections = append(sections, s.renderPhaseMap(-1))
	sections = append(sections, theme.Hint.Render("press Enter to continue"))
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *Screen) renderPauseMenu(width, height int, st sess.State) string {
	cw := components.ContentWidth(width)
	var sections []string
	sections = append(sections, components.ArcadeBanner("PAUSED", theme.ArcadeYellow, cw))
	sections = append(sections, s.renderPhaseMap(s.cursor))

	if s.cursor >= 0 && s.cursor < len(s.phases) {
		p := s.phases[s.cursor]
		detail := quiz.PhaseName(p.Phase)
		if p.Phase == st.CurrentPhase {
			detail += " (current)"
		}
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render(detail))
		sections = append(sections, renderStatLine(s.engine.CombinedStats(p.Phase)))
	}

	sections = append(sections, theme.Hint.Render("G replays the selected table from part A"))
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *Screen) renderStats(width, height int, st sess.State) string {
	cw := components.ContentWidth(width)
	header := fmt.Sprintf("%-12s %8s %8s %8s %8s", "Table", "Answers", "Accuracy", "Best", "Average")
	rows := []string{lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)}
	for _, phase := range quiz.Phases() {
		if phase > st.HighestPhase {
			break
		}
		stat := s.engine.CombinedStats(phase)
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf(
			"%-12s %8d %7.0f%% %8s %8s",
			quiz.PhaseName(phase), stat.Attempts, stat.Accuracy(), bestTime(stat), formatDuration(stat.AverageTime()),
		)))
	}

	var sections []string
	sections = append(sections, components.ArcadeBanner("STATS", theme.ArcadeCyan, cw))
	sections = append(sections, strings.Join(rows, "\n"))
	sections = append(sections, theme.Hint.Render("press S to go back"))
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *Screen) renderGameOver(width, height int) string {
	over := s.over
	cw := components.ContentWidth(width)
	var sections []string
	sections = append(sections, components.ArcadeBanner("GAME OVER", theme.Error, cw))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("%s scored %d · reached %s", over.PlayerName, over.Score, quiz.PhaseName(over.HighestPhase))))
	if over.Rank > 0 {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("Leaderboard rank #%d", over.Rank)))
	}

	if len(over.Leaderboard) > 0 {
		rows := make([]string, 0, len(over.Leaderboard))
		for _, e := range over.Leaderboard {
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if e.PlayerName == over.PlayerName {
				style = style.Foreground(theme.ArcadeYellow).Bold(true)
			}
			rows = append(rows, style.Render(fmt.Sprintf("%2d. %-16s %6d", e.Rank, e.PlayerName, e.Score)))
		}
		sections = append(sections, components.ArcadeCard(strings.Join(rows, "\n"), cw))
	}

	if s.warn != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render("⚠ "+s.warn))
	}
	sections = append(sections, theme.Hint.Render("press Enter to return home"))
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func renderStatLine(stat progress.PhaseStat) string {
	if stat.Attempts == 0 {
		return theme.Hint.Render("no answers yet")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"%d answers · %.0f%% correct · best %s · avg %s",
		stat.Attempts, stat.Accuracy(), bestTime(stat), formatDuration(stat.AverageTime()),
	))
}

func bestTime(stat progress.PhaseStat) string {
	if stat.BestTime == nil {
		return "-"
	}
	return formatDuration(*stat.BestTime)
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render("Leave the game?"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).Render("Your progress is saved and can be continued later."))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Foreground(theme.Success).Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Primary).Render("[N] No, keep playing"))
	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return centered(width).
		Foreground(theme.TextDim).
		Render("\n\n\n  Shuffling the tables...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return centered(width).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
