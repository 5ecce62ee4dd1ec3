package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/theme"
)

// renderTitle returns the banner centered in the content width.
func renderTitle(cw int, compact bool) string {
	width := cw
	if compact {
		width = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.Banner(width, theme.ArcadeYellow))
}

// renderStatsBar renders the saved-game summary in a double-bordered box.
func renderStatsBar(d dashboard, cw int, compact bool) string {
	savedStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case d.saved == 0:
		stats = dimStyle.Render("NO SAVED GAMES YET")
	case compact:
		stats = fmt.Sprintf("%s %s",
			savedStyle.Render(fmt.Sprintf("▶%d", d.saved)),
			bestStyle.Render(fmt.Sprintf("★%d", d.bestScore)),
		)
	default:
		stats = fmt.Sprintf("%s  %s",
			savedStyle.Render(fmt.Sprintf("▶ %d SAVED", d.saved)),
			bestStyle.Render(fmt.Sprintf("★ BEST %d (%s)", d.bestScore, d.bestPlayer)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderContinueNote names the game CONTINUE resumes.
func renderContinueNote(d dashboard, cw int) string {
	if d.resume == nil {
		return ""
	}
	g := d.resume
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("continue %s at %s part %s", g.PlayerName,
			quiz.PhaseName(g.Data.CurrentPhase), g.Data.CurrentSubPhase))
}

// renderMascotBox renders the mascot centered in the content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
