package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/ui/theme"
)

// Hearts renders one heart per life, empty hearts for lives lost.
func Hearts(lives, maxLives int) string {
	lives = max(0, min(lives, maxLives))
	return theme.HeartFull.Render(strings.Repeat("♥", lives)) +
		theme.HeartEmpty.Render(strings.Repeat("♡", maxLives-lives))
}

// History renders recent answers oldest first, padded to size with dots.
func History(results []bool, size int) string {
	var b strings.Builder
	for i := 0; i < size-len(results); i++ {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("·"))
		b.WriteString(" ")
	}
	for _, ok := range results {
		if ok {
			b.WriteString(theme.Correct.Render("✓"))
		} else {
			b.WriteString(theme.Incorrect.Render("✗"))
		}
		b.WriteString(" ")
	}
	return strings.TrimSuffix(b.String(), " ")
}
