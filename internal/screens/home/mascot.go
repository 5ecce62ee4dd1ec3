package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // last game reached the bonus table
	MascotAlert                     // a game is waiting to be continued
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ 7×8 │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ 7×8 │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ 7×8 │
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary

	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotAlert:
		art, fg = mascotAlert, theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
