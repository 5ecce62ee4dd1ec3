package components

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

const bannerArt = `
████████╗ █████╗ ██████╗ ██╗   ██╗ █████╗ ██████╗  █████╗
╚══██╔══╝██╔══██╗██╔══██╗██║   ██║██╔══██╗██╔══██╗██╔══██╗
   ██║   ███████║██████╔╝██║   ██║███████║██║  ██║███████║
   ██║   ██╔══██║██╔══██╗██║   ██║██╔══██║██║  ██║██╔══██║
   ██║   ██║  ██║██████╔╝╚██████╔╝██║  ██║██████╔╝██║  ██║
   ╚═╝   ╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "T · A · B · U · A · D · A"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 58

// Banner returns the block-letter TABUADA title, or a one-line fallback
// when width cannot fit it.
func Banner(width int, c color.Color) string {
	style := lipgloss.NewStyle().
		Foreground(c).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt[1:])
}
