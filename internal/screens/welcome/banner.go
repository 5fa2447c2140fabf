package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberrush/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗██╗   ██╗███╗   ███╗██████╗ ███████╗██████╗
 ████╗  ██║██║   ██║████╗ ████║██╔══██╗██╔════╝██╔══██╗
 ██╔██╗ ██║██║   ██║██╔████╔██║██████╔╝█████╗  ██████╔╝
 ██║╚██╗██║██║   ██║██║╚██╔╝██║██╔══██╗██╔══╝  ██╔══██╗
 ██║ ╚████║╚██████╔╝██║ ╚═╝ ██║██████╔╝███████╗██║  ██║
 ╚═╝  ╚═══╝ ╚═════╝ ╚═╝     ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝
           ██████╗ ██╗   ██╗███████╗██╗  ██╗
           ██╔══██╗██║   ██║██╔════╝██║  ██║
           ██████╔╝██║   ██║███████╗███████║
           ██╔══██╗██║   ██║╚════██║██╔══██║
           ██║  ██║╚██████╔╝███████║██║  ██║
           ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "N U M B E R R U S H"

// BannerWidth is the narrowest frame the block-letter banner fits in.
const BannerWidth = 56

// RenderBanner returns the NUMBERRUSH banner in the score color, falling
// back to spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < BannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
