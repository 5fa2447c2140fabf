package components

import (
	"image/color"

	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/ui/theme"
)

// RarityColor returns the theme color for a badge rarity.
func RarityColor(r badges.Rarity) color.Color {
	switch r {
	case badges.RarityRare:
		return theme.Secondary
	case badges.RarityEpic:
		return theme.Primary
	case badges.RarityLegendary:
		return theme.Accent
	default:
		return theme.Text
	}
}
