package badges

import "strings"

// Rarity ranks how hard a badge is to earn. It only changes how the badge
// is drawn.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"Common", "Rare", "Epic", "Legendary"}

// Rarities lists every rarity from easiest to hardest.
func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

func (r Rarity) String() string {
	return strings.ToLower(r.DisplayName())
}

// DisplayName is the capitalized label shown in the gallery.
func (r Rarity) DisplayName() string {
	if r < 0 || int(r) >= len(rarityNames) {
		return "Unknown"
	}
	return rarityNames[r]
}

// Stars renders one star per rarity step.
func (r Rarity) Stars() string {
	return strings.Repeat("★", int(r)+1)
}
