package engine

import "github.com/julianstephens/taskquest/internal/constants"

// xpByRarity is the fixed reward table. Rewards are cached on tasks at
// creation/edit time and refreshed by the startup normalization pass.
var xpByRarity = map[constants.Rarity]int{
	constants.RarityCommon:    50,
	constants.RarityRare:      100,
	constants.RarityEpic:      250,
	constants.RarityLegendary: 500,
	constants.RarityUnique:    1000,
}

// NormalizeRarity maps the legacy three-tier priority scheme onto rarities.
// Already-valid rarities pass through unchanged; anything unrecognized
// normalizes to common.
func NormalizeRarity(r constants.Rarity) constants.Rarity {
	switch r {
	case constants.LegacyPriorityLow:
		return constants.RarityCommon
	case constants.LegacyPriorityMedium:
		return constants.RarityRare
	case constants.LegacyPriorityHigh:
		return constants.RarityEpic
	}
	if _, ok := xpByRarity[r]; ok {
		return r
	}
	return constants.RarityCommon
}

// XPForRarity returns the XP reward for a rarity tier. Legacy priorities are
// normalized before lookup; unrecognized input falls back to the common value.
func XPForRarity(r constants.Rarity) int {
	return xpByRarity[NormalizeRarity(r)]
}
