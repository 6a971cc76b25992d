package engine

import (
	"testing"

	"github.com/julianstephens/taskquest/internal/constants"
)

func TestXPForRarity(t *testing.T) {
	tests := []struct {
		rarity constants.Rarity
		want   int
	}{
		{constants.RarityCommon, 50},
		{constants.RarityRare, 100},
		{constants.RarityEpic, 250},
		{constants.RarityLegendary, 500},
		{constants.RarityUnique, 1000},
		// Legacy priorities map onto the first three tiers.
		{constants.LegacyPriorityLow, 50},
		{constants.LegacyPriorityMedium, 100},
		{constants.LegacyPriorityHigh, 250},
		// Anything unrecognized falls back to the common value.
		{constants.Rarity("unrecognized-value"), 50},
		{constants.Rarity(""), 50},
	}

	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			if got := XPForRarity(tt.rarity); got != tt.want {
				t.Errorf("XPForRarity(%q) = %d, want %d", tt.rarity, got, tt.want)
			}
		})
	}
}

func TestNormalizeRarity(t *testing.T) {
	tests := []struct {
		in   constants.Rarity
		want constants.Rarity
	}{
		{constants.LegacyPriorityLow, constants.RarityCommon},
		{constants.LegacyPriorityMedium, constants.RarityRare},
		{constants.LegacyPriorityHigh, constants.RarityEpic},
		{constants.RarityLegendary, constants.RarityLegendary},
		{constants.Rarity("garbage"), constants.RarityCommon},
	}

	for _, tt := range tests {
		if got := NormalizeRarity(tt.in); got != tt.want {
			t.Errorf("NormalizeRarity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
