package models

import (
	"testing"

	"github.com/julianstephens/taskquest/internal/constants"
)

func TestNewCharacter(t *testing.T) {
	c := NewCharacter("Rosa")
	if c.Name != "Rosa" || c.Level != 1 || c.XP != 0 || c.TotalXP != 0 {
		t.Errorf("NewCharacter() = %+v", c)
	}
	if len(c.Stats) != len(constants.Stats) {
		t.Fatalf("got %d stats, want %d", len(c.Stats), len(constants.Stats))
	}
	for _, s := range constants.Stats {
		if c.Stats[s] != (StatBlock{}) {
			t.Errorf("stat %s not zeroed: %+v", s, c.Stats[s])
		}
	}
}

func TestCharacterClone(t *testing.T) {
	c := NewCharacter("Rosa")
	c.Stats[constants.StatIntelligence] = StatBlock{Value: 3, Progress: 2}

	clone := c.Clone()
	clone.Stats[constants.StatIntelligence] = StatBlock{Value: 9}

	if c.Stats[constants.StatIntelligence].Value != 3 {
		t.Error("mutating the clone's stats leaked into the original")
	}
}

func TestCharacterStat(t *testing.T) {
	var c Character
	if c.Stat(constants.StatStrength) != (StatBlock{}) {
		t.Error("absent stat not zero-valued")
	}
}
