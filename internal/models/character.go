package models

import "github.com/julianstephens/taskquest/internal/constants"

// StatBlock holds a stat's allocated value and its automatic progress counter.
// Progress advances by class-linked task completions and rolls over into Value
// once it reaches Value+1.
type StatBlock struct {
	Value    int `json:"value"`
	Progress int `json:"progress"`
}

// Character is the single player-progression aggregate. XP is the progress
// within the current level; TotalXP is the monotonic lifetime counter.
type Character struct {
	Name          string                           `json:"name"`
	Avatar        string                           `json:"avatar,omitempty"`
	Level         int                              `json:"level"`
	XP            int                              `json:"xp"`
	TotalXP       int                              `json:"total_xp"`
	UnspentPoints int                              `json:"unspent_points"`
	Stats         map[constants.StatType]StatBlock `json:"stats"`
}

// NewCharacter returns a level 1 character with all five stats zeroed.
func NewCharacter(name string) Character {
	stats := make(map[constants.StatType]StatBlock, len(constants.Stats))
	for _, s := range constants.Stats {
		stats[s] = StatBlock{}
	}
	return Character{
		Name:  name,
		Level: 1,
		Stats: stats,
	}
}

// Clone returns a deep copy. Engine operations work on copies so callers never
// observe a partially updated character.
func (c Character) Clone() Character {
	out := c
	out.Stats = make(map[constants.StatType]StatBlock, len(c.Stats))
	for k, v := range c.Stats {
		out.Stats[k] = v
	}
	return out
}

// Stat returns the block for the given stat, zero-valued if absent.
func (c Character) Stat(s constants.StatType) StatBlock {
	return c.Stats[s]
}
