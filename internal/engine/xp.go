package engine

import (
	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/models"
)

// XPRequiredForLevel returns the XP needed to advance from the given level to
// the next one: 250 * level * (level + 1). Integer arithmetic keeps the curve
// exact; level 1 requires 500 XP.
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 250 * level * (level + 1)
}

// AwardResult describes what a single XP award did, in the shape the
// presentation layer needs to announce it.
type AwardResult struct {
	XPAwarded     int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
	PointsEarned  int
	StatAdvanced  constants.StatType // stat whose progress counter moved, if any
	StatIncreased bool               // progress rolled over into a stat point
	SkillAdvanced string             // skill id whose progress moved, if any
	SkillLevelUp  bool
}

// AwardXP applies an XP award to the character and, when the completed task is
// linked, advances the class-mapped stat progress and the skill progress. The
// inputs are never mutated; updated copies are returned. The level-up loop
// cascades, so one large award can cross several levels with correct leftover
// XP. Stat and skill progress advance by one per call and roll over at a
// single threshold check (value+1 for stats, level+1 for skills).
func AwardXP(c models.Character, amount int, class *models.TaskClass, skill *models.Skill) (models.Character, *models.Skill, AwardResult) {
	out := c.Clone()
	res := AwardResult{
		XPAwarded:   amount,
		LevelBefore: out.Level,
	}

	out.XP += amount
	out.TotalXP += amount
	for out.XP >= XPRequiredForLevel(out.Level) {
		out.XP -= XPRequiredForLevel(out.Level)
		out.Level++
		out.UnspentPoints++
		res.PointsEarned++
	}
	res.LevelAfter = out.Level
	res.LevelUp = out.Level > res.LevelBefore

	if class != nil && class.StatType.IsValid() {
		block := out.Stats[class.StatType]
		block.Progress++
		if block.Progress >= block.Value+1 {
			block.Progress = 0
			block.Value++
			res.StatIncreased = true
		}
		out.Stats[class.StatType] = block
		res.StatAdvanced = class.StatType
	}

	var updatedSkill *models.Skill
	if skill != nil {
		s := *skill
		s.Progress++
		if s.Progress >= s.Level+1 {
			s.Progress = 0
			s.Level++
			res.SkillLevelUp = true
		}
		updatedSkill = &s
		res.SkillAdvanced = s.ID
	}

	return out, updatedSkill, res
}

// SpendPoint allocates one unspent stat point to the given stat. Spending with
// no points available, or on an unknown stat, is a no-op rather than an error,
// so callers never need to pre-validate. Direct allocation leaves the stat's
// automatic progress counter untouched.
func SpendPoint(c models.Character, stat constants.StatType) models.Character {
	if c.UnspentPoints <= 0 || !stat.IsValid() {
		return c
	}
	out := c.Clone()
	block := out.Stats[stat]
	block.Value++
	out.Stats[stat] = block
	out.UnspentPoints--
	return out
}
