// Package migration normalizes persisted state on load. The only migration so
// far rewrites the legacy three-tier priority scheme (low/medium/high) onto
// the rarity tiers and refreshes the cached XP reward accordingly.
package migration

import (
	"github.com/julianstephens/taskquest/internal/engine"
	"github.com/julianstephens/taskquest/internal/models"
)

// NormalizeTasks rewrites any task still carrying a legacy priority value and
// recomputes its cached XP reward. It reports whether anything changed so the
// caller can skip the write-back on the common path. Running it on already
// normalized state is a no-op, so it is safe to run on every startup.
func NormalizeTasks(tasks []models.Task) ([]models.Task, bool) {
	changed := false
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		rarity := engine.NormalizeRarity(out[i].Rarity)
		reward := engine.XPForRarity(rarity)
		if out[i].Rarity != rarity || out[i].XPReward != reward {
			out[i].Rarity = rarity
			out[i].XPReward = reward
			changed = true
		}
	}
	if !changed {
		return tasks, false
	}
	return out, true
}
