package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/engine"
	"github.com/julianstephens/taskquest/internal/models"
	"github.com/julianstephens/taskquest/internal/storage"
)

// Context carries the shared dependencies into every command.
type Context struct {
	Store storage.Provider
}

// ParseRarity parses a rarity flag value. Legacy priority names are accepted
// and normalized.
func ParseRarity(s string) (constants.Rarity, error) {
	r := constants.Rarity(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case constants.RarityCommon, constants.RarityRare, constants.RarityEpic,
		constants.RarityLegendary, constants.RarityUnique:
		return r, nil
	case constants.LegacyPriorityLow, constants.LegacyPriorityMedium, constants.LegacyPriorityHigh:
		return engine.NormalizeRarity(r), nil
	default:
		return "", fmt.Errorf("invalid rarity: %s (expected common|rare|epic|legendary|unique)", s)
	}
}

// ParseStat parses a stat flag value.
func ParseStat(s string) (constants.StatType, error) {
	stat := constants.StatType(strings.ToLower(strings.TrimSpace(s)))
	if !stat.IsValid() {
		return "", fmt.Errorf("invalid stat: %s (expected strength|endurance|intelligence|agility|charisma)", s)
	}
	return stat, nil
}

// FindTask resolves a task by exact id, unique id prefix, or exact title.
func FindTask(tasks []models.Task, key string) (models.Task, error) {
	var prefix []models.Task
	for _, t := range tasks {
		if t.ID == key {
			return t, nil
		}
		if strings.HasPrefix(t.ID, key) {
			prefix = append(prefix, t)
		}
	}
	if len(prefix) == 1 {
		return prefix[0], nil
	}
	if len(prefix) > 1 {
		return models.Task{}, fmt.Errorf("task id prefix %q is ambiguous", key)
	}
	for _, t := range tasks {
		if strings.EqualFold(t.Title, key) {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %q not found", key)
}

// ReplaceTask swaps the task with the same id into the collection.
func ReplaceTask(tasks []models.Task, updated models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}

func resolveClass(classes []models.TaskClass, key string) (models.TaskClass, error) {
	for _, c := range classes {
		if c.ID == key || strings.EqualFold(c.Name, key) {
			return c, nil
		}
	}
	return models.TaskClass{}, fmt.Errorf("class %q not found", key)
}

func resolveSkill(skills []models.Skill, key string) (models.Skill, error) {
	for _, s := range skills {
		if s.ID == key || strings.EqualFold(s.Name, key) {
			return s, nil
		}
	}
	return models.Skill{}, fmt.Errorf("skill %q not found", key)
}

func resolveProject(projects []models.Project, key string) (models.Project, error) {
	for _, p := range projects {
		if p.ID == key || strings.EqualFold(p.Name, key) {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("project %q not found", key)
}

// FormatTaskLine renders one task for list output.
func FormatTaskLine(t models.Task, date string, log []models.RecurringCompletion, classes []models.TaskClass, skills []models.Skill) string {
	mark := " "
	if engine.IsCompletedOn(t, date, log) {
		mark = "x"
	}

	var tags []string
	tags = append(tags, string(t.Rarity))
	if t.Recurring {
		tags = append(tags, string(t.RecurringType))
	} else if t.DueDate != "" {
		tags = append(tags, "due "+t.DueDate)
	} else if t.Flexible {
		tags = append(tags, "flexible")
	}
	if c := models.FindClass(classes, t.ClassID); c != nil {
		tags = append(tags, c.Name)
	}
	if s := models.FindSkill(skills, t.SkillID); s != nil {
		tags = append(tags, s.Name)
	}

	return fmt.Sprintf("[%s] %-8s %s (%s, %d XP)", mark, shortID(t.ID), t.Title, strings.Join(tags, ", "), t.XPReward)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
