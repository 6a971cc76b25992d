package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/taskquest/internal/logger"
	"github.com/julianstephens/taskquest/internal/models"
)

// DefaultCharacterName names the character created on first run; the user
// renames it afterwards.
const DefaultCharacterName = "Adventurer"

// collections holds every decoded top-level collection. Both store
// implementations keep one of these in memory between Load and Save.
type collections struct {
	Tasks       []models.Task
	Projects    []models.Project
	Classes     []models.TaskClass
	Skills      []models.Skill
	Character   models.Character
	Completions []models.RecurringCompletion
}

func defaultCollections() *collections {
	return &collections{
		Tasks:       []models.Task{},
		Projects:    []models.Project{},
		Classes:     []models.TaskClass{},
		Skills:      []models.Skill{},
		Character:   models.NewCharacter(DefaultCharacterName),
		Completions: []models.RecurringCompletion{},
	}
}

// decodeCollection unmarshals one collection from the raw key-value map,
// failing soft: an absent or corrupted value yields the documented default
// rather than a propagated parse error, so the core's invariants survive
// storage corruption.
func decodeCollection[T any](raw map[string]json.RawMessage, key string, def T) T {
	data, ok := raw[key]
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("Corrupted collection, using default", "collection", key, "error", err)
		return def
	}
	return v
}

// decodeAll turns a raw key-value map into typed collections, collection by
// collection so one bad value never poisons the rest.
func decodeAll(raw map[string]json.RawMessage) *collections {
	def := defaultCollections()
	c := &collections{
		Tasks:       decodeCollection(raw, KeyTasks, def.Tasks),
		Projects:    decodeCollection(raw, KeyProjects, def.Projects),
		Classes:     decodeCollection(raw, KeyClasses, def.Classes),
		Skills:      decodeCollection(raw, KeySkills, def.Skills),
		Character:   decodeCollection(raw, KeyCharacter, def.Character),
		Completions: decodeCollection(raw, KeyCompletions, def.Completions),
	}
	// Repair, never replace: a character that lost its stats map keeps its
	// name, level, and XP and gets the map rebuilt.
	if c.Character.Stats == nil {
		c.Character.Stats = models.NewCharacter(c.Character.Name).Stats
	}
	if c.Character.Name == "" {
		c.Character.Name = DefaultCharacterName
	}
	if c.Character.Level < 1 {
		c.Character.Level = 1
	}
	return c
}

// encodeAll marshals the typed collections back into the keyed raw form.
func encodeAll(c *collections) (map[string]json.RawMessage, error) {
	raw := make(map[string]json.RawMessage, 6)
	for key, v := range map[string]any{
		KeyTasks:       c.Tasks,
		KeyProjects:    c.Projects,
		KeyClasses:     c.Classes,
		KeySkills:      c.Skills,
		KeyCharacter:   c.Character,
		KeyCompletions: c.Completions,
	} {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		raw[key] = data
	}
	return raw, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
