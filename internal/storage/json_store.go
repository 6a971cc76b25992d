package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/taskquest/internal/logger"
	"github.com/julianstephens/taskquest/internal/models"
)

// JSONStore persists the keyed collections as a single pretty-printed JSON
// document on disk.
type JSONStore struct {
	path string
	data *collections
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: ExpandPath(configPath)}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = defaultCollections()
	return s.save()
}

func (s *JSONStore) Load() error {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'taskquest init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(buf, &raw); err != nil {
		logger.Warn("Storage file is corrupted, starting from defaults", "path", s.path, "error", err)
		raw = nil
	}

	s.data = decodeAll(raw)
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	raw, err := encodeAll(s.data)
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	buf, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, buf, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) Tasks() ([]models.Task, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Tasks, nil
}

func (s *JSONStore) SaveTasks(tasks []models.Task) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Tasks = tasks
	return s.save()
}

func (s *JSONStore) Projects() ([]models.Project, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Projects, nil
}

func (s *JSONStore) SaveProjects(projects []models.Project) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Projects = projects
	return s.save()
}

func (s *JSONStore) Classes() ([]models.TaskClass, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Classes, nil
}

func (s *JSONStore) SaveClasses(classes []models.TaskClass) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Classes = classes
	return s.save()
}

func (s *JSONStore) Skills() ([]models.Skill, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Skills, nil
}

func (s *JSONStore) SaveSkills(skills []models.Skill) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Skills = skills
	return s.save()
}

func (s *JSONStore) Character() (models.Character, error) {
	if err := s.loaded(); err != nil {
		return models.Character{}, err
	}
	return s.data.Character, nil
}

func (s *JSONStore) SaveCharacter(c models.Character) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Character = c
	return s.save()
}

func (s *JSONStore) Completions() ([]models.RecurringCompletion, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Completions, nil
}

func (s *JSONStore) SaveCompletions(log []models.RecurringCompletion) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Completions = log
	return s.save()
}

func (s *JSONStore) ConfigPath() string {
	return s.path
}
