package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/taskquest/internal/models"
)

// SQLiteStore persists the keyed collections in a single key-value table,
// one row per collection. It mirrors the JSONStore semantics exactly; the
// database just gives atomic writes for free.
type SQLiteStore struct {
	path string
	db   *sql.DB
	data *collections
}

func NewSQLiteStore(configPath string) *SQLiteStore {
	return &SQLiteStore{path: ExpandPath(configPath)}
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			name  TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	if err := s.ensureSchema(); err != nil {
		return err
	}

	s.data = defaultCollections()
	return s.save()
}

func (s *SQLiteStore) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'taskquest init' first")
	}
	if err := s.open(); err != nil {
		return err
	}
	if err := s.ensureSchema(); err != nil {
		return err
	}

	rows, err := s.db.Query("SELECT name, value FROM collections")
	if err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}
	defer rows.Close()

	raw := make(map[string]json.RawMessage)
	for rows.Next() {
		var name string
		var value []byte
		if err := rows.Scan(&name, &value); err != nil {
			return fmt.Errorf("failed to read storage: %w", err)
		}
		raw[name] = value
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = decodeAll(raw)
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) save() error {
	raw, err := encodeAll(s.data)
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	defer tx.Rollback()

	for name, value := range raw {
		_, err := tx.Exec(`
			INSERT INTO collections (name, value) VALUES (?, ?)
			ON CONFLICT(name) DO UPDATE SET value = excluded.value
		`, name, []byte(value))
		if err != nil {
			return fmt.Errorf("failed to write collection %s: %w", name, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) loaded() error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *SQLiteStore) Tasks() ([]models.Task, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Tasks, nil
}

func (s *SQLiteStore) SaveTasks(tasks []models.Task) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Tasks = tasks
	return s.save()
}

func (s *SQLiteStore) Projects() ([]models.Project, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Projects, nil
}

func (s *SQLiteStore) SaveProjects(projects []models.Project) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Projects = projects
	return s.save()
}

func (s *SQLiteStore) Classes() ([]models.TaskClass, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Classes, nil
}

func (s *SQLiteStore) SaveClasses(classes []models.TaskClass) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Classes = classes
	return s.save()
}

func (s *SQLiteStore) Skills() ([]models.Skill, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Skills, nil
}

func (s *SQLiteStore) SaveSkills(skills []models.Skill) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Skills = skills
	return s.save()
}

func (s *SQLiteStore) Character() (models.Character, error) {
	if err := s.loaded(); err != nil {
		return models.Character{}, err
	}
	return s.data.Character, nil
}

func (s *SQLiteStore) SaveCharacter(c models.Character) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Character = c
	return s.save()
}

func (s *SQLiteStore) Completions() ([]models.RecurringCompletion, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.data.Completions, nil
}

func (s *SQLiteStore) SaveCompletions(log []models.RecurringCompletion) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Completions = log
	return s.save()
}

func (s *SQLiteStore) ConfigPath() string {
	return s.path
}
