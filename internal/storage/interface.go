package storage

import "github.com/julianstephens/taskquest/internal/models"

// Collection key names. The backup archive and both store implementations use
// these verbatim.
const (
	KeyTasks       = "tasks"
	KeyProjects    = "projects"
	KeyClasses     = "taskClasses"
	KeySkills      = "skills"
	KeyCharacter   = "character"
	KeyCompletions = "recurringCompletions"
)

// Provider is a keyed store mapping each named collection to its serialized
// value. Collections are read once at startup and rewritten whole on every
// mutation; there is no partial update path.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Collections
	Tasks() ([]models.Task, error)
	SaveTasks([]models.Task) error
	Projects() ([]models.Project, error)
	SaveProjects([]models.Project) error
	Classes() ([]models.TaskClass, error)
	SaveClasses([]models.TaskClass) error
	Skills() ([]models.Skill, error)
	SaveSkills([]models.Skill) error
	Character() (models.Character, error)
	SaveCharacter(models.Character) error
	Completions() ([]models.RecurringCompletion, error)
	SaveCompletions([]models.RecurringCompletion) error

	// Utils
	ConfigPath() string
}
