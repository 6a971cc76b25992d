package constants

// StatType is one of the five fixed character stats.
type StatType string

// Rarity is the reward tier of a task.
type Rarity string

// RecurringType is the recurrence pattern of a recurring task.
type RecurringType string

const (
	AppName           = "taskquest"
	DefaultConfigPath = "~/.config/taskquest/taskquest.json"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "taskquest-"
	BackupFileSuffix = ".json"

	// BackupVersion is the archive format version written on export.
	BackupVersion = "1.0"

	// Stat constants
	StatStrength     StatType = "strength"
	StatEndurance    StatType = "endurance"
	StatIntelligence StatType = "intelligence"
	StatAgility      StatType = "agility"
	StatCharisma     StatType = "charisma"

	// Rarity constants
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityUnique    Rarity = "unique"

	// Legacy priority values, normalized to rarities at startup
	LegacyPriorityLow    Rarity = "low"
	LegacyPriorityMedium Rarity = "medium"
	LegacyPriorityHigh   Rarity = "high"

	// Recurrence constants
	RecurringDaily   RecurringType = "daily"
	RecurringWeekly  RecurringType = "weekly"
	RecurringMonthly RecurringType = "monthly"
)

// Stats lists the five fixed stats in display order.
var Stats = []StatType{
	StatStrength,
	StatEndurance,
	StatIntelligence,
	StatAgility,
	StatCharisma,
}

// IsValid reports whether s is one of the five fixed stats.
func (s StatType) IsValid() bool {
	switch s {
	case StatStrength, StatEndurance, StatIntelligence, StatAgility, StatCharisma:
		return true
	default:
		return false
	}
}

// IsValid reports whether t is a supported recurrence pattern.
func (t RecurringType) IsValid() bool {
	switch t {
	case RecurringDaily, RecurringWeekly, RecurringMonthly:
		return true
	default:
		return false
	}
}
