package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/taskquest/internal/cli"
	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/errors"
	"github.com/julianstephens/taskquest/internal/logger"
	"github.com/julianstephens/taskquest/internal/migration"
	"github.com/julianstephens/taskquest/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .db or .sqlite extension selects the SQLite backend." type:"string" default:"~/.config/taskquest/taskquest.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init        cli.InitCmd        `cmd:"" help:"Initialize taskquest storage."`
	Tui         cli.TuiCmd         `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Task        cli.TaskCmd        `cmd:"" help:"Manage tasks."`
	Today       cli.TodayCmd       `cmd:"" help:"Show everything due today."`
	Tomorrow    cli.TomorrowCmd    `cmd:"" help:"Show tasks due tomorrow."`
	Overdue     cli.OverdueCmd     `cmd:"" help:"Show the overdue backlog."`
	Unscheduled cli.UnscheduledCmd `cmd:"" help:"Show tasks with no due date."`
	Week        cli.WeekCmd        `cmd:"" help:"Show this week's occurrences."`
	Month       cli.MonthCmd       `cmd:"" help:"Show this month's occurrences."`
	Class       cli.ClassCmd       `cmd:"" help:"Manage task classes."`
	Skill       cli.SkillCmd       `cmd:"" help:"Manage skills."`
	Project     cli.ProjectCmd     `cmd:"" help:"Manage projects."`
	Status      cli.StatusCmd      `cmd:"" help:"Show the character sheet."`
	Spend       cli.SpendCmd       `cmd:"" help:"Spend an unspent stat point."`
	Rename      cli.RenameCmd      `cmd:"" help:"Rename the character."`
	Backup      cli.BackupCmd      `cmd:"" help:"Manage backup archives."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Task tracking as an RPG progression loop"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := storage.ExpandPath(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	switch {
	case strings.HasSuffix(configPath, ".db"), strings.HasSuffix(configPath, ".sqlite"):
		store = storage.NewSQLiteStore(configPath)
	default:
		store = storage.NewJSONStore(configPath)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command; init handles its own setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		if err := normalizeLegacyPriorities(store); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// normalizeLegacyPriorities runs the idempotent startup migration and writes
// back only when something actually changed.
func normalizeLegacyPriorities(store storage.Provider) error {
	tasks, err := store.Tasks()
	if err != nil {
		return err
	}
	normalized, changed := migration.NormalizeTasks(tasks)
	if !changed {
		return nil
	}
	logger.Info("Normalized legacy task priorities")
	return store.SaveTasks(normalized)
}
