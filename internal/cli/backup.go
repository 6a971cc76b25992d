package cli

import (
	"fmt"

	"github.com/julianstephens/taskquest/internal/backup"
	"github.com/julianstephens/taskquest/internal/logger"
)

type BackupCmd struct {
	Create BackupCreateCmd `cmd:"" help:"Export all collections to a timestamped archive." default:"1"`
	List   BackupListCmd   `cmd:"" help:"List available archives."`
	Import BackupImportCmd `cmd:"" help:"Import an archive, replacing all local data."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	data, err := collectAll(ctx)
	if err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.ConfigPath())
	path, err := mgr.Create(data)
	if err != nil {
		return err
	}

	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.ConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  (%d bytes)\n", b.Timestamp.Format("2006-01-02 15:04"), b.Path, b.Size)
	}
	return nil
}

type BackupImportCmd struct {
	Path  string `arg:"" help:"Archive file to import."`
	Force bool   `help:"Skip the overwrite confirmation."`
}

func (c *BackupImportCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.ConfigPath())
	data, err := mgr.ReadArchive(c.Path)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Importing replaces ALL local data (%d tasks, character %q). Continue? [y/N] ", len(data.Tasks), data.Character.Name)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	// Safety copy of the current state before the overwrite.
	if current, err := collectAll(ctx); err == nil {
		if _, err := mgr.Create(current); err != nil {
			logger.Warn("Pre-import backup failed", "error", err)
		}
	}

	if err := applyAll(ctx, data); err != nil {
		return err
	}

	fmt.Printf("Imported %d tasks, %d projects, %d classes, %d skills.\n",
		len(data.Tasks), len(data.Projects), len(data.TaskClasses), len(data.Skills))
	return nil
}

func collectAll(ctx *Context) (backup.Data, error) {
	var data backup.Data
	var err error
	if data.Tasks, err = ctx.Store.Tasks(); err != nil {
		return data, err
	}
	if data.Projects, err = ctx.Store.Projects(); err != nil {
		return data, err
	}
	if data.TaskClasses, err = ctx.Store.Classes(); err != nil {
		return data, err
	}
	if data.Skills, err = ctx.Store.Skills(); err != nil {
		return data, err
	}
	if data.Character, err = ctx.Store.Character(); err != nil {
		return data, err
	}
	if data.RecurringCompletions, err = ctx.Store.Completions(); err != nil {
		return data, err
	}
	return data, nil
}

func applyAll(ctx *Context, data backup.Data) error {
	if err := ctx.Store.SaveTasks(data.Tasks); err != nil {
		return err
	}
	if err := ctx.Store.SaveProjects(data.Projects); err != nil {
		return err
	}
	if err := ctx.Store.SaveClasses(data.TaskClasses); err != nil {
		return err
	}
	if err := ctx.Store.SaveSkills(data.Skills); err != nil {
		return err
	}
	if err := ctx.Store.SaveCharacter(data.Character); err != nil {
		return err
	}
	return ctx.Store.SaveCompletions(data.RecurringCompletions)
}
