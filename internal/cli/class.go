package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/taskquest/internal/models"
)

type ClassCmd struct {
	Add    ClassAddCmd    `cmd:"" help:"Add a task class."`
	List   ClassListCmd   `cmd:"" help:"List task classes."`
	Delete ClassDeleteCmd `cmd:"" help:"Delete a task class."`
}

type ClassAddCmd struct {
	Name  string `arg:"" help:"Class name."`
	Stat  string `arg:"" help:"Stat the class advances (strength|endurance|intelligence|agility|charisma)."`
	Color string `help:"Display color (hex)."`
}

func (c *ClassAddCmd) Run(ctx *Context) error {
	stat, err := ParseStat(c.Stat)
	if err != nil {
		return err
	}

	classes, err := ctx.Store.Classes()
	if err != nil {
		return err
	}
	if _, err := resolveClass(classes, c.Name); err == nil {
		return fmt.Errorf("class %q already exists", c.Name)
	}

	class := models.TaskClass{
		ID:       uuid.New().String(),
		Name:     c.Name,
		StatType: stat,
		Color:    c.Color,
	}
	if err := ctx.Store.SaveClasses(append(classes, class)); err != nil {
		return err
	}

	fmt.Printf("Added class: %s -> %s\n", class.Name, class.StatType)
	return nil
}

type ClassListCmd struct{}

func (c *ClassListCmd) Run(ctx *Context) error {
	classes, err := ctx.Store.Classes()
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		fmt.Println("No classes found.")
		return nil
	}
	for _, cls := range classes {
		fmt.Printf("%-8s %s -> %s\n", shortID(cls.ID), cls.Name, cls.StatType)
	}
	return nil
}

type ClassDeleteCmd struct {
	Name string `arg:"" help:"Class name or id."`
}

func (c *ClassDeleteCmd) Run(ctx *Context) error {
	classes, err := ctx.Store.Classes()
	if err != nil {
		return err
	}
	class, err := resolveClass(classes, c.Name)
	if err != nil {
		return err
	}

	out := make([]models.TaskClass, 0, len(classes)-1)
	for _, cls := range classes {
		if cls.ID != class.ID {
			out = append(out, cls)
		}
	}
	if err := ctx.Store.SaveClasses(out); err != nil {
		return err
	}

	// Best-effort nulling of back-references; tasks keep working either way
	// since dangling ids resolve to "not found".
	if err := unlinkTasks(ctx, func(t *models.Task) bool {
		if t.ClassID == class.ID {
			t.ClassID = ""
			return true
		}
		return false
	}); err != nil {
		return err
	}

	fmt.Printf("Deleted class: %s\n", class.Name)
	return nil
}

// unlinkTasks applies the unlink func to every task and saves when anything
// changed.
func unlinkTasks(ctx *Context, unlink func(*models.Task) bool) error {
	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return err
	}
	changed := false
	for i := range tasks {
		if unlink(&tasks[i]) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return ctx.Store.SaveTasks(tasks)
}
