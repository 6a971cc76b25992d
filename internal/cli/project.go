package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/taskquest/internal/models"
)

type ProjectCmd struct {
	Add    ProjectAddCmd    `cmd:"" help:"Add a project."`
	List   ProjectListCmd   `cmd:"" help:"List projects."`
	Delete ProjectDeleteCmd `cmd:"" help:"Delete a project."`
}

type ProjectAddCmd struct {
	Name        string `arg:"" help:"Project name."`
	Description string `help:"Project description."`
	Color       string `help:"Display color (hex)."`
}

func (c *ProjectAddCmd) Run(ctx *Context) error {
	projects, err := ctx.Store.Projects()
	if err != nil {
		return err
	}
	if _, err := resolveProject(projects, c.Name); err == nil {
		return fmt.Errorf("project %q already exists", c.Name)
	}

	project := models.Project{
		ID:          uuid.New().String(),
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
	}
	if err := ctx.Store.SaveProjects(append(projects, project)); err != nil {
		return err
	}

	fmt.Printf("Added project: %s\n", project.Name)
	return nil
}

type ProjectListCmd struct{}

func (c *ProjectListCmd) Run(ctx *Context) error {
	projects, err := ctx.Store.Projects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return err
	}
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.ProjectID]++
	}

	for _, p := range projects {
		fmt.Printf("%-8s %s (%d tasks)\n", shortID(p.ID), p.Name, counts[p.ID])
	}
	return nil
}

type ProjectDeleteCmd struct {
	Name string `arg:"" help:"Project name or id."`
}

func (c *ProjectDeleteCmd) Run(ctx *Context) error {
	projects, err := ctx.Store.Projects()
	if err != nil {
		return err
	}
	project, err := resolveProject(projects, c.Name)
	if err != nil {
		return err
	}

	out := make([]models.Project, 0, len(projects)-1)
	for _, p := range projects {
		if p.ID != project.ID {
			out = append(out, p)
		}
	}
	if err := ctx.Store.SaveProjects(out); err != nil {
		return err
	}

	if err := unlinkTasks(ctx, func(t *models.Task) bool {
		if t.ProjectID == project.ID {
			t.ProjectID = ""
			return true
		}
		return false
	}); err != nil {
		return err
	}

	fmt.Printf("Deleted project: %s\n", project.Name)
	return nil
}
