package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/taskquest/internal/models"
)

type SkillCmd struct {
	Add    SkillAddCmd    `cmd:"" help:"Add a skill."`
	List   SkillListCmd   `cmd:"" help:"List skills."`
	Delete SkillDeleteCmd `cmd:"" help:"Delete a skill."`
}

type SkillAddCmd struct {
	Name  string `arg:"" help:"Skill name."`
	Color string `help:"Display color (hex)."`
}

func (c *SkillAddCmd) Run(ctx *Context) error {
	skills, err := ctx.Store.Skills()
	if err != nil {
		return err
	}
	if _, err := resolveSkill(skills, c.Name); err == nil {
		return fmt.Errorf("skill %q already exists", c.Name)
	}

	skill := models.Skill{
		ID:    uuid.New().String(),
		Name:  c.Name,
		Level: 1,
		Color: c.Color,
	}
	if err := ctx.Store.SaveSkills(append(skills, skill)); err != nil {
		return err
	}

	fmt.Printf("Added skill: %s\n", skill.Name)
	return nil
}

type SkillListCmd struct{}

func (c *SkillListCmd) Run(ctx *Context) error {
	skills, err := ctx.Store.Skills()
	if err != nil {
		return err
	}
	if len(skills) == 0 {
		fmt.Println("No skills found.")
		return nil
	}
	for _, s := range skills {
		fmt.Printf("%-8s %s (level %d, %d/%d)\n", shortID(s.ID), s.Name, s.Level, s.Progress, s.Level+1)
	}
	return nil
}

type SkillDeleteCmd struct {
	Name string `arg:"" help:"Skill name or id."`
}

func (c *SkillDeleteCmd) Run(ctx *Context) error {
	skills, err := ctx.Store.Skills()
	if err != nil {
		return err
	}
	skill, err := resolveSkill(skills, c.Name)
	if err != nil {
		return err
	}

	out := make([]models.Skill, 0, len(skills)-1)
	for _, s := range skills {
		if s.ID != skill.ID {
			out = append(out, s)
		}
	}
	if err := ctx.Store.SaveSkills(out); err != nil {
		return err
	}

	if err := unlinkTasks(ctx, func(t *models.Task) bool {
		if t.SkillID == skill.ID {
			t.SkillID = ""
			return true
		}
		return false
	}); err != nil {
		return err
	}

	fmt.Printf("Deleted skill: %s\n", skill.Name)
	return nil
}
