package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/engine"
	"github.com/julianstephens/taskquest/internal/models"
	"github.com/julianstephens/taskquest/internal/scheduler"
	"github.com/julianstephens/taskquest/internal/utils"
	"github.com/julianstephens/taskquest/internal/validation"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List all tasks."`
	Edit   TaskEditCmd   `cmd:"" help:"Edit an existing task."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
	Done   TaskDoneCmd   `cmd:"" help:"Toggle a task's completion."`
}

type TaskAddCmd struct {
	Title       string `arg:"" optional:"" help:"Task title."`
	Description string `help:"Task description."`
	Due         string `short:"d" help:"Due date (YYYY-MM-DD)."`
	Flexible    bool   `short:"f" help:"Flexible task: due date is assigned on completion."`
	Rarity      string `short:"r" help:"Rarity tier (common|rare|epic|legendary|unique)." default:"common"`
	Recur       string `help:"Recurrence pattern (daily|weekly|monthly)."`
	Day         int    `help:"Recurrence day: weekday 1-7 for weekly, day of month 1-31 for monthly."`
	End         string `help:"Recurrence end date (YYYY-MM-DD)."`
	Class       string `help:"Task class (name or id)."`
	Skill       string `help:"Skill (name or id)."`
	Project     string `help:"Project (name or id)."`
	Interactive bool   `short:"i" help:"Fill in the task via an interactive form."`
}

func (c *TaskAddCmd) Validate() error {
	if !c.Interactive && c.Title == "" {
		return fmt.Errorf("expected \"<title>\" (or use --interactive)")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if c.Interactive {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	rarity, err := ParseRarity(c.Rarity)
	if err != nil {
		return err
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.Due,
		Flexible:    c.Flexible,
		Rarity:      rarity,
		XPReward:    engine.XPForRarity(rarity),
		CreatedAt:   time.Now(),
	}
	if c.Recur != "" {
		task.Recurring = true
		task.RecurringType = constants.RecurringType(c.Recur)
		task.RecurringDay = c.Day
		task.RecurringEndDate = c.End
		task = validation.NormalizeRecurringDay(task)
	}

	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return err
	}

	if c.Class != "" {
		classes, err := ctx.Store.Classes()
		if err != nil {
			return err
		}
		cls, err := resolveClass(classes, c.Class)
		if err != nil {
			return err
		}
		task.ClassID = cls.ID
	}
	if c.Skill != "" {
		skills, err := ctx.Store.Skills()
		if err != nil {
			return err
		}
		sk, err := resolveSkill(skills, c.Skill)
		if err != nil {
			return err
		}
		task.SkillID = sk.ID
	}
	if c.Project != "" {
		projects, err := ctx.Store.Projects()
		if err != nil {
			return err
		}
		p, err := resolveProject(projects, c.Project)
		if err != nil {
			return err
		}
		task.ProjectID = p.ID
	}

	if err := validation.ValidateTask(task); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := ctx.Store.SaveTasks(append(tasks, task)); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (%s, %d XP)\n", task.Title, task.Rarity, task.XPReward)
	return nil
}

// prompt collects the task fields through a form instead of flags.
func (c *TaskAddCmd) prompt() error {
	var dayStr string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&c.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Rarity").
				Options(huh.NewOptions("common", "rare", "epic", "legendary", "unique")...).
				Value(&c.Rarity),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, empty for none)").
				Value(&c.Due),
			huh.NewConfirm().
				Title("Flexible (assign due date on completion)?").
				Value(&c.Flexible),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Recurrence").
				Options(huh.NewOptions("none", "daily", "weekly", "monthly")...).
				Value(&c.Recur),
			huh.NewInput().
				Title("Recurrence day (weekday 1-7 or month day 1-31, empty to anchor on start date)").
				Value(&dayStr),
			huh.NewInput().
				Title("Recurrence end date (YYYY-MM-DD, empty for none)").
				Value(&c.End),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if c.Recur == "none" {
		c.Recur = ""
	}
	if dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			return fmt.Errorf("invalid recurrence day: %s", dayStr)
		}
		c.Day = day
	}
	return nil
}

type TaskListCmd struct {
	Recurring bool `help:"Only recurring tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return err
	}
	log, err := ctx.Store.Completions()
	if err != nil {
		return err
	}
	classes, err := ctx.Store.Classes()
	if err != nil {
		return err
	}
	skills, err := ctx.Store.Skills()
	if err != nil {
		return err
	}

	if c.Recurring {
		var filtered []models.Task
		for _, t := range tasks {
			if t.Recurring {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	today := utils.Today()
	scheduler.Sort(tasks, today, log)
	for _, t := range tasks {
		fmt.Println(FormatTaskLine(t, today, log, classes, skills))
	}
	return nil
}

type TaskEditCmd struct {
	ID      string `arg:"" help:"Task id (or unique prefix, or title)."`
	Title   string `help:"New title."`
	Due     string `help:"New due date (YYYY-MM-DD)."`
	Rarity  string `help:"New rarity tier."`
	End     string `help:"New recurrence end date."`
	Class   string `help:"New task class (name or id, 'none' to unlink)."`
	Skill   string `help:"New skill (name or id, 'none' to unlink)."`
	Project string `help:"New project (name or id, 'none' to unlink)."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return err
	}
	task, err := FindTask(tasks, c.ID)
	if err != nil {
		return err
	}

	if c.Title != "" {
		task.Title = c.Title
	}
	if c.Due != "" {
		task.DueDate = c.Due
	}
	if c.End != "" {
		task.RecurringEndDate = c.End
	}
	if c.Rarity != "" {
		rarity, err := ParseRarity(c.Rarity)
		if err != nil {
			return err
		}
		task.Rarity = rarity
		task.XPReward = engine.XPForRarity(rarity)
	}
	if c.Class != "" {
		if c.Class == "none" {
			task.ClassID = ""
		} else {
			classes, err := ctx.Store.Classes()
			if err != nil {
				return err
			}
			cls, err := resolveClass(classes, c.Class)
			if err != nil {
				return err
			}
			task.ClassID = cls.ID
		}
	}
	if c.Skill != "" {
		if c.Skill == "none" {
			task.SkillID = ""
		} else {
			skills, err := ctx.Store.Skills()
			if err != nil {
				return err
			}
			sk, err := resolveSkill(skills, c.Skill)
			if err != nil {
				return err
			}
			task.SkillID = sk.ID
		}
	}
	if c.Project != "" {
		if c.Project == "none" {
			task.ProjectID = ""
		} else {
			projects, err := ctx.Store.Projects()
			if err != nil {
				return err
			}
			p, err := resolveProject(projects, c.Project)
			if err != nil {
				return err
			}
			task.ProjectID = p.ID
		}
	}

	if err := validation.ValidateTask(task); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := ctx.Store.SaveTasks(ReplaceTask(tasks, task)); err != nil {
		return err
	}

	fmt.Printf("Updated task: %s\n", task.Title)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix, or title)."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return err
	}
	task, err := FindTask(tasks, c.ID)
	if err != nil {
		return err
	}

	// Completion log entries for the task become orphaned and are ignored.
	out := make([]models.Task, 0, len(tasks)-1)
	for _, t := range tasks {
		if t.ID != task.ID {
			out = append(out, t)
		}
	}
	if err := ctx.Store.SaveTasks(out); err != nil {
		return err
	}

	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}

type TaskDoneCmd struct {
	ID   string `arg:"" help:"Task id (or unique prefix, or title)."`
	Date string `help:"Occurrence date for recurring tasks (YYYY-MM-DD, default today)."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	if c.Date != "" {
		if _, err := utils.ParseDate(c.Date); err != nil {
			return err
		}
	}

	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return err
	}
	task, err := FindTask(tasks, c.ID)
	if err != nil {
		return err
	}

	today := utils.Today()
	date := c.Date
	if date == "" {
		date = today
	}
	// A recurring task only toggles on dates it actually occurs: nothing
	// before today or the series start, nothing past the end date.
	if task.Recurring && !scheduler.OccursOn(task, date, today) {
		fmt.Printf("%s does not occur on %s; nothing to toggle.\n", task.Title, date)
		return nil
	}

	log, err := ctx.Store.Completions()
	if err != nil {
		return err
	}

	updated, newLog, completedNow := engine.Toggle(task, date, time.Now(), log)
	if err := ctx.Store.SaveTasks(ReplaceTask(tasks, updated)); err != nil {
		return err
	}
	if task.Recurring {
		if err := ctx.Store.SaveCompletions(newLog); err != nil {
			return err
		}
	}

	if !completedNow {
		fmt.Printf("Marked incomplete: %s\n", task.Title)
		return nil
	}

	res, err := awardForTask(ctx, updated)
	if err != nil {
		return err
	}

	fmt.Printf("Completed: %s (+%d XP)\n", task.Title, res.XPAwarded)
	if res.LevelUp {
		fmt.Printf("Level up! %d -> %d (+%d stat points)\n", res.LevelBefore, res.LevelAfter, res.PointsEarned)
	}
	if res.StatIncreased {
		fmt.Printf("Stat increased: %s\n", res.StatAdvanced)
	}
	if res.SkillLevelUp {
		fmt.Println("Skill leveled up!")
	}
	return nil
}

// awardForTask runs the progression step for a task that just transitioned to
// completed: XP to the character, progress to the linked class stat and skill.
func awardForTask(ctx *Context, task models.Task) (engine.AwardResult, error) {
	character, err := ctx.Store.Character()
	if err != nil {
		return engine.AwardResult{}, err
	}
	classes, err := ctx.Store.Classes()
	if err != nil {
		return engine.AwardResult{}, err
	}
	skills, err := ctx.Store.Skills()
	if err != nil {
		return engine.AwardResult{}, err
	}

	class := models.FindClass(classes, task.ClassID)
	skill := models.FindSkill(skills, task.SkillID)

	updated, updatedSkill, res := engine.AwardXP(character, task.XPReward, class, skill)
	if err := ctx.Store.SaveCharacter(updated); err != nil {
		return engine.AwardResult{}, err
	}
	if updatedSkill != nil {
		for i := range skills {
			if skills[i].ID == updatedSkill.ID {
				skills[i] = *updatedSkill
			}
		}
		if err := ctx.Store.SaveSkills(skills); err != nil {
			return engine.AwardResult{}, err
		}
	}
	return res, nil
}
