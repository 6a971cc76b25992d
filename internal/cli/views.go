package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/taskquest/internal/models"
	"github.com/julianstephens/taskquest/internal/scheduler"
	"github.com/julianstephens/taskquest/internal/utils"
)

// TodayCmd lists everything due today: recurring occurrences plus dated tasks.
type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	today := utils.Today()
	return printOccurrences(ctx, today, fmt.Sprintf("Due today (%s)", today))
}

// TomorrowCmd lists incomplete non-recurring tasks due tomorrow.
type TomorrowCmd struct{}

func (c *TomorrowCmd) Run(ctx *Context) error {
	today := utils.Today()
	tomorrow, err := utils.AddDays(today, 1)
	if err != nil {
		return err
	}
	return printSimpleView(ctx, fmt.Sprintf("Due tomorrow (%s)", tomorrow), func(tasks []models.Task) []models.Task {
		return scheduler.TomorrowTasks(tasks, today)
	})
}

// OverdueCmd lists the incomplete backlog with past due dates.
type OverdueCmd struct{}

func (c *OverdueCmd) Run(ctx *Context) error {
	return printSimpleView(ctx, "Overdue", func(tasks []models.Task) []models.Task {
		return scheduler.OverdueTasks(tasks, utils.Today())
	})
}

// UnscheduledCmd lists incomplete tasks with no due date.
type UnscheduledCmd struct{}

func (c *UnscheduledCmd) Run(ctx *Context) error {
	return printSimpleView(ctx, "No due date", func(tasks []models.Task) []models.Task {
		return scheduler.UnscheduledTasks(tasks, utils.Today())
	})
}

// WeekCmd shows occurrences for each day of the current week.
type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	start, end := utils.WeekRange(time.Now())
	return printDateRange(ctx, start, end)
}

// MonthCmd shows occurrences for each day of the current month.
type MonthCmd struct{}

func (c *MonthCmd) Run(ctx *Context) error {
	start, end := utils.MonthRange(time.Now())
	return printDateRange(ctx, start, end)
}

func printOccurrences(ctx *Context, date string, header string) error {
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

	due := scheduler.OccurrencesOn(tasks, date, utils.Today(), log)
	fmt.Printf("%s:\n", header)
	if len(due) == 0 {
		fmt.Println("  nothing due")
		return nil
	}
	for _, t := range due {
		fmt.Printf("  %s\n", FormatTaskLine(t, date, log, classes, skills))
	}
	return nil
}

func printSimpleView(ctx *Context, header string, view func([]models.Task) []models.Task) error {
	tasks, err := ctx.Store.Tasks()
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

	matched := view(tasks)
	fmt.Printf("%s:\n", header)
	if len(matched) == 0 {
		fmt.Println("  nothing here")
		return nil
	}
	for _, t := range matched {
		fmt.Printf("  %s\n", FormatTaskLine(t, utils.Today(), nil, classes, skills))
	}
	return nil
}

func printDateRange(ctx *Context, start, end time.Time) error {
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

	today := utils.Today()
	for _, date := range utils.DatesBetween(start, end) {
		due := scheduler.OccurrencesOn(tasks, date, today, log)
		if len(due) == 0 {
			continue
		}
		fmt.Printf("%s:\n", date)
		for _, t := range due {
			fmt.Printf("  %s\n", FormatTaskLine(t, date, log, classes, skills))
		}
	}
	return nil
}
