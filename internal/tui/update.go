package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/engine"
	"github.com/julianstephens/taskquest/internal/models"
)

// statKeys maps the number row onto the five stats for point spending.
var statKeys = map[string]constants.StatType{
	"1": constants.StatStrength,
	"2": constants.StatEndurance,
	"3": constants.StatIntelligence,
	"4": constants.StatAgility,
	"5": constants.StatCharisma,
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			m.toggleSelected()
			return m, nil
		case "r":
			if err := m.refresh(); err != nil {
				m.err = err
			}
			m.table.SetRows(m.rows())
			return m, nil
		default:
			if stat, ok := statKeys[msg.String()]; ok {
				m.spendPoint(stat)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// toggleSelected flips the highlighted occurrence and, on a transition into
// completed, runs the progression step.
func (m *Model) toggleSelected() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.due) {
		return
	}
	task := m.due[idx]

	updated, newLog, completedNow := engine.Toggle(task, m.today, time.Now(), m.log)
	m.tasks = replaceTask(m.tasks, updated)
	if err := m.store.SaveTasks(m.tasks); err != nil {
		m.err = err
		return
	}
	if task.Recurring {
		if err := m.store.SaveCompletions(newLog); err != nil {
			m.err = err
			return
		}
	}

	if completedNow {
		class := models.FindClass(m.classes, task.ClassID)
		skill := models.FindSkill(m.skills, task.SkillID)
		character, updatedSkill, res := engine.AwardXP(m.character, task.XPReward, class, skill)
		if err := m.store.SaveCharacter(character); err != nil {
			m.err = err
			return
		}
		if updatedSkill != nil {
			for i := range m.skills {
				if m.skills[i].ID == updatedSkill.ID {
					m.skills[i] = *updatedSkill
				}
			}
			if err := m.store.SaveSkills(m.skills); err != nil {
				m.err = err
				return
			}
		}
		m.status = fmt.Sprintf("+%d XP", res.XPAwarded)
		if res.LevelUp {
			m.status = fmt.Sprintf("+%d XP, LEVEL UP! %d -> %d", res.XPAwarded, res.LevelBefore, res.LevelAfter)
		}
	} else {
		m.status = "marked incomplete"
	}

	if err := m.refresh(); err != nil {
		m.err = err
		return
	}
	m.table.SetRows(m.rows())
}

func (m *Model) spendPoint(stat constants.StatType) {
	if m.character.UnspentPoints == 0 {
		m.status = "no unspent points"
		return
	}
	updated := engine.SpendPoint(m.character, stat)
	if err := m.store.SaveCharacter(updated); err != nil {
		m.err = err
		return
	}
	m.character = updated
	m.status = fmt.Sprintf("%s -> %d", stat, updated.Stat(stat).Value)
}

func replaceTask(tasks []models.Task, updated models.Task) []models.Task {
	for i := range tasks {
		if tasks[i].ID == updated.ID {
			tasks[i] = updated
		}
	}
	return tasks
}
