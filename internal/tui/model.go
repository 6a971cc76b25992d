package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/taskquest/internal/engine"
	"github.com/julianstephens/taskquest/internal/models"
	"github.com/julianstephens/taskquest/internal/scheduler"
	"github.com/julianstephens/taskquest/internal/storage"
	"github.com/julianstephens/taskquest/internal/utils"
)

// Model is the dashboard: character sheet on top, today's quests below.
type Model struct {
	store storage.Provider

	character models.Character
	tasks     []models.Task
	log       []models.RecurringCompletion
	classes   []models.TaskClass
	skills    []models.Skill
	due       []models.Task

	table  table.Model
	today  string
	status string
	err    error
}

// New builds the dashboard model from the loaded store.
func New(store storage.Provider) (*Model, error) {
	m := &Model{
		store: store,
		today: utils.Today(),
	}
	if err := m.refresh(); err != nil {
		return nil, err
	}

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: " ", Width: 3},
			{Title: "Quest", Width: 36},
			{Title: "Rarity", Width: 10},
			{Title: "XP", Width: 6},
		}),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	return m, nil
}

// Run starts the dashboard program.
func Run(store storage.Provider) error {
	m, err := New(store)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// refresh reloads every collection and recomputes today's occurrences.
func (m *Model) refresh() error {
	var err error
	if m.character, err = m.store.Character(); err != nil {
		return err
	}
	if m.tasks, err = m.store.Tasks(); err != nil {
		return err
	}
	if m.log, err = m.store.Completions(); err != nil {
		return err
	}
	if m.classes, err = m.store.Classes(); err != nil {
		return err
	}
	if m.skills, err = m.store.Skills(); err != nil {
		return err
	}
	m.due = scheduler.OccurrencesOn(m.tasks, m.today, m.today, m.log)
	return nil
}

func (m *Model) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.due))
	for _, t := range m.due {
		mark := " "
		if engine.IsCompletedOn(t, m.today, m.log) {
			mark = "x"
		}
		rows = append(rows, table.Row{
			mark,
			t.Title,
			string(t.Rarity),
			fmt.Sprintf("%d", t.XPReward),
		})
	}
	return rows
}
