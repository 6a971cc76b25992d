package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/taskquest/internal/constants"
	"github.com/julianstephens/taskquest/internal/engine"
)

const xpBarWidth = 30

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("taskquest %s", m.today)))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.characterPanel()))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space: toggle • 1-5: spend point • r: refresh • q: quit"))
	return b.String()
}

func (m *Model) characterPanel() string {
	required := engine.XPRequiredForLevel(m.character.Level)
	filled := 0
	if required > 0 {
		filled = m.character.XP * xpBarWidth / required
	}
	if filled > xpBarWidth {
		filled = xpBarWidth
	}
	bar := xpBarFilledStyle.Render(strings.Repeat("█", filled)) +
		xpBarEmptyStyle.Render(strings.Repeat("░", xpBarWidth-filled))

	lines := []string{
		fmt.Sprintf("%s  •  level %d", m.character.Name, m.character.Level),
		fmt.Sprintf("%s %d/%d XP", bar, m.character.XP, required),
	}
	if m.character.UnspentPoints > 0 {
		lines = append(lines, fmt.Sprintf("unspent points: %d", m.character.UnspentPoints))
	}

	var stats []string
	for i, stat := range constants.Stats {
		block := m.character.Stat(stat)
		stats = append(stats, fmt.Sprintf("%s%s %d", statLabelStyle.Render(fmt.Sprintf("[%d]", i+1)), stat, block.Value))
	}
	lines = append(lines, strings.Join(stats, "  "))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
