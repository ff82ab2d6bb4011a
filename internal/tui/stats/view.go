package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sendcast/sendcast-cli/internal/styles"
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	labelStyle = lipgloss.NewStyle().Foreground(styles.Gray).Width(16)
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.White)
	helpStyle  = lipgloss.NewStyle().Foreground(styles.Gray).MarginTop(1)
	deltaUp    = lipgloss.NewStyle().Foreground(styles.Green)
	deltaDown  = lipgloss.NewStyle().Foreground(styles.Red)
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.HeaderStyle.Render("Sendcast"))
	sb.WriteString("\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch {
	case m.lastError != nil:
		sb.WriteString(styles.FailStyle.Render("✖ " + m.lastError.Error()))
	case m.stats == nil:
		sb.WriteString(m.spinner.View() + " loading...")
	default:
		switch m.tab {
		case TabOverview:
			sb.WriteString(m.renderOverview())
		case TabGrowth:
			sb.WriteString(m.renderGrowth())
		case TabEngagement:
			sb.WriteString(m.renderEngagement())
		}
	}

	status := ""
	if m.loading && m.stats != nil {
		status = "  " + m.spinner.View() + " refreshing"
	} else if m.stats != nil {
		status = "  updated " + m.stats.RefreshedAt.Format("15:04:05")
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("q: quit • r: refresh • ←/→: tabs" + status))

	return appStyle.Render(sb.String())
}

func (m Model) renderTabs() string {
	tabs := []string{"Overview", "Growth", "Engagement"}
	var rendered []string
	for i, tab := range tabs {
		if Tab(i) == m.tab {
			rendered = append(rendered, styles.TabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, styles.TabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func (m Model) renderOverview() string {
	s := m.stats
	var sb strings.Builder
	sb.WriteString(row("Subscribers", fmt.Sprintf("%d", s.Subscribers)))
	sb.WriteString(row("Active", fmt.Sprintf("%d", s.Active)))
	sb.WriteString(row("Unsubscribed", fmt.Sprintf("%d", s.Unsubscribed)))
	sb.WriteString(row("Suppressed", fmt.Sprintf("%d", s.Suppressed)))
	return sb.String()
}

func (m Model) renderGrowth() string {
	s := m.stats
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("This week") + delta(s.GrowthWeek) + "\n")
	sb.WriteString(labelStyle.Render("This month") + delta(s.GrowthMonth) + "\n")
	return sb.String()
}

func (m Model) renderEngagement() string {
	s := m.stats
	var sb strings.Builder
	sb.WriteString(row("Avg open rate", fmt.Sprintf("%.1f%%", s.AvgOpenRate*100)))
	sb.WriteString(row("Avg click rate", fmt.Sprintf("%.1f%%", s.AvgClickRate*100)))
	return sb.String()
}

func delta(n int) string {
	switch {
	case n > 0:
		return deltaUp.Render(fmt.Sprintf("+%d", n))
	case n < 0:
		return deltaDown.Render(fmt.Sprintf("%d", n))
	}
	return valueStyle.Render("0")
}
