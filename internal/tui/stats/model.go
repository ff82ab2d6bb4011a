// Package stats is the live account dashboard TUI. It polls the stats
// endpoint on an interval and renders the numbers across tabs.
package stats

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sendcast/sendcast-cli/internal/api"
	"github.com/sendcast/sendcast-cli/internal/styles"
)

// Tab selects which dashboard pane is visible.
type Tab int

const (
	TabOverview Tab = iota
	TabGrowth
	TabEngagement
)

// Messages
type statsMsg struct {
	stats *api.AccountStats
	err   error
}

type tickMsg time.Time

// KeyMap defines the keybindings.
type KeyMap struct {
	Refresh key.Binding
	PrevTab key.Binding
	NextTab key.Binding
	Quit    key.Binding
}

var DefaultKeyMap = KeyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev tab"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→", "next tab"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the Bubble Tea model for the stats dashboard.
type Model struct {
	client   *api.Client
	interval time.Duration

	stats     *api.AccountStats
	lastError error
	loading   bool

	tab     Tab
	spinner spinner.Model

	width  int
	height int
}

// New creates a dashboard model polling at the given interval.
func New(client *api.Client, interval time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.MutedStyle

	return Model{
		client:   client,
		interval: interval,
		loading:  true,
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch loads the stats once; the result comes back as a statsMsg.
func (m Model) fetch() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		stats, err := client.GetAccountStats(ctx)
		return statsMsg{stats: stats, err: err}
	}
}

// scheduleTick queues the next poll.
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, DefaultKeyMap.Refresh):
			m.loading = true
			return m, m.fetch()
		case key.Matches(msg, DefaultKeyMap.PrevTab):
			m.tab--
			if m.tab < TabOverview {
				m.tab = TabEngagement
			}
			return m, nil
		case key.Matches(msg, DefaultKeyMap.NextTab):
			m.tab++
			if m.tab > TabEngagement {
				m.tab = TabOverview
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case statsMsg:
		m.loading = false
		if msg.err != nil {
			m.lastError = msg.err
		} else {
			m.lastError = nil
			m.stats = msg.stats
		}
		return m, m.scheduleTick()

	case tickMsg:
		m.loading = true
		return m, m.fetch()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
