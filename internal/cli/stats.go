package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/styles"
	"github.com/sendcast/sendcast-cli/internal/tui/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show account-wide stats",
	RunE:  runStats,
}

var statsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live stats dashboard",
	Long: `Open a full-screen dashboard that refreshes the account stats on
an interval. Press q to quit.`,
	RunE: runStatsWatch,
}

var watchInterval time.Duration

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsWatchCmd)
	statsWatchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Second,
		"Refresh interval")
}

func runStats(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	s, err := client.GetAccountStats(cmd.Context())
	if err != nil {
		return err
	}

	if p.Pretty() {
		p.Println()
		label := func(k, v string) {
			p.Println(styles.LabelStyle.Render("  "+k) + v)
		}
		label("Subscribers", fmt.Sprintf("%d", s.Subscribers))
		label("Active", fmt.Sprintf("%d", s.Active))
		label("Unsubscribed", fmt.Sprintf("%d", s.Unsubscribed))
		label("Suppressed", fmt.Sprintf("%d", s.Suppressed))
		label("Growth (week)", fmt.Sprintf("%+d", s.GrowthWeek))
		label("Growth (month)", fmt.Sprintf("%+d", s.GrowthMonth))
		label("Avg open rate", fmt.Sprintf("%.1f%%", s.AvgOpenRate*100))
		label("Avg click rate", fmt.Sprintf("%.1f%%", s.AvgClickRate*100))
		p.Println()
	}

	return p.Envelope(output.OK(s))
}

func runStatsWatch(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	if !p.Pretty() {
		return cmdutil.Usagef("stats watch is interactive; use 'sendcast stats --json' for machine output")
	}
	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}
	if watchInterval < time.Second {
		return cmdutil.Usagef("--interval must be at least 1s")
	}

	model := stats.New(client, watchInterval)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
