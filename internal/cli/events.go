package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/targets"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Record subscriber events",
}

var eventsTrackCmd = &cobra.Command{
	Use:   "track <name>",
	Short: "Track a custom event for a subscriber",
	Long: `Record a named event (purchase, visit, ...) against a subscriber.
Properties are key=value pairs.

Examples:
  sendcast events track purchase --email a@x.com
  sendcast events track purchase --email a@x.com --prop amount=49 --prop plan=pro`,
	Args: cobra.ExactArgs(1),
	RunE: runEventsTrack,
}

var (
	eventEmail string
	eventProps []string
)

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsTrackCmd)

	eventsTrackCmd.Flags().StringVar(&eventEmail, "email", "", "Subscriber email (required)")
	eventsTrackCmd.Flags().StringArrayVar(&eventProps, "prop", nil, "Event property as key=value (repeatable)")
}

func runEventsTrack(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	name := args[0]

	email := targets.Normalize(eventEmail)
	if !targets.ValidEmail(email) {
		return cmdutil.Usagef("a valid --email is required")
	}

	props := make(map[string]string, len(eventProps))
	for _, kv := range eventProps {
		k, v, found := strings.Cut(kv, "=")
		if !found || k == "" {
			return cmdutil.Usagef("invalid --prop %q (want key=value)", kv)
		}
		props[k] = v
	}

	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}
	if err := client.TrackEvent(cmd.Context(), email, name, props); err != nil {
		return err
	}

	p.Successf("tracked %q for %s", name, email)
	return p.Envelope(output.OK(map[string]interface{}{
		"event":      name,
		"email":      email,
		"properties": props,
	}))
}
