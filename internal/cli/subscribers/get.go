package subscribers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/styles"
	"github.com/sendcast/sendcast-cli/internal/targets"
)

var getCmd = &cobra.Command{
	Use:   "get <email>",
	Short: "Show one subscriber",
	Long: `Show a single subscriber's state, tags, and custom fields.

Examples:
  sendcast subscribers get a@x.com
  sendcast subscribers get a@x.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	Cmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	email := targets.Normalize(args[0])
	if !targets.ValidEmail(email) {
		return cmdutil.Usagef("%q is not a valid email address", args[0])
	}
	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	sub, err := client.GetSubscriber(cmd.Context(), email)
	if err != nil {
		return err
	}

	if p.Pretty() {
		p.Println()
		p.Println(" " + styles.EmailStyle.Render(sub.Email))
		p.Println()
		label := func(k, v string) {
			p.Println(styles.LabelStyle.Render("  "+k) + v)
		}
		label("State", styles.FormatSubscriberState(sub.State))
		if sub.Name != "" {
			label("Name", sub.Name)
		}
		if len(sub.Tags) > 0 {
			label("Tags", strings.Join(sub.Tags, ", "))
		}
		for k, v := range sub.Fields {
			label(k, v)
		}
		label("Created", cliutil.FormatRelativeTime(sub.CreatedAt))
		if sub.SubscribedAt != nil {
			label("Subscribed", cliutil.FormatRelativeTime(*sub.SubscribedAt))
		}
		p.Println()
	}

	return p.Envelope(output.OK(sub))
}
