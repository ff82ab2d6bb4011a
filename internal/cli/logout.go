package cli

import (
	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/config"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var logoutCmd = &cobra.Command{
	Use:   "logout [profile]",
	Short: "Remove a saved profile",
	Long: `Remove a profile's stored credentials. With no argument, removes
the current profile. If other profiles remain, the first one becomes
current.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}

	ps, err := config.LoadProfiles()
	if err != nil {
		return err
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	} else {
		current, err := ps.CurrentProfile()
		if err != nil {
			return config.ErrNotAuthenticated
		}
		name = current.Name
	}

	if err := ps.RemoveProfile(name); err != nil {
		return err
	}

	p.Successf("removed profile %q", name)
	return p.Envelope(output.OK(map[string]interface{}{"removed": name}))
}
