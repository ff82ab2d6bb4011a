package cli

import (
	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/config"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage credential profiles",
}

var profilesListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List saved profiles",
	Aliases: []string{"ls"},
	RunE:    runProfilesList,
}

var profilesUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the current profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesUse,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesUseCmd)
}

// profileView is the envelope shape for one profile; credentials are
// masked, never echoed back in full.
type profileView struct {
	Name        string `json:"name"`
	AccountID   string `json:"accountId,omitempty"`
	AccountName string `json:"accountName,omitempty"`
	APIKey      string `json:"apiKey"`
	Current     bool   `json:"current"`
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}

	ps, err := config.LoadProfiles()
	if err != nil {
		return err
	}
	profiles := ps.ListProfiles()

	views := make([]profileView, 0, len(profiles))
	for _, prof := range profiles {
		views = append(views, profileView{
			Name:        prof.Name,
			AccountID:   prof.AccountID,
			AccountName: prof.AccountName,
			APIKey:      cliutil.MaskCredential(prof.APIKey),
			Current:     prof.Name == ps.Current,
		})
	}

	if p.Pretty() {
		if len(views) == 0 {
			p.Infof("no profiles saved — run 'sendcast login'")
		} else {
			t := cliutil.NewTable(p.Out(),
				cliutil.Column{Header: "", Width: 2},
				cliutil.Column{Header: "NAME", Width: 16},
				cliutil.Column{Header: "ACCOUNT", Width: 24},
				cliutil.Column{Header: "KEY"},
			)
			t.PrintHeader()
			for _, v := range views {
				marker := ""
				if v.Current {
					marker = "*"
				}
				t.PrintRow(marker, v.Name, v.AccountName, v.APIKey)
			}
			p.Println()
		}
	}

	return p.Envelope(output.OKMeta(views, output.Meta{Count: len(views)}))
}

func runProfilesUse(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}

	ps, err := config.LoadProfiles()
	if err != nil {
		return err
	}
	if err := ps.UseProfile(args[0]); err != nil {
		return err
	}

	p.Successf("switched to profile %q", args[0])
	return p.Envelope(output.OK(map[string]interface{}{"current": args[0]}))
}
