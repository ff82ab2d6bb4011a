package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/api"
	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/config"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save API credentials as a profile",
	Long: `Validate API credentials against the account endpoint and save
them as a named profile. The new profile becomes current.

Credentials can be passed as flags or entered at the prompt.

Examples:
  sendcast login
  sendcast login --name staging --api-key sk_... --api-secret ss_...`,
	RunE: runLogin,
}

var (
	loginName   string
	loginKey    string
	loginSecret string
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginName, "name", "default", "Profile name")
	loginCmd.Flags().StringVar(&loginKey, "api-key", "", "API key")
	loginCmd.Flags().StringVar(&loginSecret, "api-secret", "", "API secret")
}

func runLogin(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}

	key := loginKey
	secret := loginSecret
	if key == "" {
		if p.JSON() || p.Quiet() {
			return cmdutil.Usagef("--api-key is required in non-interactive output modes")
		}
		if key, err = promptLine("API key: "); err != nil {
			return err
		}
	}
	if key == "" {
		return cmdutil.Usagef("API key must not be empty")
	}
	if secret == "" && p.Pretty() {
		if secret, err = promptLine("API secret (optional): "); err != nil {
			return err
		}
	}

	client := api.New(key, secret, api.WithBaseURL(config.BaseURL()))
	acct, err := client.Account(cmd.Context())
	if err != nil {
		return err
	}

	ps, err := config.LoadProfiles()
	if err != nil {
		return err
	}
	if err := ps.AddProfile(config.Profile{
		Name:        loginName,
		APIKey:      key,
		APISecret:   secret,
		AccountID:   acct.ID,
		AccountName: acct.Name,
	}); err != nil {
		return err
	}

	p.Successf("logged in to %s (%s) as profile %q with key %s",
		acct.Name, acct.Plan, loginName, cliutil.MaskCredential(key))
	return p.Envelope(output.OK(map[string]interface{}{
		"profile": loginName,
		"account": acct,
	}))
}

func promptLine(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
