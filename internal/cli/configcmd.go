package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/config"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one setting to the config file",
	Long: `Persist a setting to config.yaml.

Keys: base_url, confirm_threshold, sample_size. Environment variables
(SENDCAST_BASE_URL, ...) still override the file at run time.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}

	settings := map[string]interface{}{
		"base_url":          config.BaseURL(),
		"confirm_threshold": config.ConfirmThreshold(),
		"sample_size":       config.SampleSize(),
	}

	if p.Pretty() {
		dir, err := config.Dir()
		if err == nil {
			p.Infof("config dir: %s", dir)
		}
		p.Println()
		label := func(k, v string) {
			p.Println(styles.LabelStyle.Render("  "+k) + v)
		}
		label("base_url", config.BaseURL())
		label("confirm_threshold", strconv.Itoa(config.ConfirmThreshold()))
		label("sample_size", strconv.Itoa(config.SampleSize()))
		p.Println()
	}

	return p.Envelope(output.OK(settings))
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	key, value := args[0], args[1]

	s, err := config.LoadSettings()
	if err != nil {
		return err
	}

	switch key {
	case "base_url":
		s.BaseURL = value
	case "confirm_threshold":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return cmdutil.Usagef("confirm_threshold must be a positive integer")
		}
		s.ConfirmThreshold = n
	case "sample_size":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return cmdutil.Usagef("sample_size must be a positive integer")
		}
		s.SampleSize = n
	default:
		return cmdutil.Usagef("unknown setting %q (want base_url, confirm_threshold, or sample_size)", key)
	}

	if err := config.Save(s); err != nil {
		return err
	}

	p.Successf("set %s = %s", key, value)
	return p.Envelope(output.OK(map[string]interface{}{key: value}))
}
