package cliutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/output"
)

// ErrConflictingOutputFlags marks --json and --quiet used together.
var ErrConflictingOutputFlags = errors.New("--json and --quiet are mutually exclusive")

// Mode resolves the output mode from the global --json/--quiet flags.
func Mode(cmd *cobra.Command) (output.Mode, error) {
	jsonFlag, _ := cmd.Flags().GetBool("json")
	quietFlag, _ := cmd.Flags().GetBool("quiet")
	if jsonFlag && quietFlag {
		return output.ModePretty, ErrConflictingOutputFlags
	}
	if jsonFlag {
		return output.ModeJSON, nil
	}
	if quietFlag {
		return output.ModeQuiet, nil
	}
	return output.ModePretty, nil
}

// MaskCredential hides the middle of an API key for display.
func MaskCredential(key string) string {
	if len(key) <= 10 {
		return "****"
	}
	return key[:7] + "..." + key[len(key)-4:]
}

// FormatRelativeTime formats a time as a human-readable relative string.
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
