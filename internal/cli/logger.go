package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// newLogger configures the run logger from the persistent flags.
// Logs go to stderr so stdout carries only the summary.
func newLogger(cmd *cobra.Command) (hclog.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	format, _ := cmd.Flags().GetString("log-format")

	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	var jsonFormat bool
	switch format {
	case "text", "":
	case "json":
		jsonFormat = true
	default:
		return nil, fmt.Errorf("invalid log format: %s (valid: text, json)", format)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "webpalette",
		Output:     cmd.ErrOrStderr(),
		Level:      level,
		JSONFormat: jsonFormat,
		TimeFormat: "2006-01-02 15:04:05",
	}), nil
}
