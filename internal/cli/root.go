// Package cli provides the command-line interface for webpalette.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/webpalette/internal/version"
)

// NewRootCmd builds the webpalette command tree. Running the root command with
// a URL is the same as running "webpalette extract <url>".
func NewRootCmd() *cobra.Command {
	opts := newExtractOptions()

	rootCmd := &cobra.Command{
		Use:   "webpalette [url]",
		Short: "Extract a colour palette from a website",
		Long: `webpalette fetches a web page and builds a ranked colour palette from the
colours declared in its style blocks, inline styles and linked stylesheets,
plus the dominant colour of its first images.

Results are written as a JSON record and an HTML visualization, and printed
as a summary.`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runExtract(cmd, args[0], opts)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	opts.registerFlags(rootCmd.Flags())

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
