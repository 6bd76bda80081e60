// Package cli provides the Cobra command structure for mapstitch.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mapstitch/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mapstitch command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "mapstitch",
		Short: "Edit generated text while keeping its source map stitched to it",
		Long: `mapstitch edits generated files (bundles, transpiled output) while
carrying their source map through every change.

A loaded file becomes a position-mapped buffer: deletes, inserts, slices,
and concatenations reposition, merge, or drop the map's entries without
ever re-deriving them. Saving writes the text with a sourceMappingURL
marker plus a fresh source map v3 artifact next to it.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			// Commands pull their logger back out of the context.
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newSliceCommand())
	rootCmd.AddCommand(newInspectCommand(&color))
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
