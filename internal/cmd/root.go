package cmd

import (
	"github.com/spf13/cobra"
	"github.com/surveygrid/lasctl/version"
)

// NewRootCmd creates and returns the root cobra command for the lasctl CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lasctl",
		Short: "lasctl - inspect, convert, and merge LAS/LAZ point-cloud files",
		Long: `lasctl is a command-line tool for LAS/LAZ point-cloud files.

It prints file information, converts between point formats and file
versions (asking before a conversion that would drop dimensions), and
merges many files into one. Writing to a name ending in .laz selects
compressed output; no flag is needed.

Use subcommands to perform different operations:
  - convert: Convert a file to another point format or file version
  - info: Print header, VLR, and per-dimension information
  - merge: Merge several files (or a directory of files) into one`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groupFiles := "files"
	groupInspect := "inspect"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFiles,
		Title: "File Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupInspect,
		Title: "Inspection",
	})

	convertCmd := NewConvertCmd()
	infoCmd := NewInfoCmd()
	mergeCmd := NewMergeCmd()

	convertCmd.GroupID = groupFiles
	mergeCmd.GroupID = groupFiles
	infoCmd.GroupID = groupInspect

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(mergeCmd)

	return rootCmd
}
