package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/surveygrid/lasctl/internal/pipeline"
)

// NewMergeCmd creates and returns the merge subcommand for the lasctl CLI.
func NewMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <files...> <dst>",
		Short: "Merge several files (or a directory of files) into one",
		Long: `Merge the listed FILES and write the result to DST.

When a single source argument is given it may also name a directory or
a directory glob (for example tiles or 'tiles/*.las'); every matching
file is merged in lexical order. A DST name ending in .laz selects
compressed encoding.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, dst := args[:len(args)-1], args[len(args)-1]

			progress := func(done, total int, src pipeline.Source) {
				line := fmt.Sprintf("[%d/%d] read %s", done, total, src.Path)
				fmt.Fprintln(cmd.OutOrStdout(), sourceStyle(src.Path).Render(line))
			}
			if err := pipeline.Merge(files, dst, progress); err != nil {
				return fmt.Errorf("merge: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dst)
			return nil
		},
	}
	return cmd
}
