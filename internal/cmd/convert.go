package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/surveygrid/lasctl/internal/pipeline"
	"github.com/surveygrid/lasctl/las"
)

// NewConvertCmd creates and returns the convert subcommand for the lasctl CLI.
func NewConvertCmd() *cobra.Command {
	var (
		pointFormatID int
		fileVersion   string
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a file to another point format or file version",
		Long: fmt.Sprintf(`Convert INPUT to the requested point format and file version and
write the result to OUTPUT.

If neither a point format nor a file version is given the file is
decoded and re-encoded unchanged, which normalizes the container.
When the requested point format would drop dimensions, lasctl lists
them and asks for confirmation before writing anything; --force skips
the question.

An OUTPUT name ending in .laz selects compressed encoding.

Supported point formats: %v
Supported file versions: %s`,
			las.SupportedPointFormats(), versionList()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.ConvertOptions{Force: force}
			if cmd.Flags().Changed("point-format-id") {
				opts.PointFormat = &pointFormatID
			}
			if fileVersion != "" {
				v, err := las.ParseVersion(fileVersion)
				if err != nil {
					return err
				}
				opts.FileVersion = &v
			}

			confirm := pipeline.TerminalConfirmer{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
			}
			report := func(lost []string) {
				fmt.Fprintln(cmd.ErrOrStderr(),
					warnStyle.Render("dropping dimensions: "+strings.Join(lost, ", ")))
			}

			err := pipeline.Convert(args[0], args[1], opts, confirm, report)
			if errors.Is(err, pipeline.ErrUserDeclined) {
				fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("Aborted, nothing written."))
				return err
			}
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pointFormatID, "point-format-id", 0,
		"Point format id to convert the file to")
	cmd.Flags().StringVar(&fileVersion, "file-version", "",
		"File version to convert to (e.g. 1.4)")
	cmd.Flags().BoolVar(&force, "force", false,
		"Do not ask for confirmation when dimensions may be lost")

	return cmd
}

func versionList() string {
	versions := las.SupportedVersions()
	parts := make([]string, len(versions))
	for i, v := range versions {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
