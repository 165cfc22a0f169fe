package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/surveygrid/lasctl/las"
)

// NewInfoCmd creates and returns the info subcommand for the lasctl CLI.
func NewInfoCmd() *cobra.Command {
	var (
		extended bool
		vlrs     bool
		points   bool
	)

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print header, VLR, and per-dimension information",
		Long: `Print the file information to stdout.

By default only the header fields are written. --extended adds on-disk
layout fields, --vlrs enumerates the variable-length records, and
--points reads the point array and prints each dimension's range.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := las.Open(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			out := cmd.OutOrStdout()
			printHeader(out, r.Header(), extended)

			if vlrs {
				fmt.Fprintln(out, divider)
				if err := printVLRs(out, r); err != nil {
					return err
				}
			}
			if points {
				fmt.Fprintln(out, divider)
				if err := printPoints(out, r); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&extended, "extended", false, "Print on-disk header size and point data offset")
	cmd.Flags().BoolVar(&vlrs, "vlrs", false, "Read and print VLR information")
	cmd.Flags().BoolVar(&points, "points", false, "Read and print per-dimension minimum and maximum values")

	return cmd
}

const divider = "--------------------"

func printHeader(out io.Writer, h las.Header, extended bool) {
	fmt.Fprintf(out, "File version: %s\n", h.Version)
	fmt.Fprintf(out, "Point format id: %d\n", h.PointFormatID)
	fmt.Fprintf(out, "Number of points: %d\n", h.PointCount)
	fmt.Fprintf(out, "Point size: %d\n", h.PointRecordLength)

	returns := h.PointsByReturn[:5]
	if h.Version.AtLeast(las.Version{Major: 1, Minor: 4}) {
		returns = h.PointsByReturn[:]
	}
	fmt.Fprintf(out, "Points by return: %v\n", returns)

	fmt.Fprintf(out, "Compressed: %v\n", h.Compressed)
	fmt.Fprintf(out, "Creation date: %s\n", creationDate(h))
	fmt.Fprintf(out, "Generating software: %s\n", h.GeneratingSoftware)
	fmt.Fprintf(out, "Project id: %s\n", h.ProjectID)
	fmt.Fprintf(out, "Number of VLRs: %d\n", h.NumberOfVLRs)
	if h.Version.AtLeast(las.Version{Major: 1, Minor: 4}) {
		fmt.Fprintf(out, "Number of EVLRs: %d\n", h.NumberOfEVLRs)
	}
	fmt.Fprintf(out, "Scales: %v\n", h.Scales)
	fmt.Fprintf(out, "Offsets: %v\n", h.Offsets)
	fmt.Fprintf(out, "Mins: %v\n", h.Mins)
	fmt.Fprintf(out, "Maxs: %v\n", h.Maxs)

	if extended {
		fmt.Fprintf(out, "Header size: %d\n", h.HeaderSize)
		fmt.Fprintf(out, "Offset to point data: %d\n", h.OffsetToPointData)
	}
}

func creationDate(h las.Header) string {
	if h.CreationYear == 0 {
		return "unset"
	}
	d := time.Date(int(h.CreationYear), 1, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, int(h.CreationDayOfYear)-1)
	return d.Format("2006-01-02")
}

func printVLRs(out io.Writer, r *las.Reader) error {
	vlrs, err := r.ReadVLRs()
	if err != nil {
		return err
	}
	for i, v := range vlrs {
		fmt.Fprintf(out, "VLR %d / %d\n", i+1, len(vlrs))
		fmt.Fprintf(out, "\tVLR type: %s\n", v.Type())
		fmt.Fprintf(out, "\tUser id: %s\n", v.UserID)
		fmt.Fprintf(out, "\tRecord id: %d\n", v.RecordID)
		fmt.Fprintf(out, "\tDescription: %s\n", v.Description)
		fmt.Fprintf(out, "\tMore: %s\n", v)
	}
	evlrs, err := r.ReadEVLRs()
	if err != nil {
		return err
	}
	for i, v := range evlrs {
		fmt.Fprintf(out, "EVLR %d / %d\n", i+1, len(evlrs))
		fmt.Fprintf(out, "\tUser id: %s\n", v.UserID)
		fmt.Fprintf(out, "\tRecord id: %d\n", v.RecordID)
		fmt.Fprintf(out, "\tDescription: %s\n", v.Description)
		fmt.Fprintf(out, "\tMore: %s\n", v)
	}
	return nil
}

func printPoints(out io.Writer, r *las.Reader) error {
	pts, err := r.ReadPoints()
	if err != nil {
		return err
	}
	dims := las.Dimensions(r.Header().PointFormatID)
	fmt.Fprintf(out, "Available dimensions: %v\n", dims)
	f := las.File{Header: r.Header(), Points: pts}
	for _, name := range dims {
		lo, hi := f.DimensionRange(name)
		fmt.Fprintf(out, "\t%s: min %v, max %v\n", name, lo, hi)
	}
	return nil
}
