// Package cmd provides the command-line interface implementation for lasctl.
//
// This package contains all the subcommand implementations for the
// lasctl CLI tool. It uses the Cobra library for command structure and
// Fang for styling at the entry point.
//
// The package is organized into the following commands:
//   - root: Main command coordinator
//   - convert: Point format and file version conversion with a
//     confirmation step for lossy requests
//   - info: Header, VLR, and per-dimension inspection
//   - merge: Multi-file and directory-pattern merging
//
// Each command is implemented as a separate file with its own
// constructor function that returns a *cobra.Command. The heavy
// lifting lives in the pipeline and las packages; this package only
// parses flags and renders output.
package cmd
