// Package main provides the lasctl command-line interface.
//
// lasctl is a tool for inspecting, converting, and merging LAS/LAZ
// point-cloud files without writing code. It guards lossy point-format
// conversions behind an interactive confirmation and can expand a
// directory pattern into a batch of files for merging.
//
// The binary supports the following subcommands:
//   - convert: Convert a file to another point format or file version
//   - info: Print header, VLR, and per-dimension information
//   - merge: Merge several files (or a directory of files) into one
package main
