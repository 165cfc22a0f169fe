// Package pipeline orchestrates lasctl's file operations.
//
// It turns raw command-line file arguments into an ordered batch of
// sources, reads them with per-file progress feedback, guards lossy
// point-format conversions behind an injectable confirmation step, and
// delegates the structural work to the las package. Writes go through
// a temporary file so that no failure path leaves a partial
// destination behind.
package pipeline
