// Package las reads and writes LAS point-cloud files (ASPRS LAS 1.1-1.4).
//
// It covers the public header, variable-length records (VLRs and EVLRs),
// and the standard point record formats 0-10, and provides structural
// operations on parsed files: point-format conversion, multi-file merge,
// and lost-dimension analysis for conversions between formats.
//
// Files whose name ends in .laz are written with a compressed point
// block (see compress.go). The package reads back its own compressed
// output; files compressed with the laszip codec are rejected.
package las
