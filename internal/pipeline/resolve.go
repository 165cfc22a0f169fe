package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Source is one resolved input file.
type Source struct {
	// Path is the concrete file location.
	Path string
	// Pattern is the glob the path was expanded from, empty for
	// explicitly listed files. Kept for user-facing reporting.
	Pattern string
}

// Resolve turns raw file arguments into an ordered list of sources.
//
// With two or more arguments each one names a file, in argument order.
// With exactly one argument, a path naming an existing regular file
// resolves to just that file, and a path naming a directory resolves
// to every file directly inside it. Anything else is a directory
// pattern: the parent directory is listed and entries matching the
// final path component are returned in lexical order. A pattern with
// zero matches resolves to an empty list, not an error; the caller
// decides whether that is fatal.
func Resolve(args []string) ([]Source, error) {
	switch len(args) {
	case 0:
		return nil, ErrNoSources
	case 1:
		return resolvePattern(args[0])
	default:
		sources := make([]Source, len(args))
		for i, a := range args {
			sources[i] = Source{Path: a}
		}
		return sources, nil
	}
}

func resolvePattern(arg string) ([]Source, error) {
	var dir, pattern string
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		return []Source{{Path: arg}}, nil
	} else if err == nil && info.IsDir() {
		dir, pattern = arg, "*"
	} else {
		dir, pattern = filepath.Split(arg)
		if dir == "" {
			dir = "."
		}
		if pattern == "" {
			dir, pattern = arg, "*"
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &NotFoundError{Path: dir, Err: err}
	}

	var sources []Source
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			sources = append(sources, Source{
				Path:    filepath.Join(dir, e.Name()),
				Pattern: pattern,
			})
		}
	}
	// Directory listing order is backend-dependent; pin the batch
	// order so merge output is deterministic.
	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })
	return sources, nil
}
