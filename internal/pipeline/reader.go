package pipeline

import (
	"errors"
	"io/fs"

	"github.com/surveygrid/lasctl/las"
)

// ProgressFunc observes batch progress: done files out of total, and
// the source that was just read.
type ProgressFunc func(done, total int, src Source)

// ReadAll opens and parses every source in order, calling progress
// after each successful read. The first unreadable or invalid source
// aborts the whole batch with that source's error; files read so far
// are fully in memory with their handles already closed, so nothing
// leaks on the failure path.
func ReadAll(sources []Source, progress ProgressFunc) ([]*las.File, error) {
	files := make([]*las.File, 0, len(sources))
	for i, src := range sources {
		f, err := las.Read(src.Path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return nil, &NotFoundError{Path: src.Path, Err: err}
			}
			return nil, err
		}
		files = append(files, f)
		if progress != nil {
			progress(i+1, len(sources), src)
		}
	}
	return files, nil
}
