package pipeline

import (
	"fmt"

	"github.com/surveygrid/lasctl/las"
)

// Merge resolves the file arguments, reads every source with progress
// feedback, merges them structurally, and writes the result to dst
// with suffix-driven compression. A file set that resolves to zero
// sources is a usage error: merge has nothing meaningful to write.
func Merge(args []string, dst string, progress ProgressFunc) error {
	sources, err := Resolve(args)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("%w: %q matched nothing", ErrNoSources, args[0])
	}

	files, err := ReadAll(sources, progress)
	if err != nil {
		return err
	}

	merged, err := las.Merge(files)
	if err != nil {
		return err
	}
	return writeFile(merged, dst)
}
