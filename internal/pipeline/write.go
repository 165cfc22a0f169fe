package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/surveygrid/lasctl/las"
)

// compressedSuffix selects compressed output by naming convention;
// there is no separate flag for it.
const compressedSuffix = ".laz"

// wantCompression reports whether a destination name selects
// compressed encoding.
func wantCompression(dst string) bool {
	return strings.EqualFold(filepath.Ext(dst), compressedSuffix)
}

// writeFile serializes f to dst, compressing iff the name ends in the
// compressed suffix. The write goes to a temporary file in the same
// directory which is renamed into place only on success, so an error
// never leaves a partial destination behind.
func writeFile(f *las.File, dst string) error {
	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := las.WriteTo(f, tmp, wantCompression(dst)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
