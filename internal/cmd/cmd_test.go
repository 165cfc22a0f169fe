package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/surveygrid/lasctl/las"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func sample(t *testing.T, path string, format, n int) {
	t.Helper()
	version := las.Version{Major: 1, Minor: 2}
	if format >= 6 {
		version = las.Version{Major: 1, Minor: 4}
	}
	f, err := las.New(format, version)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		f.Points = append(f.Points, las.Point{
			X: int32(i), Y: int32(i), Z: int32(i),
			ReturnNumber: 1, NumberOfReturns: 1,
			GPSTime: float64(i),
		})
	}
	f.UpdateCounts()
	require.NoError(t, las.Write(f, path, false))
}

func TestRootRegistersSubcommands(t *testing.T) {
	root := NewRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.Contains(t, names, "convert")
	require.Contains(t, names, "info")
	require.Contains(t, names, "merge")
}

func TestConvertCommandCopiesToLaz(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "storm.las")
	out := filepath.Join(dir, "storm.laz")
	sample(t, in, 1, 5)

	_, err := run(t, "", "convert", in, out)
	require.NoError(t, err)

	got, err := las.Read(out)
	require.NoError(t, err)
	require.True(t, got.Header.Compressed)
	require.Equal(t, 1, got.Header.PointFormatID)
	require.Equal(t, uint64(5), got.Header.PointCount)
}

func TestConvertCommandDeclined(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "iron.las")
	out := filepath.Join(dir, "forge.las")
	sample(t, in, 1, 3)

	// Simulated negative answer on stdin: nothing may be written.
	output, err := run(t, "n\n", "convert", in, out, "--point-format-id", "0")
	require.Error(t, err)
	require.Contains(t, output, "gps_time")
	require.NoFileExists(t, out)
}

func TestConvertCommandForced(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "iron.las")
	out := filepath.Join(dir, "forge.las")
	sample(t, in, 1, 3)

	output, err := run(t, "", "convert", in, out, "--point-format-id", "0", "--force")
	require.NoError(t, err)
	require.Contains(t, output, "gps_time")
	require.FileExists(t, out)
}

func TestConvertCommandUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.las")
	out := filepath.Join(dir, "out.las")
	sample(t, in, 1, 1)

	_, err := run(t, "", "convert", in, out, "--point-format-id", "99")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not supported")
	require.NoFileExists(t, out)
}

func TestInfoCommandPrintsHeader(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scan.las")
	sample(t, in, 1, 4)

	output, err := run(t, "", "info", in)
	require.NoError(t, err)
	require.Contains(t, output, "File version: 1.2")
	require.Contains(t, output, "Point format id: 1")
	require.Contains(t, output, "Number of points: 4")
	require.Contains(t, output, "Compressed: false")
	require.NotContains(t, output, "Header size:", "extended fields need --extended")
}

func TestInfoCommandExtendedAndPoints(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scan.las")
	sample(t, in, 1, 4)

	output, err := run(t, "", "info", in, "--extended", "--points")
	require.NoError(t, err)
	require.Contains(t, output, "Header size: 227")
	require.Contains(t, output, "Offset to point data:")
	require.Contains(t, output, "gps_time: min 0, max 3")
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.las")
	b := filepath.Join(dir, "b.las")
	sample(t, a, 1, 2)
	sample(t, b, 1, 3)
	dst := filepath.Join(dir, "merged.las")

	output, err := run(t, "", "merge", a, b, dst)
	require.NoError(t, err)
	require.Contains(t, output, "[1/2]")
	require.Contains(t, output, "[2/2]")

	got, err := las.Read(dst)
	require.NoError(t, err)
	require.Equal(t, uint64(5), got.Header.PointCount)
}
