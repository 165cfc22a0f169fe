package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/surveygrid/lasctl/las"
)

// writeLas creates a small LAS file on disk for pipeline tests.
func writeLas(t *testing.T, path string, format, n int) *las.File {
	t.Helper()
	version := las.Version{Major: 1, Minor: 2}
	if format >= 6 {
		version = las.Version{Major: 1, Minor: 4}
	}
	f, err := las.New(format, version)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		f.Points = append(f.Points, las.Point{
			X:               int32(i * 10),
			Y:               int32(i * 20),
			Z:               int32(i * 30),
			Intensity:       uint16(i),
			ReturnNumber:    1,
			NumberOfReturns: 1,
			GPSTime:         float64(i),
		})
	}
	f.UpdateCounts()
	require.NoError(t, las.Write(f, path, false))
	return f
}

// scriptedConfirmer answers without a terminal and records invocations.
type scriptedConfirmer struct {
	answer bool
	calls  int
	lost   []string
}

func (c *scriptedConfirmer) Confirm(lost []string) (bool, error) {
	c.calls++
	c.lost = lost
	return c.answer, nil
}
