package las

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeBytes(path string, b []byte) error {
	return os.WriteFile(path, b, 0o644)
}

// testFile builds a small in-memory file with n distinguishable points.
func testFile(t *testing.T, format int, version Version, n int) *File {
	t.Helper()
	f, err := New(format, version)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		f.Points = append(f.Points, Point{
			X:               int32(1000 * i),
			Y:               int32(-500 * i),
			Z:               int32(25 * i),
			Intensity:       uint16(100 + i),
			ReturnNumber:    uint8(i%3 + 1),
			NumberOfReturns: 3,
			Classification:  uint8(i % 10),
			UserData:        uint8(i),
			PointSourceID:   uint16(7000 + i),
			GPSTime:         123456.5 + float64(i),
			Red:             uint16(i * 3),
			Green:           uint16(i * 5),
			Blue:            uint16(i * 7),
			NIR:             uint16(i * 11),
			ScanAngleRank:   int8(i%40 - 20),
			ScanAngle:       int16((i%40 - 20) * 167),
			ScannerChannel:  uint8(i % 4),
		})
	}
	// Strip dimensions the chosen format does not carry so that
	// round-trip comparisons are exact.
	buf := make([]byte, RecordLength(format))
	for i := range f.Points {
		f.Points[i].Encode(format, buf)
		f.Points[i].Decode(format, buf)
	}
	f.UpdateCounts()
	return f
}

func TestWriteReadRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		format   int
		version  Version
		compress bool
	}{
		{name: "format 0 v1.1", format: 0, version: Version{1, 1}},
		{name: "format 1 v1.2", format: 1, version: Version{1, 2}},
		{name: "format 3 v1.2", format: 3, version: Version{1, 2}},
		{name: "format 3 v1.2 compressed", format: 3, version: Version{1, 2}, compress: true},
		{name: "format 5 v1.3", format: 5, version: Version{1, 3}},
		{name: "format 6 v1.4", format: 6, version: Version{1, 4}},
		{name: "format 8 v1.4 compressed", format: 8, version: Version{1, 4}, compress: true},
		{name: "format 10 v1.4", format: 10, version: Version{1, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFile(t, tt.format, tt.version, 10)

			name := "file.las"
			if tt.compress {
				name = "file.laz"
			}
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Write(f, path, tt.compress))

			got, err := Read(path)
			require.NoError(t, err)

			require.Equal(t, tt.format, got.Header.PointFormatID)
			require.Equal(t, tt.version, got.Header.Version)
			require.Equal(t, tt.compress, got.Header.Compressed)
			require.Equal(t, uint64(10), got.Header.PointCount)
			if diff := cmp.Diff(f.Points, got.Points); diff != "" {
				t.Errorf("points changed across round trip (-want +got):\n%s", diff)
			}
			require.Equal(t, f.Header.Mins, got.Header.Mins)
			require.Equal(t, f.Header.Maxs, got.Header.Maxs)
			require.Equal(t, f.Header.PointsByReturn, got.Header.PointsByReturn)
		})
	}
}

func TestRoundTripKeepsVLRs(t *testing.T) {
	f := testFile(t, 6, Version{1, 4}, 4)
	f.VLRs = append(f.VLRs, VLR{
		UserID:      "LASF_Projection",
		RecordID:    2112,
		Description: "WKT",
		Payload:     []byte("PROJCS[...]"),
	})
	f.EVLRs = append(f.EVLRs, EVLR{
		UserID:      "custom",
		RecordID:    7,
		Description: "trailing record",
		Payload:     []byte{1, 2, 3, 4},
	})

	path := filepath.Join(t.TempDir(), "vlrs.laz")
	require.NoError(t, Write(f, path, true))

	got, err := Read(path)
	require.NoError(t, err)

	// The codec VLR is writer-owned and appears alongside the user VLR.
	require.Len(t, got.VLRs, 2)
	require.Equal(t, "LASF_Projection", got.VLRs[0].UserID)
	require.True(t, isCodecVLR(got.VLRs[1]))
	require.Len(t, got.EVLRs, 1)
	require.Equal(t, []byte{1, 2, 3, 4}, got.EVLRs[0].Payload)

	// Re-writing uncompressed drops the codec VLR again.
	plain := filepath.Join(t.TempDir(), "plain.las")
	require.NoError(t, Write(got, plain, false))
	got2, err := Read(plain)
	require.NoError(t, err)
	require.Len(t, got2.VLRs, 1)
	require.Equal(t, "LASF_Projection", got2.VLRs[0].UserID)
}

func TestOpenStreamsHeader(t *testing.T) {
	f := testFile(t, 3, Version{1, 2}, 25)
	path := filepath.Join(t.TempDir(), "stream.las")
	require.NoError(t, Write(f, path, false))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	h := r.Header()
	require.Equal(t, 3, h.PointFormatID)
	require.Equal(t, uint64(25), h.PointCount)

	pts, err := r.ReadPoints()
	require.NoError(t, err)
	require.Len(t, pts, 25)
	if diff := cmp.Diff(f.Points, pts); diff != "" {
		t.Errorf("streamed points differ (-want +got):\n%s", diff)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonsense.las")
	require.NoError(t, writeBytes(path, []byte("this is not a las file, not even close")))

	_, err := Read(path)
	require.Error(t, err)
}

// encodedFile serializes a small valid file so tests can corrupt
// individual header fields in place.
func encodedFile(t *testing.T, format int, version Version, n int) []byte {
	t.Helper()
	f := testFile(t, format, version, n)
	var buf bytes.Buffer
	require.NoError(t, WriteTo(f, &buf, false))
	return buf.Bytes()
}

func TestReadRejectsOversizedHeader(t *testing.T) {
	data := encodedFile(t, 0, Version{1, 1}, 2)
	le.PutUint16(data[94:], 60000)
	le.PutUint32(data[100:], 1)

	_, err := ReadFrom(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrTruncatedFile)
}

func TestReadRejectsHostilePointCount(t *testing.T) {
	data := encodedFile(t, 6, Version{1, 4}, 2)
	le.PutUint64(data[247:], 0x8000000000000001)

	_, err := ReadFrom(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrTruncatedFile)

	path := filepath.Join(t.TempDir(), "hostile.las")
	require.NoError(t, writeBytes(path, data))
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	_, err = r.ReadPoints()
	require.ErrorIs(t, err, ErrTruncatedFile)
}

func TestReadRejectsOverflowingEVLRLength(t *testing.T) {
	f := testFile(t, 6, Version{1, 4}, 2)
	f.EVLRs = append(f.EVLRs, EVLR{UserID: "custom", RecordID: 7, Payload: []byte{1, 2, 3}})
	var buf bytes.Buffer
	require.NoError(t, WriteTo(f, &buf, false))
	data := buf.Bytes()

	h, err := decodeHeader(data)
	require.NoError(t, err)
	le.PutUint64(data[h.EVLROffset+20:], ^uint64(0)-8)

	_, err = ReadFrom(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrTruncatedFile)
}

func TestEVLRsNeed14(t *testing.T) {
	f := testFile(t, 1, Version{1, 2}, 1)
	f.EVLRs = append(f.EVLRs, EVLR{UserID: "custom", RecordID: 1})

	err := Write(f, filepath.Join(t.TempDir(), "bad.las"), false)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}
