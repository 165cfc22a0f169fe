package las

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	fileSignature = "LASF"

	headerSize12 = 227 // 1.1 and 1.2
	headerSize13 = 235
	headerSize14 = 375

	// High bit of the point format id byte marks a compressed point
	// block, following the laszip container convention.
	compressedFormatBit = 0x80
)

// Header is the public header block of a LAS file.
type Header struct {
	FileSourceID   uint16
	GlobalEncoding uint16
	ProjectID      uuid.UUID
	Version        Version

	SystemIdentifier   string // at most 32 bytes on disk
	GeneratingSoftware string // at most 32 bytes on disk

	CreationDayOfYear uint16
	CreationYear      uint16

	HeaderSize        uint16
	OffsetToPointData uint32
	NumberOfVLRs      uint32
	NumberOfEVLRs     uint32

	PointFormatID     int
	Compressed        bool
	PointRecordLength uint16

	PointCount     uint64
	PointsByReturn [15]uint64

	Scales  [3]float64
	Offsets [3]float64
	Maxs    [3]float64
	Mins    [3]float64

	// 1.3+ only
	WaveformOffset uint64
	// 1.4 only
	EVLROffset uint64
}

// NewHeader returns a header with sensible defaults for a fresh file:
// a new project GUID, today's creation date, and millimeter scales.
func NewHeader(format int, version Version) Header {
	now := time.Now()
	return Header{
		ProjectID:          uuid.New(),
		Version:            version,
		SystemIdentifier:   "lasctl",
		GeneratingSoftware: "lasctl",
		CreationDayOfYear:  uint16(now.YearDay()),
		CreationYear:       uint16(now.Year()),
		PointFormatID:      format,
		PointRecordLength:  RecordLength(format),
		Scales:             [3]float64{0.001, 0.001, 0.001},
	}
}

// Real converts a raw scaled point coordinate triple to real-world
// coordinates using the header's scale and offset vectors.
func (h *Header) Real(p Point) (x, y, z float64) {
	x = float64(p.X)*h.Scales[0] + h.Offsets[0]
	y = float64(p.Y)*h.Scales[1] + h.Offsets[1]
	z = float64(p.Z)*h.Scales[2] + h.Offsets[2]
	return x, y, z
}

// headerSizeFor returns the on-disk header size of a version.
func headerSizeFor(v Version) uint16 {
	switch {
	case v.AtLeast(Version{1, 4}):
		return headerSize14
	case v.AtLeast(Version{1, 3}):
		return headerSize13
	default:
		return headerSize12
	}
}

func putFixedString(buf []byte, s string) {
	for i := range buf {
		buf[i] = 0
	}
	copy(buf, s)
}

func fixedString(buf []byte) string {
	return string(bytes.TrimRight(buf, "\x00"))
}

// encode serializes the header into its on-disk layout. The caller is
// responsible for HeaderSize, OffsetToPointData, and the count fields
// being consistent with the rest of the file.
func (h *Header) encode() []byte {
	size := headerSizeFor(h.Version)
	buf := make([]byte, size)

	copy(buf[0:4], fileSignature)
	le.PutUint16(buf[4:], h.FileSourceID)
	le.PutUint16(buf[6:], h.GlobalEncoding)
	copy(buf[8:24], h.ProjectID[:])
	buf[24] = h.Version.Major
	buf[25] = h.Version.Minor
	putFixedString(buf[26:58], h.SystemIdentifier)
	putFixedString(buf[58:90], h.GeneratingSoftware)
	le.PutUint16(buf[90:], h.CreationDayOfYear)
	le.PutUint16(buf[92:], h.CreationYear)
	le.PutUint16(buf[94:], size)
	le.PutUint32(buf[96:], h.OffsetToPointData)
	le.PutUint32(buf[100:], h.NumberOfVLRs)

	formatByte := uint8(h.PointFormatID)
	if h.Compressed {
		formatByte |= compressedFormatBit
	}
	buf[104] = formatByte
	le.PutUint16(buf[105:], h.PointRecordLength)

	// Legacy 32-bit counts: zero for 1.4 formats 6+ or when they overflow.
	legacyCount := uint32(0)
	if h.PointFormatID <= 5 && h.PointCount <= 0xffffffff {
		legacyCount = uint32(h.PointCount)
	}
	le.PutUint32(buf[107:], legacyCount)
	for i := 0; i < 5; i++ {
		v := uint32(0)
		if legacyCount != 0 && h.PointsByReturn[i] <= 0xffffffff {
			v = uint32(h.PointsByReturn[i])
		}
		le.PutUint32(buf[111+4*i:], v)
	}

	putF64 := func(off int, v float64) {
		le.PutUint64(buf[off:], f64bits(v))
	}
	putF64(131, h.Scales[0])
	putF64(139, h.Scales[1])
	putF64(147, h.Scales[2])
	putF64(155, h.Offsets[0])
	putF64(163, h.Offsets[1])
	putF64(171, h.Offsets[2])
	putF64(179, h.Maxs[0])
	putF64(187, h.Mins[0])
	putF64(195, h.Maxs[1])
	putF64(203, h.Mins[1])
	putF64(211, h.Maxs[2])
	putF64(219, h.Mins[2])

	if size >= headerSize13 {
		le.PutUint64(buf[227:], h.WaveformOffset)
	}
	if size >= headerSize14 {
		le.PutUint64(buf[235:], h.EVLROffset)
		le.PutUint32(buf[243:], h.NumberOfEVLRs)
		le.PutUint64(buf[247:], h.PointCount)
		for i := 0; i < 15; i++ {
			le.PutUint64(buf[255+8*i:], h.PointsByReturn[i])
		}
	}
	return buf
}

// decodeHeader parses an on-disk header. buf must hold at least the
// fixed 227-byte prefix; version-dependent fields are read when present.
func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize12 {
		return Header{}, ErrTruncatedFile
	}
	if string(buf[0:4]) != fileSignature {
		return Header{}, ErrBadSignature
	}

	var h Header
	h.FileSourceID = le.Uint16(buf[4:])
	h.GlobalEncoding = le.Uint16(buf[6:])
	copy(h.ProjectID[:], buf[8:24])
	h.Version = Version{Major: buf[24], Minor: buf[25]}
	if !IsSupportedVersion(h.Version) {
		return Header{}, formatErrorf("unsupported LAS version %s", h.Version)
	}
	h.SystemIdentifier = fixedString(buf[26:58])
	h.GeneratingSoftware = fixedString(buf[58:90])
	h.CreationDayOfYear = le.Uint16(buf[90:])
	h.CreationYear = le.Uint16(buf[92:])
	h.HeaderSize = le.Uint16(buf[94:])
	h.OffsetToPointData = le.Uint32(buf[96:])
	h.NumberOfVLRs = le.Uint32(buf[100:])

	formatByte := buf[104]
	h.Compressed = formatByte&compressedFormatBit != 0
	h.PointFormatID = int(formatByte &^ compressedFormatBit)
	if !IsSupportedPointFormat(h.PointFormatID) {
		return Header{}, formatErrorf("unsupported point format %d", h.PointFormatID)
	}
	h.PointRecordLength = le.Uint16(buf[105:])
	if h.PointRecordLength < RecordLength(h.PointFormatID) {
		return Header{}, formatErrorf("point record length %d is too small for format %d",
			h.PointRecordLength, h.PointFormatID)
	}

	h.PointCount = uint64(le.Uint32(buf[107:]))
	for i := 0; i < 5; i++ {
		h.PointsByReturn[i] = uint64(le.Uint32(buf[111+4*i:]))
	}

	getF64 := func(off int) float64 { return f64frombits(le.Uint64(buf[off:])) }
	h.Scales = [3]float64{getF64(131), getF64(139), getF64(147)}
	h.Offsets = [3]float64{getF64(155), getF64(163), getF64(171)}
	h.Maxs = [3]float64{getF64(179), getF64(195), getF64(211)}
	h.Mins = [3]float64{getF64(187), getF64(203), getF64(219)}

	wantSize := headerSizeFor(h.Version)
	if h.HeaderSize < wantSize || len(buf) < int(wantSize) {
		return Header{}, fmt.Errorf("%w: header is %d bytes, version %s needs %d",
			ErrTruncatedFile, len(buf), h.Version, wantSize)
	}
	if wantSize >= headerSize13 {
		h.WaveformOffset = le.Uint64(buf[227:])
	}
	if wantSize >= headerSize14 {
		h.EVLROffset = le.Uint64(buf[235:])
		h.NumberOfEVLRs = le.Uint32(buf[243:])
		if count := le.Uint64(buf[247:]); count != 0 {
			h.PointCount = count
		}
		for i := 0; i < 15; i++ {
			if v := le.Uint64(buf[255+8*i:]); v != 0 {
				h.PointsByReturn[i] = v
			}
		}
	}
	return h, nil
}
