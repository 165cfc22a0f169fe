package las

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Version is a LAS container version (major.minor).
type Version struct {
	Major uint8
	Minor uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v is the same as or newer than o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	return v.Minor >= o.Minor
}

// ParseVersion parses a "major.minor" version token such as "1.4".
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, fmt.Errorf("%w: %q", ErrUnknownVersion, s)
	}
	ma, err := strconv.ParseUint(major, 10, 8)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrUnknownVersion, s)
	}
	mi, err := strconv.ParseUint(minor, 10, 8)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrUnknownVersion, s)
	}
	return Version{Major: uint8(ma), Minor: uint8(mi)}, nil
}

// Standard dimension names shared between point format tables.
const (
	dimX                 = "X"
	dimY                 = "Y"
	dimZ                 = "Z"
	dimIntensity         = "intensity"
	dimReturnNumber      = "return_number"
	dimNumberOfReturns   = "number_of_returns"
	dimScanDirectionFlag = "scan_direction_flag"
	dimEdgeOfFlightLine  = "edge_of_flight_line"
	dimClassification    = "classification"
	dimSynthetic         = "synthetic"
	dimKeyPoint          = "key_point"
	dimWithheld          = "withheld"
	dimOverlap           = "overlap"
	dimScannerChannel    = "scanner_channel"
	dimScanAngleRank     = "scan_angle_rank"
	dimScanAngle         = "scan_angle"
	dimUserData          = "user_data"
	dimPointSourceID     = "point_source_id"
	dimGPSTime           = "gps_time"
	dimRed               = "red"
	dimGreen             = "green"
	dimBlue              = "blue"
	dimNIR               = "nir"
	dimWavePacketIndex   = "wavepacket_index"
	dimWavePacketOffset  = "wavepacket_offset"
	dimWavePacketSize    = "wavepacket_size"
	dimReturnPointWave   = "return_point_wave_location"
	dimXT                = "x_t"
	dimYT                = "y_t"
	dimZT                = "z_t"
)

var legacyBase = []string{
	dimX, dimY, dimZ,
	dimIntensity,
	dimReturnNumber, dimNumberOfReturns,
	dimScanDirectionFlag, dimEdgeOfFlightLine,
	dimClassification, dimSynthetic, dimKeyPoint, dimWithheld,
	dimScanAngleRank, dimUserData, dimPointSourceID,
}

var modernBase = []string{
	dimX, dimY, dimZ,
	dimIntensity,
	dimReturnNumber, dimNumberOfReturns,
	dimSynthetic, dimKeyPoint, dimWithheld, dimOverlap,
	dimScannerChannel, dimScanDirectionFlag, dimEdgeOfFlightLine,
	dimClassification, dimUserData,
	dimScanAngle, dimPointSourceID, dimGPSTime,
}

var rgb = []string{dimRed, dimGreen, dimBlue}

var wavePacket = []string{
	dimWavePacketIndex, dimWavePacketOffset, dimWavePacketSize,
	dimReturnPointWave, dimXT, dimYT, dimZT,
}

func cat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// dimensionTables maps a point format id to its ordered dimension names.
var dimensionTables = map[int][]string{
	0:  legacyBase,
	1:  cat(legacyBase, []string{dimGPSTime}),
	2:  cat(legacyBase, rgb),
	3:  cat(legacyBase, []string{dimGPSTime}, rgb),
	4:  cat(legacyBase, []string{dimGPSTime}, wavePacket),
	5:  cat(legacyBase, []string{dimGPSTime}, rgb, wavePacket),
	6:  modernBase,
	7:  cat(modernBase, rgb),
	8:  cat(modernBase, rgb, []string{dimNIR}),
	9:  cat(modernBase, wavePacket),
	10: cat(modernBase, rgb, []string{dimNIR}, wavePacket),
}

// recordLengths maps a point format id to its on-disk record size in bytes.
var recordLengths = map[int]uint16{
	0: 20, 1: 28, 2: 26, 3: 34, 4: 57, 5: 63,
	6: 30, 7: 36, 8: 38, 9: 59, 10: 67,
}

var supportedVersions = []Version{
	{1, 1}, {1, 2}, {1, 3}, {1, 4},
}

// SupportedPointFormats returns the closed set of point format ids this
// package can read, write, and convert between.
func SupportedPointFormats() []int {
	ids := make([]int, 0, len(dimensionTables))
	for id := range dimensionTables {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SupportedVersions returns the closed set of file versions this
// package can read and write, oldest first.
func SupportedVersions() []Version {
	out := make([]Version, len(supportedVersions))
	copy(out, supportedVersions)
	return out
}

// IsSupportedPointFormat reports whether id is a usable point format.
func IsSupportedPointFormat(id int) bool {
	_, ok := dimensionTables[id]
	return ok
}

// IsSupportedVersion reports whether v is a usable file version.
func IsSupportedVersion(v Version) bool {
	for _, sv := range supportedVersions {
		if v == sv {
			return true
		}
	}
	return false
}

// Dimensions returns the ordered dimension names of a point format,
// or nil for an unknown format id.
func Dimensions(format int) []string {
	dims, ok := dimensionTables[format]
	if !ok {
		return nil
	}
	out := make([]string, len(dims))
	copy(out, dims)
	return out
}

// RecordLength returns the on-disk point record size of a format,
// or 0 for an unknown format id.
func RecordLength(format int) uint16 {
	return recordLengths[format]
}

// LostDimensions returns the sorted names of dimensions present in the
// source format but absent from the target format. An empty result
// means the conversion is lossless.
func LostDimensions(srcFormat, dstFormat int) []string {
	src := dimensionTables[srcFormat]
	dst := dimensionTables[dstFormat]
	have := make(map[string]bool, len(dst))
	for _, d := range dst {
		have[d] = true
	}
	var lost []string
	for _, d := range src {
		if !have[d] {
			lost = append(lost, d)
		}
	}
	sort.Strings(lost)
	return lost
}

// minVersionFor returns the oldest file version that can carry a point format.
func minVersionFor(format int) Version {
	switch {
	case format >= 6:
		return Version{1, 4}
	case format >= 4:
		return Version{1, 3}
	default:
		return Version{1, 1}
	}
}
