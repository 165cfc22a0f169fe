package las

import "math"

// scanAngleUnit is the LAS 1.4 extended scan angle increment in degrees.
const scanAngleUnit = 0.006

// Convert re-encodes f into the target point format and file version.
// Dimensions absent from the target schema are dropped; dimensions the
// source lacks come out zeroed. The input file is not modified.
//
// Structurally impossible requests (a point format newer than the
// target version can carry, extended VLRs that cannot be downgraded)
// return a FormatError.
func Convert(f *File, targetFormat int, targetVersion Version) (*File, error) {
	if !IsSupportedPointFormat(targetFormat) {
		return nil, formatErrorf("unsupported point format %d", targetFormat)
	}
	if !IsSupportedVersion(targetVersion) {
		return nil, formatErrorf("unsupported LAS version %s", targetVersion)
	}
	if minV := minVersionFor(targetFormat); !targetVersion.AtLeast(minV) {
		return nil, formatErrorf("point format %d requires LAS version %s or newer, requested %s",
			targetFormat, minV, targetVersion)
	}

	srcFormat := f.Header.PointFormatID
	out := &File{Header: f.Header}
	out.Header.Version = targetVersion
	out.Header.PointFormatID = targetFormat
	out.Header.PointRecordLength = RecordLength(targetFormat)
	out.VLRs = append(out.VLRs, f.VLRs...)

	if err := migrateEVLRs(out, f.EVLRs, targetVersion); err != nil {
		return nil, err
	}

	legacySrc, legacyDst := srcFormat <= 5, targetFormat <= 5
	buf := make([]byte, RecordLength(targetFormat))
	out.Points = make([]Point, len(f.Points))
	for i := range f.Points {
		p := f.Points[i]
		if legacySrc && !legacyDst {
			p.ScanAngle = int16(math.Round(float64(p.ScanAngleRank) / scanAngleUnit))
		}
		if !legacySrc && legacyDst {
			deg := math.Round(float64(p.ScanAngle) * scanAngleUnit)
			p.ScanAngleRank = int8(math.Max(-128, math.Min(127, deg)))
		}
		// Round-trip through the target layout so that dimensions the
		// target does not carry are actually gone from the result.
		p.Encode(targetFormat, buf)
		out.Points[i].Decode(targetFormat, buf)
	}
	out.UpdateCounts()
	return out, nil
}

// migrateEVLRs carries extended records into the output, folding them
// into regular VLRs when the target version predates EVLRs.
func migrateEVLRs(out *File, evlrs []EVLR, targetVersion Version) error {
	if targetVersion.AtLeast(Version{1, 4}) {
		out.EVLRs = append(out.EVLRs, evlrs...)
		return nil
	}
	for _, e := range evlrs {
		if len(e.Payload) > 0xffff {
			return formatErrorf("EVLR %q/%d payload (%d bytes) does not fit a VLR; cannot convert to %s",
				e.UserID, e.RecordID, len(e.Payload), targetVersion)
		}
		out.VLRs = append(out.VLRs, VLR{
			Reserved:    e.Reserved,
			UserID:      e.UserID,
			RecordID:    e.RecordID,
			Description: e.Description,
			Payload:     e.Payload,
		})
	}
	return nil
}
