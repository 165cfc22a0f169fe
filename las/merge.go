package las

import "math"

// Merge concatenates the points of the given files into one file. All
// inputs must share a point format id; the output takes its scales,
// offsets, and metadata records from the first file, and points from
// the other files are re-quantized into that grid. The output version
// is the newest among the inputs.
func Merge(files []*File) (*File, error) {
	if len(files) == 0 {
		return nil, ErrNoInput
	}

	first := files[0]
	format := first.Header.PointFormatID
	version := first.Header.Version
	total := 0
	for _, f := range files {
		if f.Header.PointFormatID != format {
			return nil, formatErrorf("cannot merge point format %d with point format %d",
				format, f.Header.PointFormatID)
		}
		if f.Header.Version.AtLeast(version) {
			version = f.Header.Version
		}
		total += len(f.Points)
	}

	out := &File{Header: first.Header}
	out.Header.Version = version
	out.VLRs = append(out.VLRs, first.VLRs...)
	out.EVLRs = append(out.EVLRs, first.EVLRs...)
	out.Points = make([]Point, 0, total)

	for _, f := range files {
		if sameGrid(f.Header, out.Header) {
			out.Points = append(out.Points, f.Points...)
			continue
		}
		for _, p := range f.Points {
			x, y, z := f.Header.Real(p)
			p.X = quantize(x, out.Header.Scales[0], out.Header.Offsets[0])
			p.Y = quantize(y, out.Header.Scales[1], out.Header.Offsets[1])
			p.Z = quantize(z, out.Header.Scales[2], out.Header.Offsets[2])
			out.Points = append(out.Points, p)
		}
	}
	out.UpdateCounts()
	return out, nil
}

func sameGrid(a, b Header) bool {
	return a.Scales == b.Scales && a.Offsets == b.Offsets
}

func quantize(v, scale, offset float64) int32 {
	return int32(math.Round((v - offset) / scale))
}
