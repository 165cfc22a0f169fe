package las

// File is a fully parsed LAS file held in memory.
type File struct {
	Header Header
	VLRs   []VLR
	EVLRs  []EVLR
	Points []Point
}

// New returns an empty file with the given point format and version.
func New(format int, version Version) (*File, error) {
	if !IsSupportedPointFormat(format) {
		return nil, formatErrorf("unsupported point format %d", format)
	}
	if !IsSupportedVersion(version) {
		return nil, formatErrorf("unsupported LAS version %s", version)
	}
	if !version.AtLeast(minVersionFor(format)) {
		return nil, formatErrorf("point format %d requires LAS version %s or newer",
			format, minVersionFor(format))
	}
	return &File{Header: NewHeader(format, version)}, nil
}

// UpdateCounts recomputes the header's point count, per-return counts,
// and real-coordinate bounds from the in-memory point slice.
func (f *File) UpdateCounts() {
	h := &f.Header
	h.PointCount = uint64(len(f.Points))
	h.PointsByReturn = [15]uint64{}
	if len(f.Points) == 0 {
		h.Mins = [3]float64{}
		h.Maxs = [3]float64{}
		return
	}
	for i := range f.Points {
		p := &f.Points[i]
		if r := int(p.ReturnNumber); r >= 1 && r <= 15 {
			h.PointsByReturn[r-1]++
		}
		x, y, z := h.Real(*p)
		if i == 0 {
			h.Mins = [3]float64{x, y, z}
			h.Maxs = [3]float64{x, y, z}
			continue
		}
		h.Mins[0] = min(h.Mins[0], x)
		h.Mins[1] = min(h.Mins[1], y)
		h.Mins[2] = min(h.Mins[2], z)
		h.Maxs[0] = max(h.Maxs[0], x)
		h.Maxs[1] = max(h.Maxs[1], y)
		h.Maxs[2] = max(h.Maxs[2], z)
	}
}

// DimensionRange scans all points and returns the minimum and maximum
// value of one named dimension.
func (f *File) DimensionRange(name string) (lo, hi float64) {
	for i := range f.Points {
		v := f.Points[i].Dimension(name)
		if i == 0 {
			lo, hi = v, v
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
