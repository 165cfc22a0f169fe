package las

import (
	"io"
	"os"
)

// Write serializes f to path. When compress is true the point block is
// compressed and the header carries the compression convention; the
// usual way to choose is the destination's .laz suffix.
//
// Write creates the destination directly; callers that must not leave
// a partial file behind on error should write to a temporary path and
// rename (the lasctl pipeline does).
func Write(f *File, path string, compress bool) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTo(f, fp, compress); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// WriteTo serializes f to w.
func WriteTo(f *File, w io.Writer, compress bool) error {
	h := f.Header
	format := h.PointFormatID
	if !IsSupportedPointFormat(format) {
		return formatErrorf("unsupported point format %d", format)
	}
	if !IsSupportedVersion(h.Version) {
		return formatErrorf("unsupported LAS version %s", h.Version)
	}
	if len(f.EVLRs) > 0 && !h.Version.AtLeast(Version{1, 4}) {
		return formatErrorf("extended VLRs require LAS version 1.4, file is %s", h.Version)
	}

	// The codec VLR is owned by the writer: never carried over from the
	// source, present exactly when the output is compressed.
	vlrs := make([]VLR, 0, len(f.VLRs)+1)
	for _, v := range f.VLRs {
		if !isCodecVLR(v) {
			vlrs = append(vlrs, v)
		}
	}
	if compress {
		vlrs = append(vlrs, codecVLR())
	}

	h.Compressed = compress
	h.HeaderSize = headerSizeFor(h.Version)
	h.NumberOfVLRs = uint32(len(vlrs))
	h.PointRecordLength = RecordLength(format)
	h.PointCount = uint64(len(f.Points))

	vlrBytes := 0
	for _, v := range vlrs {
		vlrBytes += v.encodedSize()
	}
	h.OffsetToPointData = uint32(int(h.HeaderSize) + vlrBytes)

	stride := int(h.PointRecordLength)
	raw := make([]byte, len(f.Points)*stride)
	for i := range f.Points {
		f.Points[i].Encode(format, raw[i*stride:])
	}
	block := raw
	if compress {
		var err error
		if block, err = compressBlock(raw); err != nil {
			return err
		}
	}

	h.EVLROffset = 0
	h.NumberOfEVLRs = uint32(len(f.EVLRs))
	if len(f.EVLRs) > 0 {
		h.EVLROffset = uint64(int(h.OffsetToPointData) + len(block))
	}

	if _, err := w.Write(h.encode()); err != nil {
		return err
	}
	for _, v := range vlrs {
		buf := make([]byte, v.encodedSize())
		v.encode(buf)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	if _, err := w.Write(block); err != nil {
		return err
	}
	for _, v := range f.EVLRs {
		buf := make([]byte, v.encodedSize())
		v.encode(buf)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
