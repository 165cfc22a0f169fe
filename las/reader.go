package las

import (
	"fmt"
	"io"
	"os"
)

// Read fully parses the file at path, decompressing the point block
// when the header carries the compression convention.
func Read(path string) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	f, err := ReadFrom(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ReadFrom fully parses a LAS stream.
func ReadFrom(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	h, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	f := &File{Header: h}

	pos := int(h.HeaderSize)
	if pos > len(data) {
		return nil, fmt.Errorf("%w: header declares %d bytes but the file holds %d",
			ErrTruncatedFile, h.HeaderSize, len(data))
	}
	for i := uint32(0); i < h.NumberOfVLRs; i++ {
		v, n, err := decodeVLR(data[pos:])
		if err != nil {
			return nil, err
		}
		f.VLRs = append(f.VLRs, v)
		pos += n
	}

	start := int(h.OffsetToPointData)
	end := len(data)
	if h.EVLROffset != 0 {
		end = int(h.EVLROffset)
	}
	if start > end || end > len(data) {
		return nil, ErrTruncatedFile
	}
	raw := data[start:end]
	if h.Compressed {
		raw, err = decompressedPoints(f.VLRs, raw)
		if err != nil {
			return nil, err
		}
	}

	stride := int(h.PointRecordLength)
	if h.PointCount > uint64(len(raw)/stride) {
		return nil, fmt.Errorf("%w: point block holds %d bytes, header announces %d points of %d bytes",
			ErrTruncatedFile, len(raw), h.PointCount, stride)
	}
	count := int(h.PointCount)
	f.Points = make([]Point, count)
	for i := 0; i < count; i++ {
		f.Points[i].Decode(h.PointFormatID, raw[i*stride:])
	}

	pos = int(h.EVLROffset)
	for i := uint32(0); h.EVLROffset != 0 && i < h.NumberOfEVLRs; i++ {
		v, n, err := decodeEVLR(data[pos:])
		if err != nil {
			return nil, err
		}
		f.EVLRs = append(f.EVLRs, v)
		pos += n
	}
	return f, nil
}

func decompressedPoints(vlrs []VLR, block []byte) ([]byte, error) {
	for _, v := range vlrs {
		if isCodecVLR(v) {
			return decompressBlock(block)
		}
		if v.UserID == laszipUserID {
			return nil, &FormatError{
				Msg: "file is laszip-compressed; only this tool's zstd container is readable",
				Err: ErrUnknownCodec,
			}
		}
	}
	return nil, &FormatError{Msg: "compressed file carries no codec VLR", Err: ErrUnknownCodec}
}

// Reader streams a LAS file: the header is parsed on Open, VLRs and
// points are read on demand. Used by the info command so that plain
// header inspection never loads the point array.
type Reader struct {
	fp     *os.File
	header Header
}

// Open parses the header of the file at path and returns a streaming
// reader over the rest. The caller must Close it.
func Open(path string) (*Reader, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	prefix := make([]byte, headerSize12)
	if _, err := io.ReadFull(fp, prefix); err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrTruncatedFile)
	}
	size := le.Uint16(prefix[94:])
	if size > headerSize12 {
		rest := make([]byte, size-headerSize12)
		if _, err := io.ReadFull(fp, rest); err != nil {
			fp.Close()
			return nil, fmt.Errorf("%s: %w", path, ErrTruncatedFile)
		}
		prefix = append(prefix, rest...)
	}
	h, err := decodeHeader(prefix)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Reader{fp: fp, header: h}, nil
}

// Header returns the parsed public header.
func (r *Reader) Header() Header { return r.header }

// ReadVLRs reads the variable-length records following the header.
func (r *Reader) ReadVLRs() ([]VLR, error) {
	h := r.header
	if h.NumberOfVLRs == 0 {
		return nil, nil
	}
	buf, err := r.section(int64(h.HeaderSize), int(h.OffsetToPointData)-int(h.HeaderSize))
	if err != nil {
		return nil, err
	}
	vlrs := make([]VLR, 0, h.NumberOfVLRs)
	pos := 0
	for i := uint32(0); i < h.NumberOfVLRs; i++ {
		v, n, err := decodeVLR(buf[pos:])
		if err != nil {
			return nil, err
		}
		vlrs = append(vlrs, v)
		pos += n
	}
	return vlrs, nil
}

// ReadEVLRs reads the extended records after the point data, if any.
func (r *Reader) ReadEVLRs() ([]EVLR, error) {
	h := r.header
	if h.EVLROffset == 0 || h.NumberOfEVLRs == 0 {
		return nil, nil
	}
	end, err := r.fp.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	buf, err := r.section(int64(h.EVLROffset), int(end-int64(h.EVLROffset)))
	if err != nil {
		return nil, err
	}
	evlrs := make([]EVLR, 0, h.NumberOfEVLRs)
	pos := 0
	for i := uint32(0); i < h.NumberOfEVLRs; i++ {
		v, n, err := decodeEVLR(buf[pos:])
		if err != nil {
			return nil, err
		}
		evlrs = append(evlrs, v)
		pos += n
	}
	return evlrs, nil
}

// ReadPoints reads and decodes the whole point array.
func (r *Reader) ReadPoints() ([]Point, error) {
	h := r.header
	end, err := r.fp.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if h.EVLROffset != 0 {
		end = int64(h.EVLROffset)
	}
	raw, err := r.section(int64(h.OffsetToPointData), int(end-int64(h.OffsetToPointData)))
	if err != nil {
		return nil, err
	}
	if h.Compressed {
		vlrs, err := r.ReadVLRs()
		if err != nil {
			return nil, err
		}
		raw, err = decompressedPoints(vlrs, raw)
		if err != nil {
			return nil, err
		}
	}
	stride := int(h.PointRecordLength)
	if h.PointCount > uint64(len(raw)/stride) {
		return nil, ErrTruncatedFile
	}
	count := int(h.PointCount)
	points := make([]Point, count)
	for i := 0; i < count; i++ {
		points[i].Decode(h.PointFormatID, raw[i*stride:])
	}
	return points, nil
}

func (r *Reader) section(off int64, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrTruncatedFile
	}
	buf := make([]byte, n)
	if _, err := r.fp.ReadAt(buf, off); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedFile, err)
	}
	return buf, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error { return r.fp.Close() }
