package las

import "github.com/klauspost/compress/zstd"

// The compressed point block of a .laz file written by this package is
// a single zstd frame over the raw point records, advertised by the
// codec VLR. Files carrying the laszip VLR instead are rejected at
// read time with ErrUnknownCodec.

func compressBlock(raw []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	out := enc.EncodeAll(raw, nil)
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

func decompressBlock(block []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(block, nil)
	if err != nil {
		return nil, &FormatError{Msg: "corrupt compressed point block", Err: err}
	}
	return raw, nil
}
