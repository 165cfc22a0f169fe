package las

import "fmt"

const (
	vlrHeaderSize  = 54
	evlrHeaderSize = 60

	// VLR identifying the point block codec of compressed files
	// written by this package.
	codecUserID   = "lasctl"
	codecRecordID = 22204

	laszipUserID = "laszip encoded"
)

// VLR is a variable-length metadata record stored between the header
// and the point data.
type VLR struct {
	Reserved    uint16
	UserID      string // at most 16 bytes on disk
	RecordID    uint16
	Description string // at most 32 bytes on disk
	Payload     []byte
}

func (v VLR) String() string {
	return fmt.Sprintf("VLR(user_id: %q, record_id: %d, payload: %d bytes)",
		v.UserID, v.RecordID, len(v.Payload))
}

// Type returns a short human-readable classification of well-known
// record ids, for display purposes only.
func (v VLR) Type() string {
	switch {
	case v.UserID == codecUserID && v.RecordID == codecRecordID:
		return "CompressionVLR"
	case v.UserID == "LASF_Projection":
		return "ProjectionVLR"
	case v.UserID == "LASF_Spec" && v.RecordID == 4:
		return "ExtraBytesVLR"
	case v.UserID == "LASF_Spec":
		return "SpecVLR"
	default:
		return "VLR"
	}
}

func (v VLR) encodedSize() int { return vlrHeaderSize + len(v.Payload) }

func (v VLR) encode(buf []byte) {
	le.PutUint16(buf[0:], v.Reserved)
	putFixedString(buf[2:18], v.UserID)
	le.PutUint16(buf[18:], v.RecordID)
	le.PutUint16(buf[20:], uint16(len(v.Payload)))
	putFixedString(buf[22:54], v.Description)
	copy(buf[vlrHeaderSize:], v.Payload)
}

func decodeVLR(buf []byte) (VLR, int, error) {
	if len(buf) < vlrHeaderSize {
		return VLR{}, 0, ErrTruncatedFile
	}
	v := VLR{
		Reserved:    le.Uint16(buf[0:]),
		UserID:      fixedString(buf[2:18]),
		RecordID:    le.Uint16(buf[18:]),
		Description: fixedString(buf[22:54]),
	}
	n := int(le.Uint16(buf[20:]))
	if len(buf) < vlrHeaderSize+n {
		return VLR{}, 0, ErrTruncatedFile
	}
	v.Payload = append([]byte(nil), buf[vlrHeaderSize:vlrHeaderSize+n]...)
	return v, v.encodedSize(), nil
}

// EVLR is an extended variable-length record stored after the point
// data (LAS 1.4). It differs from a VLR only in its 64-bit length.
type EVLR struct {
	Reserved    uint16
	UserID      string
	RecordID    uint16
	Description string
	Payload     []byte
}

func (v EVLR) String() string {
	return fmt.Sprintf("EVLR(user_id: %q, record_id: %d, payload: %d bytes)",
		v.UserID, v.RecordID, len(v.Payload))
}

func (v EVLR) encodedSize() int { return evlrHeaderSize + len(v.Payload) }

func (v EVLR) encode(buf []byte) {
	le.PutUint16(buf[0:], v.Reserved)
	putFixedString(buf[2:18], v.UserID)
	le.PutUint16(buf[18:], v.RecordID)
	le.PutUint64(buf[20:], uint64(len(v.Payload)))
	putFixedString(buf[28:60], v.Description)
	copy(buf[evlrHeaderSize:], v.Payload)
}

func decodeEVLR(buf []byte) (EVLR, int, error) {
	if len(buf) < evlrHeaderSize {
		return EVLR{}, 0, ErrTruncatedFile
	}
	v := EVLR{
		Reserved:    le.Uint16(buf[0:]),
		UserID:      fixedString(buf[2:18]),
		RecordID:    le.Uint16(buf[18:]),
		Description: fixedString(buf[28:60]),
	}
	n := le.Uint64(buf[20:])
	if n > uint64(len(buf)-evlrHeaderSize) {
		return EVLR{}, 0, ErrTruncatedFile
	}
	v.Payload = append([]byte(nil), buf[evlrHeaderSize:evlrHeaderSize+int(n)]...)
	return v, v.encodedSize(), nil
}

func codecVLR() VLR {
	return VLR{
		UserID:      codecUserID,
		RecordID:    codecRecordID,
		Description: "zstd compressed point block",
	}
}

func isCodecVLR(v VLR) bool {
	return v.UserID == codecUserID && v.RecordID == codecRecordID
}
