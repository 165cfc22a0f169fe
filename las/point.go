package las

import (
	"encoding/binary"
	"math"
)

// Point holds one decoded point record. It is a superset of the
// dimensions of all standard point formats; fields that a format does
// not carry are zero after decoding and ignored when encoding.
//
// X, Y, and Z are the raw scaled integers from the record. Real-world
// coordinates are X*scale+offset with the header's scale and offset
// vectors (see Header.Real).
type Point struct {
	X, Y, Z int32

	Intensity       uint16
	ReturnNumber    uint8
	NumberOfReturns uint8

	ScanDirectionFlag bool
	EdgeOfFlightLine  bool

	Classification uint8
	Synthetic      bool
	KeyPoint       bool
	Withheld       bool
	Overlap        bool

	ScannerChannel uint8
	ScanAngleRank  int8  // formats 0-5, degrees
	ScanAngle      int16 // formats 6-10, 0.006 degree units
	UserData       uint8
	PointSourceID  uint16

	GPSTime float64

	Red, Green, Blue, NIR uint16

	WavePacketIndex         uint8
	WavePacketOffset        uint64
	WavePacketSize          uint32
	ReturnPointWaveLocation float32
	XT, YT, ZT              float32
}

var le = binary.LittleEndian

func f64bits(v float64) uint64     { return math.Float64bits(v) }
func f64frombits(b uint64) float64 { return math.Float64frombits(b) }

func (p *Point) encodeCommon(buf []byte) {
	le.PutUint32(buf[0:], uint32(p.X))
	le.PutUint32(buf[4:], uint32(p.Y))
	le.PutUint32(buf[8:], uint32(p.Z))
	le.PutUint16(buf[12:], p.Intensity)
}

func (p *Point) decodeCommon(buf []byte) {
	p.X = int32(le.Uint32(buf[0:]))
	p.Y = int32(le.Uint32(buf[4:]))
	p.Z = int32(le.Uint32(buf[8:]))
	p.Intensity = le.Uint16(buf[12:])
}

// Legacy layout (formats 0-5): 3-bit return counts, packed
// classification flags, signed byte scan angle.
func (p *Point) encodeLegacy(buf []byte) {
	p.encodeCommon(buf)
	var b14 uint8
	b14 |= p.ReturnNumber & 0x07
	b14 |= (p.NumberOfReturns & 0x07) << 3
	if p.ScanDirectionFlag {
		b14 |= 1 << 6
	}
	if p.EdgeOfFlightLine {
		b14 |= 1 << 7
	}
	buf[14] = b14

	b15 := p.Classification & 0x1f
	if p.Synthetic {
		b15 |= 1 << 5
	}
	if p.KeyPoint {
		b15 |= 1 << 6
	}
	if p.Withheld {
		b15 |= 1 << 7
	}
	buf[15] = b15

	buf[16] = uint8(p.ScanAngleRank)
	buf[17] = p.UserData
	le.PutUint16(buf[18:], p.PointSourceID)
}

func (p *Point) decodeLegacy(buf []byte) {
	p.decodeCommon(buf)
	b14 := buf[14]
	p.ReturnNumber = b14 & 0x07
	p.NumberOfReturns = (b14 >> 3) & 0x07
	p.ScanDirectionFlag = b14&(1<<6) != 0
	p.EdgeOfFlightLine = b14&(1<<7) != 0

	b15 := buf[15]
	p.Classification = b15 & 0x1f
	p.Synthetic = b15&(1<<5) != 0
	p.KeyPoint = b15&(1<<6) != 0
	p.Withheld = b15&(1<<7) != 0

	p.ScanAngleRank = int8(buf[16])
	p.UserData = buf[17]
	p.PointSourceID = le.Uint16(buf[18:])
}

// Modern layout (formats 6-10): 4-bit return counts, separate flag
// byte, 16-bit scan angle, mandatory GPS time.
func (p *Point) encodeModern(buf []byte) {
	p.encodeCommon(buf)
	buf[14] = (p.ReturnNumber & 0x0f) | (p.NumberOfReturns&0x0f)<<4

	var b15 uint8
	if p.Synthetic {
		b15 |= 1 << 0
	}
	if p.KeyPoint {
		b15 |= 1 << 1
	}
	if p.Withheld {
		b15 |= 1 << 2
	}
	if p.Overlap {
		b15 |= 1 << 3
	}
	b15 |= (p.ScannerChannel & 0x03) << 4
	if p.ScanDirectionFlag {
		b15 |= 1 << 6
	}
	if p.EdgeOfFlightLine {
		b15 |= 1 << 7
	}
	buf[15] = b15

	buf[16] = p.Classification
	buf[17] = p.UserData
	le.PutUint16(buf[18:], uint16(p.ScanAngle))
	le.PutUint16(buf[20:], p.PointSourceID)
	le.PutUint64(buf[22:], math.Float64bits(p.GPSTime))
}

func (p *Point) decodeModern(buf []byte) {
	p.decodeCommon(buf)
	p.ReturnNumber = buf[14] & 0x0f
	p.NumberOfReturns = buf[14] >> 4

	b15 := buf[15]
	p.Synthetic = b15&(1<<0) != 0
	p.KeyPoint = b15&(1<<1) != 0
	p.Withheld = b15&(1<<2) != 0
	p.Overlap = b15&(1<<3) != 0
	p.ScannerChannel = (b15 >> 4) & 0x03
	p.ScanDirectionFlag = b15&(1<<6) != 0
	p.EdgeOfFlightLine = b15&(1<<7) != 0

	p.Classification = buf[16]
	p.UserData = buf[17]
	p.ScanAngle = int16(le.Uint16(buf[18:]))
	p.PointSourceID = le.Uint16(buf[20:])
	p.GPSTime = math.Float64frombits(le.Uint64(buf[22:]))
}

func (p *Point) encodeGPS(buf []byte) {
	le.PutUint64(buf, math.Float64bits(p.GPSTime))
}

func (p *Point) decodeGPS(buf []byte) {
	p.GPSTime = math.Float64frombits(le.Uint64(buf))
}

func (p *Point) encodeRGB(buf []byte) {
	le.PutUint16(buf[0:], p.Red)
	le.PutUint16(buf[2:], p.Green)
	le.PutUint16(buf[4:], p.Blue)
}

func (p *Point) decodeRGB(buf []byte) {
	p.Red = le.Uint16(buf[0:])
	p.Green = le.Uint16(buf[2:])
	p.Blue = le.Uint16(buf[4:])
}

func (p *Point) encodeWave(buf []byte) {
	buf[0] = p.WavePacketIndex
	le.PutUint64(buf[1:], p.WavePacketOffset)
	le.PutUint32(buf[9:], p.WavePacketSize)
	le.PutUint32(buf[13:], math.Float32bits(p.ReturnPointWaveLocation))
	le.PutUint32(buf[17:], math.Float32bits(p.XT))
	le.PutUint32(buf[21:], math.Float32bits(p.YT))
	le.PutUint32(buf[25:], math.Float32bits(p.ZT))
}

func (p *Point) decodeWave(buf []byte) {
	p.WavePacketIndex = buf[0]
	p.WavePacketOffset = le.Uint64(buf[1:])
	p.WavePacketSize = le.Uint32(buf[9:])
	p.ReturnPointWaveLocation = math.Float32frombits(le.Uint32(buf[13:]))
	p.XT = math.Float32frombits(le.Uint32(buf[17:]))
	p.YT = math.Float32frombits(le.Uint32(buf[21:]))
	p.ZT = math.Float32frombits(le.Uint32(buf[25:]))
}

// Encode packs p into buf using the record layout of the given point
// format. buf must be at least RecordLength(format) bytes.
func (p *Point) Encode(format int, buf []byte) {
	switch format {
	case 0:
		p.encodeLegacy(buf)
	case 1:
		p.encodeLegacy(buf)
		p.encodeGPS(buf[20:])
	case 2:
		p.encodeLegacy(buf)
		p.encodeRGB(buf[20:])
	case 3:
		p.encodeLegacy(buf)
		p.encodeGPS(buf[20:])
		p.encodeRGB(buf[28:])
	case 4:
		p.encodeLegacy(buf)
		p.encodeGPS(buf[20:])
		p.encodeWave(buf[28:])
	case 5:
		p.encodeLegacy(buf)
		p.encodeGPS(buf[20:])
		p.encodeRGB(buf[28:])
		p.encodeWave(buf[34:])
	case 6:
		p.encodeModern(buf)
	case 7:
		p.encodeModern(buf)
		p.encodeRGB(buf[30:])
	case 8:
		p.encodeModern(buf)
		p.encodeRGB(buf[30:])
		le.PutUint16(buf[36:], p.NIR)
	case 9:
		p.encodeModern(buf)
		p.encodeWave(buf[30:])
	case 10:
		p.encodeModern(buf)
		p.encodeRGB(buf[30:])
		le.PutUint16(buf[36:], p.NIR)
		p.encodeWave(buf[38:])
	}
}

// Decode unpacks a record in the given point format layout into p.
func (p *Point) Decode(format int, buf []byte) {
	*p = Point{}
	switch format {
	case 0:
		p.decodeLegacy(buf)
	case 1:
		p.decodeLegacy(buf)
		p.decodeGPS(buf[20:])
	case 2:
		p.decodeLegacy(buf)
		p.decodeRGB(buf[20:])
	case 3:
		p.decodeLegacy(buf)
		p.decodeGPS(buf[20:])
		p.decodeRGB(buf[28:])
	case 4:
		p.decodeLegacy(buf)
		p.decodeGPS(buf[20:])
		p.decodeWave(buf[28:])
	case 5:
		p.decodeLegacy(buf)
		p.decodeGPS(buf[20:])
		p.decodeRGB(buf[28:])
		p.decodeWave(buf[34:])
	case 6:
		p.decodeModern(buf)
	case 7:
		p.decodeModern(buf)
		p.decodeRGB(buf[30:])
	case 8:
		p.decodeModern(buf)
		p.decodeRGB(buf[30:])
		p.NIR = le.Uint16(buf[36:])
	case 9:
		p.decodeModern(buf)
		p.decodeWave(buf[30:])
	case 10:
		p.decodeModern(buf)
		p.decodeRGB(buf[30:])
		p.NIR = le.Uint16(buf[36:])
		p.decodeWave(buf[38:])
	}
}

func boolDim(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Dimension returns the value of a named dimension as a float64, for
// generic scans such as per-dimension min/max. Unknown names return 0.
func (p *Point) Dimension(name string) float64 {
	switch name {
	case dimX:
		return float64(p.X)
	case dimY:
		return float64(p.Y)
	case dimZ:
		return float64(p.Z)
	case dimIntensity:
		return float64(p.Intensity)
	case dimReturnNumber:
		return float64(p.ReturnNumber)
	case dimNumberOfReturns:
		return float64(p.NumberOfReturns)
	case dimScanDirectionFlag:
		return boolDim(p.ScanDirectionFlag)
	case dimEdgeOfFlightLine:
		return boolDim(p.EdgeOfFlightLine)
	case dimClassification:
		return float64(p.Classification)
	case dimSynthetic:
		return boolDim(p.Synthetic)
	case dimKeyPoint:
		return boolDim(p.KeyPoint)
	case dimWithheld:
		return boolDim(p.Withheld)
	case dimOverlap:
		return boolDim(p.Overlap)
	case dimScannerChannel:
		return float64(p.ScannerChannel)
	case dimScanAngleRank:
		return float64(p.ScanAngleRank)
	case dimScanAngle:
		return float64(p.ScanAngle)
	case dimUserData:
		return float64(p.UserData)
	case dimPointSourceID:
		return float64(p.PointSourceID)
	case dimGPSTime:
		return p.GPSTime
	case dimRed:
		return float64(p.Red)
	case dimGreen:
		return float64(p.Green)
	case dimBlue:
		return float64(p.Blue)
	case dimNIR:
		return float64(p.NIR)
	case dimWavePacketIndex:
		return float64(p.WavePacketIndex)
	case dimWavePacketOffset:
		return float64(p.WavePacketOffset)
	case dimWavePacketSize:
		return float64(p.WavePacketSize)
	case dimReturnPointWave:
		return float64(p.ReturnPointWaveLocation)
	case dimXT:
		return float64(p.XT)
	case dimYT:
		return float64(p.YT)
	case dimZT:
		return float64(p.ZT)
	}
	return 0
}
