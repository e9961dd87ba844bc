package debugsink

import (
	"math"
	"strconv"
)

// floatBufSize fits sign, the integer digits of a typical reading, the
// decimal point and the fraction. Longer renderings grow the buffer instead
// of being truncated.
const floatBufSize = 16

// appendValue appends the text form of v to dst.
// Program memory text is not handled here since it is streamed byte by byte.
func appendValue(dst []byte, v Value) []byte {
	switch v.kind {
	case KindText:
		return append(dst, v.s...)
	case KindChar:
		return append(dst, byte(v.u))
	case KindInt:
		return strconv.AppendInt(dst, v.i, 10)
	case KindUint:
		return strconv.AppendUint(dst, v.u, 10)
	case KindFloat32:
		return appendFloat(dst, v.f, v.places, 32)
	case KindFloat64:
		return appendFloat(dst, v.f, v.places, 64)
	default:
		return dst
	}
}

// appendFloat renders f with a fixed number of decimal places, the way the
// AVR float printer does (no exponent, "nan" and "inf" for specials).
func appendFloat(dst []byte, f float64, places uint8, bitSize int) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "nan"...)
	case math.IsInf(f, 1):
		return append(dst, "inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-inf"...)
	}
	return strconv.AppendFloat(dst, f, 'f', int(places), bitSize)
}

// Format returns the text v prints as, without any line ending.
func Format(v Value) string {
	if v.kind == KindFlash {
		return v.flash.String()
	}
	var buf [floatBufSize]byte
	return string(appendValue(buf[:0], v))
}
