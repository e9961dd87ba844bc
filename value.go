package debugsink

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindText is ordinary RAM-resident text.
	KindText Kind = iota
	// KindFlash is text stored in program memory.
	KindFlash
	// KindChar is a single character.
	KindChar
	// KindInt is a signed integer of any width.
	KindInt
	// KindUint is an unsigned integer of any width.
	KindUint
	// KindFloat32 is a single precision float.
	KindFloat32
	// KindFloat64 is a double precision float.
	KindFloat64
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFlash:
		return "flash"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// DefaultPlaces is the number of decimal places used for floats when no
// precision is given.
const DefaultPlaces = 2

// Value is a single formattable value. Build one with Text, FlashText, Char,
// Int, Uint, Float or Float32.
type Value struct {
	kind   Kind
	places uint8
	s      string
	flash  FlashString
	i      int64
	u      uint64
	f      float64
}

// Signed is the set of signed integer types accepted by Int.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types accepted by Uint.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Text is ordinary text, written verbatim.
func Text(s string) Value { return Value{kind: KindText, s: s} }

func FlashText(f FlashString) Value { return Value{kind: KindFlash, flash: f} }

func Char(c byte) Value { return Value{kind: KindChar, u: uint64(c)} }

// Int is a signed integer printed in decimal.
func Int[T Signed](v T) Value { return Value{kind: KindInt, i: int64(v)} }

func Uint[T Unsigned](v T) Value { return Value{kind: KindUint, u: uint64(v)} }

// Float is printed with DefaultPlaces decimal places.
func Float(v float64) Value {
	return Value{kind: KindFloat64, f: v, places: DefaultPlaces}
}

func Float32(v float32) Value {
	return Value{kind: KindFloat32, f: float64(v), places: DefaultPlaces}
}

// Places sets the number of digits printed after the decimal point.
// It has no effect on values that are not floats.
func (v Value) Places(p uint8) Value {
	if v.kind == KindFloat32 || v.kind == KindFloat64 {
		v.places = p
	}
	return v
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}
