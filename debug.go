package debugsink

import (
	"errors"
	"io"
)

var (
	ErrPkg   = errors.New("debugsink")
	ErrNoPin = errors.New("pin not found")
)

const (
	// LineEnding is appended by Println, matching the serial port's own
	// println convention.
	LineEnding = "\r\n"
	// FlashLineEnding is appended by Println after program memory text.
	FlashLineEnding = "\n\r"
)

// Debugger writes trace output to a Sink while enabled and discards it
// otherwise. The zero value is a valid, disabled Debugger with no sink.
//
// A Debugger is meant to be configured once during start-up and is not safe
// for concurrent use. Enabling it without a sink is a programming error: the
// sink is not checked for nil.
type Debugger struct {
	enabled bool
	sink    Sink
	scratch [1]byte
}

// New returns a disabled Debugger writing to s.
func New(s Sink) *Debugger {
	return &Debugger{sink: s}
}

// SetEnabled turns output on or off.
func (d *Debugger) SetEnabled(v bool) {
	d.enabled = v
}

// Enabled reports whether output is on.
func (d *Debugger) Enabled() bool {
	return d.enabled
}

// SetSink replaces the sink. The previous sink is not closed.
func (d *Debugger) SetSink(s Sink) {
	d.sink = s
}

// Print writes the text form of v.
//
// Floats get DefaultPlaces decimal places unless Value.Places was used.
// Program memory text is read one byte at a time through its accessor; a
// null reference prints nothing.
func (d *Debugger) Print(v Value) {
	if !d.enabled {
		return
	}
	d.print(v)
}

// Println writes the text form of v followed by LineEnding, or by
// FlashLineEnding for program memory text. The line ending is written even
// when a program memory reference is null.
func (d *Debugger) Println(v Value) {
	if !d.enabled {
		return
	}
	d.print(v)
	if v.kind == KindFlash {
		d.writeString(FlashLineEnding)
		return
	}
	d.writeString(LineEnding)
}

// WriteRaw writes bytes straight to the sink. Text is written verbatim and
// integers and characters are written as their low byte, like a serial
// port's write. Other values are written as Print would.
func (d *Debugger) WriteRaw(v Value) {
	if !d.enabled {
		return
	}
	switch v.kind {
	case KindInt:
		d.writeByte(byte(v.i))
	case KindUint, KindChar:
		d.writeByte(byte(v.u))
	default:
		d.print(v)
	}
}

func (d *Debugger) print(v Value) {
	switch v.kind {
	case KindText:
		d.writeString(v.s)
	case KindFlash:
		for c := range v.flash.All() {
			d.writeByte(c)
		}
	case KindChar:
		d.writeByte(byte(v.u))
	default:
		var buf [floatBufSize]byte
		_, _ = d.sink.Write(appendValue(buf[:0], v))
	}
}

func (d *Debugger) writeString(s string) {
	_, _ = io.WriteString(d.sink, s)
}

func (d *Debugger) writeByte(c byte) {
	if bw, ok := d.sink.(io.ByteWriter); ok {
		_ = bw.WriteByte(c)
		return
	}
	d.scratch[0] = c
	_, _ = d.sink.Write(d.scratch[:])
}
