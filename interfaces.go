package debugsink

// Sink represents the byte-stream the debug output is written to, usually a
// hardware serial port. The Debugger never opens, configures or closes it.
//
// If the sink also implements io.ByteWriter, single bytes are written with
// WriteByte.
type Sink interface {
	Write(p []byte) (n int, err error)
}

// ProgramMemory represents a read-only memory region that cannot be read by
// plain dereference on every target (separate code and data address spaces).
type ProgramMemory interface {
	// Read8 returns the byte stored at addr.
	// ok is false when addr is outside the region.
	Read8(addr uint32) (b uint8, ok bool)
}
