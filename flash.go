package debugsink

import (
	"iter"
)

// FlashString references a zero-terminated string stored in program memory.
// The zero value is the null reference.
type FlashString struct {
	mem  ProgramMemory
	addr uint32
}

// NewFlashString returns a reference to the string starting at addr in mem.
func NewFlashString(mem ProgramMemory, addr uint32) FlashString {
	return FlashString{mem: mem, addr: addr}
}

// IsNull reports whether f references no memory at all.
func (f FlashString) IsNull() bool {
	return f.mem == nil
}

// Addr returns the start address of the string.
func (f FlashString) Addr() uint32 {
	return f.addr
}

// All yields the bytes of the string one at a time, reading them through the
// memory accessor. It stops before the terminating zero byte, or at the end
// of the memory region if the string is not terminated.
func (f FlashString) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		if f.mem == nil {
			return
		}
		for p := f.addr; ; p++ {
			c, ok := f.mem.Read8(p)
			if !ok || c == 0 {
				return
			}
			if !yield(c) {
				return
			}
		}
	}
}

// String copies the string out of program memory.
func (f FlashString) String() string {
	var b []byte
	for c := range f.All() {
		b = append(b, c)
	}
	return string(b)
}

// Flash is a program memory image for targets with a unified address space,
// where program memory can be read by plain indexing. Strings are baked in
// with Store during initialization and are read-only afterwards.
type Flash struct {
	data []byte
}

// NewFlash returns an empty image.
// Address 0 holds a zero byte so that no stored string starts at 0.
func NewFlash() *Flash {
	return &Flash{data: []byte{0}}
}

// Store appends s and its terminator to the image and returns a reference
// to it.
func (f *Flash) Store(s string) FlashString {
	if len(f.data) == 0 {
		f.data = append(f.data, 0)
	}
	addr := uint32(len(f.data))
	f.data = append(f.data, s...)
	f.data = append(f.data, 0)
	return FlashString{mem: f, addr: addr}
}

// Read8 implements ProgramMemory.
func (f *Flash) Read8(addr uint32) (uint8, bool) {
	if uint64(addr) >= uint64(len(f.data)) {
		return 0, false
	}
	return f.data[addr], true
}

// Size returns the number of bytes in the image.
func (f *Flash) Size() int {
	return len(f.data)
}
