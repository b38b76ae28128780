package mos6502

// Bus is the CPU's flat, byte-addressable 64 KiB memory space. Every address
// is readable and writable; there are no holes and no bounds errors.
type Bus struct {
	mem [1 << 16]byte
}

// Read8 reads a single byte.
func (b *Bus) Read8(addr uint16) byte {
	return b.mem[addr]
}

// Write8 writes a single byte.
func (b *Bus) Write8(addr uint16, v byte) {
	b.mem[addr] = v
}

// Read16 reads a little-endian word: low byte at addr, high byte at addr+1.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a little-endian word: low byte at addr, high byte at addr+1.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write8(addr, byte(v))
	b.Write8(addr+1, byte(v>>8))
}

// Load copies program into the bus starting at start, and points the reset
// vector (0xFFFC/0xFFFD) at start.
func (b *Bus) Load(program []byte, start uint16) error {
	end := int(start) + len(program)
	if end > len(b.mem) {
		return errOverflow(start, len(program))
	}
	copy(b.mem[start:end], program)
	b.Write16(resetVector, start)
	return nil
}
