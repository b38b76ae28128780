// Package gamepad bridges host keyboard input and the host random-number
// source into the two memory-mapped cells the snake ROM polls: the last
// keypress at 0xFF and a fresh random byte at 0xFE.
package gamepad

import "github.com/qlova/snakevm/mos6502"

// Key codes written to 0xFF on keypress, matching the ASCII values the ROM's
// input handler compares against. This is the corrected W/A/S/D mapping;
// it does not reproduce the A/S transposition present in at least one
// historical reference implementation's keyboard handler.
const (
	KeyUp    byte = 0x77 // W
	KeyDown  byte = 0x73 // S
	KeyLeft  byte = 0x61 // A
	KeyRight byte = 0x64 // D
)

// keycodes is consulted by FromRune to translate a host keystroke into the
// ROM's expected byte.
var keycodes = map[rune]byte{
	'w': KeyUp, 'W': KeyUp,
	's': KeyDown, 'S': KeyDown,
	'a': KeyLeft, 'A': KeyLeft,
	'd': KeyRight, 'D': KeyRight,
}

// FromRune translates a host keystroke into the byte the ROM expects at
// 0xFF. The second return value is false for keys the ROM does not read.
func FromRune(r rune) (byte, bool) {
	v, ok := keycodes[r]
	return v, ok
}

// Inject writes a keycode to the bus's input cell (0xFF). It is meant to be
// called from a CPU.RunWithCallback hook, once per host input event, not
// once per instruction step.
func Inject(bus *mos6502.Bus, key byte) {
	bus.Write8(0xFF, key)
}

// SeedRandom writes a single fresh random byte to 0xFE, in the range the ROM
// expects ([1, 16)). next is any source of uniform bytes in that half-open
// range; callers typically wire math/rand.
func SeedRandom(bus *mos6502.Bus, next func() byte) {
	bus.Write8(0xFE, next())
}
