package mos6502

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveZeroPageX(t *testing.T) {
	c := NewCPU()
	c.X = 0x05
	c.bus.Write8(c.PC, 0x80)

	assert.Equal(t, uint16(0x85), c.resolve(ZeroPageX))
}

func TestResolveZeroPageXWraps(t *testing.T) {
	c := NewCPU()
	c.X = 0xFF
	c.bus.Write8(c.PC, 0x80)

	// 0x80 + 0xff = 0x17f, must wrap within the zero page to 0x7f.
	assert.Equal(t, uint16(0x7F), c.resolve(ZeroPageX))
}

func TestResolveAbsoluteX(t *testing.T) {
	c := NewCPU()
	c.X = 0x01
	c.bus.Write16(c.PC, 0x1234)

	assert.Equal(t, uint16(0x1235), c.resolve(AbsoluteX))
}

func TestResolveIndirectXWrapsPointerWithinZeroPage(t *testing.T) {
	c := NewCPU()
	c.X = 0x04
	c.bus.Write8(c.PC, 0xFE) // pointer base 0xfe + X(4) wraps to 0x02
	c.bus.Write16(0x02, 0xBEEF)

	assert.Equal(t, uint16(0xBEEF), c.resolve(IndirectX))
}

func TestResolveIndirectXIsLittleEndian(t *testing.T) {
	c := NewCPU()
	c.bus.Write8(c.PC, 0x20)
	c.bus.Write8(0x20, 0x00)
	c.bus.Write8(0x21, 0x90)

	assert.Equal(t, uint16(0x9000), c.resolve(IndirectX))
}

func TestResolveIndirectYAddsYAfterPointerFetch(t *testing.T) {
	c := NewCPU()
	c.Y = 0x10
	c.bus.Write8(c.PC, 0x20)
	c.bus.Write16(0x20, 0x1000)

	assert.Equal(t, uint16(0x1010), c.resolve(IndirectY))
}

func TestResolveIndirectYPointerWrapsWithinZeroPage(t *testing.T) {
	c := NewCPU()
	c.Y = 0x00
	c.PC = 0x8000 // keep the operand byte clear of the zero-page pointer at 0x00
	c.bus.Write8(c.PC, 0xFF)
	c.bus.Write8(0xFF, 0x00)
	c.bus.Write8(0x00, 0x80) // high byte wraps to 0x00, not 0x100

	assert.Equal(t, uint16(0x8000), c.resolve(IndirectY))
}

func TestJmpIndirectPageWrapBug(t *testing.T) {
	c := NewCPU()
	c.bus.Write8(0x30FF, 0x40)
	c.bus.Write8(0x3000, 0x80) // high byte fetched from start of same page, not 0x3100
	c.bus.Write8(0x3100, 0xFF)

	assert.Equal(t, uint16(0x8040), c.jmpIndirectTarget(0x30FF))
}

func TestOperandLen(t *testing.T) {
	tests := []struct {
		mode AddressingMode
		want uint16
	}{
		{Implied, 0},
		{Accumulator, 0},
		{Immediate, 1},
		{ZeroPage, 1},
		{Relative, 1},
		{Absolute, 2},
		{AbsoluteX, 2},
		{Indirect, 2},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, operandLen(test.mode), "mode %v", test.mode)
	}
}

func TestResolvePanicsOnUnaddressableMode(t *testing.T) {
	c := NewCPU()
	assert.Panics(t, func() { c.resolve(Implied) })
}
