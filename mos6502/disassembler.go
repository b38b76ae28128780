package mos6502

import (
	"bytes"
	"fmt"
)

// Disassemble walks the opcode table over [startAddr, endAddr] (inclusive)
// and renders one "$ADDR: MNEMONIC operand {MODE}" line per instruction,
// keyed by the instruction's starting address. It never mutates CPU state:
// it reads the bus directly rather than stepping the CPU.
//
// Much of the line layout follows the disassembler bundled with olcNES.
func (c *CPU) Disassemble(startAddr, endAddr uint16) map[uint16]string {
	var line bytes.Buffer
	disassembly := make(map[uint16]string)

	// addr is wider than uint16 so the loop can detect passing endAddr
	// without wrapping around 0xFFFF.
	var addr uint32 = uint32(startAddr)

	for addr <= uint32(endAddr) {
		lineAddr := uint16(addr)
		line.WriteString(fmt.Sprintf("$%04X: ", lineAddr))

		opcode := c.bus.Read8(uint16(addr))
		addr++

		entry := c.table[opcode]
		line.WriteString(entry.mnemonic)
		line.WriteString(" ")

		switch entry.mode {
		case Implied:
			line.WriteString("{implied}")
		case Accumulator:
			line.WriteString("A {accumulator}")
		case Immediate:
			v := c.bus.Read8(uint16(addr))
			addr++
			line.WriteString(fmt.Sprintf("#$%02X {immediate}", v))
		case Relative:
			v := c.bus.Read8(uint16(addr))
			addr++
			target := uint16(int32(addr) + int32(int8(v)))
			line.WriteString(fmt.Sprintf("$%02X [$%04X] {relative}", v, target))
		case ZeroPage:
			v := c.bus.Read8(uint16(addr))
			addr++
			line.WriteString(fmt.Sprintf("$%02X {zeropage}", v))
		case ZeroPageX:
			v := c.bus.Read8(uint16(addr))
			addr++
			line.WriteString(fmt.Sprintf("$%02X,X {zeropage,x}", v))
		case ZeroPageY:
			v := c.bus.Read8(uint16(addr))
			addr++
			line.WriteString(fmt.Sprintf("$%02X,Y {zeropage,y}", v))
		case Absolute:
			target := readOperand16(c, &addr)
			line.WriteString(fmt.Sprintf("$%04X {absolute}", target))
		case AbsoluteX:
			target := readOperand16(c, &addr)
			line.WriteString(fmt.Sprintf("$%04X,X {absolute,x}", target))
		case AbsoluteY:
			target := readOperand16(c, &addr)
			line.WriteString(fmt.Sprintf("$%04X,Y {absolute,y}", target))
		case Indirect:
			target := readOperand16(c, &addr)
			line.WriteString(fmt.Sprintf("($%04X) {indirect}", target))
		case IndirectX:
			v := c.bus.Read8(uint16(addr))
			addr++
			line.WriteString(fmt.Sprintf("($%02X,X) {(indirect,x)}", v))
		case IndirectY:
			v := c.bus.Read8(uint16(addr))
			addr++
			line.WriteString(fmt.Sprintf("($%02X),Y {(indirect),y}", v))
		}

		disassembly[lineAddr] = line.String()
		line.Reset()
	}

	return disassembly
}

// readOperand16 reads a little-endian word starting at *addr and advances
// *addr past it.
func readOperand16(c *CPU, addr *uint32) uint16 {
	lo := c.bus.Read8(uint16(*addr))
	*addr++
	hi := c.bus.Read8(uint16(*addr))
	*addr++
	return uint16(hi)<<8 | uint16(lo)
}
