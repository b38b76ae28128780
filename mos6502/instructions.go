package mos6502

// Each instruction function has the signature func(c *CPU, mode
// AddressingMode) bool. The bool return reports whether the instruction set
// PC directly (an unconditional jump, any branch whether taken or not,
// JSR/RTS/RTI, or BRK) —
// the fetch/decode/execute loop skips its own length-based PC advance when
// true.

// fetchByte reads the operand byte for mode, using the accumulator directly
// when the instruction was dispatched in Accumulator mode.
func (c *CPU) fetchByte(mode AddressingMode) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.bus.Read8(c.resolve(mode))
}

// storeByte writes a computed result back to the accumulator or to memory,
// matching how the operand was fetched.
func (c *CPU) storeByte(mode AddressingMode, addr uint16, v byte) {
	if mode == Accumulator {
		c.A = v
	} else {
		c.bus.Write8(addr, v)
	}
}

func opADC(c *CPU, mode AddressingMode) bool {
	m := c.fetchByte(mode)
	carry := uint16(0)
	if c.flagSet(FlagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	result := byte(sum)

	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagV, (c.A^result)&(m^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
	return false
}

func opSBC(c *CPU, mode AddressingMode) bool {
	m := c.fetchByte(mode) ^ 0xFF
	carry := uint16(0)
	if c.flagSet(FlagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	result := byte(sum)

	c.SetFlag(FlagC, sum > 0xFF)
	c.SetFlag(FlagV, (c.A^result)&(m^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
	return false
}

func opAND(c *CPU, mode AddressingMode) bool {
	c.A &= c.fetchByte(mode)
	c.setZN(c.A)
	return false
}

func opORA(c *CPU, mode AddressingMode) bool {
	c.A |= c.fetchByte(mode)
	c.setZN(c.A)
	return false
}

func opEOR(c *CPU, mode AddressingMode) bool {
	c.A ^= c.fetchByte(mode)
	c.setZN(c.A)
	return false
}

func opASL(c *CPU, mode AddressingMode) bool {
	var addr uint16
	if mode != Accumulator {
		addr = c.resolve(mode)
	}
	v := c.fetchByte(mode)
	c.SetFlag(FlagC, v&0x80 != 0)
	result := v << 1
	c.storeByte(mode, addr, result)
	c.setZN(result)
	return false
}

func opLSR(c *CPU, mode AddressingMode) bool {
	var addr uint16
	if mode != Accumulator {
		addr = c.resolve(mode)
	}
	v := c.fetchByte(mode)
	c.SetFlag(FlagC, v&0x01 != 0)
	result := v >> 1
	c.storeByte(mode, addr, result)
	c.setZN(result)
	return false
}

func opROL(c *CPU, mode AddressingMode) bool {
	var addr uint16
	if mode != Accumulator {
		addr = c.resolve(mode)
	}
	v := c.fetchByte(mode)
	oldCarry := byte(0)
	if c.flagSet(FlagC) {
		oldCarry = 1
	}
	c.SetFlag(FlagC, v&0x80 != 0)
	result := (v << 1) | oldCarry
	c.storeByte(mode, addr, result)
	c.setZN(result)
	return false
}

func opROR(c *CPU, mode AddressingMode) bool {
	var addr uint16
	if mode != Accumulator {
		addr = c.resolve(mode)
	}
	v := c.fetchByte(mode)
	oldCarry := byte(0)
	if c.flagSet(FlagC) {
		oldCarry = 0x80
	}
	c.SetFlag(FlagC, v&0x01 != 0)
	result := (v >> 1) | oldCarry
	c.storeByte(mode, addr, result)
	c.setZN(result)
	return false
}

func opLDA(c *CPU, mode AddressingMode) bool {
	c.A = c.fetchByte(mode)
	c.setZN(c.A)
	return false
}

func opLDX(c *CPU, mode AddressingMode) bool {
	c.X = c.fetchByte(mode)
	c.setZN(c.X)
	return false
}

func opLDY(c *CPU, mode AddressingMode) bool {
	c.Y = c.fetchByte(mode)
	c.setZN(c.Y)
	return false
}

func opSTA(c *CPU, mode AddressingMode) bool {
	c.bus.Write8(c.resolve(mode), c.A)
	return false
}

func opSTX(c *CPU, mode AddressingMode) bool {
	c.bus.Write8(c.resolve(mode), c.X)
	return false
}

func opSTY(c *CPU, mode AddressingMode) bool {
	c.bus.Write8(c.resolve(mode), c.Y)
	return false
}

func opTAX(c *CPU, mode AddressingMode) bool {
	c.X = c.A
	c.setZN(c.X)
	return false
}

func opTAY(c *CPU, mode AddressingMode) bool {
	c.Y = c.A
	c.setZN(c.Y)
	return false
}

func opTXA(c *CPU, mode AddressingMode) bool {
	c.A = c.X
	c.setZN(c.A)
	return false
}

func opTYA(c *CPU, mode AddressingMode) bool {
	c.A = c.Y
	c.setZN(c.A)
	return false
}

func opTSX(c *CPU, mode AddressingMode) bool {
	c.X = c.SP
	c.setZN(c.X)
	return false
}

func opTXS(c *CPU, mode AddressingMode) bool {
	c.SP = c.X
	return false
}

func opINX(c *CPU, mode AddressingMode) bool {
	c.X++
	c.setZN(c.X)
	return false
}

func opINY(c *CPU, mode AddressingMode) bool {
	c.Y++
	c.setZN(c.Y)
	return false
}

func opDEX(c *CPU, mode AddressingMode) bool {
	c.X--
	c.setZN(c.X)
	return false
}

func opDEY(c *CPU, mode AddressingMode) bool {
	c.Y--
	c.setZN(c.Y)
	return false
}

func opINC(c *CPU, mode AddressingMode) bool {
	addr := c.resolve(mode)
	v := c.bus.Read8(addr) + 1
	c.bus.Write8(addr, v)
	c.setZN(v)
	return false
}

func opDEC(c *CPU, mode AddressingMode) bool {
	addr := c.resolve(mode)
	v := c.bus.Read8(addr) - 1
	c.bus.Write8(addr, v)
	c.setZN(v)
	return false
}

func cmpFamily(c *CPU, reg byte, mode AddressingMode) {
	m := c.fetchByte(mode)
	result := reg - m
	c.SetFlag(FlagC, reg >= m)
	c.SetFlag(FlagZ, reg == m)
	c.SetFlag(FlagN, result&0x80 != 0)
}

func opCMP(c *CPU, mode AddressingMode) bool {
	cmpFamily(c, c.A, mode)
	return false
}

func opCPX(c *CPU, mode AddressingMode) bool {
	cmpFamily(c, c.X, mode)
	return false
}

func opCPY(c *CPU, mode AddressingMode) bool {
	cmpFamily(c, c.Y, mode)
	return false
}

func opBIT(c *CPU, mode AddressingMode) bool {
	m := c.fetchByte(mode)
	c.SetFlag(FlagZ, c.A&m == 0)
	c.SetFlag(FlagV, m&0x40 != 0)
	c.SetFlag(FlagN, m&0x80 != 0)
	return false
}

func opCLC(c *CPU, mode AddressingMode) bool { c.SetFlag(FlagC, false); return false }
func opSEC(c *CPU, mode AddressingMode) bool { c.SetFlag(FlagC, true); return false }
func opCLI(c *CPU, mode AddressingMode) bool { c.SetFlag(FlagI, false); return false }
func opSEI(c *CPU, mode AddressingMode) bool { c.SetFlag(FlagI, true); return false }
func opCLV(c *CPU, mode AddressingMode) bool { c.SetFlag(FlagV, false); return false }
func opCLD(c *CPU, mode AddressingMode) bool { c.SetFlag(FlagD, false); return false }
func opSED(c *CPU, mode AddressingMode) bool { c.SetFlag(FlagD, true); return false }

func opPHA(c *CPU, mode AddressingMode) bool {
	c.push(c.A)
	return false
}

func opPLA(c *CPU, mode AddressingMode) bool {
	c.A = c.pop()
	c.setZN(c.A)
	return false
}

func opPHP(c *CPU, mode AddressingMode) bool {
	c.push(c.P | byte(FlagB) | byte(FlagU))
	return false
}

func opPLP(c *CPU, mode AddressingMode) bool {
	popped := c.pop()
	c.P = (popped &^ (byte(FlagB) | byte(FlagU))) | (c.P & (byte(FlagB) | byte(FlagU)))
	return false
}

func opJMP(c *CPU, mode AddressingMode) bool {
	ptr := c.bus.Read16(c.PC)
	if mode == Indirect {
		c.PC = c.jmpIndirectTarget(ptr)
	} else {
		c.PC = ptr
	}
	return true
}

func opJSR(c *CPU, mode AddressingMode) bool {
	target := c.bus.Read16(c.PC)
	returnAddr := c.PC + 1 // PC currently points at the low operand byte; next instruction is 2 bytes further
	c.push16(returnAddr)
	c.PC = target
	return true
}

func opRTS(c *CPU, mode AddressingMode) bool {
	c.PC = c.pop16() + 1
	return true
}

func opRTI(c *CPU, mode AddressingMode) bool {
	popped := c.pop()
	c.P = (popped &^ (byte(FlagB) | byte(FlagU))) | (c.P & (byte(FlagB) | byte(FlagU)))
	c.PC = c.pop16()
	return true
}

func opBRK(c *CPU, mode AddressingMode) bool {
	c.push16(c.PC)
	c.push(c.P | byte(FlagB) | byte(FlagU))
	c.SetFlag(FlagB, true)
	c.PC = c.bus.Read16(irqVector)
	return true
}

func opNOP(c *CPU, mode AddressingMode) bool { return false }

func branch(c *CPU, taken bool) bool {
	offset := int8(c.bus.Read8(c.PC))
	c.PC++
	if !taken {
		return true // PC already advanced past the operand; skip the default advance
	}
	c.PC = uint16(int32(c.PC) + int32(offset))
	return true
}

func opBCC(c *CPU, mode AddressingMode) bool { return branch(c, !c.flagSet(FlagC)) }
func opBCS(c *CPU, mode AddressingMode) bool { return branch(c, c.flagSet(FlagC)) }
func opBEQ(c *CPU, mode AddressingMode) bool { return branch(c, c.flagSet(FlagZ)) }
func opBNE(c *CPU, mode AddressingMode) bool { return branch(c, !c.flagSet(FlagZ)) }
func opBMI(c *CPU, mode AddressingMode) bool { return branch(c, c.flagSet(FlagN)) }
func opBPL(c *CPU, mode AddressingMode) bool { return branch(c, !c.flagSet(FlagN)) }
func opBVC(c *CPU, mode AddressingMode) bool { return branch(c, !c.flagSet(FlagV)) }
func opBVS(c *CPU, mode AddressingMode) bool { return branch(c, c.flagSet(FlagV)) }
