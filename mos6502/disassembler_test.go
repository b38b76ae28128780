package mos6502

import (
	"strings"
	"testing"
)

func TestDisassembleDoesNotMutateState(t *testing.T) {
	c := NewCPU()
	program := []byte{0xA9, 0x05, 0xAA, 0x00}
	if err := c.LoadAt0x8000(program); err != nil {
		t.Fatalf("LoadAt0x8000: %v", err)
	}
	c.Reset()

	before := *c
	_ = c.Disassemble(0x8000, 0x8003)

	if c.A != before.A || c.X != before.X || c.PC != before.PC {
		t.Errorf("Disassemble mutated CPU state")
	}
}

func TestDisassembleLabelsMnemonicsAndModes(t *testing.T) {
	c := NewCPU()
	program := []byte{0xA9, 0x05, 0x8D, 0x00, 0x20, 0x00}
	if err := c.LoadAt0x8000(program); err != nil {
		t.Fatalf("LoadAt0x8000: %v", err)
	}
	c.Reset()

	lines := c.Disassemble(0x8000, 0x8005)

	if !strings.Contains(lines[0x8000], "LDA") || !strings.Contains(lines[0x8000], "immediate") {
		t.Errorf("line for 0x8000 = %q, want LDA/immediate", lines[0x8000])
	}
	if !strings.Contains(lines[0x8002], "STA") || !strings.Contains(lines[0x8002], "absolute") {
		t.Errorf("line for 0x8002 = %q, want STA/absolute", lines[0x8002])
	}
}

func TestDisassembleUnusedOpcodeShowsPlaceholder(t *testing.T) {
	c := NewCPU()
	if err := c.LoadAt0x8000([]byte{0x02}); err != nil {
		t.Fatalf("LoadAt0x8000: %v", err)
	}
	c.Reset()

	lines := c.Disassemble(0x8000, 0x8000)
	if !strings.Contains(lines[0x8000], "???") {
		t.Errorf("line for unused opcode = %q, want placeholder ???", lines[0x8000])
	}
}
