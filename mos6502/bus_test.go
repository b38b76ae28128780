package mos6502

import "testing"

func TestBusReadWrite8(t *testing.T) {
	b := &Bus{}
	b.Write8(0x1234, 0xAB)
	if got := b.Read8(0x1234); got != 0xAB {
		t.Errorf("Read8(0x1234) = %#02x, want 0xAB", got)
	}
}

func TestBusReadWrite16LittleEndian(t *testing.T) {
	b := &Bus{}
	b.Write16(0x2000, 0xBEEF)

	if got := b.Read8(0x2000); got != 0xEF {
		t.Errorf("low byte at 0x2000 = %#02x, want 0xef", got)
	}
	if got := b.Read8(0x2001); got != 0xBE {
		t.Errorf("high byte at 0x2001 = %#02x, want 0xbe", got)
	}
	if got := b.Read16(0x2000); got != 0xBEEF {
		t.Errorf("Read16(0x2000) = %#04x, want 0xbeef", got)
	}
}

func TestBusLoadSetsResetVector(t *testing.T) {
	b := &Bus{}
	program := []byte{0xA9, 0x05, 0x00}
	if err := b.Load(program, 0x8000); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got := b.Read16(resetVector); got != 0x8000 {
		t.Errorf("reset vector = %#04x, want 0x8000", got)
	}
	for i, v := range program {
		if got := b.Read8(0x8000 + uint16(i)); got != v {
			t.Errorf("byte %d = %#02x, want %#02x", i, got, v)
		}
	}
}

func TestBusLoadOverflow(t *testing.T) {
	b := &Bus{}
	program := make([]byte, 10)
	err := b.Load(program, 0xFFFF)
	if err == nil {
		t.Fatalf("Load with overflowing program returned nil error")
	}
}
