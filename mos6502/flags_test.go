package mos6502

import "testing"

func TestSetFlag(t *testing.T) {
	c := NewCPU()

	c.SetFlag(FlagC, true)
	if !c.flagSet(FlagC) {
		t.Errorf("flagSet(FlagC) = false, want true after SetFlag(FlagC, true)")
	}

	c.SetFlag(FlagC, false)
	if c.flagSet(FlagC) {
		t.Errorf("flagSet(FlagC) = true, want false after SetFlag(FlagC, false)")
	}
}

func TestSetFlagLeavesOthersUntouched(t *testing.T) {
	c := NewCPU()
	c.P = 0

	c.SetFlag(FlagN, true)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{c.flagSet(FlagN), true},
		{c.flagSet(FlagC), false},
		{c.flagSet(FlagZ), false},
		{c.flagSet(FlagV), false},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestSetZN(t *testing.T) {
	c := NewCPU()

	c.setZN(0x00)
	if !c.flagSet(FlagZ) {
		t.Errorf("setZN(0x00): FlagZ not set")
	}
	if c.flagSet(FlagN) {
		t.Errorf("setZN(0x00): FlagN should not be set")
	}

	c.setZN(0x80)
	if c.flagSet(FlagZ) {
		t.Errorf("setZN(0x80): FlagZ should not be set")
	}
	if !c.flagSet(FlagN) {
		t.Errorf("setZN(0x80): FlagN not set")
	}

	c.setZN(0x10)
	if c.flagSet(FlagZ) || c.flagSet(FlagN) {
		t.Errorf("setZN(0x10): neither Z nor N should be set")
	}
}
