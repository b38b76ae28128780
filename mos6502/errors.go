package mos6502

import (
	"fmt"

	"github.com/pkg/errors"
)

// HaltOnBreak is returned by Step when the program executes BRK. It is not a
// failure: Run/RunWithCallback turn it into a nil return, and callers of Step
// can check for it with errors.Is(err, HaltOnBreak).
var HaltOnBreak = errors.New("halt: BRK executed")

// DecodeFailure means the opcode byte at PC has no entry in the opcode
// table. Fatal; carries the offending byte and address for diagnosis.
type DecodeFailure struct {
	Opcode byte
	PC     uint16
}

func (e *DecodeFailure) Error() string {
	return fmt.Sprintf("decode failure: opcode %#02x at pc %#04x has no table entry", e.Opcode, e.PC)
}

// UnsupportedMode means an instruction was dispatched with an addressing
// mode it does not accept. This is a programmer/table bug, never a runtime
// condition reachable from valid opcode-table data.
type UnsupportedMode struct {
	Mnemonic string
	Mode     AddressingMode
}

func (e *UnsupportedMode) Error() string {
	return fmt.Sprintf("unsupported addressing mode %v for %s", e.Mode, e.Mnemonic)
}

// errOverflow is returned by Bus.Load when a program does not fit in the
// remaining address space.
func errOverflow(start uint16, length int) error {
	return errors.Errorf("load overflow: %d bytes at %#04x exceed the 64 KiB address space", length, start)
}
