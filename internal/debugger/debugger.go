// Package debugger is a headless, terminal-based CPU inspector built on
// bubbletea: a single-stepping page table and register view, with no
// dependency on a graphical window. Used by "snake inspect".
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/qlova/snakevm/mos6502"
)

type model struct {
	cpu     *mos6502.CPU
	program []byte
	offset  uint16

	prevPC uint16
	halted bool
	err    error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j", "n":
		if m.halted {
			return m, nil
		}
		m.prevPC = m.cpu.PC
		err := m.cpu.Step()
		if err != nil {
			if err == mos6502.HaltOnBreak {
				m.halted = true
			} else {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.cpu.Bus().Read8(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	lines := []string{header}
	base := m.cpu.PC &^ 0x0F
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(uint16(int32(base)+int32(i*16))))
	}
	return strings.Join(lines, "\n")
}

func flagString(p byte) string {
	var b strings.Builder
	for _, f := range []struct {
		flag  mos6502.Flag
		label string
	}{
		{mos6502.FlagN, "N"}, {mos6502.FlagV, "V"}, {mos6502.FlagU, "_"}, {mos6502.FlagB, "B"},
		{mos6502.FlagD, "D"}, {mos6502.FlagI, "I"}, {mos6502.FlagZ, "Z"}, {mos6502.FlagC, "C"},
	} {
		if p&byte(f.flag) != 0 {
			b.WriteString(f.label + " ")
		} else {
			b.WriteString(". ")
		}
	}
	return b.String()
}

func (m model) status() string {
	status := fmt.Sprintf(`
PC: %04x (was %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
 P: %s
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP,
		flagString(m.cpu.P),
	)
	if m.halted {
		status += "\n[halted on BRK]"
	}
	return status
}

func (m model) View() string {
	lines := m.cpu.Disassemble(m.cpu.PC, m.cpu.PC+2)
	var disasm string
	if line, ok := lines[m.cpu.PC]; ok {
		disasm = line
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		"next: "+disasm,
		"",
		spew.Sdump(struct {
			A, X, Y, SP byte
			PC          uint16
		}{m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP, m.cpu.PC}),
	)
}

// Run loads program at offset, resets the CPU, and starts an interactive
// single-stepping inspector. Space/j/n steps one instruction; q quits.
func Run(program []byte, offset uint16) error {
	c := mos6502.NewCPU()
	if err := c.Load(program, offset); err != nil {
		return err
	}
	c.Reset()

	m, err := tea.NewProgram(model{cpu: c, program: program, offset: offset}).Run()
	if err != nil {
		return err
	}
	if final, ok := m.(model); ok && final.err != nil {
		return final.err
	}
	return nil
}
