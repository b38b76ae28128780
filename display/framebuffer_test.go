package display

import (
	"testing"

	"golang.org/x/image/colornames"

	"github.com/qlova/snakevm/mos6502"
)

func TestPaletteAliasing(t *testing.T) {
	tests := []struct {
		a, b byte
	}{
		{2, 9}, {3, 10}, {4, 11}, {5, 12}, {6, 13}, {7, 14},
	}
	for _, test := range tests {
		if Palette(test.a) != Palette(test.b) {
			t.Errorf("Palette(%d) != Palette(%d)", test.a, test.b)
		}
	}
}

func TestPaletteDefaultsToCyan(t *testing.T) {
	if Palette(15) != colornames.Cyan {
		t.Errorf("Palette(15) = %v, want cyan", Palette(15))
	}
}

func TestReadFrameAppliesPalette(t *testing.T) {
	bus := &mos6502.Bus{}
	bus.Write8(0x0200, 1) // top-left cell (x=0,y=0) is white

	frame, changed := ReadFrame(bus, nil)
	if !changed {
		t.Errorf("ReadFrame against nil prev reported no change")
	}
	if got := frame.RGBAAt(0, FrameHeight-1); got != colornames.White {
		t.Errorf("pixel (0,0) = %v, want white", got)
	}
}

func TestReadFrameDetectsNoChange(t *testing.T) {
	bus := &mos6502.Bus{}
	first, _ := ReadFrame(bus, nil)
	_, changed := ReadFrame(bus, first)
	if changed {
		t.Errorf("ReadFrame reported change against an identical prev frame")
	}
}
