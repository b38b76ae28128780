// Package display adapts the snake ROM's memory-mapped 32x32 framebuffer
// (0x0200-0x0600) into host-displayable pixels, and provides a PixelGL
// window that renders it alongside an optional debug panel.
package display

import (
	"image"
	"image/color"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/qlova/snakevm/mos6502"
)

const (
	frameBase  uint16 = 0x0200
	frameEnd   uint16 = 0x0600
	FrameWidth        = 32
	FrameHeight       = 32
)

// palette maps a framebuffer color index (as written by the ROM) to an RGBA
// color. Two indices alias to the same color, matching the 6-bit palette a
// real NES ROM of this era would have used; values outside 0-15 fall back to
// cyan, same as 8 and 15 do.
var palette = [16]color.RGBA{
	0:  colornames.Black,
	1:  colornames.White,
	2:  colornames.Gray,
	3:  colornames.Red,
	4:  colornames.Green,
	5:  colornames.Blue,
	6:  colornames.Magenta,
	7:  colornames.Yellow,
	8:  colornames.Cyan,
	9:  colornames.Gray,
	10: colornames.Red,
	11: colornames.Green,
	12: colornames.Blue,
	13: colornames.Magenta,
	14: colornames.Yellow,
	15: colornames.Cyan,
}

// Palette resolves a framebuffer color index to its RGBA color.
func Palette(index byte) color.RGBA {
	if int(index) >= len(palette) {
		return colornames.Cyan
	}
	return palette[index]
}

// ReadFrame copies the 32x32 framebuffer out of bus memory into an RGBA
// image, applying Palette to every cell. It reports whether any pixel
// differs from prev, so a caller can skip re-rendering an unchanged frame.
func ReadFrame(bus *mos6502.Bus, prev *image.RGBA) (frame *image.RGBA, changed bool) {
	frame = image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	addr := frameBase
	for y := 0; y < FrameHeight; y++ {
		for x := 0; x < FrameWidth; x++ {
			c := Palette(bus.Read8(addr))
			addr++
			frame.SetRGBA(x, FrameHeight-1-y, c)
			if prev == nil || prev.RGBAAt(x, FrameHeight-1-y) != c {
				changed = true
			}
		}
	}
	return frame, changed
}

// Window wraps a PixelGL window rendering the scaled game framebuffer, with
// an optional debug side panel showing CPU registers, disassembly, and
// controller state.
type Window struct {
	gameRgba  *image.RGBA
	debugRgba *image.RGBA

	win         *pixelgl.Window
	gameMatrix  pixel.Matrix
	debugMatrix pixel.Matrix

	debugAtlas          *text.Atlas
	debugRegText        *text.Text
	debugInstText       *text.Text
	debugControllerText *text.Text

	debug bool
}

const (
	scale      float64 = 12 // 32x32 is tiny; scale up generously for a host monitor.
	screenPosX float64 = 600
	screenPosY float64 = 400

	debugResW float64 = 420
)

// NewWindow opens a PixelGL window sized to FrameWidth x FrameHeight scaled
// by scale, with an extra debugResW-wide debug panel when debug is true.
func NewWindow(debug bool) *Window {
	gameW := float64(FrameWidth) * scale
	gameH := float64(FrameHeight) * scale

	gameRgba := image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	debugRgba := image.NewRGBA(image.Rect(0, 0, int(debugResW), int(gameH)))

	screenW := gameW
	if debug {
		screenW += debugResW
	}

	cfg := pixelgl.WindowConfig{
		Title:    "snake",
		Bounds:   pixel.R(0, 0, screenW, gameH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.Fatal("unable to open display window: ", err)
	}

	pic := pixel.PictureDataFromImage(gameRgba)
	gameMatrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	gameMatrix = gameMatrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	pic = pixel.PictureDataFromImage(debugRgba)
	debugMatrix := pixel.IM.Moved(pic.Bounds().Center().Add(pixel.V(gameW, 0)))

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	regText := text.New(pixel.V(gameW+8, gameH-40), atlas)
	instText := text.New(pixel.V(gameW+8, gameH-180), atlas)
	controllerText := text.New(pixel.V(gameW+8, gameH-280), atlas)

	return &Window{
		gameRgba:            gameRgba,
		debugRgba:           debugRgba,
		win:                 win,
		gameMatrix:          gameMatrix,
		debugMatrix:         debugMatrix,
		debugAtlas:          atlas,
		debugRegText:        regText,
		debugInstText:       instText,
		debugControllerText: controllerText,
		debug:               debug,
	}
}

// Closed reports whether the user has requested the window close.
func (w *Window) Closed() bool { return w.win.Closed() }

// JustPressedRune reports the first ASCII letter key the user pressed since
// the last poll, if any.
func (w *Window) JustPressedRune() (rune, bool) {
	for _, r := range "wasdWASD" {
		if w.win.JustPressed(pixelgl.Button(asciiToButton(r))) {
			return r, true
		}
	}
	return 0, false
}

func asciiToButton(r rune) pixelgl.Button {
	switch r {
	case 'w', 'W':
		return pixelgl.KeyW
	case 'a', 'A':
		return pixelgl.KeyA
	case 's', 'S':
		return pixelgl.KeyS
	case 'd', 'D':
		return pixelgl.KeyD
	default:
		return pixelgl.KeyUnknown
	}
}

// SetRegisterText updates the debug panel's register readout.
func (w *Window) SetRegisterText(s string) {
	w.debugRegText.Clear()
	w.debugRegText.WriteString(s)
}

// SetDisassemblyText updates the debug panel's disassembly readout.
func (w *Window) SetDisassemblyText(s string) {
	w.debugInstText.Clear()
	w.debugInstText.WriteString(s)
}

// SetControllerText updates the debug panel's controller status readout.
func (w *Window) SetControllerText(s string) {
	w.debugControllerText.Clear()
	w.debugControllerText.WriteString(s)
}

// Render draws frame scaled into the game pane, and the debug panel (if
// enabled), then presents.
func (w *Window) Render(frame *image.RGBA) {
	w.gameRgba = frame
	w.win.Clear(colornames.Black)

	spriteFromImage(w.gameRgba).Draw(w.win, w.gameMatrix)

	if w.debug {
		spriteFromImage(w.debugRgba).Draw(w.win, w.debugMatrix)
		w.debugRegText.Draw(w.win, pixel.IM)
		w.debugInstText.Draw(w.win, pixel.IM)
		w.debugControllerText.Draw(w.win, pixel.IM)
	}

	w.win.Update()
}

func spriteFromImage(img *image.RGBA) *pixel.Sprite {
	pic := pixel.PictureDataFromImage(img)
	return pixel.NewSprite(pic, pic.Bounds())
}
