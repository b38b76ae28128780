package main

import (
	"fmt"
	"image"
	"math/rand"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/qlova/snakevm/display"
	"github.com/qlova/snakevm/gamepad"
	"github.com/qlova/snakevm/internal/debugger"
	"github.com/qlova/snakevm/mos6502"
	"github.com/qlova/snakevm/rom"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "snake",
		Short: "A 6502 interpreter bundled with a playable snake ROM",
	}

	var debug bool
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the snake ROM in a graphical window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraphical(debug)
		},
	}
	runCmd.Flags().BoolVarP(&debug, "debug", "d", false, "show the register/disassembly side panel")
	rootCmd.RunE = runCmd.RunE

	var start uint16
	disassembleCmd := &cobra.Command{
		Use:   "disassemble",
		Short: "Print a disassembly of the bundled ROM",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisassemble(start)
		},
	}
	disassembleCmd.Flags().Uint16Var(&start, "start", 0x8000, "address to load and disassemble from")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Single-step the ROM in a headless terminal inspector",
		RunE: func(cmd *cobra.Command, args []string) error {
			return debugger.Run(rom.Snake, 0x8000)
		},
	}

	rootCmd.AddCommand(runCmd, disassembleCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDisassemble(start uint16) error {
	c := mos6502.NewCPU()
	if err := c.Load(rom.Snake, start); err != nil {
		return errors.Wrap(err, "loading rom")
	}
	c.Reset()

	end := start + uint16(len(rom.Snake)) - 1
	lines := c.Disassemble(start, end)
	for addr := start; addr <= end; addr++ {
		if line, ok := lines[addr]; ok {
			fmt.Println(line)
		}
	}
	return nil
}

// runGraphical opens a PixelGL window playing the bundled snake ROM. PixelGL
// requires its run loop to own the OS main thread, so the interpreter loop
// runs inside the function handed to pixelgl.Run.
func runGraphical(debug bool) error {
	c := mos6502.NewCPU()
	if err := c.Load(rom.Snake, 0x8000); err != nil {
		return errors.Wrap(err, "loading rom")
	}
	c.Reset()

	var runErr error
	pixelgl.Run(func() {
		win := display.NewWindow(debug)
		rng := rand.New(rand.NewSource(1))

		var lastFrame *image.RGBA
		runErr = c.RunWithCallback(func(c *mos6502.CPU) bool {
			if win.Closed() {
				return false
			}

			if r, ok := win.JustPressedRune(); ok {
				if key, ok := gamepad.FromRune(r); ok {
					gamepad.Inject(c.Bus(), key)
				}
			}
			gamepad.SeedRandom(c.Bus(), func() byte { return byte(1 + rng.Intn(15)) })

			frame, changed := display.ReadFrame(c.Bus(), lastFrame)
			if changed {
				lastFrame = frame
				if debug {
					win.SetRegisterText(fmt.Sprintf("A:%02x X:%02x Y:%02x SP:%02x PC:%04x", c.A, c.X, c.Y, c.SP, c.PC))
					win.SetDisassemblyText(c.Disassemble(c.PC, c.PC+2)[c.PC])
				}
				win.Render(frame)
			}
			return true
		})
	})
	return runErr
}
