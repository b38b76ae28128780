// Package rom bundles the snake game ROM: the small 6502 program the
// interpreter exists to run. The bytes are the well-known public-domain
// "easy6502" snake listing, embedded as hex text and decoded at package
// init rather than shipped as a raw binary so the source tree stays
// diffable.
package rom

import (
	_ "embed"
	"encoding/hex"
	"strings"
)

//go:embed snake.hex
var snakeHex string

// Snake is the assembled snake game program. Its JSR/JMP targets are
// absolute addresses in $0600-$07FF, so it runs as written only when loaded
// at 0x0600.
var Snake = mustDecode(snakeHex)

func mustDecode(hexText string) []byte {
	fields := strings.Fields(hexText)
	b, err := hex.DecodeString(strings.Join(fields, ""))
	if err != nil {
		panic("rom: embedded snake.hex is not valid hex: " + err.Error())
	}
	return b
}
