package level

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ink      = mustHex("#333333")
	muted    = mustHex("#666666")
	white    = color.White
	black    = color.Black
	sky      = mustHex("#4facfe")
	cyan     = mustHex("#00f2fe")
	blush    = mustHex("#ff9a9e")
	candy    = mustHex("#fecfef")
	red      = mustHex("#ff6b6b")
	blue     = mustHex("#48dbfb")
	green    = mustHex("#1dd1a1")
	yellow   = mustHex("#feca57")
	orchid   = mustHex("#ff9ff3")
	royal    = mustHex("#54a0ff")
	orange   = mustHex("#ff9f43")
	slate    = mustHex("#c8d6e5")
	track    = mustHex("#dfe6e9")
	lime     = mustHex("#badc58")
	peach    = mustHex("#ffbe76")
	purple   = mustHex("#6c5ce7")
	lavender = mustHex("#a29bfe")
	rose     = mustHex("#fd79a8")
	salmon   = mustHex("#ff7675")
	amber    = mustHex("#fdcb6e")
	mint     = mustHex("#00b894")

	trail = color.NRGBA{R: 100, G: 200, B: 255, A: 128}
	ghost = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0x80}
)

// mustHex parses a "#rrggbb" palette entry.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
