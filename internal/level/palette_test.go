package level

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteParsesHex(t *testing.T) {
	r, g, b := red.RGB255()
	assert.Equal(t, []uint8{0xff, 0x6b, 0x6b}, []uint8{r, g, b})

	n := color.NRGBAModel.Convert(mint).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0xb8, B: 0x94, A: 0xff}, n)

	assert.Panics(t, func() { mustHex("not-a-colour") })
}
