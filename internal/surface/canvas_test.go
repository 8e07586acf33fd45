package surface

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squircles/internal/geom"
)

func TestCanvasDrawsPrimitives(t *testing.T) {
	c, err := NewCanvas(200, 100)
	require.NoError(t, err)

	c.Clear()
	red := color.RGBA{0xff, 0, 0, 0xff}
	c.FillCircle(50, 50, 20, red)
	c.FillRect(150, 10, 20, 20, color.Black)
	c.SetDash(4, 4)
	c.StrokeCircle(100, 50, 30, 2, color.Black)
	c.SetDash()
	c.StrokePolyline([]geom.Point{{X: 0, Y: 90}, {X: 200, Y: 90}}, 4, color.Black)
	c.FillSector(100, 50, 10, 0, 1.5, red)
	c.FillGradientCircle(30, 30, 10, geom.Point{X: 25, Y: 25}, color.White, red)
	c.Text("Level: 1", 10, 10, Font{Size: 20, Baseline: BaselineTop}, color.Black)

	img := c.Image()
	assert.Equal(t, 200, img.Bounds().Dx())

	r, g, b, _ := img.At(50, 50).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	br, bg, bb, _ := img.At(199, 0).RGBA()
	er, eg, eb, _ := Background.RGBA()
	assert.Equal(t, []uint32{er, eg, eb}, []uint32{br, bg, bb})

	out := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, c.SavePNG(out))
}

func TestRecorderFrames(t *testing.T) {
	r := NewRecorder()
	r.Clear()
	r.Text("a", 0, 0, Font{}, color.Black)
	r.FillCircle(1, 1, 1, color.Black)
	assert.Equal(t, []string{"a"}, r.Texts())
	assert.Equal(t, 1, r.Count("fill-circle"))

	r.Clear()
	assert.Empty(t, r.Ops())
	assert.Equal(t, 2, r.Frames())

	r.SetDash(10, 10)
	assert.True(t, r.Dashed())
	r.SetDash()
	assert.False(t, r.Dashed())
}
