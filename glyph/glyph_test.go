package glyph

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"go.afab.re/colorcast"
	"go.afab.re/colorcast/mock"
)

func black(t *testing.T, src colorcast.Source) int {
	t.Helper()

	n := 0
	sz := src.Size()
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			if on, _ := src.Pixel(image.Pt(x, y)); on {
				n++
			}
		}
	}
	return n
}

func TestRenderBasicFont(t *testing.T) {
	img := Render(nil, "Hi")

	assert.Equal(t, image.Point{}, img.Bounds().Min)
	// 13px line, 7px advance per character.
	assert.Equal(t, 13, img.Size().Y)
	assert.GreaterOrEqual(t, img.Size().X, 13)
	assert.LessOrEqual(t, img.Size().X, 14)
	assert.Positive(t, black(t, img))
}

func TestRenderEmpty(t *testing.T) {
	img := Render(basicfont.Face7x13, "")

	assert.Equal(t, 0, img.Size().X)
	assert.Equal(t, 0, black(t, img))
}

func TestRenderSpace(t *testing.T) {
	img := Render(nil, "  ")

	assert.Equal(t, 0, black(t, img))
}

func TestRenderOpentype(t *testing.T) {
	face, err := Face(goregular.TTF, 12, 72)
	require.NoError(t, err)
	defer face.Close()

	img := Render(face, "colorcast")
	assert.Positive(t, img.Size().X)
	assert.Positive(t, img.Size().Y)
	assert.Positive(t, black(t, img))
}

func TestFaceInvalid(t *testing.T) {
	_, err := Face([]byte("not a font"), 12, 72)
	assert.Error(t, err)
}

func TestRenderDraw(t *testing.T) {
	img := Render(nil, "x")

	display := mock.New[bool](img.Size())
	require.NoError(t, colorcast.New(img, image.Point{}, true).Draw(display))
	assert.Len(t, display.Drawn(), black(t, img))
}
