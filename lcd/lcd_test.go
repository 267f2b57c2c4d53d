package lcd

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.afab.re/colorcast"
	"go.afab.re/colorcast/bitmap"
)

func init() {
	commandDelay = 0
}

func TestFrame(t *testing.T) {
	d := New()
	d.fb.SetBlack(0, 0, true)
	d.fb.SetBlack(5, 7, true)
	d.fb.SetBlack(127, 8, true)
	d.fb.SetBlack(3, 63, true)

	frame := d.Frame()
	require.Len(t, frame, 1024)

	assert.Equal(t, byte(0x01), frame[0])
	assert.Equal(t, byte(0x80), frame[5])
	assert.Equal(t, byte(0x01), frame[128+127])
	assert.Equal(t, byte(0x80), frame[7*128+3])

	set := 0
	for _, b := range frame {
		if b != 0 {
			set++
		}
	}
	assert.Equal(t, 4, set)
}

func TestDrawClips(t *testing.T) {
	d := New()

	raw := bitmap.New([]byte{0xFF, 0xFF}, 8, bitmap.MSBFirst)
	img := colorcast.New(raw, image.Pt(124, 63), true)
	require.NoError(t, img.Draw(d))

	for x := 124; x < 128; x++ {
		assert.True(t, d.Image().BlackAt(x, 63), "x %d", x)
	}

	d.Clear()
	assert.Equal(t, make([]byte, 1024), d.Frame())
}

func TestDrawLight(t *testing.T) {
	d := New()
	raw := bitmap.New([]byte{0xFF}, 8, bitmap.MSBFirst)

	require.NoError(t, colorcast.New(raw, image.Point{}, true).Draw(d))
	// Casting to light erases.
	require.NoError(t, colorcast.New(raw, image.Point{}, false).Translate(image.Pt(4, 0)).Draw(d))

	assert.True(t, d.Image().BlackAt(3, 0))
	assert.False(t, d.Image().BlackAt(4, 0))
}

func TestFlush(t *testing.T) {
	d := New()
	// Mark the first column of each page with its index.
	for page := 0; page < Height/8; page++ {
		for bit := 0; bit < 8; bit++ {
			if page&(1<<bit) != 0 {
				d.fb.SetBlack(0, page*8+bit, true)
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, d.Flush(&buf))

	out := buf.Bytes()
	require.Len(t, out, 2+1024)
	assert.Equal(t, []byte{0x1B, 0x47}, out[:2])

	frame := d.Frame()
	var want []byte
	for i := 0; i < len(frame); i += 128 {
		want = append(want, frame[i:i+64]...)
	}
	for i := 64; i < len(frame); i += 128 {
		want = append(want, frame[i:i+64]...)
	}
	assert.Equal(t, want, out[2:])

	// Page starts are even blocks, so they come first in page order.
	for page := 0; page < 8; page++ {
		assert.Equal(t, byte(page), out[2+page*64])
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(&buf))

	assert.Equal(t, []byte{0x1B, 0x40, 0x0B, 0x0C}, buf.Bytes())
}

// oneByteWriter accepts a single byte per write.
type oneByteWriter struct {
	bytes.Buffer
}

func (w *oneByteWriter) Write(b []byte) (int, error) {
	return w.Buffer.Write(b[:min(len(b), 1)])
}

func TestShortWrites(t *testing.T) {
	d := New()
	d.fb.SetBlack(1, 1, true)

	var w oneByteWriter
	require.NoError(t, d.Flush(&w))
	assert.Equal(t, 2+1024, w.Len())
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestWriteError(t *testing.T) {
	errUnplugged := errors.New("unplugged")

	assert.ErrorIs(t, New().Flush(failWriter{errUnplugged}), errUnplugged)
	assert.ErrorIs(t, Init(failWriter{errUnplugged}), errUnplugged)
}
