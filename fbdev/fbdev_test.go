//go:build linux

package fbdev

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The ioctls copy these structs whole, they have to match the kernel's.
func TestStructSizes(t *testing.T) {
	assert.Equal(t, uintptr(160), unsafe.Sizeof(varScreenInfo{}))

	switch unsafe.Sizeof(uintptr(0)) {
	case 8:
		assert.Equal(t, uintptr(80), unsafe.Sizeof(fixScreenInfo{}))
		assert.Equal(t, uintptr(48), unsafe.Offsetof(fixScreenInfo{}.lineLength))
	case 4:
		assert.Equal(t, uintptr(68), unsafe.Sizeof(fixScreenInfo{}))
		assert.Equal(t, uintptr(44), unsafe.Offsetof(fixScreenInfo{}.lineLength))
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "fb0"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenNotFramebuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fb0")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestImageDepth(t *testing.T) {
	d := &Device{info: Info{Width: 2, Height: 2, BitsPerPixel: 32, LineLength: 8}}

	_, err := d.Image()
	assert.ErrorIs(t, err, ErrUnsupportedDepth)

	d = &Device{
		info:    Info{Width: 2, Height: 2, BitsPerPixel: 16, LineLength: 8},
		visible: make([]byte, 16),
	}
	img, err := d.Image()
	require.NoError(t, err)
	assert.Equal(t, 8, img.Stride)
	assert.Equal(t, 2, img.Bounds().Dx())
}
