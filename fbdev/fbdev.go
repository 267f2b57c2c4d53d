//go:build linux

// Package fbdev draws to Linux framebuffer devices (/dev/fbN).
package fbdev

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/unix"

	"go.afab.re/colorcast/rgb565"
)

// ErrUnsupportedDepth is returned by Image for framebuffers that aren't 16 bits per pixel.
var ErrUnsupportedDepth = errors.New("unsupported framebuffer depth")

// linux/fb.h
const (
	_FBIOGET_VSCREENINFO = 0x4600
	_FBIOGET_FSCREENINFO = 0x4602
)

type bitfield struct {
	offset   uint32
	length   uint32
	msbRight uint32
}

// struct fb_var_screeninfo
type varScreenInfo struct {
	xres         uint32
	yres         uint32
	xresVirtual  uint32
	yresVirtual  uint32
	xoffset      uint32
	yoffset      uint32
	bitsPerPixel uint32
	grayscale    uint32
	red          bitfield
	green        bitfield
	blue         bitfield
	transp       bitfield
	nonstd       uint32
	activate     uint32
	height       uint32
	width        uint32
	accelFlags   uint32
	pixclock     uint32
	leftMargin   uint32
	rightMargin  uint32
	upperMargin  uint32
	lowerMargin  uint32
	hsyncLen     uint32
	vsyncLen     uint32
	sync         uint32
	vmode        uint32
	rotate       uint32
	colorspace   uint32
	_            [4]uint32
}

// struct fb_fix_screeninfo. unsigned long is the size of a pointer on Linux.
type fixScreenInfo struct {
	id           [16]byte
	smemStart    uintptr
	smemLen      uint32
	typ          uint32
	typeAux      uint32
	visual       uint32
	xpanstep     uint16
	ypanstep     uint16
	ywrapstep    uint16
	lineLength   uint32
	mmioStart    uintptr
	mmioLen      uint32
	accel        uint32
	capabilities uint16
	_            [2]uint16
}

// Info describes the visible area of a framebuffer.
type Info struct {
	// Driver name.
	ID string

	Width, Height int
	BitsPerPixel  int
	// LineLength is the number of bytes between vertically adjacent pixels.
	LineLength int
}

// Device is an open framebuffer, mapped in memory.
type Device struct {
	fd   int
	info Info

	// The whole mapping, and the visible part of it.
	mapping []byte
	visible []byte
}

func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	d, err := open(fd)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

func open(fd int) (*Device, error) {
	var vinfo varScreenInfo
	if err := ioctl(fd, _FBIOGET_VSCREENINFO, unsafe.Pointer(&vinfo)); err != nil {
		return nil, fmt.Errorf("FBIOGET_VSCREENINFO: %w", err)
	}

	var finfo fixScreenInfo
	if err := ioctl(fd, _FBIOGET_FSCREENINFO, unsafe.Pointer(&finfo)); err != nil {
		return nil, fmt.Errorf("FBIOGET_FSCREENINFO: %w", err)
	}

	info := Info{
		ID:           unix.ByteSliceToString(finfo.id[:]),
		Width:        int(vinfo.xres),
		Height:       int(vinfo.yres),
		BitsPerPixel: int(vinfo.bitsPerPixel),
		LineLength:   int(finfo.lineLength),
	}

	// The visible area starts at the current pan offset.
	offset := int(vinfo.yoffset)*info.LineLength + int(vinfo.xoffset)*info.BitsPerPixel/8

	mapping, err := unix.Mmap(fd, 0, offset+info.Height*info.LineLength, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}

	return &Device{
		fd:      fd,
		info:    info,
		mapping: mapping,
		visible: mapping[offset:],
	}, nil
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func (d *Device) Info() Info {
	return d.info
}

// Image returns the framebuffer memory as an image.
// Drawing to it is immediately visible, and it must not be used after Close.
func (d *Device) Image() (*rgb565.Image, error) {
	if d.info.BitsPerPixel != 16 {
		return nil, fmt.Errorf("%d bpp: %w", d.info.BitsPerPixel, ErrUnsupportedDepth)
	}

	return rgb565.NewFrom(d.visible, d.info.LineLength, image.Rect(0, 0, d.info.Width, d.info.Height)), nil
}

func (d *Device) Close() error {
	err := unix.Munmap(d.mapping)
	if cerr := unix.Close(d.fd); err == nil {
		err = cerr
	}
	return err
}
