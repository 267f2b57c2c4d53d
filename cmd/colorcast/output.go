package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"go.afab.re/colorcast"
	"go.afab.re/colorcast/rgb565"
)

type output interface {
	io.Closer
	Draw(src colorcast.Source, pos image.Point, c colorful.Color) error
}

var outputs = map[string]struct {
	help string
	open func(arg string, f flags) (output, error)
}{
	"png": {"png:FILE, preview on a --width x --height RGB565 canvas", openPNG},
	"fb":  {"fb:/dev/fbN, 16 bpp Linux framebuffer", openFB},
	"lcd": {"lcd:/dev/ttyXX, 128x64 serial LCD, dark colors are drawn as dark pixels", openLCD},
}

func outputKinds() string {
	return strings.Join(slices.Sorted(maps.Keys(outputs)), ", ")
}

// openOutput opens an output of the form kind:arg.
func openOutput(dest string, f flags) (output, error) {
	kind, arg, ok := strings.Cut(dest, ":")
	if !ok || arg == "" {
		return nil, fmt.Errorf("output %q isn't of the form kind:arg", dest)
	}

	o, ok := outputs[kind]
	if !ok {
		return nil, fmt.Errorf("unknown output %q, expected one of %s", kind, outputKinds())
	}

	return o.open(arg, f)
}

func cast565(c colorful.Color) rgb565.Color {
	r, g, b := c.Clamped().RGB255()
	return rgb565.RGB(r, g, b)
}

type pngOutput struct {
	path string
	img  *rgb565.Image
}

func openPNG(path string, f flags) (output, error) {
	if f.width <= 0 || f.height <= 0 {
		return nil, fmt.Errorf("invalid png size %dx%d", f.width, f.height)
	}

	bg, err := parseColor(f.bg)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	img := rgb565.New(image.Rect(0, 0, f.width, f.height))
	img.Fill(cast565(bg))

	return &pngOutput{path: path, img: img}, nil
}

func (o *pngOutput) Draw(src colorcast.Source, pos image.Point, c colorful.Color) error {
	if err := colorcast.New(src, pos, cast565(c)).Draw(o.img); err != nil {
		return err
	}

	out, err := os.Create(o.path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, o.img); err != nil {
		return err
	}

	slog.Info("wrote preview", "path", o.path)
	return out.Close()
}

func (o *pngOutput) Close() error {
	return nil
}
