package main

import (
	"image"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"

	"go.afab.re/colorcast"
	"go.afab.re/colorcast/fbdev"
)

type fbOutput struct {
	dev *fbdev.Device
}

func openFB(path string, _ flags) (output, error) {
	dev, err := fbdev.Open(path)
	if err != nil {
		return nil, err
	}

	info := dev.Info()
	slog.Debug("framebuffer", "id", info.ID, "width", info.Width, "height", info.Height, "bpp", info.BitsPerPixel)

	return &fbOutput{dev: dev}, nil
}

func (o *fbOutput) Draw(src colorcast.Source, pos image.Point, c colorful.Color) error {
	fb, err := o.dev.Image()
	if err != nil {
		return err
	}
	return colorcast.New(src, pos, cast565(c)).Draw(fb)
}

func (o *fbOutput) Close() error {
	return o.dev.Close()
}
