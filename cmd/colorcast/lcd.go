package main

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"go.bug.st/serial"

	"go.afab.re/colorcast"
	"go.afab.re/colorcast/lcd"
)

type lcdOutput struct {
	port    serial.Port
	display *lcd.Display
}

func openLCD(dev string, _ flags) (output, error) {
	port, err := serial.Open(dev, &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", dev, err)
	}

	if err := lcd.Init(port); err != nil {
		port.Close()
		return nil, err
	}

	return &lcdOutput{port: port, display: lcd.New()}, nil
}

// dark colors are drawn as dark pixels, light colors erase.
func dark(c colorful.Color) bool {
	l, _, _ := c.Lab()
	return l < 0.5
}

func (o *lcdOutput) Draw(src colorcast.Source, pos image.Point, c colorful.Color) error {
	if err := colorcast.New(src, pos, dark(c)).Draw(o.display); err != nil {
		return err
	}
	return o.display.Flush(o.port)
}

func (o *lcdOutput) Close() error {
	return o.port.Close()
}
