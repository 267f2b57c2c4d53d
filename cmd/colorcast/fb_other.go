//go:build !linux

package main

import (
	"errors"
)

func openFB(string, flags) (output, error) {
	return nil, errors.ErrUnsupported
}
