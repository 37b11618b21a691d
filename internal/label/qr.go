// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package label

import (
	"fmt"
	"math"

	"github.com/skip2/go-qrcode"
)

// Encoder renders content as a square scannable symbol of the given pixel
// size and returns it as PNG data.
type Encoder interface {
	Encode(content string, pixels int) ([]byte, error)
}

// PrintDPI is the resolution symbols are rasterised at.
const PrintDPI = 300

// Pixels returns the raster size for a symbol printed at side points.
func Pixels(side float64) int {
	return int(math.Ceil(side / 72 * PrintDPI))
}

// QREncoder encodes symbols as QR codes.
type QREncoder struct {
	// Level is the error recovery level.
	Level qrcode.RecoveryLevel

	// NoQuietZone drops the four-module border around the code.
	NoQuietZone bool
}

// NewQREncoder returns an encoder at the lowest recovery level, which keeps
// modules large on small labels.
func NewQREncoder() *QREncoder {
	return &QREncoder{Level: qrcode.Low}
}

// Encode implements Encoder.
func (e *QREncoder) Encode(content string, pixels int) ([]byte, error) {
	q, err := qrcode.New(content, e.Level)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", content, err)
	}
	q.DisableBorder = e.NoQuietZone
	png, err := q.PNG(pixels)
	if err != nil {
		return nil, fmt.Errorf("rendering %q: %w", content, err)
	}
	return png, nil
}
