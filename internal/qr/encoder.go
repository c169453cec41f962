// Package qr renders share URLs as QR code images.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// moduleSize is the pixel width of one QR module. The encoder adds the
// standard 4-module quiet zone around the symbol.
const moduleSize = 10

// Encoder renders URLs as PNG QR codes with high error correction.
// The symbol version is chosen by the encoder to fit the payload, so
// long URLs produce larger codes rather than an error.
type Encoder struct{}

// Encode writes a PNG encoding of url to path.
func (Encoder) Encode(url, path string) error {
	q, err := qrcode.New(url, qrcode.High)
	if err != nil {
		return fmt.Errorf("encoding url: %w", err)
	}
	// A negative size renders each module at a fixed pixel scale
	// instead of fitting a fixed image size.
	if err := q.WriteFile(-moduleSize, path); err != nil {
		return fmt.Errorf("writing QR image: %w", err)
	}
	return nil
}
