// Package qrcode renders credential payloads as QR code PNGs.
package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// Generator produces PNG encoded QR codes. Output is deterministic for the
// same text and size.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Render encodes text into a size x size pixel PNG at medium error
// correction. Size must be positive.
func (g *Generator) Render(text string, size int) ([]byte, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("cannot render empty text")
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid image size: %d", size)
	}

	png, err := qr.Encode(text, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr image: %w", err)
	}

	return png, nil
}
