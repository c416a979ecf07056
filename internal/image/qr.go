package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// QR badge dimensions on the composited image.
const (
	QRBadgeSize   = 200
	QRBadgeMargin = 40
)

// QRPNG returns PNG bytes of a QR code for the given text.
func QRPNG(text string, size int) ([]byte, error) {
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return b, nil
}

// QRImage returns a decoded QR code for further composition.
func QRImage(text string, size int) (image.Image, error) {
	b, err := QRPNG(text, size)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode qr png: %w", err)
	}
	return img, nil
}

// OverlayQR pastes a QR badge for text at the template's bottom-right corner,
// inset by QRBadgeMargin. Like any other paste, it clips at the edges.
func OverlayQR(template *image.NRGBA, text string) (*image.NRGBA, error) {
	qr, err := QRImage(text, QRBadgeSize)
	if err != nil {
		return nil, err
	}
	b := template.Bounds()
	pt := image.Pt(b.Max.X-QRBadgeMargin-QRBadgeSize, b.Max.Y-QRBadgeMargin-QRBadgeSize)
	return imaging.Overlay(template, qr, pt, 1.0), nil
}
