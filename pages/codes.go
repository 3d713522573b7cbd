package pages

import (
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	pdf417 "github.com/ruudk/golang-pdf417"

	"github.com/lvillar/hausdoc/surface"
)

// qrPixels is the raster size of a generated QR code before it is placed.
const qrPixels = 240

// QRImage encodes data as a QR code with medium error correction, scaled to
// a square raster.
func QRImage(data string) (image.Image, error) {
	code, err := qr.Encode(data, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("pages: encoding QR code: %w", err)
	}
	scaled, err := barcode.Scale(code, qrPixels, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("pages: scaling QR code: %w", err)
	}
	return scaled, nil
}

// PDF417Image encodes data as a PDF417 symbol. The encoder panics on input
// it cannot represent; that is reported as an error.
func PDF417Image(data string) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("pages: encoding PDF417: %v", r)
		}
	}()
	if data == "" {
		return nil, fmt.Errorf("pages: encoding PDF417: empty data")
	}
	code := pdf417.Encode(data, 4, 2)
	if code == nil || code.Bounds().Empty() {
		return nil, fmt.Errorf("pages: encoding PDF417: empty symbol")
	}
	return code, nil
}

// QRCode places a size x size QR code for target at (x, y) with a centered
// label below it. If the code cannot be produced the target is printed as
// text instead.
func (e *Env) QRCode(x, y, size float64, target, label string) {
	p := e.Palette
	img, err := QRImage(target)
	if err == nil {
		err = e.S.Raster("qr:"+target, img, x, y, size, size)
	}
	if err != nil {
		e.logf("QR code for %s: %v", target, err)
		e.S.Text(target, x, y, surface.TextStyle{Size: 7, Color: p.Text, Width: size})
		return
	}
	e.S.Text(label, x, y+size+5, surface.TextStyle{Size: 8, Color: p.TextMuted, Width: size, Align: surface.AlignCenter})
}

// ReferenceCode places a PDF417 symbol carrying ref on a white plate of
// w x h, falling back to ref as text.
func (e *Env) ReferenceCode(x, y, w, h float64, ref string) {
	e.S.RoundedRect(x-6, y-6, w+12, h+12, 4, surface.Fill(e.Palette.White))
	img, err := PDF417Image(ref)
	if err == nil {
		err = e.S.Raster("pdf417:"+ref, img, x, y, w, h)
	}
	if err != nil {
		e.logf("reference code: %v", err)
		e.S.Text(ref, x, y+h/2-5, surface.TextStyle{Size: 8, Color: e.Palette.Primary, Width: w, Align: surface.AlignCenter})
	}
}
