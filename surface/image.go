package surface

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image decodes the file with the image package rather than handing it to
// gofpdf directly. A corrupt file then fails here, before it can leave an
// error on the document.
func (p *PDF) Image(path string, x, y, w, h float64) error {
	pl, ok := p.images[path]
	if !ok {
		var err error
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			pl, err = p.importDrawing(path)
		} else {
			pl, err = p.registerFile(path)
		}
		if err != nil {
			return err
		}
		p.images[path] = pl
	}
	p.place(pl, x, y, w, h)
	return nil
}

func (p *PDF) registerFile(path string) (placed, error) {
	f, err := os.Open(path)
	if err != nil {
		return placed{}, fmt.Errorf("surface: opening image: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return placed{}, fmt.Errorf("surface: decoding %s: %w", filepath.Base(path), err)
	}
	// Photos without transparency are embedded as JPEG.
	return p.registerRaster(path, img, format == "jpeg" || opaque(img))
}

// registerRaster downscales img if needed, encodes it and registers it with
// the document under name.
func (p *PDF) registerRaster(name string, img image.Image, asJPEG bool) (placed, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return placed{}, fmt.Errorf("surface: image %s is empty", name)
	}
	img = Downscale(img, p.maxDim)

	var buf bytes.Buffer
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	if asJPEG {
		opts.ImageType = "JPG"
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			return placed{}, fmt.Errorf("surface: encoding %s: %w", name, err)
		}
	} else if err := png.Encode(&buf, img); err != nil {
		return placed{}, fmt.Errorf("surface: encoding %s: %w", name, err)
	}

	info := p.pdf.RegisterImageOptionsReader(name, opts, &buf)
	if p.pdf.Err() || info == nil {
		err := p.pdf.Error()
		p.pdf.ClearError()
		return placed{}, fmt.Errorf("surface: registering %s: %w", name, err)
	}
	return placed{name: name, w: float64(b.Dx()), h: float64(b.Dy())}, nil
}

// importDrawing imports page 1 of a PDF as a template. gofpdi panics on
// files it cannot parse; that is turned into an error.
func (p *PDF) importDrawing(path string) (pl placed, err error) {
	if _, err := os.Stat(path); err != nil {
		return placed{}, fmt.Errorf("surface: opening drawing: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			pl, err = placed{}, fmt.Errorf("surface: importing %s: %v", filepath.Base(path), r)
		}
	}()
	tpl := p.imp.ImportPage(p.pdf, path, 1, "/MediaBox")
	if p.pdf.Err() {
		err := p.pdf.Error()
		p.pdf.ClearError()
		return placed{}, fmt.Errorf("surface: importing %s: %w", filepath.Base(path), err)
	}
	w, h := PageWidth, PageHeight
	if dims, ok := p.imp.GetPageSizes()[1]; ok {
		if mb, ok := dims["/MediaBox"]; ok && mb["w"] > 0 && mb["h"] > 0 {
			w, h = mb["w"], mb["h"]
		}
	}
	return placed{name: path, w: w, h: h, vector: true, tpl: tpl}, nil
}

// Downscale returns img shrunk with Catmull-Rom so its longer side is at
// most max pixels. Smaller images and max <= 0 return img unchanged.
func Downscale(img image.Image, max int) image.Image {
	b := img.Bounds()
	long := b.Dx()
	if b.Dy() > long {
		long = b.Dy()
	}
	if max <= 0 || long <= max {
		return img
	}
	scale := float64(max) / float64(long)
	w := int(float64(b.Dx())*scale + 0.5)
	h := int(float64(b.Dy())*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
