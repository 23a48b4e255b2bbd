package card

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"net/url"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// QRSize is the raster resolution of the generated code. 400px keeps
// scan failure risk low on a ~300 DPI print.
const QRSize = 400

// VerifyURL builds the URL embedded in the QR code. Certificate numbers
// are restricted to URL-safe characters by convention; PathEscape is the
// only escaping applied.
func VerifyURL(origin, certificateNo string) string {
	return strings.TrimRight(origin, "/") + "/verify/" + url.PathEscape(certificateNo)
}

// GenerateQR encodes content at high error correction and rasterizes it
// with a one-module quiet zone on each side.
func GenerateQR(content string, size int) (image.Image, error) {
	code, err := encodeQR(content)
	if err != nil {
		return nil, err
	}
	return rasterize(code, size), nil
}

func encodeQR(content string) (barcode.Barcode, error) {
	code, err := qr.Encode(content, qr.H, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("%w: qr encode: %v", ErrAssetUnavailable, err)
	}
	return code, nil
}

// rasterize scales the module grid by an integer factor so modules stay
// sharp, centering it on a white canvas. The border left over is at
// least one module wide.
func rasterize(code barcode.Barcode, size int) image.Image {
	modules := code.Bounds().Dx()
	scale := size / (modules + 2)
	if scale < 1 {
		scale = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)

	offset := (size - scale*modules) / 2
	for my := 0; my < modules; my++ {
		for mx := 0; mx < modules; mx++ {
			if !isDark(code.At(mx, my)) {
				continue
			}
			x0 := offset + mx*scale
			y0 := offset + my*scale
			draw.Draw(out, image.Rect(x0, y0, x0+scale, y0+scale),
				image.Black, image.Point{}, draw.Src)
		}
	}
	return out
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return (r+g+b)/3 < 0x8000
}
