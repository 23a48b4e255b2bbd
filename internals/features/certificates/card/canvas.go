package card

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// Canvas geometry: ID-1 card (85.6 x 53.98 mm) at ~300 DPI.
const (
	canvasW = 1012
	canvasH = 637
)

const (
	inkColor     = "#000000"
	accentColor  = "#3b4a9d"
	warningColor = "#dc2626"
)

// faceElement is one entry of a declarative face template. Both faces
// are a flat element list consumed by renderFace; no element carries
// layout logic of its own beyond drawing itself.
type faceElement interface {
	draw(dc *gg.Context) error
}

type textStyle struct {
	size  float64
	bold  bool
	color string
}

// textEl draws value with its baseline at y. center ignores x and
// centers on the canvas midline.
type textEl struct {
	value  string
	x, y   float64
	center bool
	style  textStyle
}

func (el textEl) draw(dc *gg.Context) error {
	face, err := fontFace(el.style.size, el.style.bold)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetHexColor(el.style.color)

	x := el.x
	if el.center {
		w, _ := dc.MeasureString(el.value)
		x = canvasW/2 - w/2
	}
	dc.DrawString(el.value, x, el.y)
	return nil
}

// ruleEl is a filled rectangle; used for the divider rules.
type ruleEl struct {
	x, y, w, h float64
	color      string
}

func (el ruleEl) draw(dc *gg.Context) error {
	dc.SetHexColor(el.color)
	dc.DrawRectangle(el.x, el.y, el.w, el.h)
	dc.Fill()
	return nil
}

// imageEl places an already-sized image. alpha < 1 renders it
// translucent (the watermark).
type imageEl struct {
	img   image.Image
	x, y  int
	alpha float64
}

func (el imageEl) draw(dc *gg.Context) error {
	img := el.img
	if el.alpha < 1 {
		img = withOpacity(img, el.alpha)
	}
	dc.DrawImage(img, el.x, el.y)
	return nil
}

// bannerEl is the back-face warning line: a centered prefix + domain
// pair with the domain underlined.
type bannerEl struct {
	prefix, domain string
	y              float64
	style          textStyle
}

func (el bannerEl) draw(dc *gg.Context) error {
	face, err := fontFace(el.style.size, el.style.bold)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetHexColor(el.style.color)

	prefixW, _ := dc.MeasureString(el.prefix)
	domainW, _ := dc.MeasureString(el.domain)
	total := prefixW + 5 + domainW

	x := canvasW/2 - total/2
	dc.DrawString(el.prefix, x, el.y)

	urlX := x + prefixW + 5
	dc.DrawString(el.domain, urlX, el.y)
	dc.DrawRectangle(urlX, el.y+2, domainW, 1)
	dc.Fill()
	return nil
}

// renderFace rasterizes one face template onto a white canvas.
func renderFace(els []faceElement) (image.Image, error) {
	dc := gg.NewContext(canvasW, canvasH)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	for _, el := range els {
		if err := el.draw(dc); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

// withOpacity returns img with its alpha scaled down uniformly.
func withOpacity(img image.Image, alpha float64) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	mask := image.NewUniform(color.Alpha{A: uint8(alpha * 255)})
	draw.DrawMask(out, out.Bounds(), img, b.Min, mask, image.Point{}, draw.Over)
	return out
}
