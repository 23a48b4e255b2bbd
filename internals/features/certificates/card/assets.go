package card

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

//go:embed assets/logo.png
var logoPNG []byte

var (
	logoOnce sync.Once
	logoImg  image.Image
	logoErr  error
)

// Logo decodes the embedded issuer logo once. A broken embed is an
// AssetUnavailable like any other missing render input.
func Logo() (image.Image, error) {
	logoOnce.Do(func() {
		logoImg, logoErr = png.Decode(bytes.NewReader(logoPNG))
	})
	if logoErr != nil {
		return nil, fmt.Errorf("%w: logo asset: %v", ErrAssetUnavailable, logoErr)
	}
	return logoImg, nil
}

// Single fixed sans-serif family for every card surface: the Go fonts.
// There is no dynamic text fitting; layout sizes assume short data.
var (
	fontOnce    sync.Once
	regularFont *sfnt.Font
	boldFont    *sfnt.Font
	fontErr     error
)

func fontFace(size float64, bold bool) (font.Face, error) {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("%w: font: %v", ErrAssetUnavailable, fontErr)
	}

	f := regularFont
	if bold {
		f = boldFont
	}
	// DPI 72 makes Size a pixel size, matching the canvas coordinates.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font face: %v", ErrAssetUnavailable, err)
	}
	return face, nil
}
