package card

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Physical card size, ID-1.
const (
	CardWidthMM  = 85.6
	CardHeightMM = 53.98
)

const jpegQuality = 95

// Document assembles the two faces into a two-page PDF, each page
// exactly one card, front first. Faces are already rasterized so lossy
// JPEG at high quality keeps the file small.
func Document(card *RenderedCard) ([]byte, error) {
	frontJPG, err := encodeJPEG(card.Front)
	if err != nil {
		return nil, err
	}
	backJPG, err := encodeJPEG(card.Back)
	if err != nil {
		return nil, err
	}

	// gofpdf takes the portrait reference size and flips it for "L"
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: CardHeightMM, Ht: CardWidthMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	addFace(pdf, "front", frontJPG)
	addFace(pdf, "back", backJPG)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func addFace(pdf *gofpdf.Fpdf, name string, jpg []byte) {
	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(jpg))
	pdf.ImageOptions(name, 0, 0, CardWidthMM, CardHeightMM, false, opts, 0, "")
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("jpeg encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename derives the deterministic download name. Whitespace runs in
// the holder name collapse to single underscores to stay
// filesystem-safe.
func Filename(certificateNo, name string) string {
	return fmt.Sprintf("Certificate_%s_%s.pdf", certificateNo, strings.Join(strings.Fields(name), "_"))
}
