package card

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"everify_backend/internals/features/certificates/model"
)

// StaticInfo carries the card text that comes from configuration, not
// from the record.
type StaticInfo struct {
	ContactPhone string
	ContactEmail string
	VerifyDomain string
}

const completionText = "This certifies that the above mentioned person has successfully completed the BV Safety Course. Refer to backside for details."

var disclaimerLines = []string{
	"This card does not relieve the operator from responsibilities related to the safe handling,",
	"operation, or reliability of the listed equipment.Only contracted parties can hold Bureau",
	"Veritas liable for errors/omissions related to this card. Bureau Veritas is not liable for any",
	"mistakes, negligence, judgement or fault committed by the person holding this card.",
	"The SAG license is the client's responsibility.",
}

// FormatDate renders dates the one way every card surface uses.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// frontElements lays out the front face: watermark, header block with
// logo and certificate identifiers, the holder photo, the bordered
// identity block and the centered footer.
func frontElements(rec *model.CertificateModel, logo, photo image.Image, static StaticInfo) []faceElement {
	watermark := imaging.Resize(logo, 525, 525, imaging.Lanczos)
	thumb := imaging.Resize(logo, 120, 120, imaging.Lanczos)
	portrait := imaging.Fill(photo, 160, 197, imaging.Center, imaging.Lanczos) // cover, not stretch

	return []faceElement{
		imageEl{img: watermark, x: (canvasW - 525) / 2, y: (canvasH - 525) / 2, alpha: 0.25},
		imageEl{img: thumb, x: 37, y: 24, alpha: 1},

		textEl{value: "Certificate No:", x: 186, y: 50, style: textStyle{size: 26, bold: true, color: inkColor}},
		textEl{value: rec.CertificateNo, x: 186, y: 95, style: textStyle{size: 34, bold: true, color: accentColor}},
		textEl{value: fmt.Sprintf("Ref.# %s", rec.ReferenceNo), x: 186, y: 125, style: textStyle{size: 18, color: inkColor}},
		textEl{value: fmt.Sprintf("Issued on: %s", FormatDate(rec.IssuedDate)), x: 186, y: 150, style: textStyle{size: 18, color: inkColor}},
		textEl{value: fmt.Sprintf("Valid until: %s", FormatDate(rec.ValidUntil)), x: 186, y: 170, style: textStyle{size: 18, color: inkColor}},

		imageEl{img: portrait, x: canvasW - 197, y: 24, alpha: 1},

		ruleEl{x: 37, y: 239, w: canvasW - 74, h: 3, color: inkColor},

		textEl{value: "Name:", x: 37, y: 275, style: textStyle{size: 28, bold: true, color: inkColor}},
		textEl{value: strings.ToUpper(rec.Name), x: 145, y: 275, style: textStyle{size: 28, bold: true, color: accentColor}},
		textEl{value: fmt.Sprintf("ID No: %s", rec.IDNo), x: 37, y: 310, style: textStyle{size: 24, bold: true, color: inkColor}},
		textEl{value: fmt.Sprintf("Company: %s", rec.Company), x: 37, y: 340, style: textStyle{size: 24, bold: true, color: inkColor}},
		textEl{value: fmt.Sprintf("Issuance No.: %s", rec.IssuanceNo), x: 37, y: 370, style: textStyle{size: 24, bold: true, color: inkColor}},

		ruleEl{x: 37, y: 387, w: canvasW - 74, h: 3, color: inkColor},

		textEl{value: completionText, y: 420, center: true, style: textStyle{size: 17, bold: true, color: inkColor}},

		ruleEl{x: 37, y: 430, w: canvasW - 74, h: 3, color: inkColor},

		textEl{value: static.ContactPhone, y: 465, center: true, style: textStyle{size: 16, color: inkColor}},
		textEl{value: static.ContactEmail, y: 490, center: true, style: textStyle{size: 16, color: inkColor}},
	}
}

// backElements lays out the back face: QR centered in the left half,
// certificate details on the right. Absent optional fields are skipped
// entirely; the following lines move up.
func backElements(rec *model.CertificateModel, qrImg image.Image, static StaticInfo) []faceElement {
	const qrDrawSize = 420
	qrScaled := imaging.Resize(qrImg, qrDrawSize, qrDrawSize, imaging.NearestNeighbor)

	els := []faceElement{
		imageEl{
			img:   qrScaled,
			x:     (canvasW/2 - qrDrawSize) / 2,
			y:     (canvasH - qrDrawSize) / 2,
			alpha: 1,
		},
	}

	rightX := float64(canvasW)/2 + 25
	y := 120.0

	els = append(els, textEl{value: "CERTIFICATE NO.:", x: rightX, y: y, style: textStyle{size: 14, color: inkColor}})
	y += 25
	els = append(els, textEl{value: rec.CertificateNo, x: rightX, y: y, style: textStyle{size: 22, bold: true, color: accentColor}})
	y += 40

	els = append(els, textEl{value: fmt.Sprintf("TYPE: %s", rec.Type), x: rightX, y: y, style: textStyle{size: 16, color: inkColor}})
	y += 30

	for _, opt := range []struct {
		label string
		value *string
	}{
		{"MODEL", rec.Model},
		{"TRAINER", rec.Trainer},
		{"LOCATION", rec.Location},
	} {
		if opt.value == nil {
			continue
		}
		els = append(els, textEl{
			value: fmt.Sprintf("%s: %s", opt.label, *opt.value),
			x:     rightX, y: y,
			style: textStyle{size: 16, color: inkColor},
		})
		y += 30
	}

	y += 30
	for _, line := range disclaimerLines {
		els = append(els, textEl{value: line, x: rightX, y: y, style: textStyle{size: 14, color: inkColor}})
		y += 20
	}

	els = append(els, bannerEl{
		prefix: "Scan QR code to verify this certificate at",
		domain: static.VerifyDomain,
		y:      canvasH - 20,
		style:  textStyle{size: 16, bold: true, color: warningColor},
	})

	return els
}
