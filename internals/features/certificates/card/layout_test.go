package card

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"everify_backend/internals/features/certificates/model"
)

var testStatic = StaticInfo{
	ContactPhone: "For any queries: Tel. 00966 13 99439017",
	ContactEmail: "abdullah.shehri@bureauveritas.com",
	VerifyDomain: "https://e-certificates.bureauveritas.com",
}

func testRecord() *model.CertificateModel {
	return &model.CertificateModel{
		CertificateNo: "148-2026-3212931-EN",
		ReferenceNo:   "PRIVATE-21642",
		Name:          "Atta Ullah Khan",
		IDNo:          "2626862110",
		Company:       "Private",
		IssuanceNo:    "1",
		IssuedDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		ValidUntil:    time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC),
		Type:          "RIGGER LEVEL III",
		ImageURL:      "https://img.example.com/p.jpg",
	}
}

func strPtr(s string) *string { return &s }

func textValues(els []faceElement) []string {
	var out []string
	for _, el := range els {
		if t, ok := el.(textEl); ok {
			out = append(out, t.value)
		}
	}
	return out
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "05/03/2026", FormatDate(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "10/01/2026", FormatDate(time.Date(2026, 1, 10, 12, 30, 0, 0, time.UTC)))
}

func TestFrontElements(t *testing.T) {
	rec := testRecord()
	logo := image.NewRGBA(image.Rect(0, 0, 64, 64))
	photo := image.NewRGBA(image.Rect(0, 0, 300, 500))

	els := frontElements(rec, logo, photo, testStatic)
	values := textValues(els)

	require.Contains(t, values, "Certificate No:")
	require.Contains(t, values, "148-2026-3212931-EN")
	require.Contains(t, values, "Ref.# PRIVATE-21642")
	require.Contains(t, values, "Issued on: 10/01/2026")
	require.Contains(t, values, "Valid until: 10/01/2027")
	require.Contains(t, values, "ATTA ULLAH KHAN") // holder name uppercased
	require.Contains(t, values, "ID No: 2626862110")
	require.Contains(t, values, "Company: Private")
	require.Contains(t, values, "Issuance No.: 1")
	require.Contains(t, values, testStatic.ContactPhone)
	require.Contains(t, values, testStatic.ContactEmail)

	// watermark first so everything else draws over it
	wm, ok := els[0].(imageEl)
	require.True(t, ok)
	require.Equal(t, 0.25, wm.alpha)
	require.Equal(t, 525, wm.img.Bounds().Dx())

	// photo frame has cover semantics: exact portrait size, no stretch
	var photoEl imageEl
	for _, el := range els[1:] {
		if im, ok := el.(imageEl); ok && im.x == canvasW-197 {
			photoEl = im
		}
	}
	require.Equal(t, 160, photoEl.img.Bounds().Dx())
	require.Equal(t, 197, photoEl.img.Bounds().Dy())

	// three divider rules
	rules := 0
	for _, el := range els {
		if _, ok := el.(ruleEl); ok {
			rules++
		}
	}
	require.Equal(t, 3, rules)
}

func TestBackElements_OptionalFieldsOmitted(t *testing.T) {
	rec := testRecord()
	qrImg := image.NewRGBA(image.Rect(0, 0, QRSize, QRSize))

	els := backElements(rec, qrImg, testStatic)
	for _, v := range textValues(els) {
		require.NotContains(t, v, "MODEL:")
		require.NotContains(t, v, "TRAINER:")
		require.NotContains(t, v, "LOCATION:")
		require.NotContains(t, v, "N/A")
	}

	// without optional lines the disclaimer starts right after TYPE
	firstDisclaimerY := findTextY(t, els, disclaimerLines[0])
	require.Equal(t, 245.0, firstDisclaimerY)
}

func TestBackElements_OptionalFieldsPresent(t *testing.T) {
	rec := testRecord()
	rec.Model = strPtr("Grove GMK 5250L")
	rec.Trainer = strPtr("J. Smith")
	rec.Location = strPtr("Dammam")
	qrImg := image.NewRGBA(image.Rect(0, 0, QRSize, QRSize))

	els := backElements(rec, qrImg, testStatic)
	values := textValues(els)

	require.Contains(t, values, "MODEL: Grove GMK 5250L")
	require.Contains(t, values, "TRAINER: J. Smith")
	require.Contains(t, values, "LOCATION: Dammam")

	// three optional lines push the disclaimer down by 90px
	firstDisclaimerY := findTextY(t, els, disclaimerLines[0])
	require.Equal(t, 335.0, firstDisclaimerY)
}

func TestBackElements_QRPlacement(t *testing.T) {
	els := backElements(testRecord(), image.NewRGBA(image.Rect(0, 0, QRSize, QRSize)), testStatic)

	qrEl, ok := els[0].(imageEl)
	require.True(t, ok)
	require.Equal(t, 420, qrEl.img.Bounds().Dx())
	// centered within the left half
	require.Equal(t, (canvasW/2-420)/2, qrEl.x)
	require.Equal(t, (canvasH-420)/2, qrEl.y)

	// warning banner closes the face
	banner, ok := els[len(els)-1].(bannerEl)
	require.True(t, ok)
	require.Equal(t, testStatic.VerifyDomain, banner.domain)
	require.Equal(t, warningColor, banner.style.color)
}

func findTextY(t *testing.T, els []faceElement, value string) float64 {
	t.Helper()
	for _, el := range els {
		if txt, ok := el.(textEl); ok && txt.value == value {
			return txt.y
		}
	}
	t.Fatalf("text %q not found", value)
	return 0
}
