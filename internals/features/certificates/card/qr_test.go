package card

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyURL(t *testing.T) {
	require.Equal(t,
		"https://example.com/verify/148-2026-3212931-EN",
		VerifyURL("https://example.com", "148-2026-3212931-EN"))

	// trailing slash on the origin must not double up
	require.Equal(t,
		"https://example.com/verify/ABC-1",
		VerifyURL("https://example.com/", "ABC-1"))
}

func TestEncodeQR_ContentRoundTrip(t *testing.T) {
	url := VerifyURL("https://e-certificates.bureauveritas.com", "148-2026-3212931-EN")
	code, err := encodeQR(url)
	require.NoError(t, err)
	require.Equal(t, url, code.Content())
}

func TestGenerateQR_SizeAndQuietZone(t *testing.T) {
	img, err := GenerateQR("https://example.com/verify/X-1", QRSize)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, QRSize, QRSize), img.Bounds())

	// the quiet zone keeps every edge pixel white
	for _, p := range []image.Point{
		{0, 0}, {QRSize - 1, 0}, {0, QRSize - 1}, {QRSize - 1, QRSize - 1},
		{QRSize / 2, 0}, {0, QRSize / 2},
	} {
		require.False(t, isDark(img.At(p.X, p.Y)), "expected white at %v", p)
	}
}

func TestGenerateQR_Deterministic(t *testing.T) {
	a, err := GenerateQR("https://example.com/verify/X-1", QRSize)
	require.NoError(t, err)
	b, err := GenerateQR("https://example.com/verify/X-1", QRSize)
	require.NoError(t, err)
	requireSameImage(t, a, b)
}

func requireSameImage(t *testing.T, a, b image.Image) {
	t.Helper()
	require.Equal(t, a.Bounds(), b.Bounds())
	for y := a.Bounds().Min.Y; y < a.Bounds().Max.Y; y++ {
		for x := a.Bounds().Min.X; x < a.Bounds().Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				t.Fatalf("pixel mismatch at (%d,%d)", x, y)
			}
		}
	}
}
