package card

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodedPhoto(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 12, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 12; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func TestHTTPImageFetcher_JPEG(t *testing.T) {
	payload := encodedPhoto(t, func(b *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(b, img, nil)
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	img, err := NewHTTPImageFetcher().Fetch(context.Background(), srv.URL+"/p.jpg")
	require.NoError(t, err)
	require.Equal(t, 12, img.Bounds().Dx())
}

func TestHTTPImageFetcher_NotFoundFailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewHTTPImageFetcher().Fetch(context.Background(), srv.URL+"/missing.jpg")
	require.True(t, errors.Is(err, ErrAssetUnavailable))
}

func TestHTTPImageFetcher_NonImagePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not a photo</html>"))
	}))
	defer srv.Close()

	_, err := NewHTTPImageFetcher().Fetch(context.Background(), srv.URL+"/p.jpg")
	require.True(t, errors.Is(err, ErrAssetUnavailable))
}

func TestDecodeImage_SniffsPNG(t *testing.T) {
	payload := encodedPhoto(t, func(b *bytes.Buffer, img image.Image) error {
		return png.Encode(b, img)
	})
	// extension lies; the sniffer should win
	img, err := DecodeImage(payload, "photo.jpg")
	require.NoError(t, err)
	require.Equal(t, 16, img.Bounds().Dy())
}

func TestDecodeImage_Empty(t *testing.T) {
	_, err := DecodeImage(nil, "p.jpg")
	require.True(t, errors.Is(err, ErrAssetUnavailable))
}
