package card

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	img image.Image
	err error
}

func (s stubFetcher) Fetch(ctx context.Context, rawURL string) (image.Image, error) {
	return s.img, s.err
}

func testPhoto() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 320, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 320; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 80, A: 255})
		}
	}
	return img
}

func TestRender_BothFaces(t *testing.T) {
	svc := NewService("https://example.com", testStatic, stubFetcher{img: testPhoto()})

	rendered, err := svc.Render(context.Background(), testRecord())
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, canvasW, canvasH), rendered.Front.Bounds())
	require.Equal(t, image.Rect(0, 0, canvasW, canvasH), rendered.Back.Bounds())
	require.NotNil(t, rendered.QR)
}

func TestRender_Deterministic(t *testing.T) {
	svc := NewService("https://example.com", testStatic, stubFetcher{img: testPhoto()})
	rec := testRecord()

	a, err := svc.Render(context.Background(), rec)
	require.NoError(t, err)
	b, err := svc.Render(context.Background(), rec)
	require.NoError(t, err)

	requireSameImage(t, a.Front, b.Front)
	requireSameImage(t, a.Back, b.Back)
}

func TestRender_PhotoFailureAbortsEverything(t *testing.T) {
	svc := NewService("https://example.com", testStatic, stubFetcher{
		err: fmt.Errorf("%w: photo fetch: status 404", ErrAssetUnavailable),
	})

	rendered, err := svc.Render(context.Background(), testRecord())
	require.Nil(t, rendered)
	require.True(t, errors.Is(err, ErrAssetUnavailable))
}
