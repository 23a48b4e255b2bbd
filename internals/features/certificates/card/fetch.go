package card

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
)

const (
	fetchTimeout  = 10 * time.Second
	maxImageBytes = 10 << 20
)

// ImageFetcher resolves a photo reference (hosted URL) into a decoded
// image. Rendering never touches raw upload bytes; this is the only
// place remote image data enters the pipeline.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (image.Image, error)
}

type HTTPImageFetcher struct {
	Client *http.Client
}

func NewHTTPImageFetcher() *HTTPImageFetcher {
	return &HTTPImageFetcher{Client: &http.Client{Timeout: fetchTimeout}}
}

func (f *HTTPImageFetcher) Fetch(ctx context.Context, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: photo request: %v", ErrAssetUnavailable, err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: photo fetch: %v", ErrAssetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: photo fetch: status %d", ErrAssetUnavailable, resp.StatusCode)
	}

	all, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: photo read: %v", ErrAssetUnavailable, err)
	}

	img, err := DecodeImage(all, rawURL)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeImage sniffs the payload and decodes jpeg/png/webp.
func DecodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: empty image payload", ErrAssetUnavailable)
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(strings.SplitN(filename, "?", 2)[0]))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			img, _, err = image.Decode(bytes.NewReader(all))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: image decode (%s): %v", ErrAssetUnavailable, ct, err)
	}
	return img, nil
}
