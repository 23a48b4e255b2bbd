package card

import (
	"context"
	"image"

	"golang.org/x/sync/errgroup"

	"everify_backend/internals/features/certificates/model"
)

// RenderedCard holds both face bitmaps for one download request. It is
// never persisted anywhere.
type RenderedCard struct {
	Front image.Image
	Back  image.Image
	QR    image.Image
}

// Service renders the printable two-sided card for one certificate.
// Each render owns its own canvases; concurrent renders share nothing.
type Service struct {
	origin  string
	static  StaticInfo
	fetcher ImageFetcher
}

func NewService(origin string, static StaticInfo, fetcher ImageFetcher) *Service {
	return &Service{origin: origin, static: static, fetcher: fetcher}
}

// Render fetches the photo and generates the QR concurrently, then
// draws both faces. Any asset failure aborts before a canvas exists, so
// a partial card can never leave this function.
func (s *Service) Render(ctx context.Context, rec *model.CertificateModel) (*RenderedCard, error) {
	logo, err := Logo()
	if err != nil {
		return nil, err
	}

	var (
		photo image.Image
		qrImg image.Image
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		img, err := s.fetcher.Fetch(gctx, rec.ImageURL)
		if err != nil {
			return err
		}
		photo = img
		return nil
	})
	g.Go(func() error {
		img, err := GenerateQR(VerifyURL(s.origin, rec.CertificateNo), QRSize)
		if err != nil {
			return err
		}
		qrImg = img
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	front, err := renderFace(frontElements(rec, logo, photo, s.static))
	if err != nil {
		return nil, err
	}
	back, err := renderFace(backElements(rec, qrImg, s.static))
	if err != nil {
		return nil, err
	}

	return &RenderedCard{Front: front, Back: back, QR: qrImg}, nil
}
