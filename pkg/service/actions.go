package service

import (
	"context"
	"time"

	"apod"
	"apod/pkg/client"
)

type AstroService struct {
	fetcher Fetcher
}

func NewAstroService(fetcher Fetcher) *AstroService {
	return &AstroService{fetcher}
}

func (s *AstroService) Today(ctx context.Context, hd bool) (*apod.Metadata, client.RateLimitInfo, error) {
	return s.fetcher.GetPicture(ctx, apod.Today(), hd)
}

// GetByDate asks for the picture of date's calendar day. Use Today when the
// server should pick the date.
func (s *AstroService) GetByDate(ctx context.Context, date time.Time, hd bool) (*apod.Metadata, client.RateLimitInfo, error) {
	return s.fetcher.GetPicture(ctx, apod.FromTime(date), hd)
}
