package service

import (
	"context"
	"time"

	"apod"
	"apod/pkg/client"
)

// Fetcher is the part of the APOD client the service needs.
type Fetcher interface {
	GetPicture(ctx context.Context, date apod.Date, hd bool) (*apod.Metadata, client.RateLimitInfo, error)
}

var _ Fetcher = (*client.Client)(nil)

type Picture interface {
	Today(ctx context.Context, hd bool) (*apod.Metadata, client.RateLimitInfo, error)
	GetByDate(ctx context.Context, date time.Time, hd bool) (*apod.Metadata, client.RateLimitInfo, error)
}

type Service struct {
	Picture
}

func NewService(fetcher Fetcher) *Service {
	return &Service{
		Picture: NewAstroService(fetcher),
	}
}
