package images

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// Service handles image uploads.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new image service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Upload stores data and returns its content id.
func (s *Service) Upload(ctx context.Context, data []byte) (Image, error) {
	img, err := s.store.Put(ctx, data)
	if err != nil {
		return Image{}, err
	}
	if img.Existing {
		s.logger.Debug("Image already stored", zap.String("id", img.ID))
	} else {
		s.logger.Info("Image stored", zap.String("id", img.ID), zap.Int64("size", img.Size))
	}
	return img, nil
}

// Download returns the metadata and content of an image.
func (s *Service) Download(ctx context.Context, id string) (Image, io.ReadCloser, error) {
	img, err := s.store.Stat(ctx, id)
	if err != nil {
		return Image{}, nil, err
	}
	r, err := s.store.Open(ctx, id)
	if err != nil {
		return Image{}, nil, err
	}
	return img, r, nil
}

// Delete removes an image.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
