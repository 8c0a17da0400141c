package images

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bulk-editor/core/storage"

	"github.com/minio/minio-go/v7"
)

// Prefix is the folder images are stored under.
const Prefix = "images/"

var (
	// ErrNotFound is returned for an unknown image id.
	ErrNotFound = errors.New("images: image not found")
	// ErrInvalidID is returned for an id that is not a content hash.
	ErrInvalidID = errors.New("images: invalid image id")
	// ErrUnsupportedType is returned for uploads that are not images.
	ErrUnsupportedType = errors.New("images: unsupported content type")
	// ErrEmpty is returned for an empty upload.
	ErrEmpty = errors.New("images: empty upload")
)

// Image describes a stored image.
type Image struct {
	ID          string `json:"id"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	// Existing is set when identical content had been uploaded before.
	Existing bool `json:"existing"`
}

// Store keeps listing images in object storage addressed by the SHA-256 of
// their content, so the same picture is stored once however often it is
// uploaded.
type Store struct {
	client storage.Client
	bucket string
}

// NewStore creates a store on bucket.
func NewStore(client storage.Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// ContentID returns the id of data.
func ContentID(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ValidID reports whether id looks like a content id.
func ValidID(id string) bool {
	if len(id) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil && strings.ToLower(id) == id
}

func objectName(id string) string {
	return Prefix + id
}

// Put stores data unless identical content already exists.
func (s *Store) Put(ctx context.Context, data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmpty
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return Image{}, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	img := Image{ID: ContentID(data), ContentType: contentType, Size: int64(len(data))}
	name := objectName(img.ID)

	_, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	switch {
	case err == nil:
		img.Existing = true
		return img, nil
	case !storage.IsNotFound(err):
		return Image{}, fmt.Errorf("failed to stat image %s: %w", img.ID, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), img.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Image{}, fmt.Errorf("failed to upload image %s: %w", img.ID, err)
	}
	return img, nil
}

// Stat returns the metadata of an image.
func (s *Store) Stat(ctx context.Context, id string) (Image, error) {
	if !ValidID(id) {
		return Image{}, ErrInvalidID
	}
	info, err := s.client.StatObject(ctx, s.bucket, objectName(id), minio.StatObjectOptions{})
	if storage.IsNotFound(err) {
		return Image{}, ErrNotFound
	}
	if err != nil {
		return Image{}, fmt.Errorf("failed to stat image %s: %w", id, err)
	}
	return Image{ID: id, ContentType: info.ContentType, Size: info.Size, Existing: true}, nil
}

// Open returns the content of an image. The caller closes the reader.
func (s *Store) Open(ctx context.Context, id string) (io.ReadCloser, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	obj, err := s.client.GetObject(ctx, s.bucket, objectName(id), minio.GetObjectOptions{})
	if storage.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", id, err)
	}
	return obj, nil
}

// Delete removes an image. Deleting a missing image succeeds.
func (s *Store) Delete(ctx context.Context, id string) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	if err := s.client.RemoveObject(ctx, s.bucket, objectName(id), minio.RemoveObjectOptions{}); err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("failed to delete image %s: %w", id, err)
	}
	return nil
}
