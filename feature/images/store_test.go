package images

import (
	"bytes"
	"context"
	"io"
	"testing"

	"bulk-editor/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngData = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

var notFound = minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}

func TestContentID(t *testing.T) {
	id := ContentID([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", id)
	assert.True(t, ValidID(id))
	assert.False(t, ValidID("abc"))
	assert.False(t, ValidID("BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"))
	assert.False(t, ValidID("../../etc/passwd"))
}

func TestStore_PutNew(t *testing.T) {
	client := new(mocks.Client)
	store := NewStore(client, "test-bucket")
	id := ContentID(pngData)

	client.On("StatObject", mock.Anything, "test-bucket", "images/"+id, mock.Anything).Return(minio.ObjectInfo{}, notFound)
	client.On("PutObject", mock.Anything, "test-bucket", "images/"+id, mock.Anything, int64(len(pngData)),
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "image/png" })).
		Return(minio.UploadInfo{}, nil)

	img, err := store.Put(context.Background(), pngData)
	require.NoError(t, err)
	assert.Equal(t, Image{ID: id, ContentType: "image/png", Size: int64(len(pngData))}, img)
	client.AssertExpectations(t)
}

func TestStore_PutExisting(t *testing.T) {
	client := new(mocks.Client)
	store := NewStore(client, "test-bucket")

	client.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(minio.ObjectInfo{Size: 40}, nil)

	img, err := store.Put(context.Background(), pngData)
	require.NoError(t, err)
	assert.True(t, img.Existing)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_PutRejects(t *testing.T) {
	store := NewStore(new(mocks.Client), "test-bucket")

	_, err := store.Put(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = store.Put(context.Background(), []byte("just some text"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestStore_PutStatFailure(t *testing.T) {
	client := new(mocks.Client)
	store := NewStore(client, "test-bucket")
	client.On("StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, assert.AnError)

	_, err := store.Put(context.Background(), pngData)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestStore_Stat(t *testing.T) {
	client := new(mocks.Client)
	store := NewStore(client, "test-bucket")
	id := ContentID(pngData)
	missing := ContentID([]byte("missing"))

	client.On("StatObject", mock.Anything, "test-bucket", "images/"+id, mock.Anything).
		Return(minio.ObjectInfo{ContentType: "image/png", Size: 40}, nil)
	client.On("StatObject", mock.Anything, "test-bucket", "images/"+missing, mock.Anything).
		Return(minio.ObjectInfo{}, notFound)

	img, err := store.Stat(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)

	_, err = store.Stat(context.Background(), missing)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Stat(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestStore_OpenAndDelete(t *testing.T) {
	client := new(mocks.Client)
	store := NewStore(client, "test-bucket")
	id := ContentID(pngData)

	client.On("GetObject", mock.Anything, "test-bucket", "images/"+id, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(pngData)), nil)
	client.On("RemoveObject", mock.Anything, "test-bucket", "images/"+id, mock.Anything).Return(nil)

	r, err := store.Open(context.Background(), id)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, pngData, data)

	require.NoError(t, store.Delete(context.Background(), id))
	assert.ErrorIs(t, store.Delete(context.Background(), "x"), ErrInvalidID)
}
