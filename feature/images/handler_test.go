package images

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"bulk-editor/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() (*fiber.App, *mocks.Client) {
	app := fiber.New()
	client := new(mocks.Client)
	NewHandler(NewService(NewStore(client, "test-bucket"), zap.NewNop())).RegisterRoutes(app)
	return app, client
}

func TestHandleUpload(t *testing.T) {
	app, client := setupTestApp()
	client.On("StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, notFound)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/images", bytes.NewReader(pngData)))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var img Image
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&img))
	assert.Equal(t, ContentID(pngData), img.ID)
}

func TestHandleUpload_Duplicate(t *testing.T) {
	app, client := setupTestApp()
	client.On("StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/images", bytes.NewReader(pngData)))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleUpload_BadRequest(t *testing.T) {
	app, _ := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/images", bytes.NewReader([]byte("hello"))))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/images", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleUpload_StorageFailure(t *testing.T) {
	app, client := setupTestApp()
	client.On("StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, notFound)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("POST", "/images", bytes.NewReader(pngData)))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleDownload(t *testing.T) {
	app, client := setupTestApp()
	id := ContentID(pngData)
	client.On("StatObject", mock.Anything, mock.Anything, "images/"+id, mock.Anything).
		Return(minio.ObjectInfo{ContentType: "image/png", Size: int64(len(pngData))}, nil)
	client.On("GetObject", mock.Anything, mock.Anything, "images/"+id, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(pngData)), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/images/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, pngData, body)
}

func TestHandleDownload_Errors(t *testing.T) {
	app, client := setupTestApp()
	client.On("StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, notFound)

	resp, err := app.Test(httptest.NewRequest("GET", "/images/"+ContentID([]byte("x")), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/images/bad", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app, client := setupTestApp()
	id := ContentID(pngData)
	client.On("RemoveObject", mock.Anything, mock.Anything, "images/"+id, mock.Anything).Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/images/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), "test-bucket", zap.NewNop())

	assert.Equal(t, "images", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
