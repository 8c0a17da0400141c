package integrity

import (
	"context"
	"testing"

	"bulk-editor/core/database"
	"bulk-editor/core/storage/mocks"
	"bulk-editor/feature/integrity/checks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func emptyListing() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestService_Schema(t *testing.T) {
	svc := NewService(new(mocks.Client), "test-bucket", "", zap.NewNop(), setupDB(t))

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Tables, 3)

	require.NoError(t, svc.FixSchema())

	report, err = svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report.Tables)
}

func TestService_SchemaWithoutDatabase(t *testing.T) {
	svc := NewService(new(mocks.Client), "test-bucket", "", zap.NewNop(), nil)

	_, err := svc.CheckSchema()
	assert.Error(t, err)
	assert.Error(t, svc.FixSchema())
}

func TestService_Storage(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", "", zap.NewNop(), nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyListing())

	report, err := svc.CheckStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"images/"}, report.Missing)

	mockClient.On("PutObject", mock.Anything, "test-bucket", "images/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
	require.NoError(t, svc.FixStorage(context.Background(), report))
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestService_StorageWithoutClient(t *testing.T) {
	svc := NewService(nil, "test-bucket", "", zap.NewNop(), nil)

	_, err := svc.CheckStorage(context.Background())
	assert.ErrorIs(t, err, ErrNoStorage)
	assert.ErrorIs(t, svc.FixStorage(context.Background(), checks.StorageReport{}), ErrNoStorage)
}
