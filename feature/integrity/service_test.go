package integrity

import (
	"testing"

	"menu-manager/core/storage"
	"menu-manager/core/storage/mocks"
	"menu-manager/feature/catalog/store/storetest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var testCfg = storage.Config{Bucket: "test-bucket", SnapshotPrefix: "snapshots"}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func emptyListing(mockClient *mocks.Client) {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
}

func TestService_CheckAll(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	emptyListing(mockClient)

	svc := NewService(storetest.Open(t), mockClient, testCfg, zap.NewNop())
	report := svc.CheckAll(t.Context())

	require.NotNil(t, report.Schema)
	assert.True(t, report.Schema.Matched)
	require.NotNil(t, report.Storage)
	assert.True(t, report.Healthy())
}

func TestService_CheckAllWithoutBackends(t *testing.T) {
	svc := NewService(nil, nil, testCfg, nil)
	report := svc.CheckAll(t.Context())

	assert.NotEmpty(t, report.SchemaError)
	assert.NotEmpty(t, report.StorageError)
	assert.False(t, report.Healthy())
	assert.Error(t, svc.FixStorage(t.Context()))
}

func TestService_SchemaDrift(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)

	svc := NewService(db, nil, testCfg, nil)
	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 6)
}
