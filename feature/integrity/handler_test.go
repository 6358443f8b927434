package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"wardrobe/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	svc := NewService(mockClient, "test-bucket", "gamedata/", upstreamStub{}, zap.NewNop(), db, "arcturus")
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, sqlMock
}

func decode(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyList())

	status, body := decode(t, app, "/integrity/structure")
	assert.Equal(t, 200, status)
	assert.Equal(t, "checked", body["status"])
	assert.Equal(t, []any{"gamedata"}, body["missing"])
}

func TestHandleStructureCheck_FixMissingBucket(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "gamedata/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	status, body := decode(t, app, "/integrity/structure?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertNumberOfCalls(t, "MakeBucket", 1)

	status, _ = decode(t, app, "/integrity/structure")
	assert.Equal(t, 500, status)
}

func TestHandleMirrorCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)

	status, body := decode(t, app, "/integrity/mirror")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Len(t, body["present"], 3)
}

func TestHandleMirrorCheck_Fix(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("StatObject", mock.Anything, "test-bucket", "gamedata/furnidata.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	mockClient.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	status, body := decode(t, app, "/integrity/mirror?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, "fixed", body["status"])
	assert.Len(t, body["fixed"], 3)
}

func TestHandleUpstreamCheck(t *testing.T) {
	app, _, _ := setupTestApp(t)

	status, body := decode(t, app, "/integrity/upstream")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "stub", body["source"])
}

func TestHandleRegistryCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "int(11)", "NO", "PRI", nil, "")
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `catalog_clothing`").WillReturnRows(rows)

	status, body := decode(t, app, "/integrity/registry")
	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["matched"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, sqlMock := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyList())
	mockClient.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `catalog_clothing`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}))

	status, body := decode(t, app, "/integrity")
	assert.Equal(t, 200, status)
	for _, section := range []string{"structure", "mirror", "upstream", "registry"} {
		assert.Contains(t, body, section)
	}
	upstream := body["upstream"].(map[string]any)
	assert.Equal(t, "ok", upstream["status"])
}

func TestHandleCoverageCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)
	sqlMock.MatchExpectationsInOrder(false)
	for i := 0; i < 2; i++ {
		sqlMock.ExpectQuery("SELECT \\* FROM `catalog_clothing`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "setid"}).AddRow(1, "clothing_r_mask", "1201"))
	}

	status, body := decode(t, app, "/integrity/coverage?issues=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, "clothing", body["adapter"])

	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(4), summary["total"])
	assert.Equal(t, float64(3), summary["missing_db"])
	assert.Equal(t, float64(1), summary["missing_feed"])

	// clothing_r_mask is linked everywhere and drops out of the issue list.
	results := body["results"].([]any)
	assert.Len(t, results, 3)
}
