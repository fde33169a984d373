package library

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"tunebridge/core/storage/mocks"
	"tunebridge/feature/library/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, *gorm.DB) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db := setupTestDB(t)
	svc := NewService(mockClient, "music", "", zap.NewNop(), db)
	handler := NewHandler(svc, zap.NewNop())
	handler.RegisterRoutes(app)
	return app, mockClient, db
}

func TestHandleScan(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "music").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "music", mock.Anything).Return(listing(
		"Artist/Album/01.flac",
	))

	req := httptest.NewRequest("GET", "/library/scan", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(1), body["artist_count"])
}

func TestHandleScan_BucketFailure(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "music").Return(false, assert.AnError)

	req := httptest.NewRequest("GET", "/library/scan?force=true", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleArtist_NotFound(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/library/artist/Nobody", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleArtist_EncodedName(t *testing.T) {
	app, _, db := setupTestApp(t)
	require.NoError(t, db.Create(&models.Artist{
		Name:       "Pink Floyd",
		AlbumCount: 1,
		TrackCount: 9,
		Albums:     []models.Album{{Title: "Animals", TrackCount: 9}},
	}).Error)

	req := httptest.NewRequest("GET", "/library/artist/Pink%20Floyd", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var artist map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&artist))
	assert.Equal(t, "Pink Floyd", artist["name"])
}

func TestHandleArtists(t *testing.T) {
	app, _, db := setupTestApp(t)
	require.NoError(t, db.Create(&models.Artist{Name: "Alpha", AlbumCount: 1, TrackCount: 2}).Error)

	req := httptest.NewRequest("GET", "/library/artists", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var artists []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&artists))
	require.Len(t, artists, 1)
	assert.Equal(t, "Alpha", artists[0]["name"])
}

func TestHandleCover(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("StatObject", mock.Anything, "music", "Artist/Album/cover.jpg", mock.Anything).
		Return(minio.ObjectInfo{Size: 10}, nil)
	mockClient.On("GetObject", mock.Anything, "music", "Artist/Album/cover.jpg", mock.Anything).
		Return(io.NopCloser(strings.NewReader("jpeg-bytes")), nil)

	req := httptest.NewRequest("GET", "/library/cover?path=Artist%2FAlbum%2Fcover.jpg", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "image/jpeg")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestHandleCover_InvalidPath(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/library/cover?path=..%2Fsecret", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
