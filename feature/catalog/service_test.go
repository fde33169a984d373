package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) SearchTracks(ctx context.Context, query string) (any, error) {
	args := m.Called(ctx, query)
	return args.Get(0), args.Error(1)
}

func (m *mockClient) SearchAlbums(ctx context.Context, query string) (any, error) {
	args := m.Called(ctx, query)
	return args.Get(0), args.Error(1)
}

func (m *mockClient) SearchArtists(ctx context.Context, query string) (any, error) {
	args := m.Called(ctx, query)
	return args.Get(0), args.Error(1)
}

func (m *mockClient) SearchPlaylists(ctx context.Context, query string) (any, error) {
	args := m.Called(ctx, query)
	return args.Get(0), args.Error(1)
}

func (m *mockClient) GetAlbumTracks(ctx context.Context, albumID string) (any, error) {
	args := m.Called(ctx, albumID)
	return args.Get(0), args.Error(1)
}

func (m *mockClient) GetPlaylistTracks(ctx context.Context, playlistID string) (any, error) {
	args := m.Called(ctx, playlistID)
	return args.Get(0), args.Error(1)
}

func (m *mockClient) GetArtist(ctx context.Context, artistID string) (any, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0), args.Error(1)
}

func (m *mockClient) GetArtistAlbums(ctx context.Context, artistID string) (any, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0), args.Error(1)
}

func decodePayload(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var raw any
	require.NoError(t, dec.Decode(&raw))
	return raw
}

func TestSearchTracks_EnvelopedPayload(t *testing.T) {
	client := new(mockClient)
	client.On("SearchTracks", mock.Anything, "query").Return(decodePayload(t, `{
		"data": {"version": 2, "tracks": {"items": [
			{"id": 1, "title": "A", "artist": {"name": "X"}, "duration": 100}
		]}}, "version": 1
	}`), nil)

	svc := NewService(client, zap.NewNop())
	tracks, err := svc.SearchTracks(context.Background(), "query")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "A", tracks[0].Title)
	client.AssertExpectations(t)
}

func TestSearchTracks_AbsentPayloadIsEmpty(t *testing.T) {
	client := new(mockClient)
	client.On("SearchTracks", mock.Anything, "none").Return(nil, nil)

	svc := NewService(client, zap.NewNop())
	tracks, err := svc.SearchTracks(context.Background(), "none")
	require.NoError(t, err)
	assert.Empty(t, tracks)
	assert.NotNil(t, tracks)
}

func TestSearchAlbums_DropsIdentitylessItems(t *testing.T) {
	client := new(mockClient)
	client.On("SearchAlbums", mock.Anything, "q").Return(decodePayload(t, `{
		"albums": {"items": [
			{"id": "al1", "title": "Keep"},
			{"title": "Drop"}
		]}
	}`), nil)

	svc := NewService(client, zap.NewNop())
	albums, err := svc.SearchAlbums(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Keep", albums[0].Title)
}

func TestSearchArtists_ClientErrorPropagates(t *testing.T) {
	clientErr := errors.New("upstream down")
	client := new(mockClient)
	client.On("SearchArtists", mock.Anything, "q").Return(nil, clientErr)

	svc := NewService(client, zap.NewNop())
	_, err := svc.SearchArtists(context.Background(), "q")
	assert.ErrorIs(t, err, clientErr)
}

func TestAlbumTracks_BackfillsAlbumID(t *testing.T) {
	client := new(mockClient)
	client.On("GetAlbumTracks", mock.Anything, "al7").Return(decodePayload(t, `{
		"items": [
			{"item": {"id": 1, "title": "A"}, "index": 3},
			{"id": 2, "title": "B", "album": {"id": "other", "title": "Elsewhere"}}
		]
	}`), nil)

	svc := NewService(client, zap.NewNop())
	tracks, err := svc.AlbumTracks(context.Background(), "al7")
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.EqualValues(t, "al7", tracks[0].AlbumID)
	assert.Equal(t, 3, tracks[0].TrackNumber)
	assert.EqualValues(t, "other", tracks[1].AlbumID)
}

func TestPlaylistTracks_DetailWithIdentity(t *testing.T) {
	client := new(mockClient)
	client.On("GetPlaylistTracks", mock.Anything, "p-1").Return(decodePayload(t, `{
		"playlist": {"uuid": "p-1", "title": "Mix"},
		"items": [{"id": 1, "title": "A", "duration": 5}]
	}`), nil)

	svc := NewService(client, zap.NewNop())
	detail, err := svc.PlaylistTracks(context.Background(), "p-1")
	require.NoError(t, err)
	require.NotNil(t, detail.Playlist)
	assert.Equal(t, "p-1", detail.Playlist.ID)
	require.Len(t, detail.Items, 1)
}

func TestPlaylistTracks_DirectListHasNilPlaylist(t *testing.T) {
	client := new(mockClient)
	client.On("GetPlaylistTracks", mock.Anything, "p-2").Return(decodePayload(t, `[
		{"id": 1, "title": "A", "duration": 5}
	]`), nil)

	svc := NewService(client, zap.NewNop())
	detail, err := svc.PlaylistTracks(context.Background(), "p-2")
	require.NoError(t, err)
	assert.Nil(t, detail.Playlist)
	require.Len(t, detail.Items, 1)
}

func TestArtistPage_EmptyPayload(t *testing.T) {
	client := new(mockClient)
	client.On("GetArtist", mock.Anything, "9").Return(nil, nil)

	svc := NewService(client, zap.NewNop())
	page, err := svc.ArtistPage(context.Background(), "9")
	require.NoError(t, err)
	assert.Nil(t, page.Artist)
	assert.Empty(t, page.Tracks)
	assert.Empty(t, page.Albums)
	client.AssertNotCalled(t, "GetArtistAlbums", mock.Anything, mock.Anything)
}

func TestArtistPage_AlbumsFromPageSortedByYear(t *testing.T) {
	client := new(mockClient)
	client.On("GetArtist", mock.Anything, "9").Return(decodePayload(t, `{
		"name": "X", "picture": "p",
		"albums": {"items": [
			{"id": "a", "title": "Old", "releaseDate": "1999-01-01"},
			{"id": "b", "title": "New", "releaseDate": "2022-01-01"},
			{"id": "c", "title": "Undated"}
		]},
		"tracks": [{"id": 1, "title": "Hit", "duration": 9}]
	}`), nil)

	svc := NewService(client, zap.NewNop())
	page, err := svc.ArtistPage(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, page.Albums, 3)
	assert.Equal(t, "New", page.Albums[0].Title)
	assert.Equal(t, "Old", page.Albums[1].Title)
	assert.Equal(t, "Undated", page.Albums[2].Title)
	require.Len(t, page.Tracks, 1)
	assert.Equal(t, "X", page.Artist.Name)
	client.AssertNotCalled(t, "GetArtistAlbums", mock.Anything, mock.Anything)
}

func TestArtistPage_CascadesToAlbumsEndpoint(t *testing.T) {
	client := new(mockClient)
	client.On("GetArtist", mock.Anything, "9").Return(decodePayload(t, `{"name": "X"}`), nil)
	client.On("GetArtistAlbums", mock.Anything, "9").Return(decodePayload(t, `{
		"items": [{"id": "al1", "title": "Direct"}]
	}`), nil)

	svc := NewService(client, zap.NewNop())
	page, err := svc.ArtistPage(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, page.Albums, 1)
	assert.Equal(t, "Direct", page.Albums[0].Title)
	client.AssertExpectations(t)
}

func TestArtistPage_EmptyFallbackIsNotAFailure(t *testing.T) {
	client := new(mockClient)
	client.On("GetArtist", mock.Anything, "9").Return(decodePayload(t, `{"name": "X"}`), nil)
	client.On("GetArtistAlbums", mock.Anything, "9").Return(nil, nil)

	svc := NewService(client, zap.NewNop())
	page, err := svc.ArtistPage(context.Background(), "9")
	require.NoError(t, err)
	assert.Empty(t, page.Albums)
	assert.NotNil(t, page.Albums)
}

func TestArtistPage_FallbackFailureAbsorbedWhenPageSucceeded(t *testing.T) {
	client := new(mockClient)
	client.On("GetArtist", mock.Anything, "9").Return(decodePayload(t, `{"name": "X"}`), nil)
	client.On("GetArtistAlbums", mock.Anything, "9").Return(nil, errors.New("upstream down"))

	svc := NewService(client, zap.NewNop())
	page, err := svc.ArtistPage(context.Background(), "9")
	require.NoError(t, err, "the page source succeeded cleanly, so the fallback failure is absorbed")
	assert.Empty(t, page.Albums)
}

func TestArtistPage_TopTracksCapped(t *testing.T) {
	client := new(mockClient)
	client.On("GetArtist", mock.Anything, "9").Return(decodePayload(t, `{
		"name": "X",
		"albums": {"items": [{"id": "al1", "title": "Y"}]},
		"tracks": [
			{"id": 1, "title": "T", "duration": 1}, {"id": 2, "title": "T", "duration": 1},
			{"id": 3, "title": "T", "duration": 1}, {"id": 4, "title": "T", "duration": 1},
			{"id": 5, "title": "T", "duration": 1}, {"id": 6, "title": "T", "duration": 1},
			{"id": 7, "title": "T", "duration": 1}, {"id": 8, "title": "T", "duration": 1},
			{"id": 9, "title": "T", "duration": 1}, {"id": 10, "title": "T", "duration": 1},
			{"id": 11, "title": "T", "duration": 1}, {"id": 12, "title": "T", "duration": 1}
		]
	}`), nil)

	svc := NewService(client, zap.NewNop())
	page, err := svc.ArtistPage(context.Background(), "9")
	require.NoError(t, err)
	assert.Len(t, page.Tracks, 10)
}
