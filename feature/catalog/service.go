package catalog

import (
	"context"

	"tunebridge/core/payload"
	"tunebridge/feature/catalog/models"
	"tunebridge/feature/catalog/reconcile"

	"go.uber.org/zap"
)

// topTrackLimit caps the artist aggregate's track list.
const topTrackLimit = 10

// Service reconciles raw catalog payloads into canonical records. It is
// stateless between calls: every request fetches one payload, reconciles it,
// and releases it.
type Service struct {
	client Client
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(client Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// SearchTracks returns canonical tracks matching the query.
func (s *Service) SearchTracks(ctx context.Context, query string) ([]models.Track, error) {
	raw, err := s.client.SearchTracks(ctx, query)
	if err != nil {
		return nil, err
	}
	ex := payload.Extract(payload.From(raw), payload.KindTrack)
	s.logger.Debug("Extracted track items",
		zap.String("query", query),
		zap.Stringer("shape", ex.Shape),
		zap.Int("count", len(ex.Items)),
	)
	return tracksFrom(ex), nil
}

// SearchAlbums returns canonical albums matching the query.
func (s *Service) SearchAlbums(ctx context.Context, query string) ([]models.Album, error) {
	raw, err := s.client.SearchAlbums(ctx, query)
	if err != nil {
		return nil, err
	}
	ex := payload.Extract(payload.From(raw), payload.KindAlbum)

	albums := make([]models.Album, 0, len(ex.Items))
	for _, item := range ex.Items {
		if a, ok := reconcile.Album(item, ex.Sideload); ok {
			albums = append(albums, a)
		}
	}
	return albums, nil
}

// SearchArtists returns canonical artists matching the query.
func (s *Service) SearchArtists(ctx context.Context, query string) ([]models.Artist, error) {
	raw, err := s.client.SearchArtists(ctx, query)
	if err != nil {
		return nil, err
	}
	ex := payload.Extract(payload.From(raw), payload.KindArtist)

	artists := make([]models.Artist, 0, len(ex.Items))
	for _, item := range ex.Items {
		if a, ok := reconcile.Artist(item, ex.Sideload); ok {
			artists = append(artists, a)
		}
	}
	return artists, nil
}

// SearchPlaylists returns canonical playlists matching the query.
func (s *Service) SearchPlaylists(ctx context.Context, query string) ([]models.Playlist, error) {
	raw, err := s.client.SearchPlaylists(ctx, query)
	if err != nil {
		return nil, err
	}
	ex := payload.Extract(payload.From(raw), payload.KindPlaylist)

	playlists := make([]models.Playlist, 0, len(ex.Items))
	for _, item := range ex.Items {
		if p, ok := reconcile.Playlist(item, ex.Sideload); ok {
			playlists = append(playlists, p)
		}
	}
	return playlists, nil
}

// AlbumTracks returns the canonical track listing of an album, with the
// track-number fallback chain applied per item.
func (s *Service) AlbumTracks(ctx context.Context, albumID string) ([]models.Track, error) {
	raw, err := s.client.GetAlbumTracks(ctx, albumID)
	if err != nil {
		return nil, err
	}
	ex := payload.Extract(payload.From(raw), payload.KindTrack)

	tracks := tracksFrom(ex)
	// The album endpoint often omits the nested album object; the requested
	// id is authoritative when it does.
	for i := range tracks {
		if tracks[i].AlbumID == "" {
			tracks[i].AlbumID = models.ID(albumID)
		}
	}
	return tracks, nil
}

// PlaylistTracks returns the playlist identity plus its canonical tracks.
// A payload without a playlist object yields a nil Playlist and whatever
// tracks were recoverable.
func (s *Service) PlaylistTracks(ctx context.Context, playlistID string) (*models.PlaylistDetail, error) {
	raw, err := s.client.GetPlaylistTracks(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	v := payload.From(raw)
	ex := payload.Extract(v, payload.KindTrack)

	detail := &models.PlaylistDetail{
		Playlist: reconcile.PlaylistInfo(v, ex.Sideload, playlistID),
		Items:    tracksFrom(ex),
	}
	return detail, nil
}

// ArtistPage assembles the composite artist aggregate: identity, top tracks
// capped at ten, and albums. Albums come from the module-nested artist page
// first; when that yields nothing the cascade falls back to the direct
// albums endpoint, surfacing a failure only when every source failed.
func (s *Service) ArtistPage(ctx context.Context, artistID string) (*models.ArtistPage, error) {
	raw, err := s.client.GetArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	page := payload.Unwrap(payload.From(raw))
	if payload.Classify(page) == payload.ShapeEmpty {
		return &models.ArtistPage{Tracks: []models.Track{}, Albums: []models.Album{}}, nil
	}
	sideload := payload.BuildSideload(page)

	albums, err := payload.Cascade(ctx,
		func(a []models.Album) bool { return len(a) > 0 },
		payload.Source[[]models.Album]{
			Name: "artist-page",
			Fetch: func(context.Context) ([]models.Album, error) {
				return reconcile.ArtistPageAlbums(page, sideload), nil
			},
		},
		payload.Source[[]models.Album]{
			Name: "artist-albums-endpoint",
			Fetch: func(ctx context.Context) ([]models.Album, error) {
				direct, err := s.client.GetArtistAlbums(ctx, artistID)
				if err != nil {
					return nil, err
				}
				return reconcile.AlbumsFromPayload(payload.From(direct), nil), nil
			},
		},
	)
	if err != nil {
		return nil, err
	}
	reconcile.SortAlbums(albums)

	artist := reconcile.ArtistInfo(page, artistID)
	result := &models.ArtistPage{
		Artist: &artist,
		Tracks: reconcile.ArtistTopTracks(page, sideload, topTrackLimit),
		Albums: albums,
	}
	if result.Albums == nil {
		result.Albums = []models.Album{}
	}
	s.logger.Debug("Assembled artist page",
		zap.String("artist_id", artistID),
		zap.Int("albums", len(result.Albums)),
		zap.Int("tracks", len(result.Tracks)),
	)
	return result, nil
}

func tracksFrom(ex payload.Extraction) []models.Track {
	tracks := make([]models.Track, 0, len(ex.Items))
	for _, item := range ex.Items {
		if t, ok := reconcile.Track(item, ex.Sideload); ok {
			tracks = append(tracks, t)
		}
	}
	return tracks
}
