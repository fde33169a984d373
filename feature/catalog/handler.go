package catalog

import (
	"tunebridge/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	search := app.Group("/search")
	search.Get("/tracks", h.HandleSearchTracks)
	search.Get("/albums", h.HandleSearchAlbums)
	search.Get("/artists", h.HandleSearchArtists)
	search.Get("/playlists", h.HandleSearchPlaylists)

	app.Get("/album/:id/tracks", h.HandleAlbumTracks)
	app.Get("/playlist/:id", h.HandlePlaylistTracks)
	app.Get("/artist/:id", h.HandleArtistPage)
}

// HandleSearchTracks returns canonical tracks matching the q parameter.
// An empty result set is a normal success response, never an error.
func (h *Handler) HandleSearchTracks(c *fiber.Ctx) error {
	query := c.Query("q")
	l := logger.WithRayID(h.logger, c)
	l.Info("Search tracks request", zap.String("query", query))

	tracks, err := h.service.SearchTracks(c.Context(), query)
	if err != nil {
		l.Error("Track search failed", zap.Error(err))
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"items": tracks})
}

// HandleSearchAlbums returns canonical albums matching the q parameter.
func (h *Handler) HandleSearchAlbums(c *fiber.Ctx) error {
	query := c.Query("q")
	l := logger.WithRayID(h.logger, c)
	l.Info("Search albums request", zap.String("query", query))

	albums, err := h.service.SearchAlbums(c.Context(), query)
	if err != nil {
		l.Error("Album search failed", zap.Error(err))
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"items": albums})
}

// HandleSearchArtists returns canonical artists matching the q parameter.
func (h *Handler) HandleSearchArtists(c *fiber.Ctx) error {
	query := c.Query("q")
	l := logger.WithRayID(h.logger, c)
	l.Info("Search artists request", zap.String("query", query))

	artists, err := h.service.SearchArtists(c.Context(), query)
	if err != nil {
		l.Error("Artist search failed", zap.Error(err))
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"items": artists})
}

// HandleSearchPlaylists returns canonical playlists matching the q parameter.
func (h *Handler) HandleSearchPlaylists(c *fiber.Ctx) error {
	query := c.Query("q")
	l := logger.WithRayID(h.logger, c)
	l.Info("Search playlists request", zap.String("query", query))

	playlists, err := h.service.SearchPlaylists(c.Context(), query)
	if err != nil {
		l.Error("Playlist search failed", zap.Error(err))
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"items": playlists})
}

// HandleAlbumTracks returns the canonical track listing of an album.
func (h *Handler) HandleAlbumTracks(c *fiber.Ctx) error {
	albumID := c.Params("id")
	l := logger.WithRayID(h.logger, c)
	l.Info("Album tracks request", zap.String("album_id", albumID))

	tracks, err := h.service.AlbumTracks(c.Context(), albumID)
	if err != nil {
		l.Error("Album tracks fetch failed", zap.Error(err))
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"items": tracks})
}

// HandlePlaylistTracks returns the playlist identity plus its tracks.
func (h *Handler) HandlePlaylistTracks(c *fiber.Ctx) error {
	playlistID := c.Params("id")
	l := logger.WithRayID(h.logger, c)
	l.Info("Playlist tracks request", zap.String("playlist_id", playlistID))

	detail, err := h.service.PlaylistTracks(c.Context(), playlistID)
	if err != nil {
		l.Error("Playlist tracks fetch failed", zap.Error(err))
		return serverError(c, err)
	}
	return c.JSON(detail)
}

// HandleArtistPage returns the {artist, tracks, albums} aggregate.
func (h *Handler) HandleArtistPage(c *fiber.Ctx) error {
	artistID := c.Params("id")
	l := logger.WithRayID(h.logger, c)
	l.Info("Artist page request", zap.String("artist_id", artistID))

	page, err := h.service.ArtistPage(c.Context(), artistID)
	if err != nil {
		l.Error("Artist page fetch failed", zap.Error(err))
		return serverError(c, err)
	}
	return c.JSON(page)
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
