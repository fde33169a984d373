package library

import (
	"net/url"
	"path"

	"tunebridge/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the library.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the library routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/library")
	group.Get("/scan", h.HandleScan)
	group.Get("/artists", h.HandleArtists)
	group.Get("/artist/:name", h.HandleArtist)
	group.Get("/cover", h.HandleCover)
}

// HandleScan rebuilds the library index from the bucket.
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	force := c.QueryBool("force")
	l := logger.WithRayID(h.logger, c)
	l.Info("Library scan requested", zap.Bool("force", force))

	count, err := h.service.Scan(c.Context(), force)
	if err != nil {
		l.Error("Library scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":       "success",
		"artist_count": count,
	})
}

// HandleArtists returns every indexed artist.
func (h *Handler) HandleArtists(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	artists, err := h.service.Artists(c.Context())
	if err != nil {
		l.Error("Library artists lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(artists)
}

// HandleArtist returns one indexed artist with albums. The route segment
// arrives percent-encoded; artist names regularly contain spaces.
func (h *Handler) HandleArtist(c *fiber.Ctx) error {
	name := c.Params("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	l := logger.WithRayID(h.logger, c)

	artist, err := h.service.Artist(c.Context(), name)
	if err != nil {
		l.Error("Library artist lookup failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if artist == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "artist not found",
		})
	}
	return c.JSON(artist)
}

// HandleCover streams a cover image object from the bucket.
func (h *Handler) HandleCover(c *fiber.Ctx) error {
	objectKey := c.Query("path")
	l := logger.WithRayID(h.logger, c)

	reader, size, err := h.service.Cover(c.Context(), objectKey)
	if err != nil {
		l.Warn("Cover not served", zap.String("path", objectKey), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "cover not found",
		})
	}

	if ext := path.Ext(objectKey); len(ext) > 1 {
		c.Type(ext[1:])
	}
	return c.SendStream(reader, int(size))
}
