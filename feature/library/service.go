package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tunebridge/core/storage"
	"tunebridge/feature/library/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service maintains the persisted library index and serves cover objects.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new library service.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
		db:     db,
	}
}

// Scan rebuilds the library index from the bucket. Without force, an
// already-populated index is reused and the bucket is not re-listed.
// It returns the indexed artist count.
func (s *Service) Scan(ctx context.Context, force bool) (int, error) {
	if !force {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Artist{}).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to count indexed artists: %w", err)
		}
		if count > 0 {
			return int(count), nil
		}
	}

	artists, err := ScanBucket(ctx, s.client, s.bucket, s.prefix)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Library scan complete",
		zap.Int("artists", len(artists)),
		zap.String("bucket", s.bucket),
	)

	// Replace the whole index in one transaction so readers never observe a
	// partially-rebuilt library.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Album{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Artist{}).Error; err != nil {
			return err
		}
		if len(artists) == 0 {
			return nil
		}
		return tx.Create(&artists).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to persist library index: %w", err)
	}

	return len(artists), nil
}

// Artists returns every indexed artist without album details.
func (s *Service) Artists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := s.db.WithContext(ctx).Order("name").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to load library artists: %w", err)
	}
	return artists, nil
}

// Artist returns one indexed artist with albums, or nil when not indexed.
func (s *Service) Artist(ctx context.Context, name string) (*models.Artist, error) {
	var artist models.Artist
	err := s.db.WithContext(ctx).Preload("Albums").Where("name = ?", name).First(&artist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load library artist: %w", err)
	}
	return &artist, nil
}

// Cover streams a cover object from the bucket, returning its size. Only
// keys inside the configured collection prefix are served; traversal
// segments are rejected.
func (s *Service) Cover(ctx context.Context, objectKey string) (io.ReadCloser, int64, error) {
	if objectKey == "" || strings.Contains(objectKey, "..") || strings.HasPrefix(objectKey, "/") {
		return nil, 0, fmt.Errorf("invalid cover path: %q", objectKey)
	}
	if s.prefix != "" && !strings.HasPrefix(objectKey, s.prefix) {
		return nil, 0, fmt.Errorf("cover path outside collection: %q", objectKey)
	}

	// Stat first so a missing object fails before any bytes are streamed and
	// the response can carry an exact length.
	info, err := s.client.StatObject(ctx, s.bucket, objectKey, minio.StatObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("cover not found: %w", err)
	}

	reader, err := s.client.GetObject(ctx, s.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, err
	}
	return reader, info.Size, nil
}
