package library

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"tunebridge/core/storage"
	"tunebridge/feature/library/models"

	"github.com/minio/minio-go/v7"
)

// audioExtensions are the object suffixes counted as tracks.
var audioExtensions = map[string]struct{}{
	".flac": {},
	".mp3":  {},
	".m4a":  {},
	".ogg":  {},
	".opus": {},
	".wav":  {},
}

// coverNames are the file names recognized as album cover art.
var coverNames = map[string]struct{}{
	"cover.jpg":  {},
	"cover.jpeg": {},
	"cover.png":  {},
	"folder.jpg": {},
}

// ScanBucket walks the bucket listing once and derives the artist/album
// index from the Artist/Album/Track object layout. Objects outside that
// layout are ignored. Output is sorted by artist name, albums by title, so
// repeated scans of the same collection are deterministic.
func ScanBucket(ctx context.Context, client storage.Client, bucket, prefix string) ([]models.Artist, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	type albumEntry struct {
		trackCount int
		coverPath  string
	}
	index := make(map[string]map[string]*albumEntry)

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}

		rel := strings.TrimPrefix(obj.Key, prefix)
		parts := strings.Split(rel, "/")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			continue
		}
		artist, album, file := parts[0], parts[1], parts[2]

		albums, ok := index[artist]
		if !ok {
			albums = make(map[string]*albumEntry)
			index[artist] = albums
		}
		entry, ok := albums[album]
		if !ok {
			entry = &albumEntry{}
			albums[album] = entry
		}

		lower := strings.ToLower(file)
		if _, isAudio := audioExtensions[path.Ext(lower)]; isAudio {
			entry.trackCount++
		} else if _, isCover := coverNames[lower]; isCover {
			entry.coverPath = obj.Key
		}
	}

	artists := make([]models.Artist, 0, len(index))
	for name, albums := range index {
		a := models.Artist{Name: name}
		for title, entry := range albums {
			if entry.trackCount == 0 {
				continue
			}
			a.Albums = append(a.Albums, models.Album{
				Title:      title,
				TrackCount: entry.trackCount,
				CoverPath:  entry.coverPath,
			})
			a.TrackCount += entry.trackCount
		}
		if len(a.Albums) == 0 {
			continue
		}
		a.AlbumCount = len(a.Albums)
		sort.Slice(a.Albums, func(i, j int) bool { return a.Albums[i].Title < a.Albums[j].Title })
		artists = append(artists, a)
	}
	sort.Slice(artists, func(i, j int) bool { return artists[i].Name < artists[j].Name })

	return artists, nil
}
