package reconcile

import (
	"sort"
	"strconv"
	"strings"

	"tunebridge/core/payload"
	"tunebridge/feature/catalog/models"
)

// Album reconciles one raw album item into the canonical record. The year is
// derived from releaseDate (substring before the first dash), falling back
// to a literal year field, and finally the empty string so downstream
// sorting stays total.
func Album(item payload.Item, sideload payload.Sideload) (models.Album, bool) {
	id, ok := identity(item.Value)
	if !ok {
		return models.Album{}, false
	}

	a := models.Album{
		ID:         id,
		Title:      item.Field("title").Str(),
		Year:       albumYear(item.Value),
		TrackCount: item.Field("numberOfTracks").Int(),
		Cover:      ResolveCover(item.Value, sideload),
	}
	return a, true
}

func albumYear(v payload.Value) string {
	if release := v.Field("releaseDate").Str(); release != "" {
		year, _, _ := strings.Cut(release, "-")
		return year
	}
	return v.Field("year").Str()
}

// SortAlbums orders albums newest first by parsed integer year. Missing or
// unparsable years parse as 0 and therefore sort last. The sort is stable so
// same-year albums keep their extraction order.
func SortAlbums(albums []models.Album) {
	sort.SliceStable(albums, func(i, j int) bool {
		return yearValue(albums[i].Year) > yearValue(albums[j].Year)
	})
}

func yearValue(year string) int {
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return n
}

// IsAlbumLike reports whether an object carries the minimal album signature.
// The check is deliberately relaxed: an id and a title are enough.
func IsAlbumLike(v payload.Value) bool {
	return v.IsObject() && v.Has("id") && v.Has("title")
}
