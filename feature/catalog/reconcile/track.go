package reconcile

import (
	"tunebridge/core/payload"
	"tunebridge/feature/catalog/models"
)

const (
	unknownTitle  = "Unknown Title"
	unknownArtist = "Unknown Artist"
)

// Track reconciles one raw track item into the canonical record. ok is false
// when the item lacks an id; such items are silently dropped from sequences.
//
// The artist may arrive as a nested "artist" object or as the first element
// of an "artists" list. The track number falls back, in order: explicit
// field, the wrapper's positional index, the item's 1-based position in the
// extracted sequence.
func Track(item payload.Item, sideload payload.Sideload) (models.Track, bool) {
	id, ok := identity(item.Value)
	if !ok {
		return models.Track{}, false
	}

	artist := item.Field("artist")
	if !artist.IsObject() {
		artist = item.Field("artists").At(0)
	}
	artistName := artist.Field("name").Str()
	if artistName == "" {
		artistName = unknownArtist
	}

	album := item.Field("album")
	albumArtist := album.Path("artist", "name").Str()
	if albumArtist == "" {
		albumArtist = artistName
	}

	title := item.Field("title").Str()
	if title == "" {
		title = unknownTitle
	}

	t := models.Track{
		ID:          id,
		Title:       title,
		Artist:      artistName,
		AlbumArtist: albumArtist,
		Album:       album.Field("title").Str(),
		TrackNumber: trackNumber(item),
		Duration:    item.Field("duration").Int(),
		Quality:     item.Field("audioQuality").Str(),
	}
	if artistID, ok := identity(artist); ok {
		t.ArtistID = artistID
	}
	if albumID, ok := identity(album); ok {
		t.AlbumID = albumID
	}

	// Album cover first; the generic resolver covers the track's own fields
	// and any sideloaded art.
	if cover := album.Field("cover").Str(); cover != "" {
		t.Cover = models.CoverRef(cover)
	} else {
		t.Cover = ResolveCover(item.Value, sideload)
	}

	return t, true
}

// trackNumber applies the three-tier fallback. Exactly one tier always
// yields a value because the positional tier cannot miss.
func trackNumber(item payload.Item) int {
	if n := item.Field("trackNumber").Int(); n > 0 {
		return n
	}
	if n := item.Field("track_number").Int(); n > 0 {
		return n
	}
	if n := item.Wrapper().Field("index").Int(); n > 0 {
		return n
	}
	return item.Pos()
}

// IsTrackLike reports whether an object carries the minimal track signature
// used when scanning loosely-typed artist page modules.
func IsTrackLike(v payload.Value) bool {
	return v.IsObject() && v.Has("id") && v.Has("title") && v.Has("duration")
}
