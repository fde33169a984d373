package reconcile

import (
	"tunebridge/core/payload"
	"tunebridge/feature/catalog/models"
)

const untitledPlaylist = "Untitled Playlist"

// Playlist reconciles one raw playlist item into the canonical record.
// Playlist sources mix UUIDs and integer ids, so the canonical id is always
// the string form of uuid-or-id; an item carrying neither is dropped.
func Playlist(item payload.Item, sideload payload.Sideload) (models.Playlist, bool) {
	id := playlistID(item.Value)
	if id == "" {
		return models.Playlist{}, false
	}

	attrs := item.Field("attributes")

	title := firstNonEmpty(
		attrs.Field("name").Str(),
		item.Field("title").Str(),
		item.Field("name").Str(),
	)
	if title == "" {
		title = untitledPlaylist
	}

	p := models.Playlist{
		ID:          id,
		Title:       title,
		Creator:     playlistCreator(item.Field("creator")),
		Description: firstNonEmpty(attrs.Field("description").Str(), item.Field("description").Str()),
		Cover:       ResolveCover(item.Value, sideload),
	}

	p.TrackCount = playlistTrackCount(item.Value)
	return p, true
}

// playlistTrackCount applies the count field fallback: the JSON:API
// attributes count first, then the flat field variants.
func playlistTrackCount(v payload.Value) int {
	for _, n := range []int{
		v.Path("attributes", "numberOfItems").Int(),
		v.Field("numberOfTracks").Int(),
		v.Field("numberOfItems").Int(),
	} {
		if n > 0 {
			return n
		}
	}
	return 0
}

// PlaylistInfo locates and reconciles the playlist identity inside a
// playlist-tracks payload. The identity may live under "playlist" or
// "info", be the first JSON:API data resource, or be the root object
// itself. fallbackID backstops the id so a playlist object never loses its
// identity. Returns nil only for an empty payload.
func PlaylistInfo(v payload.Value, sideload payload.Sideload, fallbackID string) *models.Playlist {
	v = payload.Unwrap(v)
	if payload.Classify(v) == payload.ShapeEmpty {
		return nil
	}

	info := v.Field("playlist")
	if info.IsNil() {
		info = v.Field("info")
	}
	if info.IsNil() {
		if data := v.Field("data"); data.IsArray() {
			info = data.At(0)
		}
	}
	if info.IsNil() {
		info = v
	}
	if !info.IsObject() {
		// A direct-list payload carries tracks only; there is no playlist
		// object to reconcile.
		return nil
	}

	var p models.Playlist
	ok := false
	if items := payload.AsItems(payload.From([]any{info.Raw()})); len(items) == 1 {
		p, ok = Playlist(items[0], sideload)
	}
	if !ok {
		p = models.Playlist{ID: fallbackID, Title: untitledPlaylist}
		if title := firstNonEmpty(info.Field("title").Str(), info.Field("name").Str()); title != "" {
			p.Title = title
		}
		p.Description = info.Field("description").Str()
		p.TrackCount = playlistTrackCount(info)
		p.Cover = ResolveCover(info, sideload)
	}

	// A sideloaded cover may hang off the payload root rather than the
	// playlist object itself.
	if p.Cover == "" {
		p.Cover = resolveCoverRelationship(v.Field("relationships"), sideload)
	}
	return &p
}

func playlistID(v payload.Value) string {
	if uuid := v.Field("uuid").Str(); uuid != "" {
		return uuid
	}
	return v.Field("id").Str()
}

// playlistCreator tolerates both encodings of the creator: a nested object
// with a name, or a bare display string.
func playlistCreator(creator payload.Value) string {
	if creator.IsObject() {
		return creator.Field("name").Str()
	}
	return creator.Str()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
