package reconcile

import (
	"tunebridge/core/payload"
	"tunebridge/feature/catalog/models"
)

// Artist reconciles one raw artist item into the canonical record.
func Artist(item payload.Item, sideload payload.Sideload) (models.Artist, bool) {
	id, ok := identity(item.Value)
	if !ok {
		return models.Artist{}, false
	}

	a := models.Artist{
		ID:         id,
		Name:       item.Field("name").Str(),
		Popularity: item.Field("popularity").Int(),
		Picture:    artistPicture(item.Value, sideload),
	}
	return a, true
}

// artistPicture prefers the direct picture field, then the images array
// (whose first element's id and url are treated as interchangeable cover
// tokens), then the generic resolver.
func artistPicture(v payload.Value, sideload payload.Sideload) models.CoverRef {
	if pic := v.Field("picture").Str(); pic != "" {
		return models.CoverRef(pic)
	}
	first := v.Field("images").At(0)
	if pic := first.Field("id").Str(); pic != "" {
		return models.CoverRef(pic)
	}
	if pic := first.Field("url").Str(); pic != "" {
		return models.CoverRef(pic)
	}
	return ResolveCover(v, sideload)
}

// ArtistInfo reconciles the artist identity out of a full artist-page
// payload. Artist pages are module-nested: when the direct name or picture
// is absent, the page is searched recursively for the artist object buried
// inside its album/track lists. A page that yields no name at all still
// produces a record with a placeholder name, never a nil artist.
func ArtistInfo(page payload.Value, artistID string) models.Artist {
	a := models.Artist{
		ID:         models.ID(artistID),
		Name:       page.Field("name").Str(),
		Popularity: page.Field("popularity").Int(),
		Picture:    models.CoverRef(page.Field("picture").Str()),
	}

	if a.Name == "" || a.Picture == "" {
		if found, ok := payload.FindByID(page, artistID); ok {
			if a.Name == "" {
				a.Name = found.Field("name").Str()
			}
			if a.Picture == "" {
				a.Picture = models.CoverRef(found.Field("picture").Str())
			}
		}
	}

	if a.Picture == "" {
		a.Picture = artistPicture(page, nil)
	}
	if a.Name == "" {
		a.Name = "Artist " + artistID
	}
	return a
}

// ArtistPageAlbums extracts albums from the module-nested artist page
// structure: albums.rows[].modules[].pagedList.items[]. When that descent
// yields nothing it falls back to the flatter albums.items path. A zero
// result here is the caller's cue to cascade to the direct albums endpoint.
func ArtistPageAlbums(page payload.Value, sideload payload.Sideload) []models.Album {
	albumsData := page.Field("albums")

	var albums []models.Album
	rows, _ := albumsData.Field("rows").Array()
	for _, r := range rows {
		modules, _ := payload.From(r).Field("modules").Array()
		for _, m := range modules {
			pagedItems := payload.From(m).Path("pagedList", "items")
			albums = append(albums, albumsFromList(pagedItems, sideload)...)
		}
	}

	if len(albums) == 0 {
		albums = albumsFromList(albumsData.Field("items"), sideload)
	}
	return albums
}

// AlbumsFromPayload reconciles albums out of a direct albums endpoint
// response. Used as the cascade fallback when the artist page had none.
func AlbumsFromPayload(raw payload.Value, sideload payload.Sideload) []models.Album {
	ex := payload.Extract(raw, payload.KindAlbum)
	table := ex.Sideload
	if table == nil {
		table = sideload
	}

	albums := make([]models.Album, 0, len(ex.Items))
	for _, item := range ex.Items {
		if !IsAlbumLike(item.Value) {
			continue
		}
		if a, ok := Album(item, table); ok {
			albums = append(albums, a)
		}
	}
	return albums
}

func albumsFromList(container payload.Value, sideload payload.Sideload) []models.Album {
	items := payload.AsItems(container)
	albums := make([]models.Album, 0, len(items))
	for _, item := range items {
		if !IsAlbumLike(item.Value) {
			continue
		}
		if a, ok := Album(item, sideload); ok {
			albums = append(albums, a)
		}
	}
	return albums
}

// ArtistTopTracks extracts up to limit tracks from an artist page. The
// tracks container may be a direct list or nested under items/rows; entries
// must match the minimal track signature to qualify.
func ArtistTopTracks(page payload.Value, sideload payload.Sideload, limit int) []models.Track {
	container := page.Field("tracks")
	if !container.IsArray() {
		if nested := container.Field("items"); nested.IsArray() {
			container = nested
		} else {
			container = container.Field("rows")
		}
	}

	items := payload.AsItems(container)
	tracks := make([]models.Track, 0, limit)
	for _, item := range items {
		if len(tracks) >= limit {
			break
		}
		if !IsTrackLike(item.Value) {
			continue
		}
		if t, ok := Track(item, sideload); ok {
			tracks = append(tracks, t)
		}
	}
	return tracks
}
