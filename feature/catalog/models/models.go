package models

import "encoding/json"

// ID is a catalog identifier. Upstream identifiers are not guaranteed
// numeric, so the canonical form is a string that remembers whether it was a
// JSON number and re-encodes as one when it was.
type ID string

// MarshalJSON emits the id as a bare number when it looks like one, and as a
// quoted string otherwise. Absent ids encode as null.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if isCanonicalInteger(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// isCanonicalInteger reports whether s is a valid bare JSON integer
// (digits only, no leading zero except "0" itself).
func isCanonicalInteger(s string) bool {
	if s == "" {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CoverRef is an opaque cover reference: either a catalog image token or an
// already-resolved URL. The engine does not distinguish the two; downstream
// rendering decides.
type CoverRef string

// Track is the canonical track record.
type Track struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	ArtistID    ID       `json:"artistId,omitempty"`
	Album       string   `json:"album,omitempty"`
	AlbumID     ID       `json:"albumId,omitempty"`
	AlbumArtist string   `json:"albumArtist,omitempty"`
	TrackNumber int      `json:"trackNumber,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	Cover       CoverRef `json:"cover,omitempty"`
	Quality     string   `json:"quality,omitempty"`
}

// Album is the canonical album record. Year is a derived 4-digit string and
// is always present, possibly empty, so downstream sorting stays total.
type Album struct {
	ID         ID       `json:"id"`
	Title      string   `json:"title"`
	Year       string   `json:"year"`
	Cover      CoverRef `json:"cover,omitempty"`
	TrackCount int      `json:"numberOfTracks,omitempty"`
}

// Artist is the canonical artist record.
type Artist struct {
	ID         ID       `json:"id"`
	Name       string   `json:"name"`
	Picture    CoverRef `json:"picture,omitempty"`
	Popularity int      `json:"popularity,omitempty"`
}

// Playlist is the canonical playlist record. The id is always the string
// form of uuid-or-id, since upstream playlist sources mix UUIDs and integers.
type Playlist struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Creator     string   `json:"creator,omitempty"`
	Description string   `json:"description,omitempty"`
	TrackCount  int      `json:"numberOfTracks,omitempty"`
	Cover       CoverRef `json:"cover,omitempty"`
}

// PlaylistDetail is the playlist endpoint aggregate: the playlist identity
// (nil when the source payload carried none) plus its reconciled tracks.
type PlaylistDetail struct {
	Playlist *Playlist `json:"playlist"`
	Items    []Track   `json:"items"`
}

// ArtistPage is the artist endpoint aggregate. Tracks is capped at the top
// ten entries by the service.
type ArtistPage struct {
	Artist *Artist `json:"artist"`
	Tracks []Track `json:"tracks"`
	Albums []Album `json:"albums"`
}
