package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EmptyPayloads(t *testing.T) {
	kinds := []Kind{KindTrack, KindAlbum, KindArtist, KindPlaylist}
	payloads := []string{`null`, `{}`, `[]`}

	for _, kind := range kinds {
		for _, p := range payloads {
			ex := Extract(decode(t, p), kind)
			assert.Equal(t, ShapeEmpty, ex.Shape)
			assert.Empty(t, ex.Items)
		}
	}
}

func TestExtract_ContainerPathOrder(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantID  string
	}{
		{"items", `{"items": [{"id": "a"}]}`, "a"},
		{"kind dot items", `{"tracks": {"items": [{"id": "b"}]}}`, "b"},
		{"kind direct list", `{"tracks": [{"id": "c"}]}`, "c"},
		{"data direct list", `{"data": [{"id": "d"}]}`, "d"},
		{"top-level list", `[{"id": "e"}]`, "e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := Extract(decode(t, tt.payload), KindTrack)
			require.Len(t, ex.Items, 1)
			assert.Equal(t, tt.wantID, ex.Items[0].Field("id").Str())
		})
	}
}

func TestExtract_FirstNonEmptyPathWins(t *testing.T) {
	// An empty "items" must not shadow the populated "tracks.items".
	ex := Extract(decode(t, `{"items": [], "tracks": {"items": [{"id": "x"}]}}`), KindTrack)
	require.Len(t, ex.Items, 1)
	assert.Equal(t, "x", ex.Items[0].Field("id").Str())
}

func TestExtract_UnknownPathsYieldEmpty(t *testing.T) {
	ex := Extract(decode(t, `{"something": "else"}`), KindTrack)
	assert.Equal(t, ShapeLegacyFlat, ex.Shape)
	assert.Empty(t, ex.Items)
}

func TestExtract_UnwrapsVersionEnvelope(t *testing.T) {
	ex := Extract(decode(t, `{"data": {"items": [{"id": 7}]}, "version": 2}`), KindTrack)
	require.Len(t, ex.Items, 1)
	assert.Equal(t, "7", ex.Items[0].Field("id").Str())
}

func TestExtract_UnwrapsItemWrappers(t *testing.T) {
	ex := Extract(decode(t, `{"items": [
		{"item": {"id": 1, "title": "A"}, "type": "track", "index": 9},
		{"id": 2, "title": "B"}
	]}`), KindTrack)
	require.Len(t, ex.Items, 2)

	wrapped := ex.Items[0]
	assert.Equal(t, "A", wrapped.Field("title").Str())
	assert.Equal(t, 9, wrapped.Wrapper().Field("index").Int())
	assert.Equal(t, 1, wrapped.Pos())

	bare := ex.Items[1]
	assert.Equal(t, "B", bare.Field("title").Str())
	assert.Equal(t, 2, bare.Wrapper().Field("id").Int())
	assert.Equal(t, 2, bare.Pos())
}

func TestExtract_SkipsNilAndNestedArrayEntries(t *testing.T) {
	ex := Extract(decode(t, `{"items": [null, [1, 2], {"id": "keep"}]}`), KindTrack)
	require.Len(t, ex.Items, 1)
	assert.Equal(t, "keep", ex.Items[0].Field("id").Str())
	assert.Equal(t, 1, ex.Items[0].Pos())
}

func TestExtract_BuildsSideloadTable(t *testing.T) {
	ex := Extract(decode(t, `{
		"data": [{"id": "p1", "relationships": {}}],
		"included": [
			{"id": "42", "type": "artworks", "attributes": {"files": [{"href": "u"}]}},
			{"type": "artworks"}
		]
	}`), KindPlaylist)

	assert.Equal(t, ShapeJSONAPISideloaded, ex.Shape)
	require.Len(t, ex.Sideload, 1)

	res, ok := ex.Sideload.Lookup("42")
	require.True(t, ok)
	assert.Equal(t, "u", res.Path("attributes", "files").At(0).Field("href").Str())

	_, ok = ex.Sideload.Lookup("missing")
	assert.False(t, ok)
}
