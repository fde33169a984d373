package payload

// Kind is the entity-kind hint used to pick candidate container paths.
// Its string form matches the plural container key the legacy flat encoding
// uses ("tracks", "albums", ...).
type Kind string

const (
	KindTrack    Kind = "tracks"
	KindAlbum    Kind = "albums"
	KindArtist   Kind = "artists"
	KindPlaylist Kind = "playlists"
)

// Item is one extracted raw item. Raw fields are read through the embedded
// Value; the original wrapper object (when the item arrived as
// {item: {...}, type: "..."}) stays reachable for positional metadata.
type Item struct {
	Value

	wrapper Value
	pos     int
}

// Wrapper returns the enclosing wrapper object, or the item itself when the
// item was not wrapped.
func (it Item) Wrapper() Value {
	return it.wrapper
}

// Pos returns the 1-based position of the item in the extracted sequence.
func (it Item) Pos() int {
	return it.pos
}

// Sideload is the JSON:API "included" table, mapping resource id to the
// sideloaded resource object.
type Sideload map[string]Value

// Lookup resolves a referenced resource by id.
func (s Sideload) Lookup(id string) (Value, bool) {
	if s == nil || id == "" {
		return Value{}, false
	}
	v, ok := s[id]
	return v, ok
}

// Extraction is the result of pulling items out of a classified container.
type Extraction struct {
	// Shape is the classification of the unwrapped payload.
	Shape Shape
	// Items is the ordered raw item sequence. Empty when no known container
	// path matched; that is a structural miss, not an error.
	Items []Item
	// Sideload is the "included" resource table, nil unless present.
	Sideload Sideload
}

// containerPaths lists every known container location for a kind, in the
// order they are tried. The first path yielding a non-empty sequence wins.
func containerPaths(v Value, kind Kind) []Value {
	return []Value{
		v.Field("items"),
		v.Field(string(kind)).Field("items"),
		v.Field(string(kind)),
		v.Field("data"),
		v,
	}
}

// Extract classifies a raw payload, unwraps version envelopes, and returns
// the ordered raw item sequence for the given entity kind plus the sideload
// table when the payload is JSON:API shaped. An absent payload or a payload
// with none of the known container paths yields an empty sequence.
func Extract(v Value, kind Kind) Extraction {
	v = Unwrap(v)

	ex := Extraction{Shape: Classify(v)}
	if ex.Shape == ShapeEmpty {
		return ex
	}

	ex.Sideload = BuildSideload(v)

	for _, container := range containerPaths(v, kind) {
		items := AsItems(container)
		if len(items) > 0 {
			ex.Items = items
			break
		}
	}
	return ex
}

// AsItems converts a candidate container value into the wrapped item
// sequence. Only array containers qualify; each element is unwrapped via
// unwrapItem. Nil elements are dropped, nested arrays are skipped.
func AsItems(container Value) []Item {
	list, ok := container.Array()
	if !ok {
		return nil
	}

	items := make([]Item, 0, len(list))
	for _, el := range list {
		raw := From(el)
		if raw.IsNil() || raw.IsArray() {
			continue
		}
		items = append(items, unwrapItem(raw, len(items)+1))
	}
	return items
}

// unwrapItem peels the single-key {item: {...}, type: "..."} wrapper some
// endpoints put around each entry. The wrapper stays attached so fields like
// the positional "index" remain available as fallback metadata.
func unwrapItem(raw Value, pos int) Item {
	inner := raw
	if raw.Has("item") && raw.Field("item").IsObject() {
		inner = raw.Field("item")
	}
	return Item{Value: inner, wrapper: raw, pos: pos}
}

// BuildSideload indexes the top-level "included" array by resource id.
// Resources without an id are unreachable by reference and are dropped.
func BuildSideload(v Value) Sideload {
	list, ok := v.Field("included").Array()
	if !ok {
		return nil
	}

	table := make(Sideload, len(list))
	for _, el := range list {
		res := From(el)
		id := res.Field("id").Str()
		if id == "" {
			continue
		}
		table[id] = res
	}
	return table
}
