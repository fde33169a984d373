package payload

// Shape identifies one of the closed set of structurally distinct layouts the
// catalog API is known to emit for the same logical resource.
type Shape int

const (
	// ShapeEmpty marks an absent or contentless payload.
	ShapeEmpty Shape = iota
	// ShapeVersionEnvelope marks a {data: ..., version: ...} wrapper emitted
	// by v2 endpoints. The real payload is under "data" and must be
	// re-classified after unwrapping.
	ShapeVersionEnvelope
	// ShapeJSONAPISideloaded marks a JSON:API style payload carrying
	// relationship references and/or a top-level "included" resource table.
	ShapeJSONAPISideloaded
	// ShapeDirectList marks a payload whose top-level value is itself the
	// item sequence.
	ShapeDirectList
	// ShapeLegacyFlat marks the legacy flat object encoding; items live under
	// kind-specific container keys.
	ShapeLegacyFlat
)

// String returns the shape tag name.
func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeVersionEnvelope:
		return "version-envelope"
	case ShapeJSONAPISideloaded:
		return "jsonapi-sideloaded"
	case ShapeDirectList:
		return "direct-list"
	case ShapeLegacyFlat:
		return "legacy-flat"
	default:
		return "unknown"
	}
}

// Classify tags a raw payload with its shape. The rules are ordered: empty
// wins over everything, then the version envelope, then JSON:API markers,
// then a top-level sequence; anything else is legacy flat.
func Classify(v Value) Shape {
	if v.IsEmpty() {
		return ShapeEmpty
	}
	if v.Has("data") && v.Has("version") {
		return ShapeVersionEnvelope
	}
	if v.Has("included") || v.Has("relationships") || anyItemHasRelationships(v) {
		return ShapeJSONAPISideloaded
	}
	if v.IsArray() {
		return ShapeDirectList
	}
	return ShapeLegacyFlat
}

// anyItemHasRelationships checks the candidate item lists ("data" or "items")
// for JSON:API relationship markers, since some endpoints sideload resources
// without a top-level "included" table.
func anyItemHasRelationships(v Value) bool {
	for _, key := range []string{"data", "items"} {
		list, ok := v.Field(key).Array()
		if !ok {
			continue
		}
		for _, el := range list {
			if From(el).Has("relationships") {
				return true
			}
		}
	}
	return false
}

// Unwrap peels version envelopes until the payload classifies as something
// else. Classification is re-entrant: an envelope may wrap another envelope.
func Unwrap(v Value) Value {
	for Classify(v) == ShapeVersionEnvelope {
		v = v.Field("data")
	}
	return v
}
