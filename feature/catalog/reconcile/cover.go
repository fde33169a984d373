package reconcile

import (
	"tunebridge/core/payload"
	"tunebridge/feature/catalog/models"
)

// coverKeys is the field priority order for direct cover candidates.
// squareImage (the square thumb) beats the full image, which beats the
// legacy cover/picture/imageId aliases.
var coverKeys = []string{"squareImage", "image", "cover", "picture", "imageId"}

// coverRelNames are the relationship names that may reference sideloaded
// cover art, including the case variants some endpoint versions emit.
var coverRelNames = []string{"coverArt", "coverart", "thumbnailArt"}

// ResolveCover resolves a display-ready cover reference from a raw item.
// The priority chain is: JSON:API attributes, then the item's own root
// fields, then relationship resolution through the sideload table. Once a
// tier yields a candidate, later tiers are never consulted. Every lookup
// tolerates missing intermediate keys; the empty CoverRef means no cover.
func ResolveCover(item payload.Value, sideload payload.Sideload) models.CoverRef {
	attrs := item.Field("attributes")
	for _, key := range coverKeys {
		if val := attrs.Field(key).Str(); val != "" {
			return models.CoverRef(val)
		}
	}

	for _, key := range coverKeys {
		if val := item.Field(key).Str(); val != "" {
			return models.CoverRef(val)
		}
	}

	return resolveCoverRelationship(item.Field("relationships"), sideload)
}

// resolveCoverRelationship follows a cover relationship reference into the
// sideload table. The reference may be a single object or a list (first
// entry wins). A resolved resource with a files list yields its first href;
// otherwise the raw resource id doubles as the cover token.
func resolveCoverRelationship(rels payload.Value, sideload payload.Sideload) models.CoverRef {
	var rel payload.Value
	for _, name := range coverRelNames {
		if candidate := rels.Field(name); !candidate.IsNil() {
			rel = candidate
			break
		}
	}

	data := rel.Field("data")
	if data.IsArray() {
		data = data.At(0)
	}
	coverID := data.Field("id").Str()
	if coverID == "" {
		return ""
	}

	res, ok := sideload.Lookup(coverID)
	if !ok {
		return models.CoverRef(coverID)
	}

	files, _ := res.Path("attributes", "files").Array()
	for _, f := range files {
		if href := payload.From(f).Field("href").Str(); href != "" {
			return models.CoverRef(href)
		}
	}
	return models.CoverRef(coverID)
}

// identity reads the item id. Catalog ids arrive as JSON numbers or strings;
// the canonical form is the trimmed string. ok is false when the item
// carries no usable id, which drops it from result sequences.
func identity(v payload.Value) (models.ID, bool) {
	id := v.Field("id").Str()
	if id == "" {
		return "", false
	}
	return models.ID(id), true
}
