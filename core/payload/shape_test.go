package payload

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode mirrors production decoding: numbers stay json.Number.
func decode(t *testing.T, s string) Value {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var raw any
	require.NoError(t, dec.Decode(&raw))
	return From(raw)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Shape
	}{
		{"null", `null`, ShapeEmpty},
		{"empty object", `{}`, ShapeEmpty},
		{"empty array", `[]`, ShapeEmpty},
		{"blank string", `"  "`, ShapeEmpty},
		{"version envelope", `{"data": {"items": []}, "version": 2}`, ShapeVersionEnvelope},
		{"included table", `{"data": [], "included": [{"id": "1"}]}`, ShapeJSONAPISideloaded},
		{"root relationships", `{"id": "p", "relationships": {}}`, ShapeJSONAPISideloaded},
		{"item relationships", `{"data": [{"id": "p", "relationships": {}}]}`, ShapeJSONAPISideloaded},
		{"direct list", `[{"id": 1}]`, ShapeDirectList},
		{"legacy flat", `{"tracks": {"items": []}}`, ShapeLegacyFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(decode(t, tt.payload)))
		})
	}
}

func TestClassify_NilValue(t *testing.T) {
	assert.Equal(t, ShapeEmpty, Classify(From(nil)))
}

// Envelopes may wrap other envelopes; unwrapping must re-classify rather
// than assume a fixed nested shape.
func TestUnwrap_Reentrant(t *testing.T) {
	v := decode(t, `{"data": {"data": {"items": [{"id": 1}]}, "version": 2}, "version": 2}`)

	unwrapped := Unwrap(v)
	assert.Equal(t, ShapeLegacyFlat, Classify(unwrapped))
	assert.Equal(t, 1, unwrapped.Field("items").Len())
}

func TestUnwrap_EnvelopeAroundList(t *testing.T) {
	v := decode(t, `{"data": [{"id": 1}], "version": 2}`)

	unwrapped := Unwrap(v)
	assert.Equal(t, ShapeDirectList, Classify(unwrapped))
}

func TestUnwrap_PassesThroughNonEnvelopes(t *testing.T) {
	v := decode(t, `{"items": [1]}`)
	assert.Equal(t, v.Raw(), Unwrap(v).Raw())
}
