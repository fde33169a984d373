// Package payload provides the shape-tolerant machinery for working with raw
// catalog API responses. The upstream catalog emits the same logical entity in
// several structurally different layouts depending on endpoint version, so
// nothing in this package assumes a fixed schema.
//
// # Components
//
//  1. Value: a thin wrapper over a decoded JSON value (any) with tolerant
//     accessors. Missing keys, wrong types, and nil values all degrade to
//     zero values instead of panicking.
//
//  2. Shape classification: every payload is tagged with one of a closed set
//     of known shapes (empty, version envelope, JSON:API sideloaded, direct
//     list, legacy flat). Version envelopes are unwrapped re-entrantly.
//
//  3. Item extraction: given a classified container and an entity kind, a
//     flat ordered sequence of items is produced, unwrapping single-key
//     {item, type} wrappers and capturing the JSON:API "included" sideload
//     table when present.
//
//  4. Recursive location: bounded depth-first search for an identified
//     sub-object buried inside arbitrarily nested page modules.
//
//  5. Fallback cascade: an ordered-strategy runner that tries alternative
//     sources until one yields a non-empty result, absorbing individual
//     source failures and surfacing only a total failure.
//
// The package is pure: it never mutates its input and holds no state between
// calls, so all functions are safe for concurrent use.
package payload
