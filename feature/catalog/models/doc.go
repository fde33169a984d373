// Package models defines the canonical, front-end-ready records the catalog
// reconciliation produces. The records are the stable output shape: whatever
// layout the upstream catalog emitted, the presentation layer only ever sees
// these types. All records are plain immutable values constructed fresh per
// request; nothing here points back into the raw payload.
package models
