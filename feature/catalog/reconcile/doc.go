// Package reconcile maps heterogeneous raw catalog items into canonical
// records. One reconciliation function exists per entity kind; each is pure
// and total over its input shape space: missing optional fields degrade to
// zero values, and only a missing identity drops an item.
//
// Cover resolution is best-effort and ordered. Candidates are consulted
// first-match-wins across attribute-style fields, root-level fields, and
// finally JSON:API relationship references resolved through the sideload
// table. A null cover is a normal outcome, not an error.
package reconcile
