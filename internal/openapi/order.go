package openapi

import "sort"

// SortPathsFilter rewrites the document's path map in ascending ordinal
// order of path key, so serialized output does not depend on registration
// order. Path item contents are untouched.
type SortPathsFilter struct{}

// Apply sorts doc's paths in place.
func (SortPathsFilter) Apply(doc *Document) {
	keys := doc.Paths.Keys()
	sort.Strings(keys)

	var sorted Paths
	for _, key := range keys {
		item, _ := doc.Paths.Get(key)
		sorted.Set(key, item)
	}
	doc.Paths = sorted
}
