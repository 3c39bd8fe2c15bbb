package openapi

import (
	"sort"
	"strings"
)

// Tag names assigned to operations that declare none.
const (
	MainTag = "Main"
	DemoTag = "Demo"
)

// DefaultDemoPrefix marks demo endpoints. The prefix test is the single
// source of truth for document membership.
const DefaultDemoPrefix = "/api/demo/"

// PartitionFilter splits one endpoint registry into two logical documents.
// The document's title decides which one is being generated: a title
// containing "demo" (case-insensitive) selects the Demo document. Paths are
// kept only when their demo-prefix test matches the target; dropped paths
// are removed from the document entirely. Untagged operations on retained
// paths receive the target's default tag, and the document's tag set is
// rebuilt from what the retained operations actually reference.
//
// The filter is idempotent: a second application retains every path and
// finds every operation already tagged.
type PartitionFilter struct {
	// DemoPrefix overrides DefaultDemoPrefix when non-empty.
	DemoPrefix string
}

// Apply partitions and retags doc in place.
func (f PartitionFilter) Apply(doc *Document) {
	prefix := strings.ToLower(f.DemoPrefix)
	if prefix == "" {
		prefix = strings.ToLower(DefaultDemoPrefix)
	}
	targetDemo := strings.Contains(strings.ToLower(doc.Info.Title), "demo")

	defaultTag := MainTag
	if targetDemo {
		defaultTag = DemoTag
	}

	var kept Paths
	for _, key := range doc.Paths.Keys() {
		demoEndpoint := strings.HasPrefix(strings.ToLower(key), prefix)
		if demoEndpoint != targetDemo {
			continue
		}
		item, _ := doc.Paths.Get(key)
		for _, op := range item.Operations() {
			if len(op.Tags) == 0 {
				op.Tags = []string{defaultTag}
			}
		}
		kept.Set(key, item)
	}

	doc.Paths = kept
	doc.Tags = rebuildTagSet(doc)
}

// DefaultTagFilter is the non-partitioning legacy variant: no path is ever
// dropped, and every untagged operation receives the configured tag
// regardless of path prefix or document title.
type DefaultTagFilter struct {
	// Tag defaults to MainTag when empty.
	Tag string
}

// Apply tags untagged operations and rebuilds the document's tag set.
func (f DefaultTagFilter) Apply(doc *Document) {
	tag := f.Tag
	if tag == "" {
		tag = MainTag
	}
	for _, key := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(key)
		for _, op := range item.Operations() {
			if len(op.Tags) == 0 {
				op.Tags = []string{tag}
			}
		}
	}
	doc.Tags = rebuildTagSet(doc)
}

// rebuildTagSet collects every tag name referenced by the document's
// operations, deduplicated and sorted by name. Descriptions from the prior
// tag set are kept for names that survive.
func rebuildTagSet(doc *Document) []Tag {
	descriptions := make(map[string]string, len(doc.Tags))
	for _, t := range doc.Tags {
		if t.Description != "" {
			descriptions[t.Name] = t.Description
		}
	}

	seen := make(map[string]bool)
	var names []string
	for _, key := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(key)
		for _, op := range item.Operations() {
			for _, name := range op.Tags {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}
	sort.Strings(names)

	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, Tag{Name: name, Description: descriptions[name]})
	}
	return tags
}
