package openapi

// Filter is one post-processing step over an assembled document. Filters
// mutate the document in place and must be deterministic: the same input
// document always yields the same output.
type Filter interface {
	Apply(doc *Document)
}

// Pipeline is an ordered list of filters. Construction order is execution
// order; the partition filter must run before the sort filter so that only
// retained paths are ordered.
type Pipeline []Filter

// Run applies every filter to doc in order.
func (p Pipeline) Run(doc *Document) {
	for _, f := range p {
		f.Apply(doc)
	}
}

// NewPipeline returns the production pipeline: partition into the target
// logical document, then sort paths for stable output.
func NewPipeline(demoPrefix string) Pipeline {
	return Pipeline{
		PartitionFilter{DemoPrefix: demoPrefix},
		SortPathsFilter{},
	}
}
