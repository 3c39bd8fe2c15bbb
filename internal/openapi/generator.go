package openapi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mwhitten/apiforge/internal/cache"
	"github.com/mwhitten/apiforge/internal/metrics"
)

// Variant names a logical document generated from the shared registry.
type Variant string

const (
	VariantMain Variant = "main"
	VariantDemo Variant = "demo"
)

// Source supplies the raw, unpartitioned swagger JSON. In the server this is
// the swag registry; tests substitute a fixture.
type Source interface {
	ReadDoc() (string, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() (string, error)

func (f SourceFunc) ReadDoc() (string, error) { return f() }

// GeneratorConfig holds the per-variant titles and pipeline settings.
type GeneratorConfig struct {
	MainTitle  string
	DemoTitle  string
	DemoPrefix string
	CacheTTL   time.Duration
}

// Generator produces the final per-variant documents: it reads the raw
// registry, stamps the variant title, runs the filter pipeline, and caches
// the serialized result.
type Generator struct {
	source   Source
	cfg      GeneratorConfig
	pipeline Pipeline
	cache    *cache.Cache[[]byte]
}

// NewGenerator wires a generator around source with the production pipeline.
func NewGenerator(source Source, cfg GeneratorConfig) *Generator {
	return &Generator{
		source:   source,
		cfg:      cfg,
		pipeline: NewPipeline(cfg.DemoPrefix),
		cache:    cache.New[[]byte](cfg.CacheTTL),
	}
}

// Document returns the serialized document for the given variant, generating
// it if no cached copy is live.
func (g *Generator) Document(variant Variant) ([]byte, error) {
	if out, ok := g.cache.Get(string(variant)); ok {
		metrics.DocCacheHitsTotal.Inc()
		return out, nil
	}

	title, err := g.title(variant)
	if err != nil {
		return nil, err
	}

	raw, err := g.source.ReadDoc()
	if err != nil {
		metrics.DocGenerationErrorsTotal.Inc()
		return nil, fmt.Errorf("read document source: %w", err)
	}

	doc, err := Parse([]byte(raw))
	if err != nil {
		metrics.DocGenerationErrorsTotal.Inc()
		return nil, err
	}

	doc.Info.Title = title
	g.pipeline.Run(doc)

	out, err := json.Marshal(doc)
	if err != nil {
		metrics.DocGenerationErrorsTotal.Inc()
		return nil, fmt.Errorf("serialize %s document: %w", variant, err)
	}

	g.cache.Set(string(variant), out)
	metrics.DocGenerationsTotal.WithLabelValues(string(variant)).Inc()
	return out, nil
}

// Invalidate drops any cached copy of the given variant.
func (g *Generator) Invalidate(variant Variant) {
	g.cache.Delete(string(variant))
}

func (g *Generator) title(variant Variant) (string, error) {
	switch variant {
	case VariantMain:
		return g.cfg.MainTitle, nil
	case VariantDemo:
		return g.cfg.DemoTitle, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}
