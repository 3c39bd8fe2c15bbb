// Package openapi holds the document model and post-processing filters that
// turn the single swag-generated endpoint registry into the served Main and
// Demo documents.
package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// verbOrder is the canonical output order for operations within a path item.
var verbOrder = []string{"get", "put", "post", "delete", "options", "head", "patch"}

var verbSet = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true,
}

// Document is a Swagger 2.0 API description. Fields the filters never touch
// (definitions, security schemes, vendor extensions on the root object) are
// carried through as raw JSON.
type Document struct {
	Swagger             string          `json:"swagger,omitempty"`
	Info                Info            `json:"info"`
	Host                string          `json:"host,omitempty"`
	BasePath            string          `json:"basePath,omitempty"`
	Schemes             []string        `json:"schemes,omitempty"`
	Paths               Paths           `json:"paths"`
	Tags                []Tag           `json:"tags,omitempty"`
	Definitions         json.RawMessage `json:"definitions,omitempty"`
	SecurityDefinitions json.RawMessage `json:"securityDefinitions,omitempty"`
	Security            json.RawMessage `json:"security,omitempty"`
	ExternalDocs        json.RawMessage `json:"externalDocs,omitempty"`
}

// Info is the document metadata block. Title decides which logical document
// is being generated (see PartitionFilter).
type Info struct {
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Version        string          `json:"version,omitempty"`
	TermsOfService string          `json:"termsOfService,omitempty"`
	Contact        json.RawMessage `json:"contact,omitempty"`
	License        json.RawMessage `json:"license,omitempty"`
}

// Tag is a display category. Unique by name within a document.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Parse decodes raw swagger JSON into a Document. Path order in the source
// is preserved. A document that declares the same path twice is rejected
// with ErrDuplicatePath.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDocument, err)
	}
	return &doc, nil
}

// Paths maps path keys to path items. Unlike a plain Go map it remembers
// entry order, so serialized output is reproducible.
type Paths struct {
	keys  []string
	items map[string]*PathItem
}

// Len returns the number of path entries.
func (p *Paths) Len() int { return len(p.keys) }

// Keys returns a copy of the path keys in their current order.
func (p *Paths) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Get returns the path item stored under key.
func (p *Paths) Get(key string) (*PathItem, bool) {
	item, ok := p.items[key]
	return item, ok
}

// Set stores item under key, appending the key if it is new.
func (p *Paths) Set(key string, item *PathItem) {
	if p.items == nil {
		p.items = make(map[string]*PathItem)
	}
	if _, exists := p.items[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.items[key] = item
}

// UnmarshalJSON decodes a paths object token by token so that the order the
// paths appear in the source survives into the model.
func (p *Paths) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read paths object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("paths must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read path key: %w", err)
		}
		key := keyTok.(string)

		if _, exists := p.items[key]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicatePath, key)
		}

		var item PathItem
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("decode path item %q: %w", key, err)
		}
		p.Set(key, &item)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read paths object end: %w", err)
	}
	return nil
}

// MarshalJSON writes the path entries in their current order.
func (p *Paths) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(p.items[key])
		if err != nil {
			return nil, fmt.Errorf("marshal path item %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PathItem holds the operations registered under one path key, plus any
// non-verb fields ($ref, shared parameters) carried through untouched.
type PathItem struct {
	ops   map[string]*Operation
	extra map[string]json.RawMessage
}

// Operation returns the operation for the given lowercase HTTP verb.
func (pi *PathItem) Operation(verb string) (*Operation, bool) {
	op, ok := pi.ops[verb]
	return op, ok
}

// Verbs returns the item's HTTP verbs in canonical order.
func (pi *PathItem) Verbs() []string {
	var out []string
	for _, v := range verbOrder {
		if _, ok := pi.ops[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Operations returns the item's operations in canonical verb order.
func (pi *PathItem) Operations() []*Operation {
	var out []*Operation
	for _, v := range verbOrder {
		if op, ok := pi.ops[v]; ok {
			out = append(out, op)
		}
	}
	return out
}

// SetOperation stores op under the given lowercase HTTP verb.
func (pi *PathItem) SetOperation(verb string, op *Operation) {
	if pi.ops == nil {
		pi.ops = make(map[string]*Operation)
	}
	pi.ops[verb] = op
}

// UnmarshalJSON splits the item into verb operations and opaque extras.
func (pi *PathItem) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		if verbSet[key] {
			var op Operation
			if err := json.Unmarshal(raw, &op); err != nil {
				return fmt.Errorf("decode %s operation: %w", key, err)
			}
			pi.SetOperation(key, &op)
			continue
		}
		if pi.extra == nil {
			pi.extra = make(map[string]json.RawMessage)
		}
		pi.extra[key] = raw
	}
	return nil
}

// MarshalJSON writes verbs in canonical order followed by extras sorted by name.
func (pi *PathItem) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeField := func(key string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(v)
		return nil
	}

	for _, verb := range verbOrder {
		if op, ok := pi.ops[verb]; ok {
			if err := writeField(verb, op); err != nil {
				return nil, err
			}
		}
	}
	for _, key := range sortedKeys(pi.extra) {
		if err := writeField(key, pi.extra[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Operation is a single HTTP-verb handler. Only the tag list is modeled;
// everything else (summary, parameters, responses, extensions) is opaque
// payload the filters never inspect.
type Operation struct {
	Tags []string

	extra map[string]json.RawMessage
}

// UnmarshalJSON pulls the tag list out and keeps every other field raw.
func (op *Operation) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields["tags"]; ok {
		if err := json.Unmarshal(raw, &op.Tags); err != nil {
			return fmt.Errorf("decode operation tags: %w", err)
		}
		delete(fields, "tags")
	}
	if len(fields) > 0 {
		op.extra = fields
	}
	return nil
}

// MarshalJSON writes tags first, then the opaque fields sorted by name.
func (op *Operation) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	if len(op.Tags) > 0 {
		tags, err := json.Marshal(op.Tags)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`"tags":`)
		buf.Write(tags)
		first = false
	}
	for _, key := range sortedKeys(op.extra) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(op.extra[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
