// Package source holds the declarative registry of external job boards.
package source

import (
	"fmt"
	"os"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mzansijobs/careerhub/internal/types"
)

// Registry is the immutable set of configured sources, loaded once at
// startup.
type Registry struct {
	sources map[string]types.SourceConfig
}

// Default returns the built-in registry of South African job boards.
func Default() *Registry {
	reg := &Registry{sources: make(map[string]types.SourceConfig)}
	for _, s := range builtinSources {
		reg.sources[s.Name] = s
	}
	return reg
}

// LoadFile reads a JSON source file, validates it against the registry
// schema, and returns a registry built from it. Unknown fields are rejected
// by the schema.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file %s: %w", path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(registrySchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("validate sources file: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("sources file %s is invalid: %v", path, msgs)
	}

	var cfgs []types.SourceConfig
	if err := unmarshalSources(data, &cfgs); err != nil {
		return nil, err
	}

	reg := &Registry{sources: make(map[string]types.SourceConfig, len(cfgs))}
	for _, s := range cfgs {
		if _, dup := reg.sources[s.Name]; dup {
			return nil, fmt.Errorf("duplicate source name %q", s.Name)
		}
		reg.sources[s.Name] = s
	}
	return reg, nil
}

// Get returns the source named name.
func (r *Registry) Get(name string) (types.SourceConfig, bool) {
	s, ok := r.sources[name]
	return s, ok
}

// List returns all sources sorted by name for stable iteration order.
func (r *Registry) List() []types.SourceConfig {
	out := make([]types.SourceConfig, 0, len(r.sources))
	for _, s := range r.sources {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of configured sources.
func (r *Registry) Len() int {
	return len(r.sources)
}
