// Package views loads the catalogue of display tabs from embedded YAML.
package views

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	model "datavisor/internal/domain/models/format"
)

//go:embed config/*.yaml
var configFiles embed.FS

const catalogueFile = "config/views.yaml"

// Registry is the read-only view catalogue. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	views    []Descriptor
	byID     map[model.View]*Descriptor
	defaults map[model.Kind]model.View
}

// NewRegistry loads the embedded catalogue.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile(catalogueFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", catalogueFile, err)
	}
	return Parse(data)
}

// Parse builds a registry from catalogue YAML. Every kind must have exactly
// one default view.
func Parse(data []byte) (*Registry, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal view catalogue: %w", err)
	}
	if len(cat.Views) == 0 {
		return nil, fmt.Errorf("view catalogue is empty")
	}

	r := &Registry{
		views:    cat.Views,
		byID:     make(map[model.View]*Descriptor, len(cat.Views)),
		defaults: make(map[model.Kind]model.View),
	}
	for i := range r.views {
		d := &r.views[i]
		r.byID[d.ID] = d
		for _, kind := range d.DefaultFor {
			if !kind.Valid() {
				return nil, fmt.Errorf("view %s: unknown kind %q", d.ID, kind)
			}
			if prev, dup := r.defaults[kind]; dup {
				return nil, fmt.Errorf("kind %s is the default of both %s and %s", kind, prev, d.ID)
			}
			r.defaults[kind] = d.ID
		}
	}
	for _, kind := range model.Kinds() {
		if _, ok := r.defaults[kind]; !ok {
			return nil, fmt.Errorf("kind %s has no default view", kind)
		}
	}
	return r, nil
}

// List returns the views in catalogue order.
func (r *Registry) List() []Descriptor {
	return r.views
}

// Get returns the descriptor for id.
func (r *Registry) Get(id model.View) (*Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Has reports whether id names a view in the catalogue.
func (r *Registry) Has(id model.View) bool {
	_, ok := r.byID[id]
	return ok
}

// DefaultView returns the tab a kind opens on.
func (r *Registry) DefaultView(kind model.Kind) model.View {
	if v, ok := r.defaults[kind]; ok {
		return v
	}
	return model.ViewRaw
}

// IDs returns the view ids in catalogue order.
func (r *Registry) IDs() []model.View {
	ids := make([]model.View, len(r.views))
	for i, d := range r.views {
		ids[i] = d.ID
	}
	return ids
}
