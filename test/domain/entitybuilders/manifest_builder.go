//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reqsync/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ManifestBuilder helps create test manifests with a fluent interface.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	path     string
	required []string
	optional map[string][]string
}

// NewManifestBuilder creates a new manifest builder with an empty required group.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "pyproject.toml",
		required:    []string{},
		optional:    map[string][]string{},
	}
}

// WithPath sets the manifest path.
func (b *ManifestBuilder) WithPath(path string) *ManifestBuilder {
	b.path = path
	return b
}

// WithRequirements appends requirement strings to the required group.
func (b *ManifestBuilder) WithRequirements(requirements ...string) *ManifestBuilder {
	b.required = append(b.required, requirements...)
	return b
}

// WithOptionalGroup adds a named optional group.
func (b *ManifestBuilder) WithOptionalGroup(name string, requirements ...string) *ManifestBuilder {
	b.optional[name] = append([]string(nil), requirements...)
	return b
}

// Build creates the manifest (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildManifest()
}

// BuildManifest creates the manifest with a concrete return type. Optional
// groups follow the required group, sorted by name.
func (b *ManifestBuilder) BuildManifest() *entities.Manifest {
	groups := []entities.DependencyGroup{{
		Name:         entities.RequiredGroup,
		Requirements: append([]string(nil), b.required...),
	}}
	for _, name := range sortedKeys(b.optional) {
		groups = append(groups, entities.DependencyGroup{
			Name:         name,
			Optional:     true,
			Requirements: append([]string(nil), b.optional[name]...),
		})
	}
	return &entities.Manifest{Path: b.path, Groups: groups}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "pyproject.toml"
	b.required = []string{}
	b.optional = map[string][]string{}
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	optional := make(map[string][]string, len(b.optional))
	for name, requirements := range b.optional {
		optional[name] = append([]string(nil), requirements...)
	}
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		required:    append([]string(nil), b.required...),
		optional:    optional,
	}
}
