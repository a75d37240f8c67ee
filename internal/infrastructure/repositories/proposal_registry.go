package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	domainRepos "github.com/rios0rios0/reqsync/internal/domain/repositories"
)

// ProposalFactory is a constructor function that creates a ProposalRepository from the proposal settings.
type ProposalFactory func(settings entities.ProposalSettings) domainRepos.ProposalRepository

// ProposalRegistry manages all registered proposal outputs.
type ProposalRegistry struct {
	outputs map[string]ProposalFactory
}

// NewProposalRegistry creates an empty proposal registry.
func NewProposalRegistry() *ProposalRegistry {
	return &ProposalRegistry{
		outputs: make(map[string]ProposalFactory),
	}
}

// Register adds a proposal factory under the given output name (e.g. "github").
func (r *ProposalRegistry) Register(name string, factory ProposalFactory) {
	r.outputs[name] = factory
}

// Get returns a configured proposal repository for the given settings.
func (r *ProposalRegistry) Get(settings entities.ProposalSettings) (domainRepos.ProposalRepository, error) {
	factory, ok := r.outputs[settings.Output]
	if !ok {
		return nil, fmt.Errorf("unknown proposal output: %q", settings.Output)
	}
	return factory(settings), nil
}

// Names returns the sorted list of registered output names.
func (r *ProposalRegistry) Names() []string {
	names := make([]string, 0, len(r.outputs))
	for name := range r.outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
