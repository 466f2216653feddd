package provider

import (
	"fmt"
	"sync"

	"github.com/duet-ai/duet/pkg/hybrid/config"
	hyberrors "github.com/duet-ai/duet/pkg/hybrid/errors"
)

// Registry manages the available provider factories
type Registry struct {
	mu             sync.RWMutex
	defaultFactory string
	factories      map[string]ProviderFactory
}

// globalRegistry is the default registry instance
var globalRegistry = NewRegistry()

// NewRegistry creates a new provider registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]ProviderFactory),
	}
}

// RegisterFactory adds a provider factory to the registry
func (r *Registry) RegisterFactory(factory ProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := factory.Name()
	if name == "" {
		return hyberrors.New("registry", "register_factory",
			fmt.Errorf("provider factory name cannot be empty"))
	}

	if _, exists := r.factories[name]; exists {
		return hyberrors.New("registry", "register_factory",
			fmt.Errorf("provider factory %q already registered", name))
	}

	r.factories[name] = factory

	// If this is the first factory, make it the default
	if r.defaultFactory == "" {
		r.defaultFactory = name
	}

	return nil
}

// GetFactory returns a provider factory by name
func (r *Registry) GetFactory(name string) (ProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, hyberrors.New("registry", "get_factory",
			fmt.Errorf("provider factory %q not registered", name))
	}

	return factory, nil
}

// CreateProvider creates a provider instance using the specified factory
func (r *Registry) CreateProvider(name string, cfg config.Config) (Provider, error) {
	factory, err := r.GetFactory(name)
	if err != nil {
		return nil, err
	}

	return factory.Create(cfg)
}

// ListProviders returns a list of registered provider names
func (r *Registry) ListProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.factories))
	for name := range r.factories {
		result = append(result, name)
	}

	return result
}

// Global registry functions for convenience

// Register adds a provider factory to the global registry
func Register(factory ProviderFactory) error {
	return globalRegistry.RegisterFactory(factory)
}

// Get returns a provider factory from the global registry
func Get(name string) (ProviderFactory, error) {
	return globalRegistry.GetFactory(name)
}

// Create creates a provider instance using the global registry
func Create(name string, cfg config.Config) (Provider, error) {
	return globalRegistry.CreateProvider(name, cfg)
}

// List returns all registered provider names from the global registry
func List() []string {
	return globalRegistry.ListProviders()
}
