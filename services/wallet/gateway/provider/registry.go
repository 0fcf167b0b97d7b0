package provider

import (
	"fmt"

	"github.com/proxline/proxline/services/wallet"
)

// Registry selects payment providers by name
type Registry struct {
	providers map[string]wallet.PaymentProvider
}

// NewRegistry creates a registry over the given providers
func NewRegistry(providers ...wallet.PaymentProvider) *Registry {
	r := &Registry{providers: make(map[string]wallet.PaymentProvider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// Get returns the provider registered under name
func (r *Registry) Get(name string) (wallet.PaymentProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported payment provider: %s", name)
	}
	return p, nil
}
