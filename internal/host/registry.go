// Package host lets an integrating application pick a dictionary client by
// name. Clients are registered explicitly through a Registry rather than
// discovered globally.
package host

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/mwhite7112/woodpantry-dictlookup/internal/clients"
)

// LocalDictdName is the registry name of the local dictd proxy client.
const LocalDictdName = "en_LocalDictd"

var (
	ErrUnknownDictionary = errors.New("unknown dictionary")
	ErrDuplicate         = errors.New("dictionary already registered")
)

// Lookuper is what a registered dictionary must provide.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (string, error)
}

// Factory builds a fresh Lookuper.
type Factory func() Lookuper

type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a named factory. Names are unique.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return errors.New("register dictionary: name is required")
	}
	if f == nil {
		return fmt.Errorf("register dictionary %q: factory is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("register dictionary %q: %w", name, ErrDuplicate)
	}
	r.factories[name] = f
	return nil
}

// New builds the dictionary registered under name.
func (r *Registry) New(name string) (Lookuper, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDictionary, name)
	}
	return f(), nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterLocalDictd registers the local dictd proxy client under
// LocalDictdName. An empty baseURL keeps clients.DefaultProxyBaseURL.
func RegisterLocalDictd(r *Registry, baseURL string, httpClient *http.Client) error {
	return r.Register(LocalDictdName, func() Lookuper {
		return clients.NewLookupClient(
			clients.WithProxyBaseURL(baseURL),
			clients.WithHTTPClient(httpClient),
		)
	})
}
