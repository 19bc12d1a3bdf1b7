package synthview

import (
	"fmt"
	"github.com/viant/synthview/internal/lru"
	"go.uber.org/zap"
	"regexp"
	"sync"
)

const noMatch = -1

type (
	//Binding binds type name pattern with provider factory
	Binding struct {
		Pattern *regexp.Regexp
		Factory Factory
	}

	//Registry represents static type name pattern to provider table
	Registry struct {
		mux      sync.RWMutex
		bindings []*Binding
		matches  *lru.Cache[string, int]
		options  *options
	}
)

// AddSynthetic compiles pattern and adds a binding
func (r *Registry) AddSynthetic(pattern string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("factory was nil for pattern %v", pattern)
	}
	expr, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid type name pattern %v: %w", pattern, err)
	}
	r.mux.Lock()
	r.bindings = append(r.bindings, &Binding{Pattern: expr, Factory: factory})
	r.matches.Purge()
	r.mux.Unlock()
	r.options.logger.Debug("registered synthetic provider", zap.String("pattern", pattern))
	return nil
}

// Bindings returns registered bindings in registration order
func (r *Registry) Bindings() []*Binding {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return append([]*Binding{}, r.bindings...)
}

// Match returns binding matching supplied type name.
// Cached matches are read and stored under the read lock, so AddSynthetic purge cannot interleave.
func (r *Registry) Match(typeName string) (*Binding, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	index, ok := r.matches.Get(typeName)
	if !ok {
		index = r.match(typeName)
		r.matches.Set(typeName, index)
		if index != noMatch {
			r.options.logger.Debug("matched synthetic provider", zap.String("type", typeName), zap.Int("binding", index))
		}
	}
	if index == noMatch {
		return nil, false
	}
	return r.bindings[index], true
}

func (r *Registry) match(typeName string) int {
	for i, binding := range r.bindings {
		if binding.Pattern.MatchString(typeName) {
			return i
		}
	}
	return noMatch
}

// Provider creates a new provider bound to supplied value if its normalized type name matches a binding
func (r *Registry) Provider(value Value) (Provider, bool) {
	valueType := EnsureValueType(value.Type())
	if valueType == nil {
		return nil, false
	}
	binding, ok := r.Match(valueType.Name())
	if !ok {
		return nil, false
	}
	return binding.Factory(value), true
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	options := newOptions(opts)
	return &Registry{options: options, matches: lru.New[string, int](options.cacheSize)}
}

// Register binds boost container providers with supplied registrar
func Register(registrar Registrar, opts ...Option) error {
	options := newOptions(opts)
	config := DefaultConfig()
	config.Layout = options.layout
	return config.Register(registrar, opts...)
}
