package theme

import (
	"fmt"
	"sort"
	"strconv"

	"themekit/internal/domain"
)

// Registry holds theme tokens by namespace. The empty namespace holds flat
// tokens; every other namespace is a scale one level deep. A registry is
// filled once and then sealed; after that it is safe for concurrent reads.
type Registry struct {
	namespaces map[string]map[string]string
	order      []domain.Token
	sealed     bool
}

func NewRegistry() *Registry {
	return &Registry{
		namespaces: map[string]map[string]string{"": {}},
	}
}

// FromTokens registers tokens in order and seals the result.
func FromTokens(tokens []domain.Token) (*Registry, error) {
	r := NewRegistry()
	for _, t := range tokens {
		if err := r.Register(t.Namespace, t.Key, t.Value); err != nil {
			return nil, err
		}
	}
	r.Seal()
	return r, nil
}

// Register adds a token. Flat keys and scale names share the theme's color
// mapping, so a flat key may not reuse a scale name and vice versa.
func (r *Registry) Register(namespace, key, value string) error {
	if r.sealed {
		return fmt.Errorf("%w: cannot register %s", domain.ErrRegistrySealed, domain.JoinRef(namespace, key))
	}

	token := domain.Token{Namespace: namespace, Key: key, Value: value}
	if err := token.Validate(); err != nil {
		return err
	}

	flat := r.namespaces[""]
	if namespace == "" {
		if _, isScale := r.namespaces[key]; isScale {
			return &domain.DuplicateKeyError{Key: key}
		}
	} else if _, isFlat := flat[namespace]; isFlat {
		return &domain.DuplicateKeyError{Key: namespace}
	}

	scale, exists := r.namespaces[namespace]
	if !exists {
		scale = make(map[string]string)
		r.namespaces[namespace] = scale
	}
	if _, dup := scale[key]; dup {
		return &domain.DuplicateKeyError{Namespace: namespace, Key: key}
	}

	scale[key] = value
	r.order = append(r.order, token)
	return nil
}

// Get returns the exact declared value.
func (r *Registry) Get(namespace, key string) (string, error) {
	scale, exists := r.namespaces[namespace]
	if !exists {
		return "", &domain.NotFoundError{Namespace: namespace, Key: key}
	}
	value, exists := scale[key]
	if !exists {
		return "", &domain.NotFoundError{Namespace: namespace, Key: key}
	}
	return value, nil
}

// Lookup resolves a reference such as "pfBlue" or "pfGray.500".
func (r *Registry) Lookup(ref string) (string, error) {
	namespace, key := domain.SplitRef(ref)
	return r.Get(namespace, key)
}

func (r *Registry) Seal() {
	r.sealed = true
}

// Tokens returns all tokens in registration order.
func (r *Registry) Tokens() []domain.Token {
	tokens := make([]domain.Token, len(r.order))
	copy(tokens, r.order)
	return tokens
}

// Refs returns the reference name of every token in registration order.
func (r *Registry) Refs() []string {
	refs := make([]string, len(r.order))
	for i, t := range r.order {
		refs[i] = t.Ref()
	}
	return refs
}

// Namespaces returns the scale names, sorted.
func (r *Registry) Namespaces() []string {
	names := make([]string, 0, len(r.namespaces)-1)
	for name := range r.namespaces {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Scale returns the steps of a scale ordered numerically where possible.
func (r *Registry) Scale(namespace string) ([]domain.Token, error) {
	scale, exists := r.namespaces[namespace]
	if !exists || namespace == "" {
		return nil, &domain.NotFoundError{Namespace: namespace}
	}

	tokens := make([]domain.Token, 0, len(scale))
	for key, value := range scale {
		tokens = append(tokens, domain.Token{Namespace: namespace, Key: key, Value: value})
	}
	sort.Slice(tokens, func(i, j int) bool {
		return lessStep(tokens[i].Key, tokens[j].Key)
	})
	return tokens, nil
}

func (r *Registry) Len() int {
	return len(r.order)
}

// numeric steps first in numeric order, then the rest lexically
func lessStep(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai < bi
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a < b
	}
}
