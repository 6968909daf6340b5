// Package shortcut expands shortcut aliases into utility expressions,
// substituting theme token references along the way.
package shortcut

import (
	"errors"

	"github.com/rs/zerolog"

	"themekit/internal/domain"
	"themekit/internal/fuzzy"
)

const maxSuggestions = 3

// TokenSource is the read side of a theme registry.
type TokenSource interface {
	Lookup(ref string) (string, error)
	Refs() []string
}

// Expansion is the fully resolved form of one alias.
type Expansion struct {
	Alias     string   `json:"alias"`
	Utilities []string `json:"utilities"`
}

type Resolver struct {
	tokens TokenSource
	rules  map[string]domain.ShortcutRule
	order  []string
	logger zerolog.Logger
}

type Option func(*Resolver)

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver indexes rules by alias. Rules are validated individually;
// references and cycles are only checked when an alias is expanded.
func NewResolver(tokens TokenSource, rules []domain.ShortcutRule, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		tokens: tokens,
		rules:  make(map[string]domain.ShortcutRule, len(rules)),
		order:  make([]string, 0, len(rules)),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.rules[rule.Alias]; exists {
			return nil, &domain.DuplicateKeyError{Namespace: "shortcuts", Key: rule.Alias}
		}
		r.rules[rule.Alias] = rule
		r.order = append(r.order, rule.Alias)
	}

	return r, nil
}

// Expand resolves alias depth-first, left to right. Expressions that are
// themselves aliases (after token substitution) are expanded in place.
func (r *Resolver) Expand(alias string) ([]string, error) {
	w := &walker{resolver: r, onPath: make(map[string]bool)}
	if err := w.expand(alias); err != nil {
		return nil, err
	}

	r.logger.Debug().
		Str("alias", alias).
		Int("utilities", len(w.out)).
		Msg("expanded alias")

	return w.out, nil
}

// ExpandAll expands every alias in declaration order and stops at the first
// failure.
func (r *Resolver) ExpandAll() ([]Expansion, error) {
	expansions := make([]Expansion, 0, len(r.order))
	for _, alias := range r.order {
		utilities, err := r.Expand(alias)
		if err != nil {
			return nil, err
		}
		expansions = append(expansions, Expansion{Alias: alias, Utilities: utilities})
	}
	return expansions, nil
}

// Validate expands every alias and joins all failures, so a single run
// reports every offending alias and token.
func (r *Resolver) Validate() error {
	var errs []error
	for _, alias := range r.order {
		if _, err := r.Expand(alias); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Resolver) Rule(alias string) (domain.ShortcutRule, bool) {
	rule, exists := r.rules[alias]
	return rule, exists
}

// Aliases returns aliases in declaration order.
func (r *Resolver) Aliases() []string {
	aliases := make([]string, len(r.order))
	copy(aliases, r.order)
	return aliases
}

func (r *Resolver) Len() int {
	return len(r.order)
}

// walker carries the state of one Expand call
type walker struct {
	resolver *Resolver
	path     []string
	onPath   map[string]bool
	out      []string
}

func (w *walker) expand(alias string) error {
	if w.onPath[alias] {
		cycle := make([]string, 0, len(w.path)+1)
		cycle = append(cycle, w.path...)
		return &domain.CyclicAliasError{Path: append(cycle, alias)}
	}

	rule, exists := w.resolver.rules[alias]
	if !exists {
		return &domain.UnknownAliasError{
			Alias:       alias,
			Suggestions: fuzzy.Suggest(alias, w.resolver.order, maxSuggestions),
		}
	}

	w.onPath[alias] = true
	w.path = append(w.path, alias)
	defer func() {
		delete(w.onPath, alias)
		w.path = w.path[:len(w.path)-1]
	}()

	for _, expr := range rule.Expressions() {
		utility, ref, err := substitute(expr, w.resolver.tokens.Lookup)
		if err != nil {
			return &domain.UnknownTokenError{
				Alias:       alias,
				Reference:   ref,
				Suggestions: fuzzy.Suggest(ref, w.resolver.tokens.Refs(), maxSuggestions),
			}
		}

		if _, isAlias := w.resolver.rules[utility]; isAlias {
			if err := w.expand(utility); err != nil {
				return err
			}
			continue
		}

		w.out = append(w.out, utility)
	}

	return nil
}
