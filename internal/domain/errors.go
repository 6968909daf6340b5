package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrNotFound       = errors.New("token not found")
	ErrUnknownAlias   = errors.New("unknown alias")
	ErrUnknownToken   = errors.New("unknown token")
	ErrCyclicAlias    = errors.New("cyclic alias")
	ErrRegistrySealed = errors.New("registry is sealed")
)

// DuplicateKeyError reports a name declared twice in the same namespace.
// Namespace is "shortcuts" for aliases, "" for flat tokens, or a scale name.
type DuplicateKeyError struct {
	Namespace string
	Key       string
}

func (e *DuplicateKeyError) Error() string {
	if e.Namespace == "" {
		return fmt.Sprintf("%s: %q", ErrDuplicateKey, e.Key)
	}
	return fmt.Sprintf("%s: %q in %q", ErrDuplicateKey, e.Key, e.Namespace)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// NotFoundError reports a registry lookup miss.
type NotFoundError struct {
	Namespace string
	Key       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, JoinRef(e.Namespace, e.Key))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

type UnknownAliasError struct {
	Alias       string
	Suggestions []string
}

func (e *UnknownAliasError) Error() string {
	msg := fmt.Sprintf("%s: %q", ErrUnknownAlias, e.Alias)
	return withSuggestions(msg, e.Suggestions)
}

func (e *UnknownAliasError) Unwrap() error { return ErrUnknownAlias }

// UnknownTokenError reports a {reference} inside an alias expansion that
// does not resolve against the registry.
type UnknownTokenError struct {
	Alias       string
	Reference   string
	Suggestions []string
}

func (e *UnknownTokenError) Error() string {
	msg := fmt.Sprintf("%s: {%s} referenced by %q", ErrUnknownToken, e.Reference, e.Alias)
	return withSuggestions(msg, e.Suggestions)
}

func (e *UnknownTokenError) Unwrap() error { return ErrUnknownToken }

// CyclicAliasError carries the expansion path, ending with the alias that
// closed the cycle.
type CyclicAliasError struct {
	Path []string
}

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicAlias, strings.Join(e.Path, " -> "))
}

func (e *CyclicAliasError) Unwrap() error { return ErrCyclicAlias }

func withSuggestions(msg string, suggestions []string) string {
	if len(suggestions) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (did you mean %s?)", msg, strings.Join(suggestions, ", "))
}
