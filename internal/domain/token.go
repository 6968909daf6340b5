package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	keyPattern       = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Token is a named design value. Flat tokens have an empty Namespace;
// scaled tokens live one level down, keyed by step (e.g. pfGray.500).
type Token struct {
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Key       string `json:"key" yaml:"key"`
	Value     string `json:"value" yaml:"value"`
}

// Ref returns the reference name used inside {braces}.
func (t Token) Ref() string {
	return JoinRef(t.Namespace, t.Key)
}

func (t Token) IsScaled() bool {
	return t.Namespace != ""
}

func (t Token) Validate() error {
	if err := ValidateNamespace(t.Namespace); err != nil {
		return err
	}
	if err := ValidateKey(t.Key); err != nil {
		return err
	}
	if strings.TrimSpace(t.Value) == "" {
		return fmt.Errorf("token %s: value cannot be empty", t.Ref())
	}
	return nil
}

func ValidateNamespace(namespace string) error {
	if namespace == "" {
		return nil
	}
	if !namespacePattern.MatchString(namespace) {
		return fmt.Errorf("invalid namespace %q: must start with a letter or underscore and contain only letters, digits, hyphens and underscores", namespace)
	}
	return nil
}

func ValidateKey(key string) error {
	if key == "" {
		return errors.New("token key cannot be empty")
	}
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid token key %q: only letters, digits, hyphens and underscores allowed", key)
	}
	return nil
}

// JoinRef renders namespace.key, or just key for flat tokens.
func JoinRef(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + "." + key
}

// SplitRef is the inverse of JoinRef. Only the first dot separates.
func SplitRef(ref string) (namespace, key string) {
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}
