package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ShortcutRule maps an alias to one or more utility expressions. Each entry
// may hold several whitespace separated expressions.
type ShortcutRule struct {
	Alias     string   `json:"alias" yaml:"alias"`
	Expansion []string `json:"expansion" yaml:"expansion"`
}

func NewShortcutRule(alias string, expansion ...string) ShortcutRule {
	return ShortcutRule{Alias: alias, Expansion: expansion}
}

func (r ShortcutRule) Validate() error {
	if err := ValidateAlias(r.Alias); err != nil {
		return err
	}

	if len(r.Expansion) == 0 {
		return fmt.Errorf("shortcut %q: expansion cannot be empty", r.Alias)
	}

	for i, entry := range r.Expansion {
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("shortcut %q: expansion entry %d is empty", r.Alias, i)
		}
	}

	return nil
}

// Expressions flattens the expansion entries into individual utility
// expressions, keeping their order.
func (r ShortcutRule) Expressions() []string {
	exprs := make([]string, 0, len(r.Expansion))
	for _, entry := range r.Expansion {
		exprs = append(exprs, strings.Fields(entry)...)
	}
	return exprs
}

func ValidateAlias(alias string) error {
	if alias == "" {
		return errors.New("alias cannot be empty")
	}
	if strings.ContainsAny(alias, " \t\n\r{}") {
		return fmt.Errorf("invalid alias %q: must not contain whitespace or braces", alias)
	}
	return nil
}
