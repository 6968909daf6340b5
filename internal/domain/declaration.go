package domain

import "fmt"

// Declaration is the static input of a build: shortcut aliases and theme
// tokens, both in declaration order.
type Declaration struct {
	Source    string         `json:"source,omitempty"`
	Shortcuts []ShortcutRule `json:"shortcuts"`
	Tokens    []Token        `json:"tokens"`
}

// Validate checks every rule and token in isolation. Cross references and
// cycles are left to resolution.
func (d *Declaration) Validate() error {
	for _, rule := range d.Shortcuts {
		if err := rule.Validate(); err != nil {
			return err
		}
	}

	for _, token := range d.Tokens {
		if err := token.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (d *Declaration) String() string {
	return fmt.Sprintf("%s (%d shortcuts, %d tokens)", d.Source, len(d.Shortcuts), len(d.Tokens))
}
