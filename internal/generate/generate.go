// Package generate renders utility expressions and expanded shortcuts as
// CSS rulesets.
package generate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"github.com/rs/zerolog"

	"themekit/internal/domain"
	"themekit/internal/logging"
	"themekit/internal/shortcut"
)

var ErrUnsupportedUtility = errors.New("unsupported utility")

// utility prefix -> CSS property
var properties = map[string]string{
	"text":       "color",
	"bg":         "background-color",
	"border":     "border-color",
	"fill":       "fill",
	"stroke":     "stroke",
	"outline":    "outline-color",
	"decoration": "text-decoration-color",
	"caret":      "caret-color",
	"accent":     "accent-color",
	"font":       "font-family",
}

// TokenSource lists the theme tokens a generator can name.
type TokenSource interface {
	Tokens() []domain.Token
}

type Options struct {
	Minify    bool
	Variables bool
}

type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Rule is one ruleset. Class is the unescaped class name.
type Rule struct {
	Class        string        `json:"class"`
	Declarations []Declaration `json:"declarations"`
}

type Result struct {
	Rules   []Rule   `json:"rules"`
	Skipped []string `json:"skipped,omitempty"`
}

type Generator struct {
	tokens []domain.Token
	colors map[string]string
	opts   Options
	logger zerolog.Logger
}

func New(tokens TokenSource, opts Options) *Generator {
	g := &Generator{
		tokens: tokens.Tokens(),
		colors: make(map[string]string),
		opts:   opts,
		logger: logging.Component("generate"),
	}

	// every token answers to pfGray-500 and pf-gray-500
	for _, token := range g.tokens {
		name := variableName(token)
		g.colors[name] = token.Value
		g.colors[kebab(name)] = token.Value
	}

	return g
}

// Utility returns the declarations of a single utility expression.
func (g *Generator) Utility(expr string) ([]Declaration, error) {
	prefix, value, ok := strings.Cut(expr, "-")
	if !ok || value == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedUtility, expr)
	}

	property, ok := properties[prefix]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown prefix %q", ErrUnsupportedUtility, expr, prefix)
	}

	if property == "font-family" {
		family, ok := arbitrary(value)
		if !ok {
			return nil, fmt.Errorf("%w: %s: font families must be arbitrary values", ErrUnsupportedUtility, expr)
		}
		return []Declaration{{Property: property, Value: quoteFamily(family)}}, nil
	}

	color, ok := arbitrary(value)
	if !ok {
		color, ok = g.colors[value]
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown theme color %q", ErrUnsupportedUtility, expr, value)
		}
	}
	if _, err := csscolorparser.Parse(color); err != nil {
		return nil, fmt.Errorf("%w: %s: invalid color %q", ErrUnsupportedUtility, expr, color)
	}

	return []Declaration{{Property: property, Value: color}}, nil
}

// Generate renders one rule per distinct supported utility, in input order.
func (g *Generator) Generate(utilities []string) *Result {
	res := &Result{}
	seen := make(map[string]bool, len(utilities))

	for _, expr := range utilities {
		if seen[expr] {
			continue
		}
		seen[expr] = true

		decls, err := g.Utility(expr)
		if err != nil {
			g.skip(res, expr, err)
			continue
		}
		res.Rules = append(res.Rules, Rule{Class: expr, Declarations: decls})
	}

	return res
}

// GenerateShortcuts renders one rule per alias. Declarations of the
// expanded utilities are merged; a later value for the same property
// replaces an earlier one.
func (g *Generator) GenerateShortcuts(expansions []shortcut.Expansion) *Result {
	res := &Result{}

	for _, exp := range expansions {
		var merged []Declaration
		index := make(map[string]int)

		for _, expr := range exp.Utilities {
			decls, err := g.Utility(expr)
			if err != nil {
				g.skip(res, exp.Alias+": "+expr, err)
				continue
			}
			for _, d := range decls {
				if i, exists := index[d.Property]; exists {
					merged[i] = d
					continue
				}
				index[d.Property] = len(merged)
				merged = append(merged, d)
			}
		}

		if len(merged) == 0 {
			continue
		}
		res.Rules = append(res.Rules, Rule{Class: exp.Alias, Declarations: merged})
	}

	return res
}

func (g *Generator) skip(res *Result, name string, err error) {
	g.logger.Warn().Err(err).Str("utility", name).Msg("skipping utility")
	res.Skipped = append(res.Skipped, name)
}

// Render writes the stylesheet, preceded by a :root block of custom
// properties when Variables is set.
func (g *Generator) Render(res *Result) string {
	var b strings.Builder

	if g.opts.Variables && len(g.tokens) > 0 {
		vars := make([]Declaration, len(g.tokens))
		for i, token := range g.tokens {
			vars[i] = Declaration{Property: "--color-" + variableName(token), Value: token.Value}
		}
		g.writeRule(&b, ":root", vars)
	}

	for _, rule := range res.Rules {
		g.writeRule(&b, "."+escapeClass(rule.Class), rule.Declarations)
	}

	return b.String()
}

func (g *Generator) writeRule(b *strings.Builder, selector string, decls []Declaration) {
	if g.opts.Minify {
		b.WriteString(selector)
		b.WriteByte('{')
		for _, d := range decls {
			fmt.Fprintf(b, "%s:%s;", d.Property, d.Value)
		}
		b.WriteByte('}')
		return
	}

	fmt.Fprintf(b, "%s {\n", selector)
	for _, d := range decls {
		fmt.Fprintf(b, "  %s: %s;\n", d.Property, d.Value)
	}
	b.WriteString("}\n")
}

// arbitrary unwraps [value], turning underscores into spaces
func arbitrary(value string) (string, bool) {
	if len(value) < 3 || value[0] != '[' || value[len(value)-1] != ']' {
		return "", false
	}
	return strings.ReplaceAll(value[1:len(value)-1], "_", " "), true
}

func quoteFamily(family string) string {
	if !strings.ContainsAny(family, " ") || strings.ContainsAny(family, `"',`) {
		return family
	}
	return `"` + family + `"`
}

// pfGray.500 -> pfGray-500
func variableName(token domain.Token) string {
	return strings.ReplaceAll(token.Ref(), ".", "-")
}

// pfGray-500 -> pf-gray-500
func kebab(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && runes[i-1] != '-' {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
