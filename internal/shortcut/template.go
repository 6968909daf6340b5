package shortcut

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// any {...} without whitespace is a reference, well formed or not, so
	// {pfGray.500.1} fails the lookup instead of passing through
	referenceRegex = regexp.MustCompile(`\{([^{}\s]+)\}`)
)

// LookupFunc resolves a token reference to its value.
type LookupFunc func(ref string) (string, error)

// References returns the token references embedded in expr, in order of
// appearance. Repeated references are listed each time.
func References(expr string) []string {
	matches := referenceRegex.FindAllStringSubmatch(expr, -1)

	refs := make([]string, 0, len(matches))
	for _, match := range matches {
		// match[0] -> {pfGray.500}
		// match[1] -> pfGray.500
		refs = append(refs, match[1])
	}
	return refs
}

func HasReferences(expr string) bool {
	return referenceRegex.MatchString(expr)
}

// Substitute replaces every reference in expr with the value lookup returns.
func Substitute(expr string, lookup LookupFunc) (string, error) {
	out, ref, err := substitute(expr, lookup)
	if err != nil {
		return "", fmt.Errorf("failed to substitute {%s}: %w", ref, err)
	}
	return out, nil
}

// substitute also reports which reference failed
func substitute(expr string, lookup LookupFunc) (string, string, error) {
	locs := referenceRegex.FindAllStringSubmatchIndex(expr, -1)
	if len(locs) == 0 {
		return expr, "", nil
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		// loc[0]:loc[1] -> whole match, loc[2]:loc[3] -> reference
		ref := expr[loc[2]:loc[3]]
		value, err := lookup(ref)
		if err != nil {
			return "", ref, err
		}
		b.WriteString(expr[last:loc[0]])
		b.WriteString(value)
		last = loc[1]
	}
	b.WriteString(expr[last:])

	return b.String(), "", nil
}
