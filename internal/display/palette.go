package display

// Palette holds the hex colors terminal output is drawn with.
type Palette struct {
	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// UI element
	BorderColor string
	SelectedBg  string
	SelectedFg  string
	HeaderBg    string
	HeaderFg    string
	Separator   string
	HelpText    string
}

// TokenLookup resolves a token reference such as "pfGray.500".
type TokenLookup interface {
	Lookup(ref string) (string, error)
}

// palette role -> token reference in the workshop declaration
var roleRefs = map[string]string{
	"primary":        "rhRed",
	"secondary":      "pfBlue",
	"success":        "pfGreen",
	"error":          "pfDanger",
	"warning":        "pfOrange",
	"text_primary":   "pfGray.100",
	"text_secondary": "pfGray.300",
	"text_muted":     "pfGray.500",
	"border":         "pfGray.600",
	"selected_bg":    "pfBlue",
	"selected_fg":    "pfGray.100",
	"header_bg":      "rhBlack",
	"header_fg":      "pfGray.100",
	"separator":      "pfGray.600",
	"help":           "pfGray.400",
}

func DefaultPalette() *Palette {
	return &Palette{
		Primary:   "#EE0000",
		Secondary: "#0066CC",
		Success:   "#3D7317",
		Error:     "#B1380B",
		Warning:   "#F5921B",

		TextPrimary:   "#F2F2F2",
		TextSecondary: "#C7C7C7",
		TextMuted:     "#6A6E73",

		BorderColor: "#4D4D4D",
		SelectedBg:  "#0066CC",
		SelectedFg:  "#F2F2F2",
		HeaderBg:    "#151515",
		HeaderFg:    "#F2F2F2",
		Separator:   "#4D4D4D",
		HelpText:    "#A3A3A3",
	}
}

// PaletteFrom takes each role from the matching token when the
// declaration defines it, and from DefaultPalette otherwise.
func PaletteFrom(tokens TokenLookup) *Palette {
	p := DefaultPalette()

	fields := map[string]*string{
		"primary":        &p.Primary,
		"secondary":      &p.Secondary,
		"success":        &p.Success,
		"error":          &p.Error,
		"warning":        &p.Warning,
		"text_primary":   &p.TextPrimary,
		"text_secondary": &p.TextSecondary,
		"text_muted":     &p.TextMuted,
		"border":         &p.BorderColor,
		"selected_bg":    &p.SelectedBg,
		"selected_fg":    &p.SelectedFg,
		"header_bg":      &p.HeaderBg,
		"header_fg":      &p.HeaderFg,
		"separator":      &p.Separator,
		"help":           &p.HelpText,
	}

	for role, field := range fields {
		value, err := tokens.Lookup(roleRefs[role])
		if err != nil {
			continue
		}
		if hex, err := Hex(value); err == nil {
			*field = hex
		}
	}

	return p
}
