package theme

import "strings"

// Theme identifies one of the three presentation modes. The tag strings are
// the literal values written to the preference file, so they never change
// even if display names do.
type Theme string

const (
	// Theme1 is the minimal light look: centered single-column content.
	Theme1 Theme = "theme1"
	// Theme2 is the dark look with a fixed navigation sidebar.
	Theme2 Theme = "theme2"
	// Theme3 is the colorful look: full-width content, dense card grid.
	Theme3 Theme = "theme3"
)

// Default is the theme used when no valid preference exists.
const Default = Theme1

// All returns the selectable themes in selector order.
func All() []Theme {
	return []Theme{Theme1, Theme2, Theme3}
}

// Parse clamps raw to a known tag. Unknown, empty, or mixed-case input that
// does not match a tag yields Default, so selection never fails.
func Parse(raw string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case Theme1:
		return Theme1
	case Theme2:
		return Theme2
	case Theme3:
		return Theme3
	default:
		return Default
	}
}

// Valid reports whether t is one of the three known tags.
func (t Theme) Valid() bool {
	return t == Theme1 || t == Theme2 || t == Theme3
}

// DisplayName returns the human-readable name shown in the selector.
func (t Theme) DisplayName() string {
	switch t {
	case Theme2:
		return "Dark Sidebar"
	case Theme3:
		return "Colorful Pop"
	default:
		return "Minimal Light"
	}
}

// Next returns the theme after t in selector order, wrapping around.
func (t Theme) Next() Theme {
	switch t {
	case Theme1:
		return Theme2
	case Theme2:
		return Theme3
	default:
		return Theme1
	}
}
