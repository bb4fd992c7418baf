package theme

import "github.com/charmbracelet/lipgloss"

// Per-theme presentation decisions live in this file and nowhere else.
// Every function below is a pure, total lookup: it switches over the three
// tags and its default arm returns the Theme1 decision, so an unknown future
// tag degrades to the minimal look instead of rendering unstyled.

// Palette colors, adaptive for light and dark terminals.
var (
	// theme1: minimal light
	colorInk      = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#E4E4E4"}
	colorPaper    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1C1C1C"}
	colorQuiet    = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	colorHairline = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#3A3A3A"}
	colorAccent1  = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFD7"}

	// theme2: dark sidebar
	colorNight = lipgloss.AdaptiveColor{Light: "#1B2430", Dark: "#151B23"}
	colorPanel = lipgloss.AdaptiveColor{Light: "#242F3D", Dark: "#1D2631"}
	colorGold  = lipgloss.AdaptiveColor{Light: "#D4AF37", Dark: "#E1C04C"}
	colorFog   = lipgloss.AdaptiveColor{Light: "#AAB4C0", Dark: "#9AA5B1"}
	colorMist  = lipgloss.AdaptiveColor{Light: "#E8ECF1", Dark: "#D5DBE1"}

	// theme3: colorful pop
	colorCandy = lipgloss.AdaptiveColor{Light: "#D7005F", Dark: "#FF5FAF"}
	colorGrape = lipgloss.AdaptiveColor{Light: "#5F00D7", Dark: "#875FFF"}
	colorMango = lipgloss.AdaptiveColor{Light: "#D75F00", Dark: "#FFAF5F"}
	colorLime  = lipgloss.AdaptiveColor{Light: "#5F8700", Dark: "#87D700"}
	colorCream = lipgloss.AdaptiveColor{Light: "#FFFAF0", Dark: "#303030"}

	// shared
	colorDanger = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

// HeaderChrome describes the top bar.
type HeaderChrome struct {
	Bar  lipgloss.Style // full-width bar container
	Rule lipgloss.Style // separator line under the bar
}

// Header returns the top-bar chrome for t.
func Header(t Theme) HeaderChrome {
	switch t {
	case Theme2:
		return HeaderChrome{
			Bar:  lipgloss.NewStyle().Foreground(colorMist).Background(colorNight).Padding(0, 2),
			Rule: lipgloss.NewStyle().Foreground(colorGold),
		}
	case Theme3:
		return HeaderChrome{
			Bar:  lipgloss.NewStyle().Foreground(colorCream).Background(colorGrape).Bold(true).Padding(0, 2),
			Rule: lipgloss.NewStyle().Foreground(colorCandy),
		}
	default:
		return HeaderChrome{
			Bar:  lipgloss.NewStyle().Foreground(colorInk).Background(colorPaper).Padding(0, 1),
			Rule: lipgloss.NewStyle().Foreground(colorHairline),
		}
	}
}

// Logo returns the brand-mark style for t.
func Logo(t Theme) lipgloss.Style {
	switch t {
	case Theme2:
		return lipgloss.NewStyle().Foreground(colorGold).Bold(true)
	case Theme3:
		return lipgloss.NewStyle().Foreground(colorMango).Bold(true).Italic(true)
	default:
		return lipgloss.NewStyle().Foreground(colorAccent1).Bold(true)
	}
}

// NavLink returns the navigation link style for t. The active link carries
// visible emphasis beyond color so the marker survives low-color terminals.
func NavLink(t Theme, active bool) lipgloss.Style {
	switch t {
	case Theme2:
		if active {
			return lipgloss.NewStyle().Foreground(colorGold).Bold(true).Underline(true)
		}
		return lipgloss.NewStyle().Foreground(colorFog)
	case Theme3:
		if active {
			return lipgloss.NewStyle().Foreground(colorCream).Background(colorCandy).Bold(true).Padding(0, 1)
		}
		return lipgloss.NewStyle().Foreground(colorCream).Padding(0, 1)
	default:
		if active {
			return lipgloss.NewStyle().Foreground(colorAccent1).Bold(true).Underline(true)
		}
		return lipgloss.NewStyle().Foreground(colorQuiet)
	}
}

// Shape selects the structural layout variant. ShapeSidebar is the only
// variant that introduces an extra region; the other two differ in sizing
// of a single content region.
type Shape int

const (
	ShapeCentered Shape = iota // single column, capped width, centered
	ShapeSidebar               // fixed side panel plus content region
	ShapeFull                  // single full-width column
)

// LayoutDecision describes the structural page shape for a theme.
type LayoutDecision struct {
	Shape        Shape
	MaxWidth     int // content cap for ShapeCentered
	SidebarWidth int // panel width for ShapeSidebar
	Panel        lipgloss.Style
	Content      lipgloss.Style
}

// Layout returns the structural decision for t. Theme2 is the one theme that
// changes page structure rather than styling alone.
func Layout(t Theme) LayoutDecision {
	switch t {
	case Theme2:
		return LayoutDecision{
			Shape:        ShapeSidebar,
			SidebarWidth: 22,
			Panel: lipgloss.NewStyle().
				Background(colorPanel).
				Foreground(colorFog).
				Padding(1, 2),
			Content: lipgloss.NewStyle().Padding(1, 2),
		}
	case Theme3:
		return LayoutDecision{
			Shape:   ShapeFull,
			Content: lipgloss.NewStyle().Padding(1, 2),
		}
	default:
		return LayoutDecision{
			Shape:    ShapeCentered,
			MaxWidth: 96,
			Content:  lipgloss.NewStyle().Padding(1, 2),
		}
	}
}

// CardChrome describes a product card's appearance.
type CardChrome struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	Category    lipgloss.Style
	Price       lipgloss.Style
	Rating      lipgloss.Style
	Description lipgloss.Style
	Image       lipgloss.Style
}

// Card returns the product-card chrome for t.
func Card(t Theme) CardChrome {
	switch t {
	case Theme2:
		return CardChrome{
			Frame:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorGold).Padding(0, 1),
			Title:       lipgloss.NewStyle().Foreground(colorMist).Bold(true),
			Category:    lipgloss.NewStyle().Foreground(colorGold),
			Price:       lipgloss.NewStyle().Foreground(colorGold).Bold(true),
			Rating:      lipgloss.NewStyle().Foreground(colorFog),
			Description: lipgloss.NewStyle().Foreground(colorFog),
			Image:       lipgloss.NewStyle().Foreground(colorFog).Faint(true),
		}
	case Theme3:
		return CardChrome{
			Frame:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorCandy).Padding(0, 1),
			Title:       lipgloss.NewStyle().Foreground(colorGrape).Bold(true),
			Category:    lipgloss.NewStyle().Foreground(colorCream).Background(colorLime).Padding(0, 1),
			Price:       lipgloss.NewStyle().Foreground(colorCandy).Bold(true),
			Rating:      lipgloss.NewStyle().Foreground(colorMango),
			Description: lipgloss.NewStyle().Foreground(colorInk),
			Image:       lipgloss.NewStyle().Foreground(colorGrape).Faint(true),
		}
	default:
		return CardChrome{
			Frame:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorHairline).Padding(0, 1),
			Title:       lipgloss.NewStyle().Foreground(colorInk).Bold(true),
			Category:    lipgloss.NewStyle().Foreground(colorQuiet),
			Price:       lipgloss.NewStyle().Foreground(colorAccent1).Bold(true),
			Rating:      lipgloss.NewStyle().Foreground(colorQuiet),
			Description: lipgloss.NewStyle().Foreground(colorQuiet),
			Image:       lipgloss.NewStyle().Foreground(colorQuiet).Faint(true),
		}
	}
}

// GridRule gives per-breakpoint column counts for the product grid.
type GridRule struct {
	Narrow int // content width < 72 cells
	Medium int // content width < 120 cells
	Wide   int // everything else
	Gap    int // cells between columns
}

// Columns resolves the column count for a given content width.
func (g GridRule) Columns(width int) int {
	switch {
	case width < 72:
		return g.Narrow
	case width < 120:
		return g.Medium
	default:
		return g.Wide
	}
}

// Grid returns the grid density rule for t.
func Grid(t Theme) GridRule {
	switch t {
	case Theme2:
		// The sidebar already consumes width; keep the grid sparse.
		return GridRule{Narrow: 1, Medium: 2, Wide: 2, Gap: 2}
	case Theme3:
		return GridRule{Narrow: 2, Medium: 3, Wide: 4, Gap: 1}
	default:
		return GridRule{Narrow: 1, Medium: 2, Wide: 3, Gap: 2}
	}
}

// Title returns the page-title typography for t.
func Title(t Theme) lipgloss.Style {
	switch t {
	case Theme2:
		return lipgloss.NewStyle().Foreground(colorGold).Bold(true).Underline(true)
	case Theme3:
		return lipgloss.NewStyle().Foreground(colorCandy).Bold(true).Italic(true)
	default:
		return lipgloss.NewStyle().Foreground(colorInk).Bold(true)
	}
}

// Body returns the body-copy typography for t.
func Body(t Theme) lipgloss.Style {
	switch t {
	case Theme2:
		return lipgloss.NewStyle().Foreground(colorMist)
	case Theme3:
		return lipgloss.NewStyle().Foreground(colorInk)
	default:
		return lipgloss.NewStyle().Foreground(colorInk)
	}
}

// Button returns the decorative call-to-action style for t.
func Button(t Theme) lipgloss.Style {
	switch t {
	case Theme2:
		return lipgloss.NewStyle().Foreground(colorNight).Background(colorGold).Bold(true).Padding(0, 1)
	case Theme3:
		return lipgloss.NewStyle().Foreground(colorCream).Background(colorCandy).Bold(true).Padding(0, 2)
	default:
		return lipgloss.NewStyle().Foreground(colorPaper).Background(colorAccent1).Padding(0, 1)
	}
}

// Notice returns the error-notice style for t.
func Notice(t Theme) lipgloss.Style {
	switch t {
	case Theme2:
		return lipgloss.NewStyle().Foreground(colorDanger).Border(lipgloss.NormalBorder()).BorderForeground(colorDanger).Padding(0, 1)
	case Theme3:
		return lipgloss.NewStyle().Foreground(colorCream).Background(colorDanger).Bold(true).Padding(0, 1)
	default:
		return lipgloss.NewStyle().Foreground(colorDanger).Padding(0, 1)
	}
}
