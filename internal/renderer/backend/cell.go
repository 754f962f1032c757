package backend

// Color is a terminal palette color. The zero value is the terminal default.
type Color uint16

// PaletteColor returns palette entry index.
func PaletteColor(index uint8) Color {
	return Color(index) + 1
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c == 0
}

// Index returns the palette index of c. It is meaningless for the default.
func (c Color) Index() uint8 {
	return uint8(c - 1)
}

// Named palette colors.
var (
	ColorDefault Color
	ColorBlack   = PaletteColor(0)
	ColorRed     = PaletteColor(1)
	ColorGreen   = PaletteColor(2)
	ColorYellow  = PaletteColor(3)
	ColorBlue    = PaletteColor(4)
	ColorMagenta = PaletteColor(5)
	ColorCyan    = PaletteColor(6)
	ColorWhite   = PaletteColor(7)
	ColorGray    = PaletteColor(8)
)

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << (iota - 1)
	AttrDim
	AttrReverse
	AttrUnderline
)

// Has reports whether a contains attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Style is the visual style of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attr
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style {
	return Style{}
}

// WithForeground returns a copy of s with foreground c.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy of s with background c.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// With returns a copy of s with attr added.
func (s Style) With(attr Attr) Style {
	s.Attributes |= attr
	return s
}

// Cell is one terminal cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// NewStyledCell returns a cell holding r drawn in style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}
