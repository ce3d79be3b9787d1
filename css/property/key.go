package property

// Key identifies a supported style property by its CSS name.
// ENUM(background-color, color, border-color, text-align, font-family, font-size, line-height, letter-spacing, width, height, min-width, min-height, max-width, max-height, padding-top, padding-right, padding-bottom, padding-left, margin-top, margin-right, margin-bottom, margin-left, border-width, border-radius, flex-direction, flex-wrap, justify-content, align-items, overflow-x, overflow-y, cursor, flex-grow, flex-shrink)
type Key int

type kind int

const (
	kindColor kind = iota
	kindAlignment
	kindFontFamily
	kindLength
	kindKeyword
	kindNumber
)

func (k Key) kind() kind {
	switch k {
	case KeyBackgroundColor, KeyColor, KeyBorderColor:
		return kindColor
	case KeyTextAlign:
		return kindAlignment
	case KeyFontFamily:
		return kindFontFamily
	case KeyFlexDirection, KeyFlexWrap, KeyJustifyContent, KeyAlignItems,
		KeyOverflowX, KeyOverflowY, KeyCursor:
		return kindKeyword
	case KeyFlexGrow, KeyFlexShrink:
		return kindNumber
	default:
		return kindLength
	}
}

// keywords lists accepted values of keyword properties.
var keywords = map[Key][]string{
	KeyFlexDirection:  {"row", "row-reverse", "column", "column-reverse"},
	KeyFlexWrap:       {"wrap", "nowrap"},
	KeyJustifyContent: {"start", "end", "center", "space-between", "space-around"},
	KeyAlignItems:     {"stretch", "center", "start", "end"},
	KeyOverflowX:      {"auto", "scroll", "hidden", "visible"},
	KeyOverflowY:      {"auto", "scroll", "hidden", "visible"},
	KeyCursor: {
		"default", "pointer", "text", "crosshair", "move", "wait", "help",
		"progress", "not-allowed", "grab", "grabbing", "col-resize", "row-resize",
	},
}
