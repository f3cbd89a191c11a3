package core

// Color represents a foreground color for a screen cell.
// Board cells store a Color as their fill identity; ColorDefault marks an empty cell.
type Color uint8

// Predefined colors. The first seven after ColorDefault are the piece colors,
// in catalog order.
const (
	ColorDefault Color = iota
	ColorOrangeRed
	ColorRoyalBlue
	ColorGold
	ColorLimeGreen
	ColorBrown
	ColorPink
	ColorPurple
	ColorWhite
	ColorGray
)

// PieceColors lists the fill identities paired with the shape catalog.
var PieceColors = []Color{
	ColorOrangeRed,
	ColorRoyalBlue,
	ColorGold,
	ColorLimeGreen,
	ColorBrown,
	ColorPink,
	ColorPurple,
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorOrangeRed:
		return "orangered"
	case ColorRoyalBlue:
		return "royalblue"
	case ColorGold:
		return "gold"
	case ColorLimeGreen:
		return "limegreen"
	case ColorBrown:
		return "brown"
	case ColorPink:
		return "pink"
	case ColorPurple:
		return "purple"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
