package core

// Color is a palette entry for a screen cell. The platform layer decides
// how each entry looks in the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorDim           // grid lines, hints
	ColorAccent        // titles, overlays
	ColorWarn          // game over

	// Tile colors, one per power of two from 2 to 2048.
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper // anything above 2048
)

// TileColorForExp returns the tile color for 2^exp. exp < 1 gives ColorDefault.
func TileColorForExp(exp int) Color {
	switch {
	case exp < 1:
		return ColorDefault
	case exp > 11:
		return ColorTileSuper
	}
	return ColorTile2 + Color(exp-1)
}
