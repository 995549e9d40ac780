// Package level provides the tile grid used by the simulation and the
// plain-text level format it is parsed from.
package level

import (
	"strings"
)

// TileType is the code stored in each grid cell.
type TileType uint8

// Tile codes. TileVoid is the zero value so a freshly allocated grid is empty.
const (
	TileVoid TileType = iota
	TileFloor
	TilePlatform
	TileSpawn1
	TileSpawn2
	TileEnemy
	TilePortal1
	TilePortal2
)

// String returns the tile name.
func (t TileType) String() string {
	switch t {
	case TileVoid:
		return "void"
	case TileFloor:
		return "floor"
	case TilePlatform:
		return "platform"
	case TileSpawn1:
		return "spawn1"
	case TileSpawn2:
		return "spawn2"
	case TileEnemy:
		return "enemy"
	case TilePortal1:
		return "portal1"
	case TilePortal2:
		return "portal2"
	default:
		return "unknown"
	}
}

// Solid reports whether the tile blocks movement (floor or platform).
func (t TileType) Solid() bool {
	return t == TileFloor || t == TilePlatform
}

// TileFromRune maps a level character to its tile code.
// Unknown characters are void.
func TileFromRune(r rune) TileType {
	switch r {
	case '=':
		return TileFloor
	case 'x':
		return TilePlatform
	case '1':
		return TileSpawn1
	case '2':
		return TileSpawn2
	case 'O':
		return TileEnemy
	case ']':
		return TilePortal1
	case '}':
		return TilePortal2
	default:
		return TileVoid
	}
}

// Rune returns the level character for the tile.
func (t TileType) Rune() rune {
	switch t {
	case TileFloor:
		return '='
	case TilePlatform:
		return 'x'
	case TileSpawn1:
		return '1'
	case TileSpawn2:
		return '2'
	case TileEnemy:
		return 'O'
	case TilePortal1:
		return ']'
	case TilePortal2:
		return '}'
	default:
		return ' '
	}
}

// Grid is an immutable row-major tile map addressed by x + y*Width.
type Grid struct {
	Width  int
	Height int
	Tiles  []TileType
}

// NewGrid allocates a Width x Height grid filled with TileVoid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]TileType, width*height),
	}
}

// Parse builds a grid from level text.
//
// Width is the length of the longest line and height is the number of lines,
// including a final line without a terminating newline. Rows shorter than
// Width keep void cells at their end.
func Parse(text string) *Grid {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	g := NewGrid(width, len(lines))
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			g.Tiles[x+y*width] = TileFromRune(rune(line[x]))
		}
	}
	return g
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x, y). Coordinates outside the grid read as void.
func (g *Grid) At(x, y int) TileType {
	if !g.InBounds(x, y) {
		return TileVoid
	}
	return g.Tiles[x+y*g.Width]
}

// Find returns the first cell (scanning row by row) holding the tile type.
func (g *Grid) Find(t TileType) (x, y int, ok bool) {
	for i, tile := range g.Tiles {
		if tile == t {
			return i % g.Width, i / g.Width, true
		}
	}
	return 0, 0, false
}

// FindAll returns every cell holding the tile type, in row-major order.
func (g *Grid) FindAll(t TileType) [][2]int {
	var cells [][2]int
	for i, tile := range g.Tiles {
		if tile == t {
			cells = append(cells, [2]int{i % g.Width, i / g.Width})
		}
	}
	return cells
}

// Count returns how many cells hold the tile type.
func (g *Grid) Count(t TileType) int {
	n := 0
	for _, tile := range g.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// String re-serializes the grid to level text. Trailing void is trimmed.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := make([]rune, g.Width)
		for x := range row {
			row[x] = g.At(x, y).Rune()
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
	}
	return sb.String()
}
