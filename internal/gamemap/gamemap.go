package gamemap

import "fmt"

// Point is an integer grid coordinate or a unit direction.
type Point struct {
	X, Y int
}

// Cardinal directions, in the order random picks index them.
var (
	Down  = Point{0, -1}
	Left  = Point{-1, 0}
	Up    = Point{0, 1}
	Right = Point{1, 0}
)

// Directions lists the four cardinal unit vectors.
var Directions = [4]Point{Down, Left, Up, Right}

// OutOfRangeError reports an access outside the grid.
type OutOfRangeError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("gamemap: cell (%d,%d) out of range for %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// GameMap holds the tile state grid for one generated level.
// Tiles is indexed [y][x].
type GameMap struct {
	Width, Height int
	Tiles         [][]TileState
}

// New creates a GameMap with every cell Empty.
func New(width, height int) *GameMap {
	tiles := make([][]TileState, height)
	for y := range tiles {
		tiles[y] = make([]TileState, width)
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// Reset sets every cell back to Empty.
func (m *GameMap) Reset() {
	for y := range m.Tiles {
		clear(m.Tiles[y])
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the state at (x, y). Panics with *OutOfRangeError if out of bounds.
func (m *GameMap) At(x, y int) TileState {
	if !m.InBounds(x, y) {
		panic(m.outOfRange(x, y))
	}
	return m.Tiles[y][x]
}

// Set replaces the state at (x, y). Panics with *OutOfRangeError if out of bounds.
func (m *GameMap) Set(x, y int, s TileState) {
	if !m.InBounds(x, y) {
		panic(m.outOfRange(x, y))
	}
	m.Tiles[y][x] = s
}

// Tile is the checked form of At.
func (m *GameMap) Tile(x, y int) (TileState, error) {
	if !m.InBounds(x, y) {
		return Empty, m.outOfRange(x, y)
	}
	return m.Tiles[y][x], nil
}

// SetTile is the checked form of Set.
func (m *GameMap) SetTile(x, y int, s TileState) error {
	if !m.InBounds(x, y) {
		return m.outOfRange(x, y)
	}
	m.Tiles[y][x] = s
	return nil
}

func (m *GameMap) outOfRange(x, y int) *OutOfRangeError {
	return &OutOfRangeError{X: x, Y: y, Width: m.Width, Height: m.Height}
}

// Count returns the number of cells in state s.
func (m *GameMap) Count(s TileState) int {
	n := 0
	for _, row := range m.Tiles {
		for _, t := range row {
			if t == s {
				n++
			}
		}
	}
	return n
}

// FloorCount returns the number of Floor cells.
func (m *GameMap) FloorCount() int { return m.Count(Floor) }

// CellCount returns the total number of cells.
func (m *GameMap) CellCount() int { return m.Width * m.Height }

// FillRatio is FloorCount over CellCount.
func (m *GameMap) FillRatio() float64 {
	if m.CellCount() == 0 {
		return 0
	}
	return float64(m.FloorCount()) / float64(m.CellCount())
}

// Clone returns a deep copy of the map.
func (m *GameMap) Clone() *GameMap {
	c := New(m.Width, m.Height)
	for y := range m.Tiles {
		copy(c.Tiles[y], m.Tiles[y])
	}
	return c
}
