package gamemap

// TileState identifies what occupies one grid cell.
type TileState uint8

const (
	Empty TileState = iota
	Floor
	Wall
	DarkGrass
	LightGrass
	Err
	Obj3x3
	Obj2x2
	Obj1x1
	Used3x3
	Used2x2
)

var tileNames = [...]string{
	Empty:      "empty",
	Floor:      "floor",
	Wall:       "wall",
	DarkGrass:  "dark-grass",
	LightGrass: "light-grass",
	Err:        "err",
	Obj3x3:     "obj3x3",
	Obj2x2:     "obj2x2",
	Obj1x1:     "obj1x1",
	Used3x3:    "used3x3",
	Used2x2:    "used2x2",
}

func (s TileState) String() string {
	if int(s) < len(tileNames) {
		return tileNames[s]
	}
	return "unknown"
}

// IsAnchor reports whether s marks the root cell of a placed prop.
func (s TileState) IsAnchor() bool {
	return s == Obj3x3 || s == Obj2x2 || s == Obj1x1
}

// IsProp reports whether s belongs to a placed prop (anchor or occupied cell).
func (s TileState) IsProp() bool {
	return s.IsAnchor() || s == Used3x3 || s == Used2x2
}

// IsMultiCell reports whether s is part of a 2x2 or 3x3 prop.
func (s TileState) IsMultiCell() bool {
	switch s {
	case Obj3x3, Used3x3, Obj2x2, Used2x2:
		return true
	}
	return false
}

// PropSize returns the side length of the prop s belongs to, or 0.
func (s TileState) PropSize() int {
	switch s {
	case Obj3x3, Used3x3:
		return 3
	case Obj2x2, Used2x2:
		return 2
	case Obj1x1:
		return 1
	}
	return 0
}

// Layer is a bit set of tilemap layers a renderer paints for a cell.
type Layer uint8

const (
	LayerBottom Layer = 1 << iota
	LayerDarkGrass
	LayerLightGrass
	LayerTop
)

// Has reports whether every bit of other is set in l.
func (l Layer) Has(other Layer) bool { return l&other == other }

// Layers returns the tilemap layers occupied by a cell in state s.
// Props sit on dark grass so the ground under them is never bare.
func (s TileState) Layers() Layer {
	switch s {
	case Floor:
		return LayerBottom
	case DarkGrass:
		return LayerBottom | LayerDarkGrass
	case LightGrass:
		return LayerBottom | LayerDarkGrass | LayerLightGrass
	case Wall, Err:
		return LayerTop
	case Obj3x3, Obj2x2, Obj1x1, Used3x3, Used2x2:
		return LayerBottom | LayerDarkGrass
	}
	return 0
}
