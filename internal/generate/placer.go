package generate

import "meadowgen/internal/gamemap"

// PlaceLargest claims the largest square prop it can fit next to the seed
// cell (x, y) in direction (dx, dy) and returns the anchor state placed, or
// Empty when nothing was placed. Offset (0, 0) probes around the seed cell
// itself. 3x3 beats 2x2 beats 1x1; within a size the first probe that fits
// wins.
func PlaceLargest(gmap *gamemap.GameMap, x, y, dx, dy int) gamemap.TileState {
	tx, ty := x+dx, y+dy
	if !placeable(gmap, tx, ty) {
		return gamemap.Empty
	}

	// 3x3 anchors are block centres.
	if dy == 0 {
		if Place3x3(gmap, x+dx*2, y) ||
			Place3x3(gmap, x+dx*2, y+1) ||
			Place3x3(gmap, x+dx*2, y-1) {
			return gamemap.Obj3x3
		}
	}
	if dx == 0 {
		if Place3x3(gmap, x, y+dy*2) ||
			Place3x3(gmap, x+1, y+dy*2) ||
			Place3x3(gmap, x-1, y+dy*2) {
			return gamemap.Obj3x3
		}
	}

	// 2x2 anchors are bottom-left corners, so the block only grows toward
	// +x/+y; the x-1 probe lets it still cover the target cell.
	if dy == 0 {
		if Place2x2(gmap, x+dx*2, y) ||
			Place2x2(gmap, x+dx*2, y+1) {
			return gamemap.Obj2x2
		}
	}
	if dx == 0 {
		if Place2x2(gmap, x, y+dy) ||
			Place2x2(gmap, x-1, y+dy) {
			return gamemap.Obj2x2
		}
	}

	if gmap.At(tx, ty) != gamemap.Empty {
		return gamemap.Empty
	}
	gmap.Set(tx, ty, gamemap.Obj1x1)
	return gamemap.Obj1x1
}

// placeable reports whether (x, y) lies inside the grid's one-cell border.
func placeable(gmap *gamemap.GameMap, x, y int) bool {
	return x >= 1 && y >= 1 && x < gmap.Width-1 && y < gmap.Height-1
}

// Place3x3 claims the 3x3 block centred on (x, y) if all nine cells are
// Empty. Nothing is written when it returns false.
func Place3x3(gmap *gamemap.GameMap, x, y int) bool {
	if !placeable(gmap, x, y) || !blockEmpty(gmap, x-1, y-1, 3) {
		return false
	}
	fillBlock(gmap, x-1, y-1, 3, gamemap.Used3x3)
	gmap.Set(x, y, gamemap.Obj3x3)
	return true
}

// Place2x2 claims the 2x2 block whose bottom-left corner is (x, y) if all
// four cells are Empty. Nothing is written when it returns false.
func Place2x2(gmap *gamemap.GameMap, x, y int) bool {
	if !placeable(gmap, x, y) || !blockEmpty(gmap, x, y, 2) {
		return false
	}
	fillBlock(gmap, x, y, 2, gamemap.Used2x2)
	gmap.Set(x, y, gamemap.Obj2x2)
	return true
}

func blockEmpty(gmap *gamemap.GameMap, x0, y0, size int) bool {
	for x := x0; x < x0+size; x++ {
		for y := y0; y < y0+size; y++ {
			if gmap.At(x, y) != gamemap.Empty {
				return false
			}
		}
	}
	return true
}

func fillBlock(gmap *gamemap.GameMap, x0, y0, size int, s gamemap.TileState) {
	for x := x0; x < x0+size; x++ {
		for y := y0; y < y0+size; y++ {
			gmap.Set(x, y, s)
		}
	}
}
