package generate

import "meadowgen/internal/gamemap"

// mooreOffsets are the eight neighbours of a cell, each listed once.
var mooreOffsets = [8]gamemap.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// FillHoles turns interior Empty cells with more than minNeighbors Floor
// neighbours into Floor. Cells are updated in place, so a cell filled early
// in the scan counts for the cells after it. Returns the number filled.
func FillHoles(gmap *gamemap.GameMap, minNeighbors int) int {
	filled := 0
	for x := 1; x < gmap.Width-1; x++ {
		for y := 1; y < gmap.Height-1; y++ {
			if gmap.At(x, y) != gamemap.Empty {
				continue
			}
			if floorNeighbors(gmap, x, y) > minNeighbors {
				gmap.Set(x, y, gamemap.Floor)
				filled++
			}
		}
	}
	return filled
}

func floorNeighbors(gmap *gamemap.GameMap, x, y int) int {
	n := 0
	for _, d := range mooreOffsets {
		if gmap.At(x+d.X, y+d.Y) == gamemap.Floor {
			n++
		}
	}
	return n
}
