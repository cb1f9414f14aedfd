package render

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because every cell is drawn 2 columns wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Pan moves the view by (dx, dy) cells.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// Clamp keeps the view over a worldW x worldH map. Maps smaller than the
// view are pinned to the top-left corner.
func (c *Camera) Clamp(worldW, worldH int) {
	maxX := worldW - c.ViewWidth/2
	maxY := worldH - c.ViewHeight
	c.OffsetX = min(c.OffsetX, maxX)
	c.OffsetY = min(c.OffsetY, maxY)
	c.OffsetX = max(c.OffsetX, 0)
	c.OffsetY = max(c.OffsetY, 0)
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, sy + c.OffsetY
}
