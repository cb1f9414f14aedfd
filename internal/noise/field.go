package noise

import "fmt"

// Field is a fixed grid of noise samples, one per cell, indexed [y][x].
type Field struct {
	Width, Height int
	Scale         float64
	values        [][]float64
}

// NewField samples src at (x/scale, y/scale) for every cell of a
// width x height grid.
func NewField(src Source, width, height int, scale float64) (*Field, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("noise scale must be positive, got %v", scale)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("noise field size must be positive, got %dx%d", width, height)
	}
	values := make([][]float64, height)
	for y := range values {
		values[y] = make([]float64, width)
		for x := range values[y] {
			values[y][x] = src.Sample(float64(x)/scale, float64(y)/scale)
		}
	}
	return &Field{Width: width, Height: height, Scale: scale, values: values}, nil
}

// At returns the sample for cell (x, y). Out-of-range cells read as 0.
func (f *Field) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.values[y][x]
}
