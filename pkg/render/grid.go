package render

// Grid holds one color index per pixel, indexed grid[y][x].
type Grid [][]float64

// NewGrid allocates a zeroed height×width grid whose rows share one backing
// array.
func NewGrid(width, height int) Grid {
	cells := make([]float64, width*height)
	grid := make(Grid, height)
	for y := range grid {
		grid[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return grid
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Flatten copies g into a new row-major buffer, so that
// buffer[y*width+x] == g[y][x]. The buffer shares nothing with g.
func (g Grid) Flatten() []float64 {
	buffer := make([]float64, 0, g.Width()*g.Height())
	for _, row := range g {
		buffer = append(buffer, row...)
	}
	return buffer
}
