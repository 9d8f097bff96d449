package layout

// Cell is one placed item. Coordinates are in document units with the origin
// at the top-left corner of the real (pre-margin) document.
type Cell struct {
	Column int     `json:"column"`
	Row    int     `json:"row"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the cell's right edge.
func (c Cell) Right() float64 { return c.X + c.Width }

// Bottom returns the y coordinate of the cell's bottom edge.
func (c Cell) Bottom() float64 { return c.Y + c.Height }

// CenterX returns the horizontal center of the cell.
func (c Cell) CenterX() float64 { return c.X + c.Width/2 }

// CenterY returns the vertical center of the cell.
func (c Cell) CenterY() float64 { return c.Y + c.Height/2 }

// Cells lays out every item of r row by row, starting at the inner corner of
// the margin. Cells are returned in reading order. It allocates one Cell per
// item, so check Count before calling it on untrusted input.
func (r Result) Cells() []Cell {
	if r.Count() == 0 {
		return nil
	}
	cells := make([]Cell, 0, r.Count())
	for row := 0; row < r.MaxRows; row++ {
		for col := 0; col < r.MaxColumns; col++ {
			cells = append(cells, Cell{
				Column: col,
				Row:    row,
				X:      r.DocumentMargin + float64(col)*r.ItemWidth,
				Y:      r.DocumentMargin + float64(row)*r.ItemHeight,
				Width:  r.ItemWidth,
				Height: r.ItemHeight,
			})
		}
	}
	return cells
}

// Utilization returns the share of the real document area covered by items,
// between 0 and 1.
func (r Result) Utilization() float64 {
	area := r.DocumentWidthReal * r.DocumentHeightReal
	if area <= 0 {
		return 0
	}
	return float64(r.Count()) * r.ItemWidth * r.ItemHeight / area
}

// Waste returns the usable width and height left over after the grid.
func (r Result) Waste() (width, height float64) {
	return r.DocumentWidth - float64(r.MaxColumns)*r.ItemWidth,
		r.DocumentHeight - float64(r.MaxRows)*r.ItemHeight
}
