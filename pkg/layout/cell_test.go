package layout

import "testing"

func TestCells(t *testing.T) {
	r, err := Optimize(NewRequest(100, 60, 5, 30, 25))
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}

	cells := r.Cells()
	if len(cells) != r.Count() {
		t.Fatalf("len(Cells()) = %d, want %d", len(cells), r.Count())
	}

	first, last := cells[0], cells[len(cells)-1]
	if first.X != 5 || first.Y != 5 {
		t.Errorf("first cell at (%v, %v), want (5, 5)", first.X, first.Y)
	}
	if last.Column != 2 || last.Row != 1 {
		t.Errorf("last cell = col %d row %d, want col 2 row 1", last.Column, last.Row)
	}
	if last.Right() != 95 || last.Bottom() != 55 {
		t.Errorf("last cell ends at (%v, %v), want (95, 55)", last.Right(), last.Bottom())
	}
	if cells[1].Column != 1 || cells[1].Row != 0 {
		t.Errorf("cells not in reading order: second cell = col %d row %d", cells[1].Column, cells[1].Row)
	}

	for _, c := range cells {
		if c.X < r.DocumentMargin || c.Right() > r.DocumentWidthReal-r.DocumentMargin {
			t.Errorf("cell %+v escapes the usable width", c)
		}
		if c.Y < r.DocumentMargin || c.Bottom() > r.DocumentHeightReal-r.DocumentMargin {
			t.Errorf("cell %+v escapes the usable height", c)
		}
	}
}

func TestCellsEmpty(t *testing.T) {
	r, err := Optimize(NewRequest(50, 50, 0, 60, 10))
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	if cells := r.Cells(); cells != nil {
		t.Errorf("Cells() = %v, want nil", cells)
	}
}

func TestCellCenter(t *testing.T) {
	c := Cell{X: 10, Y: 20, Width: 30, Height: 40}
	if c.CenterX() != 25 || c.CenterY() != 40 {
		t.Errorf("center = (%v, %v), want (25, 40)", c.CenterX(), c.CenterY())
	}
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		name string
		r    Result
		want float64
	}{
		{
			name: "full",
			r:    Result{DocumentWidthReal: 100, DocumentHeightReal: 100, ItemWidth: 50, ItemHeight: 50, MaxColumns: 2, MaxRows: 2},
			want: 1,
		},
		{
			name: "half",
			r:    Result{DocumentWidthReal: 100, DocumentHeightReal: 100, ItemWidth: 50, ItemHeight: 50, MaxColumns: 2, MaxRows: 1},
			want: 0.5,
		},
		{
			name: "empty document",
			r:    Result{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Utilization(); got != tt.want {
				t.Errorf("Utilization() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWaste(t *testing.T) {
	r, err := Optimize(NewRequest(100, 100, 0, 30, 40))
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	w, h := r.Waste()
	if w != 10 || h != 20 {
		t.Errorf("Waste() = (%v, %v), want (10, 20)", w, h)
	}
}
