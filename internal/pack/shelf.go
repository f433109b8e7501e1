// Package pack places glyph boxes into an atlas.
package pack

// ShelfAllocator packs rectangles into horizontal shelves.
//
// Rectangles are placed left to right on the first shelf that has room.
// A shelf is as tall as the tallest rectangle placed on it; when no shelf
// has room, a new one is opened above the last. Feeding rectangles in
// order of decreasing height keeps the wasted space per shelf small.
type ShelfAllocator struct {
	width   int
	height  int
	padding int
	shelves []shelf

	usedArea int
}

type shelf struct {
	y      int // bottom edge
	height int // tallest item so far
	x      int // next free column
}

// NewShelfAllocator creates an allocator for a width x height area.
// padding pixels are kept free to the right of and above every rectangle.
func NewShelfAllocator(width, height, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate reserves a w x h rectangle and returns its lower-left corner.
// It returns -1, -1, false when the rectangle does not fit.
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow.
			if i != len(a.shelves)-1 || s.y+paddedH > a.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := a.nextShelfY()
	if paddedW > a.width || newY+paddedH > a.height {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: paddedW})
	a.usedArea += w * h
	return 0, newY, true
}

func (a *ShelfAllocator) nextShelfY() int {
	if len(a.shelves) == 0 {
		return 0
	}
	last := a.shelves[len(a.shelves)-1]
	return last.y + last.height + a.padding
}

// Utilization returns the allocated share of the area (0.0 to 1.0).
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// ShelfCount returns the number of shelves in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}

// GridAllocator places equally sized square cells row by row.
type GridAllocator struct {
	width    int
	height   int
	cellSize int
	padding  int
	cols     int
	rows     int
	next     int
}

// NewGridAllocator creates a grid of cellSize cells over a width x height area.
func NewGridAllocator(width, height, cellSize, padding int) *GridAllocator {
	step := cellSize + padding
	g := &GridAllocator{width: width, height: height, cellSize: cellSize, padding: padding}
	if step > 0 {
		// The last cell needs no trailing padding.
		g.cols = (width + padding) / step
		g.rows = (height + padding) / step
	}
	return g
}

// Allocate returns the lower-left corner of the next free cell,
// or -1, -1, false when the grid is full.
func (g *GridAllocator) Allocate() (x, y int, ok bool) {
	if g.next >= g.Capacity() {
		return -1, -1, false
	}
	step := g.cellSize + g.padding
	x = (g.next % g.cols) * step
	y = (g.next / g.cols) * step
	g.next++
	return x, y, true
}

// Capacity returns the number of cells in the grid.
func (g *GridAllocator) Capacity() int {
	return g.cols * g.rows
}

// Allocated returns the number of cells handed out.
func (g *GridAllocator) Allocated() int {
	return g.next
}

// RowCount returns the number of rows holding at least one cell.
func (g *GridAllocator) RowCount() int {
	if g.cols == 0 {
		return 0
	}
	return (g.Allocated() + g.cols - 1) / g.cols
}

// Utilization returns the allocated share of the area (0.0 to 1.0).
func (g *GridAllocator) Utilization() float64 {
	if g.width <= 0 || g.height <= 0 {
		return 0
	}
	return float64(g.Allocated()*g.cellSize*g.cellSize) / float64(g.width*g.height)
}
