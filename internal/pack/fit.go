package pack

import (
	"cmp"
	"errors"
	"slices"
)

// Bounds of the automatically chosen atlas size.
const (
	MinSize = 64
	MaxSize = 8192
)

// ErrNoFit is returned when the boxes do not fit the atlas.
var ErrNoFit = errors.New("pack: boxes do not fit the atlas")

// Size is the extent of a box in pixels.
type Size struct {
	W, H int
}

// Empty reports whether the box has no area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Point is the lower-left corner of a placed box.
type Point struct {
	X, Y int
}

// Result is a finished atlas packing.
type Result struct {
	// Points holds the placement of every box, in input order.
	Points []Point

	// Width and Height are the atlas size in pixels.
	Width, Height int

	// Rows is the number of shelves, or grid rows, in use.
	Rows int

	// Utilization is the share of the atlas covered by boxes.
	Utilization float64
}

// Fit places every box of sizes into one atlas. Empty boxes are placed at
// the origin and take no space.
//
// With width and height both positive the atlas has that size. Otherwise
// Fit picks the smallest power-of-two square between MinSize and MaxSize
// that holds every box.
func Fit(sizes []Size, padding, width, height int) (Result, error) {
	if width > 0 && height > 0 {
		res, ok := place(sizes, padding, width, height)
		if !ok {
			return Result{}, ErrNoFit
		}
		return res, nil
	}

	for side := MinSize; side <= MaxSize; side *= 2 {
		if res, ok := place(sizes, padding, side, side); ok {
			return res, nil
		}
	}
	return Result{}, ErrNoFit
}

func place(sizes []Size, padding, width, height int) (Result, bool) {
	pts := make([]Point, len(sizes))
	res := Result{Points: pts, Width: width, Height: height}

	order := make([]int, 0, len(sizes))
	for i, s := range sizes {
		if !s.Empty() {
			order = append(order, i)
		}
	}
	if len(order) == 0 {
		return res, true
	}

	if cell, ok := uniformCell(sizes, order); ok {
		g := NewGridAllocator(width, height, cell, padding)
		if g.Capacity() < len(order) {
			return Result{}, false
		}
		for _, i := range order {
			pts[i].X, pts[i].Y, _ = g.Allocate()
		}
		res.Rows, res.Utilization = g.RowCount(), g.Utilization()
		return res, true
	}

	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(sizes[b].H, sizes[a].H); c != 0 {
			return c
		}
		return cmp.Compare(sizes[b].W, sizes[a].W)
	})

	alloc := NewShelfAllocator(width, height, padding)
	for _, i := range order {
		x, y, ok := alloc.Allocate(sizes[i].W, sizes[i].H)
		if !ok {
			return Result{}, false
		}
		pts[i] = Point{X: x, Y: y}
	}
	res.Rows, res.Utilization = alloc.ShelfCount(), alloc.Utilization()
	return res, true
}

// uniformCell reports whether every listed box is the same square.
func uniformCell(sizes []Size, order []int) (int, bool) {
	first := sizes[order[0]]
	if first.W != first.H {
		return 0, false
	}
	for _, i := range order[1:] {
		if sizes[i] != first {
			return 0, false
		}
	}
	return first.W, true
}
