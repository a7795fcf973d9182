package pixelui

import "math"

// ListClipper computes which rows of a fixed-pitch list fall inside a
// viewport, so only those are drawn.
//
// Usage:
//
//	clipper := NewListClipper(total, rowHeight, rowHeight+spacing, visibleHeight, scrollY)
//	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
//	    y := clipper.ItemY(i, baseY, scrollY)
//	    // Draw row at y
//	}
type ListClipper struct {
	StartIdx   int     // First visible row (inclusive)
	EndIdx     int     // Last visible row (exclusive)
	ItemHeight float32 // Height of a row
	Pitch      float32 // Distance between the tops of two rows
	TotalItems int
}

// NewListClipper calculates the visible row range of a list scrolled down
// by scrollY pixels.
func NewListClipper(totalItems int, itemHeight, pitch, visibleHeight, scrollY float32) *ListClipper {
	c := &ListClipper{ItemHeight: itemHeight, Pitch: pitch, TotalItems: totalItems}
	if totalItems == 0 || pitch <= 0 {
		return c
	}

	c.StartIdx = clampi(int(math.Floor(float64(scrollY/pitch))), 0, totalItems)
	c.EndIdx = clampi(int(math.Ceil(float64((scrollY+visibleHeight)/pitch))), c.StartIdx, totalItems)
	return c
}

// ItemY returns the top of row idx for a list whose first row starts at
// baseY before scrolling.
func (c *ListClipper) ItemY(idx int, baseY, scrollY float32) float32 {
	return baseY + float32(idx)*c.Pitch - scrollY
}

// ScrollToItem returns the scroll offset that brings row idx fully into a
// viewport of visibleHeight, moving as little as possible. If the row is
// already visible the current scroll is returned unchanged.
func (c *ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}
	top := float32(idx)*c.Pitch - currentScroll
	bottom := top + c.ItemHeight
	return currentScroll - maxf(-top, 0) + maxf(bottom-visibleHeight, 0)
}
