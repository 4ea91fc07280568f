package uihelpers

import "path/filepath"

// Lower bounds for the chart image so tiny windows still render legibly.
const (
	MinChartWidth  = 320
	MinChartHeight = 240
)

// ComputeChartDimensions applies the clamp rules used for the chart image.
// Input: the window canvas size and the space taken by the toolbar (top)
// and the checkbox column (right). Returns the clamped width & height.
func ComputeChartDimensions(winW, winH, sideW, topH float32) (int, int) {
	w := int(winW-sideW) - 12
	if w < MinChartWidth {
		w = MinChartWidth
	}
	h := int(winH-topH) - 12
	if h < MinChartHeight {
		h = MinChartHeight
	}
	// no taller than 4:3
	if limit := w * 3 / 4; h > limit && limit >= MinChartHeight {
		h = limit
	}
	return w, h
}

// TruncatePath shortens p to about n characters, always keeping the file name.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
