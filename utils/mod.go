package utils

// CenterDistance returns the squared euclidean distance of cell (row, col)
// from the center of a width x height board.
func CenterDistance(width, height, row, col int) float64 {
	w, h := float64(width)/2, float64(height)/2
	dy, dx := h-float64(row), w-float64(col)
	return dy*dy + dx*dx
}

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
