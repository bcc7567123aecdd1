package stencil

// generator decides whether cell (i, j) of a stencil centered on
// (center, center) is affected.
type generator func(i, j, center int) bool

var generators = map[Shape]generator{
	Cone:    cone,
	Cross:   cross,
	Diamond: diamond,
}

// cone points down from its tip on row 0. Row i spans 2i+1 columns around
// the center, truncated by the matrix edges.
func cone(i, j, center int) bool {
	half := (2*i + 1) / 2
	return j >= center-half && j <= center+half
}

func cross(i, j, center int) bool {
	return i == center || j == center
}

// diamond holds the cells within Manhattan distance center of the center.
func diamond(i, j, center int) bool {
	return abs(i-center)+abs(j-center) <= center
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
