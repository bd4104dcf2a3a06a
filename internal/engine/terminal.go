package engine

// IsTerminal reports whether no move can change the board: every cell is
// filled and no two horizontally or vertically adjacent tiles are equal.
// It does not modify the board or any flag.
func IsTerminal(b *Board) bool {
	if b.EmptyCount() > 0 {
		return false
	}
	return !hasPossibleMerge(b)
}

// hasPossibleMerge returns true if any tile equals its right or lower neighbour.
func hasPossibleMerge(b *Board) bool {
	n := b.size
	for r := range n {
		for c := range n {
			v := b.cells[r*n+c]
			if c < n-1 && b.cells[r*n+c+1] == v {
				return true
			}
			if r < n-1 && b.cells[(r+1)*n+c] == v {
				return true
			}
		}
	}
	return false
}
