package grid

// pointFn maps a coordinate on a rows x cols board to its image on the
// transformed board, returning the transformed board's shape alongside it
// (a 90-degree rotation swaps rows and cols).
type pointFn func(r, c, rows, cols int) (r2, c2, rows2, cols2 int)

func identity(r, c, rows, cols int) (int, int, int, int) {
	return r, c, rows, cols
}

func rot90(r, c, rows, cols int) (int, int, int, int) {
	return c, rows - 1 - r, cols, rows
}

func flipH(r, c, rows, cols int) (int, int, int, int) {
	return r, cols - 1 - c, rows, cols
}

func compose(fns ...pointFn) pointFn {
	return func(r, c, rows, cols int) (int, int, int, int) {
		for _, f := range fns {
			r, c, rows, cols = f(r, c, rows, cols)
		}
		return r, c, rows, cols
	}
}

// orientations holds the 8 elements of the dihedral group of a square, in a
// fixed order: the 4 rotations, then the 4 rotations of the horizontal
// mirror. Orientations 1, 3, 5, 7 swap rows and cols and so only apply to
// square boards; orientations 0, 2, 4, 6 preserve shape and apply to any
// rectangle.
var orientations = [8]pointFn{
	identity,
	compose(rot90),
	compose(rot90, rot90),
	compose(rot90, rot90, rot90),
	flipH,
	compose(flipH, rot90),
	compose(flipH, rot90, rot90),
	compose(flipH, rot90, rot90, rot90),
}

const numOrientations = 8

// composition[a][b] is the orientation equivalent to applying a then b.
var composition [numOrientations][numOrientations]int

func init() {
	// Two dihedral-group elements are equal iff they agree on every cell of a
	// generic square board, so identify each pairwise composition by its
	// action on a 4x4 grid.
	const n = 4
	signature := func(f pointFn) [n * n]int {
		var sig [n * n]int
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				r2, c2, _, cols2 := f(r, c, n, n)
				sig[r*n+c] = r2*cols2 + c2
			}
		}
		return sig
	}

	var sigs [numOrientations][n * n]int
	for o := range orientations {
		sigs[o] = signature(orientations[o])
	}

	for a := range orientations {
		for b := range orientations {
			sig := signature(compose(orientations[a], orientations[b]))
			found := -1
			for o := range sigs {
				if sigs[o] == sig {
					found = o
					break
				}
			}
			if found < 0 {
				panic("grid: orientation composition is not itself an orientation")
			}
			composition[a][b] = found
		}
	}
}

// MaskClosed reports whether the orientations selected by mask form an
// equivalence class under composition: applying any two active orientations
// in sequence lands on another active orientation. Hash.Reset rejects masks
// that are not closed, since the minimum over an unclosed set is not stable
// across symmetric boards.
func MaskClosed(mask uint8) bool {
	for a := 0; a < numOrientations; a++ {
		if mask&(1<<uint(a)) == 0 {
			continue
		}
		for b := 0; b < numOrientations; b++ {
			if mask&(1<<uint(b)) == 0 {
				continue
			}
			if mask&(1<<uint(composition[a][b])) == 0 {
				return false
			}
		}
	}
	return true
}

// Symmetry masks select which of the 8 orientations contribute to a Hash.
// A game registers the mask matching its own board-shape symmetry with
// cgt.RegisterType.
const (
	// SymmetryMaskAll uses all 8 orientations. Only valid for square boards,
	// where every orientation preserves the board's shape.
	SymmetryMaskAll uint8 = 0xFF

	// SymmetryMaskRect uses the 4 shape-preserving orientations (identity,
	// 180-degree rotation, and both axis mirrors). Valid for any rectangle.
	SymmetryMaskRect uint8 = 1<<0 | 1<<2 | 1<<4 | 1<<6

	// SymmetryMaskMirrors uses identity and the horizontal mirror only.
	// Appropriate for single-row strips, whose only symmetry is end-to-end
	// reversal.
	SymmetryMaskMirrors uint8 = 1<<0 | 1<<4
)
