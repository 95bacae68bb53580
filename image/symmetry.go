package image

// Symmetry classifies how many of a tile/pattern's eight dihedral
// orientations (four rotations x mirror) are actually distinct, and how
// rotation/reflection permute the distinct set. Values match the reference
// implementation's enum order and semantics exactly.
type Symmetry struct {
	class byte
}

// Symmetry classes, by canonical one-letter name.
const (
	SymX         = 'X'
	SymT         = 'T'
	SymI         = 'I'
	SymL         = 'L'
	SymBackslash = '\\'
	SymF         = 'F'
)

// NewSymmetry parses a one-character symmetry class. Unrecognized
// characters fall back to SymF (maximal orbit), matching the reference
// implementation's default case, rather than erroring. internal/config
// passes a rules file's symmetry character through unchecked, so a
// malformed character there also yields SymF.
func NewSymmetry(class byte) Symmetry {
	switch class {
	case SymX, SymT, SymI, SymL, SymBackslash, SymF:
		return Symmetry{class: class}
	default:
		return Symmetry{class: SymF}
	}
}

// Orientations returns the number of distinct oriented copies: 1 for X, 2
// for I/\, 4 for T/L, 8 for F.
func (s Symmetry) Orientations() int {
	switch s.class {
	case SymX:
		return 1
	case SymI, SymBackslash:
		return 2
	case SymT, SymL:
		return 4
	default: // SymF
		return 8
	}
}

// RotationMap returns, for each of the s.Orientations() distinct
// orientations, the index reached by rotating it 90 degrees.
func (s Symmetry) RotationMap() []int {
	switch s.class {
	case SymX:
		return []int{0}
	case SymI, SymBackslash:
		return []int{1, 0}
	case SymT, SymL:
		return []int{1, 2, 3, 0}
	default: // SymF
		return []int{1, 2, 3, 0, 5, 6, 7, 4}
	}
}

// ReflectionMap returns, for each of the s.Orientations() distinct
// orientations, the index reached by mirroring it.
func (s Symmetry) ReflectionMap() []int {
	switch s.class {
	case SymX:
		return []int{0}
	case SymI:
		return []int{0, 1}
	case SymBackslash:
		return []int{1, 0}
	case SymT:
		return []int{0, 3, 2, 1}
	case SymL:
		return []int{1, 0, 3, 2}
	default: // SymF
		return []int{4, 7, 6, 5, 0, 3, 2, 1}
	}
}

// GenerateOrientations returns the s.Orientations() distinct oriented
// copies of input, built by the canonical rotate/mirror chain. For classes
// smaller than F this walks the same rotate-only or rotate-then-mirror
// sequence the reference implementation uses, so the resulting order
// matches RotationMap/ReflectionMap's index convention exactly.
func (s Symmetry) GenerateOrientations(input Grid) ([]Grid, error) {
	oriented := make([]Grid, 0, 8)
	oriented = append(oriented, input)

	rotate := func(g Grid) (Grid, error) { return g.Rotate() }
	mirror := func(g Grid) (Grid, error) { return g.Mirror() }

	switch s.class {
	case SymX:
		// single orientation, nothing to add
	case SymI, SymBackslash:
		r, err := rotate(oriented[0])
		if err != nil {
			return nil, err
		}
		oriented = append(oriented, r)
	case SymT, SymL:
		cur := oriented[0]
		for k := 0; k < 3; k++ {
			next, err := rotate(cur)
			if err != nil {
				return nil, err
			}
			oriented = append(oriented, next)
			cur = next
		}
	default: // SymF
		cur := oriented[0]
		for k := 0; k < 3; k++ {
			next, err := rotate(cur)
			if err != nil {
				return nil, err
			}
			oriented = append(oriented, next)
			cur = next
		}
		mirrored, err := mirror(cur)
		if err != nil {
			return nil, err
		}
		oriented = append(oriented, mirrored)
		cur = mirrored
		for k := 0; k < 3; k++ {
			next, err := rotate(cur)
			if err != nil {
				return nil, err
			}
			oriented = append(oriented, next)
			cur = next
		}
	}
	return oriented, nil
}

// GenerateSymmetries returns the first count (1..8) of the eight dihedral
// transforms of input, in the canonical order [id, mirror, rot, rot*mirror,
// rot^2, rot^2*mirror, rot^3, rot^3*mirror]. Unlike Symmetry.GenerateOrientations
// (which follows a tile's declared symmetry class), this is used by the
// Overlapping front end, which takes a raw orientation count directly from
// its options rather than from a per-tile symmetry class.
func GenerateSymmetries(input Grid, count int) ([]Grid, error) {
	out := make([]Grid, count)
	out[0] = input
	if count > 1 {
		m, err := out[0].Mirror()
		if err != nil {
			return nil, err
		}
		out[1] = m
	}
	if count > 2 {
		r, err := out[0].Rotate()
		if err != nil {
			return nil, err
		}
		out[2] = r
	}
	if count > 3 {
		m, err := out[2].Mirror()
		if err != nil {
			return nil, err
		}
		out[3] = m
	}
	if count > 4 {
		r, err := out[2].Rotate()
		if err != nil {
			return nil, err
		}
		out[4] = r
	}
	if count > 5 {
		m, err := out[4].Mirror()
		if err != nil {
			return nil, err
		}
		out[5] = m
	}
	if count > 6 {
		r, err := out[4].Rotate()
		if err != nil {
			return nil, err
		}
		out[6] = r
	}
	if count > 7 {
		m, err := out[6].Mirror()
		if err != nil {
			return nil, err
		}
		out[7] = m
	}
	return out, nil
}

// actionDirectionTable maps each of the eight D4 group-element indices
// (identity, three rotations, mirror, mirror+three rotations) to the
// cardinal direction that element carries the "right" neighbor direction
// to. SimpleTiled's adjacency derivation uses this to project a single
// "A right-of B" rule across the whole symmetry orbit.
var actionDirectionTable = [8]int{2, 0, 1, 3, 1, 3, 2, 0}

// ActionDirection returns the cardinal direction associated with D4 group
// element action (0..7), per the fixed action-to-direction table.
func ActionDirection(action int) int {
	return actionDirectionTable[action]
}
