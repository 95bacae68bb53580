package propagator

import (
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/wave"
)

type banEntry struct {
	cell    grid.Vec2
	pattern int
}

// Propagator drives arc-consistency propagation over a Wave. It owns the
// compatibility counter and worklist; the Wave is passed into Propagate by
// reference on every call rather than stored, so Propagator and Wave never
// need a back-pointer to each other despite their tight coupling.
type Propagator struct {
	size     grid.Vec2
	periodic bool
	adj      AdjacencyList

	compatible *grid.Array4D[uint32]
	worklist   []banEntry
}

// New builds a Propagator for a wave of the given size with the given
// adjacency lists. numPatterns must equal len(adj[d]) for every direction
// d; ErrEmptyAdjacency if numPatterns is zero.
func New(size grid.Vec2, adj AdjacencyList, numPatterns int, periodic bool) (*Propagator, error) {
	if numPatterns == 0 {
		return nil, ErrEmptyAdjacency
	}
	compatible, err := grid.NewArray4D[uint32](grid.NumDirections, numPatterns, size.I, size.J)
	if err != nil {
		return nil, err
	}
	p := &Propagator{
		size:       size,
		periodic:   periodic,
		adj:        adj,
		compatible: compatible,
	}
	p.Init()
	return p, nil
}

// Init empties the worklist and recomputes the compatibility counter from
// the adjacency lists: C[d,p,i,j] = |adj[opposite(d)][p]| for every cell,
// uniformly (the count doesn't depend on (i,j) until a ban perturbs it).
func (p *Propagator) Init() {
	p.worklist = p.worklist[:0]
	_, numPatterns, height, width := p.compatible.Size()
	for d := 0; d < grid.NumDirections; d++ {
		opp := grid.OppositeDirection[d]
		for pat := 0; pat < numPatterns; pat++ {
			count := uint32(len(p.adj[opp][pat]))
			for i := 0; i < height; i++ {
				for j := 0; j < width; j++ {
					p.compatible.Set(d, pat, i, j, count)
				}
			}
		}
	}
}

// Push zeroes pattern's compatibility counters at cell across every
// direction (it can no longer support any neighbor) and enqueues (cell,
// pattern) for propagation. Solver.Collapse calls this for front-end
// pre-conditioning (ground rows, pinned cells); Solver.Observe and
// Propagate call it internally on every ban.
func (p *Propagator) Push(cell grid.Vec2, pattern int) {
	for d := 0; d < grid.NumDirections; d++ {
		p.compatible.Set(d, pattern, cell.I, cell.J, 0)
	}
	p.worklist = append(p.worklist, banEntry{cell: cell, pattern: pattern})
}

// Propagate drains the worklist, banning every wave pattern that loses its
// last supporter, until the worklist empties; it keeps draining even after
// the wave becomes impossible. It is safe (if wasteful) to call Propagate again once it has
// already drained — the loop is simply a no-op.
func (p *Propagator) Propagate(w *wave.Wave) {
	for len(p.worklist) > 0 {
		n := len(p.worklist) - 1
		entry := p.worklist[n]
		p.worklist = p.worklist[:n]

		for d := 0; d < grid.NumDirections; d++ {
			neighbor, ok := p.neighbor(entry.cell, d)
			if !ok {
				continue
			}
			for _, q := range p.adj[d][entry.pattern] {
				count := p.compatible.Get(d, q, neighbor.I, neighbor.J) - 1
				p.compatible.Set(d, q, neighbor.I, neighbor.J, count)
				if count == 0 && w.Get(neighbor, q) {
					w.Set(neighbor, q, false)
					p.Push(neighbor, q)
				}
			}
		}
	}
}

// neighbor returns the cell adjacent to cell in direction d, wrapping if
// periodic or reporting ok=false if the neighbor would fall out of bounds.
func (p *Propagator) neighbor(cell grid.Vec2, d int) (grid.Vec2, bool) {
	next := cell.Add(grid.DirectionOffset[d])
	if p.periodic {
		return next.Mod(p.size), true
	}
	if !next.InRange(p.size) {
		return grid.Vec2{}, false
	}
	return next, true
}
