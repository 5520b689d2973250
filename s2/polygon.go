package s2

type LoopMap map[*Loop][]*Loop

type Polygon struct {
	loops       []*Loop
	bound       Rect
	ownsLoops   bool
	hasHoles    bool
	numVertices int
}

func NewPolygonFromLoops(loops *[]*Loop) *Polygon {
	p := &Polygon{
		loops:     make([]*Loop, len(*loops)),
		bound:     EmptyRect(),
		ownsLoops: true,
		hasHoles:  false,
	}
	copy(p.loops, *loops)
	for _, loop := range p.loops {
		p.numVertices += len(loop.vertices)
	}

	loopMap := LoopMap{}
	for _, loop := range p.loops {
		p.InsertLoop(loop, nil, loopMap)
	}

	// Reorder the loops in depth-first order.
	p.loops = []*Loop{}
	p.InitLoop(nil, -1, loopMap)

	for _, loop := range p.loops {
		if loop.Sign() < 0 {
			p.hasHoles = true
		} else {
			p.bound = p.bound.Union(loop.bound)
		}
	}
	return p
}

func (p *Polygon) Release(loops *[]*Loop) {
	if loops != nil {
		copy(*loops, p.loops)
	}
	p.loops = []*Loop{}
	p.bound = EmptyRect()
	p.hasHoles = false
}

func (p *Polygon) InitLoop(loop *Loop, depth int, loopMap LoopMap) {
	if loop != nil {
		loop.depth = depth
		p.loops = append(p.loops, loop)
	}
	children := loopMap[loop]
	for _, child := range children {
		p.InitLoop(child, depth+1, loopMap)
	}
}

func (p *Polygon) InsertLoop(newLoop, parent *Loop, loopMap LoopMap) {
	children := loopMap[parent]
	for _, child := range children {
		if child.ContainsNested(newLoop) {
			p.InsertLoop(newLoop, child, loopMap)
			return
		}
	}
	// No loop may contain the complement of another loop. (Handling this
	// case is significantly more complicated).
	//
	// Some of the children of the parent loop may now be children of the
	// new loop.
	newChildren := loopMap[newLoop]
	for i := 0; i < len(children); {
		child := children[i]
		if newLoop.ContainsNested(child) {
			newChildren = append(newChildren, child)
			copy(children[i:], children[i+1:])
			children[len(children)-1] = nil
			children = children[:len(children)-1]
		} else {
			i++
		}
	}
	loopMap[newLoop] = newChildren
	loopMap[parent] = append(children, newLoop)
}

type PointPair struct {
	first, second Point
}

type IntPair struct {
	first, second int
}

// NumLoops returns the number of loops in the polygon.
func (p Polygon) NumLoops() int { return len(p.loops) }

// Loop returns the i-th loop, in depth-first order.
func (p Polygon) Loop(i int) *Loop { return p.loops[i] }

// HasHoles reports whether the polygon has at least one hole.
func (p Polygon) HasHoles() bool { return p.hasHoles }

// RectBound returns a bounding LatLng rectangle for the polygon.
func (p Polygon) RectBound() Rect { return p.bound }

// CapBound returns a bounding cap for the polygon.
func (p Polygon) CapBound() Cap { return p.bound.CapBound() }

// anyLoopContains reports whether any single loop of p contains b. This is
// only a valid test for polygon containment when neither p nor b has holes.
func (p Polygon) anyLoopContains(b *Loop) bool {
	for _, l := range p.loops {
		if l.ContainsLoop(b) {
			return true
		}
	}
	return false
}

// ContainsPoint reports whether the polygon contains point.
func (p Polygon) ContainsPoint(point Point) bool {
	if !p.bound.ContainsPoint(point) {
		return false
	}
	inside := false
	for _, l := range p.loops {
		inside = inside != l.Contains(point)
		if inside && !p.hasHoles {
			break
		}
	}
	return inside
}

// containsBoundary falls back to a boundary-crossing test for the case
// where either polygon has holes, so the single-loop-containment shortcut
// used by ContainsPolygon no longer applies.
func (p Polygon) containsBoundary(b *Polygon) bool {
	for _, bl := range b.loops {
		if !p.ContainsPoint(*bl.vertex(0)) {
			return false
		}
	}
	for _, al := range p.loops {
		for _, bl := range b.loops {
			if al.ContainsOrCrosses(bl) < 0 {
				return false
			}
		}
	}
	return true
}

// ContainsPolygon reports whether p contains every point of b.
func (p Polygon) ContainsPolygon(b *Polygon) bool {
	if len(p.loops) == 1 && len(b.loops) == 1 {
		return p.loops[0].ContainsLoop(b.loops[0])
	}
	if !p.hasHoles && !b.hasHoles {
		for _, bl := range b.loops {
			if !p.anyLoopContains(bl) {
				return false
			}
		}
		return true
	}
	return p.containsBoundary(b)
}

// ContainsCell reports whether the polygon contains the given cell.
func (p Polygon) ContainsCell(cell Cell) bool {
	if !p.bound.ContainsPoint(cell.Center()) {
		return false
	}
	cellLoop := NewLoopFromCell(cell)
	cellPoly := &Polygon{loops: []*Loop{cellLoop}, bound: cellLoop.bound}
	return p.ContainsPolygon(cellPoly)
}

// MayIntersect reports whether the polygon might intersect the given cell.
func (p Polygon) MayIntersect(cell Cell) bool {
	if len(p.loops) == 0 {
		return false
	}
	if !p.bound.Intersects(cell.RectBound()) {
		return false
	}
	cellLoop := NewLoopFromCell(cell)
	for _, l := range p.loops {
		if l.Intersects(cellLoop) {
			return true
		}
	}
	return false
}

func AreLoopsValid(loops []*Loop) bool {
	// If a loop contains an edge AB, then no other loop may contain
	// AB or BA.
	if len(loops) > 1 {
		edges := map[PointPair]IntPair{}
		for i, loop := range loops {
			for j := 0; j < len(loop.vertices); j++ {
				key := PointPair{*loop.vertex(j), *loop.vertex(j + 1)}
				rev := PointPair{*loop.vertex(j + 1), *loop.vertex(j)}
				if other, ok := edges[rev]; ok && other.first != i {
					return false
				}
				if _, ok := edges[key]; !ok {
					edges[key] = IntPair{i, j}
					continue
				}
				return false
			}
		}
	}

	// Verify that no loop covers more than half of the sphere, and that
	// no two loops cross.
	for i, loop := range loops {
		if !loop.IsNormalized() {
			return false
		}
		for j := i + 1; j < len(loops); j++ {
			// This test not only checks for edge crossings, it
			// also detects cases where the two boundaries cross
			// at a shared vertex.
			if loop.ContainsOrCrosses(loops[j]) < 0 {
				return false
			}
		}
	}
	return true
}
