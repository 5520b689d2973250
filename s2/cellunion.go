package s2

import "sort"

// CellUnion is a collection of CellIDs that together describe a region on
// the sphere. A normalized CellUnion is sorted in Hilbert-curve order and
// contains no cell that is a descendant of another, with any group of four
// sibling cells replaced by their common parent.
type CellUnion []CellID

// Init initializes cu from cellIDs, which need not be sorted or normalized.
func (cu *CellUnion) Init(cellIDs []CellID) {
	*cu = append((*cu)[:0], cellIDs...)
	cu.Normalize()
}

// NumCells returns the number of cells in the union.
func (cu CellUnion) NumCells() int { return len(cu) }

// Normalize sorts the cells into Hilbert-curve order, discards any cell
// that is contained by another, and repeatedly merges groups of four
// sibling cells into their parent.
func (cu *CellUnion) Normalize() {
	ids := append([]CellID{}, (*cu)...)
	sort.Sort(byID(ids))
	output := make([]CellID, 0, len(ids))
	for _, id := range ids {
		n := len(output)
		if n > 0 && output[n-1].Contains(id) {
			continue
		}
		for n > 0 && id.Contains(output[n-1]) {
			output = output[:n-1]
			n--
		}
		output = append(output, id)
		for {
			n = len(output)
			if n < 4 {
				break
			}
			parent := output[n-1].immediateParent()
			if output[n-4] != parent.ChildBegin() {
				break
			}
			child, ok := parent.ChildBegin(), true
			for k := 0; k < 4; k++ {
				if output[n-4+k] != child {
					ok = false
					break
				}
				child = child.next()
			}
			if !ok {
				break
			}
			output = append(output[:n-4], parent)
		}
	}
	*cu = output
}

// ContainsCellID reports whether the union contains or is an ancestor of id.
func (cu CellUnion) ContainsCellID(id CellID) bool {
	i := sort.Search(len(cu), func(i int) bool { return id < cu[i] })
	if i != len(cu) && cu[i].RangeMin() <= id {
		return true
	}
	return i != 0 && cu[i-1].RangeMax() >= id
}

// IntersectsCellID reports whether the union has any cell in common with id.
func (cu CellUnion) IntersectsCellID(id CellID) bool {
	i := sort.Search(len(cu), func(i int) bool { return id < cu[i] })
	if i != len(cu) && cu[i].RangeMin() <= id.RangeMax() {
		return true
	}
	return i != 0 && cu[i-1].RangeMax() >= id.RangeMin()
}

// ContainsCell reports whether the union contains the given cell.
func (cu CellUnion) ContainsCell(cell Cell) bool { return cu.ContainsCellID(cell.ID()) }

// Contains reports whether the union contains every cell of other.
func (cu CellUnion) Contains(other CellUnion) bool {
	for _, id := range other {
		if !cu.ContainsCellID(id) {
			return false
		}
	}
	return true
}

// Intersects reports whether cu and other have any cell in common.
func (cu CellUnion) Intersects(other CellUnion) bool {
	for _, id := range other {
		if cu.IntersectsCellID(id) {
			return true
		}
	}
	return false
}

// RectBound returns a bounding LatLng rectangle for the union.
func (cu CellUnion) RectBound() Rect {
	bound := EmptyRect()
	for _, id := range cu {
		bound = bound.Union(CellFromCellID(id).RectBound())
	}
	return bound
}

// CapBound returns a bounding cap for the union.
func (cu CellUnion) CapBound() Cap { return cu.RectBound().CapBound() }

// LeafCellsCovered returns the number of leaf cells covered, counted with
// duplicates if the union is not normalized.
func (cu CellUnion) LeafCellsCovered() int64 {
	var n int64
	for _, id := range cu {
		n += int64(1) << uint(2*(maxLevel-id.Level()))
	}
	return n
}
