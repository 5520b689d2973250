package s2

import "testing"

// CheckCompleteCovering verifies that covering actually covers region: every
// cell that region intersects is either contained in covering or has all of
// its children checked recursively. If checkTight is true, it also verifies
// that covering contains no cell region does not intersect.
func CheckCompleteCovering(t *testing.T, region Region, covering CellUnion, checkTight bool, id CellID) {
	if !id.IsValid() {
		for face := 0; face < numFaces; face++ {
			CheckCompleteCovering(t, region, covering, checkTight, CellIDFromFace(face))
		}
		return
	}

	intersects := region.MayIntersect(CellFromCellID(id))
	contained := covering.ContainsCellID(id)

	if !intersects {
		if checkTight && covering.IntersectsCellID(id) {
			t.Errorf("covering contains %v, but region does not intersect it", id)
		}
		return
	}

	if contained {
		return
	}

	if region.ContainsCell(CellFromCellID(id)) {
		t.Errorf("region contains %v, but covering does not", id)
	}
	if id.Level() == MaxCellLevel {
		t.Errorf("reached leaf level %v without the covering containing it", id)
		return
	}
	for _, child := range id.Children() {
		CheckCompleteCovering(t, region, covering, checkTight, child)
	}
}
