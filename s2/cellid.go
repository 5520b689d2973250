package s2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spherelib/s2/r3"
)

const (
	faceBits = 3
	numFaces = 6
	// MaxCellLevel is the deepest level of subdivision: a cell at this
	// level corresponds to a single leaf in the cube-face quadtree.
	MaxCellLevel = 30
	maxLevel     = MaxCellLevel
	// posBits is the number of bits of a CellID devoted to the face
	// position (the Hilbert-curve position plus its trailing lsb marker).
	posBits = 2*maxLevel + 1
	maxSize = 1 << maxLevel

	swapMask   = 1
	invertMask = 2
)

// ijToPos and posToIJ describe the four possible orientations of the
// 2x2 Hilbert-curve quadrant pattern, and are mutual inverses at every
// orientation: ijToPos[o][ij] gives the visiting order of quadrant ij
// under orientation o, and posToIJ[o][pos] recovers ij from that order.
// posToOrientation gives the orientation of the sub-quadrant visited at
// each step.
var (
	ijToPos = [4][4]int{
		{0, 1, 3, 2},
		{0, 3, 1, 2},
		{2, 3, 1, 0},
		{2, 1, 3, 0},
	}
	posToIJ = [4][4]int{
		{0, 1, 3, 2},
		{0, 2, 3, 1},
		{3, 2, 0, 1},
		{3, 1, 0, 2},
	}
	posToOrientation = [4]int{swapMask, 0, 0, swapMask | invertMask}
)

// CellID uniquely identifies a cell in the hierarchical decomposition of
// the unit sphere's six cube faces. The high 3 bits select a face; the
// next 60 bits encode a position along that face's Hilbert curve, 2 bits
// per level; a single trailing "lsb marker" bit identifies the level by
// its position. A leaf CellID (level 30) has its marker at bit 0.
type CellID uint64

// Sentinel returns a CellID guaranteed to be larger than any valid CellID.
func Sentinel() CellID { return CellID(^uint64(0)) }

func lsbForLevel(level int) uint64 { return uint64(1) << uint(2*(maxLevel-level)) }

func (ci CellID) lsb() uint64 { return uint64(ci) & -uint64(ci) }

// CellIDFromFace returns the cell at level 0 (a whole face).
func CellIDFromFace(face int) CellID {
	return CellID(uint64(face)<<posBits | lsbForLevel(0))
}

// CellIDFromFacePosLevel constructs a CellID from its face, its raw
// Hilbert-curve position (including the lsb marker), truncated to level.
func CellIDFromFacePosLevel(face int, pos uint64, level int) CellID {
	return CellID(uint64(face)<<posBits | pos).Parent(level)
}

func cellIDFromFaceIJ(face, i, j int) CellID {
	var pos uint64
	orientation := face & swapMask
	for k := maxLevel - 1; k >= 0; k-- {
		ibit := (i >> uint(k)) & 1
		jbit := (j >> uint(k)) & 1
		ij := ibit<<1 | jbit
		p := ijToPos[orientation][ij]
		pos = pos<<2 | uint64(p)
		orientation ^= posToOrientation[p]
	}
	return CellID(uint64(face)<<posBits | (pos << 1) | 1)
}

// cellIDFromFaceIJWrap is like cellIDFromFaceIJ but tolerates i or j
// falling outside [0, maxSize), which happens when stepping to a
// neighboring cell that actually lies on an adjacent face; it recovers
// the correct face geometrically.
func cellIDFromFaceIJWrap(face, i, j int) CellID {
	if i >= 0 && i < maxSize && j >= 0 && j < maxSize {
		return cellIDFromFaceIJ(face, i, j)
	}
	u, v := ijToST(clampInt(i, 0, maxSize), maxLevel), ijToST(clampInt(j, 0, maxSize), maxLevel)
	u, v = stToUV(u), stToUV(v)
	if i < 0 {
		u = -1
	} else if i >= maxSize {
		u = 1
	}
	if j < 0 {
		v = -1
	} else if j >= maxSize {
		v = 1
	}
	p := Point{faceUVToXYZ(face, u, v).Normalize()}
	return cellIDFromPoint(p)
}

// cellIDFromPoint returns the leaf CellID containing p.
func cellIDFromPoint(p Point) CellID {
	face, u, v := xyzToFaceUV(p)
	i := stToIJ(uvToST(u))
	j := stToIJ(uvToST(v))
	return cellIDFromFaceIJ(face, i, j)
}

// CellIDFromLatLng returns the leaf CellID containing ll.
func CellIDFromLatLng(ll LatLng) CellID { return cellIDFromPoint(ll.Point()) }

// CellIDFromPoint returns the leaf CellID containing p.
func CellIDFromPoint(p Point) CellID { return cellIDFromPoint(p) }

// Face returns the cube face (0..5) that the cell belongs to.
func (ci CellID) Face() int { return int(uint64(ci) >> posBits) }

// Pos returns the raw Hilbert-curve position, including the lsb marker.
func (ci CellID) Pos() uint64 { return uint64(ci) & (uint64(1)<<posBits - 1) }

// Level returns the subdivision level, in [0, MaxCellLevel].
func (ci CellID) Level() int {
	level := maxLevel
	for lsb := ci.lsb(); lsb != 1; lsb >>= 2 {
		level--
	}
	return level
}

// IsLeaf reports whether the cell is at the maximum subdivision level.
func (ci CellID) IsLeaf() bool { return uint64(ci)&1 != 0 }

// IsValid reports whether the id has a recognizable face and exactly one
// marker bit among its low 61 bits.
func (ci CellID) IsValid() bool {
	return ci.Face() < numFaces && (ci.lsb()&0x1555555555555555) != 0
}

// Parent returns the ancestor of ci at the given level.
func (ci CellID) Parent(level int) CellID {
	lsb := lsbForLevel(level)
	return CellID((uint64(ci) & -lsb) | lsb)
}

func (ci CellID) immediateParent() CellID { return ci.Parent(ci.Level() - 1) }

// ChildBeginAtLevel returns the first (smallest) descendant of ci at level.
func (ci CellID) ChildBeginAtLevel(level int) CellID {
	return CellID(uint64(ci) - ci.lsb() + lsbForLevel(level))
}

// ChildEndAtLevel returns one past the last descendant of ci at level.
func (ci CellID) ChildEndAtLevel(level int) CellID {
	return CellID(uint64(ci) + ci.lsb() + lsbForLevel(level))
}

// ChildBegin returns the first child of ci.
func (ci CellID) ChildBegin() CellID { return ci.ChildBeginAtLevel(ci.Level() + 1) }

// ChildEnd returns one past the last child of ci.
func (ci CellID) ChildEnd() CellID { return ci.ChildEndAtLevel(ci.Level() + 1) }

// Children returns the four immediate children of ci, in Hilbert order.
func (ci CellID) Children() [4]CellID {
	var ch [4]CellID
	ch[0] = ci.ChildBegin()
	for i := 1; i < 4; i++ {
		ch[i] = ch[i-1].next()
	}
	return ch
}

// next returns the next cell at the same level (wrapping across faces is
// the caller's responsibility, as with CellIDEnd).
func (ci CellID) next() CellID { return CellID(uint64(ci) + ci.lsb()<<1) }
func (ci CellID) prev() CellID { return CellID(uint64(ci) - ci.lsb()<<1) }

// Next returns the next cell at the same level.
func (ci CellID) Next() CellID { return ci.next() }

// Prev returns the previous cell at the same level.
func (ci CellID) Prev() CellID { return ci.prev() }

// NextWrap is like Next, but wraps from the last cell at this level on
// face 5 back to the first cell at this level on face 0.
func (ci CellID) NextWrap() CellID {
	n := ci.next()
	if uint64(n) < wrapOffset {
		return n
	}
	return CellID(uint64(n) - wrapOffset)
}

// PrevWrap is the wraparound counterpart of NextWrap.
func (ci CellID) PrevWrap() CellID {
	if uint64(ci) > ci.lsb() {
		return ci.prev()
	}
	return CellID(uint64(ci.prev()) + wrapOffset)
}

var wrapOffset = uint64(numFaces) << posBits

// Advance steps forward or backward by the given number of cells at this
// level, wrapping around the entire sphere rather than overflowing.
func (ci CellID) Advance(steps int64) CellID {
	if steps == 0 {
		return ci
	}
	stepShift := uint(2*(maxLevel-ci.Level()) + 1)
	n := wrapOffset >> stepShift
	s := steps % int64(n)
	if s < 0 {
		s += int64(n)
	}
	idx := (uint64(ci)>>stepShift + uint64(s)) % n
	return CellID(idx<<stepShift | ci.lsb())
}

// CellIDBegin returns the first CellID at the given level, in iteration
// order across all faces.
func CellIDBegin(level int) CellID {
	return CellIDFromFace(0).ChildBeginAtLevel(level)
}

// CellIDEnd returns one past the last CellID at the given level.
func CellIDEnd(level int) CellID {
	return CellIDFromFace(numFaces - 1).ChildEndAtLevel(level)
}

// RangeMin returns the smallest leaf CellID contained by ci.
func (ci CellID) RangeMin() CellID { return CellID(uint64(ci) - (ci.lsb() - 1)) }

// RangeMax returns the largest leaf CellID contained by ci.
func (ci CellID) RangeMax() CellID { return CellID(uint64(ci) + (ci.lsb() - 1)) }

// Contains reports whether ci contains o.
func (ci CellID) Contains(o CellID) bool {
	return uint64(ci.RangeMin()) <= uint64(o) && uint64(o) <= uint64(ci.RangeMax())
}

// Intersects reports whether ci and o have any leaf descendant in common.
func (ci CellID) Intersects(o CellID) bool {
	return uint64(ci.RangeMin()) <= uint64(o.RangeMax()) && uint64(o.RangeMin()) <= uint64(ci.RangeMax())
}

// CommonAncestorLevel returns the level of the smallest cell that
// contains both ci and o, or ok=false if they are on different faces.
func (ci CellID) CommonAncestorLevel(o CellID) (level int, ok bool) {
	if ci.Face() != o.Face() {
		return 0, false
	}
	bits := uint64(ci) ^ uint64(o)
	if bits != 0 && bits < ci.lsb() {
		bits = ci.lsb()
	}
	if bits != 0 && bits < o.lsb() {
		bits = o.lsb()
	}
	if bits == 0 {
		l := ci.Level()
		if o.Level() < l {
			l = o.Level()
		}
		return l, true
	}
	msbPos := 63
	for ; msbPos >= 0 && bits&(uint64(1)<<uint(msbPos)) == 0; msbPos-- {
	}
	level = (posBits - 1 - msbPos) / 2
	if level > maxLevel {
		level = maxLevel
	}
	return level, true
}

// faceIJOrientation decodes ci into its face and the leaf-resolution
// (i, j) coordinates of the point at the center of its Hilbert-curve
// position, plus the orientation of the curve at that position.
func (ci CellID) faceIJOrientation() (face, i, j, orientation int) {
	face = ci.Face()
	orientation = face & swapMask
	hilbertPos := ci.Pos() >> 1
	for k := 0; k < maxLevel; k++ {
		shift := uint(2 * (maxLevel - 1 - k))
		p := int((hilbertPos >> shift) & 3)
		ij := posToIJ[orientation][p]
		i = i<<1 | (ij >> 1)
		j = j<<1 | (ij & 1)
		orientation ^= posToOrientation[p]
	}
	if ci.lsb()&0x1111111111111110 != 0 {
		orientation ^= swapMask
	}
	return
}

func sizeIJ(level int) int { return 1 << uint(maxLevel-level) }

// rawPoint returns an unnormalized vector in the direction of ci's center.
func (ci CellID) rawPoint() r3.Vector {
	face, i, j, _ := ci.faceIJOrientation()
	rect := ijLevelToBoundUV(i, j, ci.Level())
	c := rect.Center()
	return faceUVToXYZ(face, c.X, c.Y)
}

// Point returns the (normalized) center of ci.
func (ci CellID) Point() Point { return Point{ci.rawPoint().Normalize()} }

// LatLng returns the lat/lng of ci's center.
func (ci CellID) LatLng() LatLng { return LatLngFromPoint(ci.Point()) }

// AppendVertexNeighbors appends to output the (up to four) cells at the
// given level that share a vertex with ci.
func (ci CellID) AppendVertexNeighbors(level int, output *[]CellID) {
	ci = ci.Parent(level)
	face, i, j, _ := ci.faceIJOrientation()

	halfSize := sizeIJ(level + 1)
	size := halfSize * 2
	var ioffset, joffset int
	if i&halfSize != 0 {
		ioffset = size
	} else {
		ioffset = -size
	}
	if j&halfSize != 0 {
		joffset = size
	} else {
		joffset = -size
	}

	seen := map[CellID]bool{}
	add := func(c CellID) {
		if !seen[c] {
			seen[c] = true
			*output = append(*output, c)
		}
	}
	add(ci)
	add(cellIDFromFaceIJWrap(face, i+ioffset, j).Parent(level))
	add(cellIDFromFaceIJWrap(face, i, j+joffset).Parent(level))
	add(cellIDFromFaceIJWrap(face, i+ioffset, j+joffset).Parent(level))
}

// EdgeNeighbors returns the four cells at the same level that share an
// edge with ci.
func (ci CellID) EdgeNeighbors() [4]CellID {
	level := ci.Level()
	size := sizeIJ(level)
	face, i, j, _ := ci.faceIJOrientation()
	return [4]CellID{
		cellIDFromFaceIJWrap(face, i, j-size).Parent(level),
		cellIDFromFaceIJWrap(face, i+size, j).Parent(level),
		cellIDFromFaceIJWrap(face, i, j+size).Parent(level),
		cellIDFromFaceIJWrap(face, i-size, j).Parent(level),
	}
}

// ToToken returns a compact textual representation: the id's hex digits
// with trailing zeros stripped, so that Parent of a truncated token is
// itself a prefix of the full token (for levels that fall on a hex-digit
// boundary).
func (ci CellID) ToToken() string {
	if ci == 0 {
		return "X"
	}
	s := strings.TrimRight(fmt.Sprintf("%016x", uint64(ci)), "0")
	if s == "" {
		return "0"
	}
	return s
}

// CellIDFromToken parses the textual form produced by ToToken.
func CellIDFromToken(s string) CellID {
	if s == "X" {
		return 0
	}
	if len(s) > 16 {
		return 0
	}
	s += strings.Repeat("0", 16-len(s))
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0
	}
	return CellID(v)
}

// String reports the face and, for each level from 1 to Level, the child
// digit (0-3) taken to reach this cell, e.g. "5/31200".
func (ci CellID) String() string {
	if !ci.IsValid() {
		return fmt.Sprintf("Invalid: %016x", uint64(ci))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d/", ci.Face())
	for level := 1; level <= ci.Level(); level++ {
		digit := (uint64(ci) >> uint(2*(maxLevel-level)+1)) & 3
		b.WriteByte("0123"[digit])
	}
	return b.String()
}

// byID sorts CellIDs in their natural (Hilbert curve) order.
type byID []CellID

func (a byID) Len() int           { return len(a) }
func (a byID) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byID) Less(i, j int) bool { return a[i] < a[j] }
