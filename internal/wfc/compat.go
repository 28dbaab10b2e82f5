package wfc

// Direction names one of the four cardinal neighbors of a cell. The y axis
// points down, so South is +1 in y.
type Direction int

const (
	West Direction = iota
	South
	East
	North
)

// Directions lists the cardinal directions in propagation order.
var Directions = [4]Direction{West, South, East, North}

var (
	dirDX = [4]int{-1, 0, 1, 0}
	dirDY = [4]int{0, 1, 0, -1}
)

// Offset returns the unit step of d.
func (d Direction) Offset() (dx, dy int) { return dirDX[d], dirDY[d] }

// Opposite returns the direction pointing back at the origin.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

func (d Direction) String() string {
	switch d {
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	case North:
		return "north"
	}
	return "unknown"
}

// CompatibilityTable records, for every ordered pattern pair and every offset
// with |dx|, |dy| < N, whether the second pattern placed at the offset agrees
// with the first on all overlapping cells. Offsets outside that window do not
// overlap and are always compatible. The table is read-only once built.
type CompatibilityTable struct {
	n     int
	count int
	span  int
	bits  []uint64

	// neighbors[d][a] lists the patterns b with Agrees(a, b, d.Offset()).
	neighbors [4][][]int
}

func newCompatibilityTable(patterns [][]uint16, n int) *CompatibilityTable {
	count := len(patterns)
	span := 2*n - 1
	total := span * span * count * count
	t := &CompatibilityTable{
		n:     n,
		count: count,
		span:  span,
		bits:  make([]uint64, (total+63)/64),
	}
	for dy := -(n - 1); dy < n; dy++ {
		for dx := -(n - 1); dx < n; dx++ {
			for a := 0; a < count; a++ {
				for b := 0; b < count; b++ {
					if agrees(patterns[a], patterns[b], dx, dy, n) {
						bit := t.bitIndex(a, b, dx, dy)
						t.bits[bit>>6] |= 1 << (bit & 63)
					}
				}
			}
		}
	}
	for _, d := range Directions {
		dx, dy := d.Offset()
		lists := make([][]int, count)
		for a := 0; a < count; a++ {
			for b := 0; b < count; b++ {
				if t.Agrees(a, b, dx, dy) {
					lists[a] = append(lists[a], b)
				}
			}
		}
		t.neighbors[d] = lists
	}
	return t
}

// agrees reports whether p2 shifted by (dx, dy) matches p1 where they overlap.
func agrees(p1, p2 []uint16, dx, dy, n int) bool {
	xmin, xmax := max(dx, 0), min(n+dx, n)
	ymin, ymax := max(dy, 0), min(n+dy, n)
	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p1[x+n*y] != p2[x-dx+n*(y-dy)] {
				return false
			}
		}
	}
	return true
}

func (t *CompatibilityTable) bitIndex(a, b, dx, dy int) int {
	off := (dy+t.n-1)*t.span + (dx + t.n - 1)
	return (off*t.count+a)*t.count + b
}

// Agrees reports whether pattern b placed at (dx, dy) relative to pattern a is
// consistent with it.
func (t *CompatibilityTable) Agrees(a, b, dx, dy int) bool {
	if dx <= -t.n || dx >= t.n || dy <= -t.n || dy >= t.n {
		return true
	}
	bit := t.bitIndex(a, b, dx, dy)
	return t.bits[bit>>6]&(1<<(bit&63)) != 0
}

// Compatible returns the patterns allowed in direction d of pattern a. The
// returned slice must not be modified.
func (t *CompatibilityTable) Compatible(d Direction, a int) []int {
	return t.neighbors[d][a]
}

// Patterns returns the number of patterns covered by the table.
func (t *CompatibilityTable) Patterns() int { return t.count }

// PatternSize returns N.
func (t *CompatibilityTable) PatternSize() int { return t.n }
