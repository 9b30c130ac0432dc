package pattern

// Repeat period of the CircledTriad table.
const (
	ModuloX = 4
	ModuloY = 4
)

// TableEntry is the arc and rotation a table-driven cell receives.
type TableEntry struct {
	Offset   [2]int // (x mod ModuloX, y mod ModuloY)
	Arc      Index
	Rotation int // 60 degree steps
}

// triadTable groups cells in threes around a shared vertex. Each cell of a
// triad draws pattern 1 (a ring around one vertex) turned towards that
// vertex so the three arcs close into a circle. Only even rows hold cells,
// so the table has one slot per (x, even y) offset, ordered by x then y.
// Slots with Arc None have no hexagon.
var triadTable = [ModuloX * ModuloY / 2]TableEntry{
	{Offset: [2]int{0, 0}, Arc: 1, Rotation: 0},
	{Offset: [2]int{0, 2}, Arc: None},
	{Offset: [2]int{1, 0}, Arc: 1, Rotation: 4},
	{Offset: [2]int{1, 2}, Arc: 1, Rotation: 2},
	{Offset: [2]int{2, 0}, Arc: None},
	{Offset: [2]int{2, 2}, Arc: 1, Rotation: 0},
	{Offset: [2]int{3, 0}, Arc: 1, Rotation: 2},
	{Offset: [2]int{3, 2}, Arc: 1, Rotation: 4},
}

// LookupTriad returns the table entry for column x and row y. The second
// result is false when there is no hexagon at that position, which includes
// every odd row.
func LookupTriad(x, y int) (TableEntry, bool) {
	ox, oy := mod(x, ModuloX), mod(y, ModuloY)
	if oy%2 != 0 {
		return TableEntry{}, false
	}
	e := triadTable[ox*ModuloY/2+oy/2]
	if e.Arc == None {
		return TableEntry{}, false
	}
	return e, true
}

func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}
