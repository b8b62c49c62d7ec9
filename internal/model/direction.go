package model

// Direction is the side of the current cell the traversal came from.
// Up means the previous cell is the one above.
type Direction uint8

const (
	// NoDirection marks a start with nothing behind it.
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Offset returns the row and column delta from a cell to its neighbor in d.
func (d Direction) Offset() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return NoDirection
	}
}

// Neighbor returns the cell next to c on side d.
func (d Direction) Neighbor(c Cell) Cell {
	dr, dc := d.Offset()
	return c.Step(dr, dc)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
