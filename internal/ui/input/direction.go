package input

// Direction defines the directions the users can move a cursor or focus in the UI.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
)

// Delta is the index offset of a move in this direction.
func (d Direction) Delta() int {
	if d == Up {
		return -1
	}

	return 1
}
