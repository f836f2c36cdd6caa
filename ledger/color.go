package ledger

import "fmt"

// Color is the side a ledger belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// BackRank returns the first square of the color's back rank.
func (c Color) BackRank() Square {
	if c == Black {
		return 56
	}
	return 0
}

// PawnRank returns the first square of the color's pawn rank.
func (c Color) PawnRank() Square {
	if c == Black {
		return 48
	}
	return 8
}

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// MarshalText encodes the color by name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes "white" or "black".
func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("invalid color %q", text)
	}
	return nil
}
