package ledger

import (
	"encoding/json"
	"fmt"
)

// Square is a board index in [0, 63], row-major from a1.
type Square uint8

// NumSquares is the number of squares on the board.
const NumSquares = 64

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool {
	return sq < NumSquares
}

// File returns the file letter of sq.
func (sq Square) File() byte {
	return byte('a' + sq%8)
}

// Rank returns the 1-based rank of sq.
func (sq Square) Rank() uint {
	return uint(1 + sq/8)
}

func (sq Square) String() string {
	if !sq.Valid() {
		return fmt.Sprintf("square(%d)", uint8(sq))
	}
	return fmt.Sprintf("%c%d", sq.File(), sq.Rank())
}

// ParseSquare parses a square name such as "e2".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	return Square(s[1]-'1')*8 + Square(s[0]-'a'), nil
}

// UnmarshalJSON accepts either a raw index or a square name.
func (sq *Square) UnmarshalJSON(bytes []byte) error {
	var index int
	if err := json.Unmarshal(bytes, &index); err == nil {
		if index < 0 || index >= NumSquares {
			return fmt.Errorf("square index out of range: %d", index)
		}
		*sq = Square(index)
		return nil
	}
	var name string
	if err := json.Unmarshal(bytes, &name); err != nil {
		return err
	}
	parsed, err := ParseSquare(name)
	if err != nil {
		return err
	}
	*sq = parsed
	return nil
}
