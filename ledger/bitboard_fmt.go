package ledger

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func (b Bitboard) String() string {
	return fmt.Sprintf("%016x", uint64(b))
}

// Draw renders the board as an 8x8 diagram with rank 8 at the top.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(strconv.Itoa(rank + 1))
		for file := 0; file < 8; file++ {
			if b.Square(Square(rank*8 + file)) {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func parseBitboard(s string) (Bitboard, error) {
	word, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Empty, fmt.Errorf("invalid bitboard %q: %w", s, err)
	}
	return Bitboard(word), nil
}

// MarshalJSON encodes the board as a hex string.
func (b Bitboard) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a hex string.
func (b *Bitboard) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	parsed, err := parseBitboard(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Value stores the board as hex so the full unsigned range survives signed SQL integers.
func (b Bitboard) Value() (driver.Value, error) {
	return b.String(), nil
}

// Scan reads a board stored by Value.
func (b *Bitboard) Scan(cell interface{}) error {
	var s string
	switch cell := cell.(type) {
	case string:
		s = cell
	case []byte:
		s = string(cell)
	default:
		return fmt.Errorf("invalid format scanning %#v", cell)
	}
	parsed, err := parseBitboard(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
