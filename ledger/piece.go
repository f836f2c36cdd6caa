package ledger

import "fmt"

// PieceType names the kind of piece a per-type board holds.
type PieceType uint8

const (
	None PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists the six real piece types in resolution order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

var pieceNames = map[PieceType]string{
	None:   "none",
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
}

var whiteGlyphs = map[PieceType]rune{
	Bishop: '♗',
	King:   '♔',
	Knight: '♘',
	Pawn:   '♙',
	Queen:  '♕',
	Rook:   '♖',
}

var blackGlyphs = map[PieceType]rune{
	Bishop: '♝',
	King:   '♚',
	Knight: '♞',
	Pawn:   '♟',
	Queen:  '♛',
	Rook:   '♜',
}

func (pt PieceType) String() string {
	if name, ok := pieceNames[pt]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the piece type by name.
func (pt PieceType) MarshalText() ([]byte, error) {
	return []byte(pt.String()), nil
}

// UnmarshalText decodes a piece type name.
func (pt *PieceType) UnmarshalText(text []byte) error {
	for value, name := range pieceNames {
		if name == string(text) {
			*pt = value
			return nil
		}
	}
	return fmt.Errorf("invalid piece type %q", text)
}

// Glyph returns the Unicode chess symbol for the piece in color c, or '.' for None.
func (pt PieceType) Glyph(c Color) rune {
	glyphs := whiteGlyphs
	if c == Black {
		glyphs = blackGlyphs
	}
	if r, ok := glyphs[pt]; ok {
		return r
	}
	return '.'
}
