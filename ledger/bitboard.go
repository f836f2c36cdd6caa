package ledger

import "math/bits"

// Bitboard is a 64-bit occupancy set; square s is occupied iff bit s is 1.
// Squares outside [0, 63] read as empty and are ignored on write.
type Bitboard uint64

// Empty is the board with no square set.
const Empty Bitboard = 0

// From wraps a raw word.
func From(word uint64) Bitboard {
	return Bitboard(word)
}

func squareBB(sq Square) Bitboard {
	return 1 << sq
}

// Square reports whether sq is set.
func (b Bitboard) Square(sq Square) bool {
	return b&squareBB(sq) != 0
}

// SetSquare sets sq.
func (b *Bitboard) SetSquare(sq Square) {
	*b |= squareBB(sq)
}

// ClearSquare clears sq.
func (b *Bitboard) ClearSquare(sq Square) {
	*b &^= squareBB(sq)
}

// Board returns the raw word.
func (b Bitboard) Board() uint64 {
	return uint64(b)
}

// SetBoard replaces the raw word.
func (b *Bitboard) SetBoard(word uint64) {
	*b = Bitboard(word)
}

// NumSquares returns the population count.
func (b Bitboard) NumSquares() int {
	return bits.OnesCount64(uint64(b))
}

// IsEmpty reports whether no square is set.
func (b Bitboard) IsEmpty() bool {
	return b == Empty
}

// Squares returns the set squares in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.NumSquares())
	for bb := uint64(b); bb != 0; bb &= bb - 1 {
		squares = append(squares, Square(bits.TrailingZeros64(bb)))
	}
	return squares
}
