package ledger

// Snapshot is the raw state of a ledger.
type Snapshot struct {
	Color   Color
	Pieces  Bitboard
	Pawns   Bitboard
	Knights Bitboard
	Bishops Bitboard
	Rooks   Bitboard
	Queen   Bitboard
	King    Bitboard
}

// Snapshot copies the ledger's boards.
func (p *Player) Snapshot() Snapshot {
	return Snapshot{
		Color:   p.color,
		Pieces:  p.pieces,
		Pawns:   p.types[Pawn],
		Knights: p.types[Knight],
		Bishops: p.types[Bishop],
		Rooks:   p.types[Rook],
		Queen:   p.types[Queen],
		King:    p.types[King],
	}
}

// Restore rebuilds a ledger from s, rejecting boards that overlap or whose
// union differs from s.Pieces.
func Restore(s Snapshot) (*Player, error) {
	p := &Player{color: s.Color, pieces: s.Pieces}
	p.types[Pawn] = s.Pawns
	p.types[Knight] = s.Knights
	p.types[Bishop] = s.Bishops
	p.types[Rook] = s.Rooks
	p.types[Queen] = s.Queen
	p.types[King] = s.King
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
