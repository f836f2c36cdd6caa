package main

import (
	"github.com/maplefeline/nledger/ledger"
)

// Board board.
type Board struct {
	Pieces  ledger.Bitboard `gorm:"type:varchar;size:16;not null"`
	Pawns   ledger.Bitboard `gorm:"type:varchar;size:16;not null"`
	Knights ledger.Bitboard `gorm:"type:varchar;size:16;not null"`
	Bishops ledger.Bitboard `gorm:"type:varchar;size:16;not null"`
	Rooks   ledger.Bitboard `gorm:"type:varchar;size:16;not null"`
	Queen   ledger.Bitboard `gorm:"type:varchar;size:16;not null"`
	King    ledger.Bitboard `gorm:"type:varchar;size:16;not null"`
}

func makeBoard(player *ledger.Player) Board {
	s := player.Snapshot()
	return Board{
		Pieces:  s.Pieces,
		Pawns:   s.Pawns,
		Knights: s.Knights,
		Bishops: s.Bishops,
		Rooks:   s.Rooks,
		Queen:   s.Queen,
		King:    s.King,
	}
}

func (board Board) player(color ledger.Color) (*ledger.Player, error) {
	return ledger.Restore(ledger.Snapshot{
		Color:   color,
		Pieces:  board.Pieces,
		Pawns:   board.Pawns,
		Knights: board.Knights,
		Bishops: board.Bishops,
		Rooks:   board.Rooks,
		Queen:   board.Queen,
		King:    board.King,
	})
}
