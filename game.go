package main

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"

	"github.com/maplefeline/nledger/ledger"
)

// Game game.
type Game struct {
	gorm.Model

	GameID    uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	HalfMoves int
	White     Board `gorm:"embedded;embeddedPrefix:white_"`
	Black     Board `gorm:"embedded;embeddedPrefix:black_"`
}

func newGame() *Game {
	return &Game{
		GameID: uuid.NewV4(),
		White:  makeBoard(ledger.New(ledger.White)),
		Black:  makeBoard(ledger.New(ledger.Black)),
	}
}

// players restores both ledgers, indexed by color.
func (game *Game) players() ([2]*ledger.Player, error) {
	var players [2]*ledger.Player
	white, err := game.White.player(ledger.White)
	if err != nil {
		return players, fmt.Errorf("game %s white ledger: %w", game.GameID, err)
	}
	black, err := game.Black.player(ledger.Black)
	if err != nil {
		return players, fmt.Errorf("game %s black ledger: %w", game.GameID, err)
	}
	players[ledger.White] = white
	players[ledger.Black] = black
	return players, nil
}

// applyHalfMove moves color's piece from from to to and removes whatever the
// other side had on to. Nothing is written when the move fails.
func (game *Game) applyHalfMove(color ledger.Color, from, to ledger.Square) (ledger.PieceType, error) {
	players, err := game.players()
	if err != nil {
		return ledger.None, err
	}
	mover, other := players[color], players[color.Other()]
	if err := mover.MakeMove(from, to); err != nil {
		return ledger.None, err
	}
	captured := other.UpdateAfterOpponentMove(to)
	game.White = makeBoard(players[ledger.White])
	game.Black = makeBoard(players[ledger.Black])
	game.HalfMoves = game.HalfMoves + 1
	return captured, nil
}
