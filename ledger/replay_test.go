package ledger

import (
	"github.com/notnil/chess"
	. "gopkg.in/check.v1"
)

var referenceTypes = map[chess.PieceType]PieceType{
	chess.Pawn:   Pawn,
	chess.Knight: Knight,
	chess.Bishop: Bishop,
	chess.Rook:   Rook,
	chess.Queen:  Queen,
	chess.King:   King,
}

type ReplaySuite struct{}

var _ = Suite(&ReplaySuite{})

// replay drives a pair of ledgers through the game the way a host mover would.
func (s *ReplaySuite) replay(c *C, sans ...string) (*chess.Game, [2]*Player) {
	game := chess.NewGame()
	for _, san := range sans {
		c.Assert(game.MoveStr(san), IsNil, Commentf("%s", san))
	}
	players := [2]*Player{New(White), New(Black)}
	for i, m := range game.Moves() {
		mover, other := players[i%2], players[(i+1)%2]
		from, to := Square(m.S1()), Square(m.S2())
		captured := other.UpdateAfterOpponentMove(to)
		c.Assert(captured != None, Equals, m.HasTag(chess.Capture), Commentf("%s", m))
		c.Assert(mover.MakeMove(from, to), IsNil, Commentf("%s", m))
		c.Assert(mover, holdsPartition)
		c.Assert(other, holdsPartition)
		c.Assert(mover.Pieces()&other.Pieces(), Equals, Empty)
	}
	return game, players
}

func (s *ReplaySuite) assertMatches(c *C, game *chess.Game, players [2]*Player) {
	squares := game.Position().Board().SquareMap()
	for sq := Square(0); sq < NumSquares; sq++ {
		piece, ok := squares[chess.Square(sq)]
		for _, p := range players {
			mine := ok && ((piece.Color() == chess.White) == (p.Color() == White))
			c.Assert(p.HasPieceOn(sq), Equals, mine, Commentf("%s %s", p.Color(), sq))
			if !mine {
				continue
			}
			pt, err := p.PieceTypeAt(sq)
			c.Assert(err, IsNil)
			c.Assert(pt, Equals, referenceTypes[piece.Type()], Commentf("%s %s", p.Color(), sq))
		}
	}
}

func (s *ReplaySuite) TestOpening(c *C) {
	game, players := s.replay(c, "e4", "e5", "Nf3", "Nc6", "Bb5", "a6")
	s.assertMatches(c, game, players)
}

func (s *ReplaySuite) TestExchanges(c *C) {
	game, players := s.replay(c, "e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Bxc6", "dxc6", "Nxe5", "Qd4", "Nf3", "Qxe4")
	s.assertMatches(c, game, players)
	c.Assert(players[0].Count(Pawn), Equals, 7)
	c.Assert(players[0].Count(Bishop), Equals, 1)
	c.Assert(players[1].Count(Pawn), Equals, 7)
	c.Assert(players[1].Count(Knight), Equals, 1)
}
