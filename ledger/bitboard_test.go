package ledger

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

type BitboardSuite struct{}

var _ = Suite(&BitboardSuite{})

func (s *BitboardSuite) TestSetAndClear(c *C) {
	var b Bitboard
	c.Assert(b.IsEmpty(), Equals, true)
	b.SetSquare(17)
	b.SetSquare(17)
	c.Assert(b.Square(17), Equals, true)
	c.Assert(b.Square(16), Equals, false)
	c.Assert(b.NumSquares(), Equals, 1)
	b.ClearSquare(17)
	b.ClearSquare(17)
	c.Assert(b.IsEmpty(), Equals, true)
}

func (s *BitboardSuite) TestOutOfRange(c *C) {
	b := From(0xffffffffffffffff)
	c.Assert(b.Square(64), Equals, false)
	b.ClearSquare(64)
	c.Assert(b.NumSquares(), Equals, 64)
}

func (s *BitboardSuite) TestRawWord(c *C) {
	var b Bitboard
	b.SetBoard(0x8000000000000001)
	c.Assert(b.Board(), Equals, uint64(0x8000000000000001))
	c.Assert(b.Squares(), DeepEquals, []Square{0, 63})
	c.Assert(b.String(), Equals, "8000000000000001")
}

func (s *BitboardSuite) TestDraw(c *C) {
	c.Assert(From(0x10).Draw(), Equals, ""+
		"8 . . . . . . . .\n"+
		"7 . . . . . . . .\n"+
		"6 . . . . . . . .\n"+
		"5 . . . . . . . .\n"+
		"4 . . . . . . . .\n"+
		"3 . . . . . . . .\n"+
		"2 . . . . . . . .\n"+
		"1 . . . . 1 . . .\n"+
		"  a b c d e f g h\n")
}

func (s *BitboardSuite) TestJSON(c *C) {
	buffer, err := json.Marshal(From(0xffff000000000000))
	c.Assert(err, IsNil)
	c.Assert(string(buffer), Equals, `"ffff000000000000"`)
	var b Bitboard
	c.Assert(json.Unmarshal(buffer, &b), IsNil)
	c.Assert(b, Equals, From(0xffff000000000000))
	c.Assert(json.Unmarshal([]byte(`"zz"`), &b), ErrorMatches, `invalid bitboard "zz": .*`)
}

func (s *BitboardSuite) TestSQL(c *C) {
	value, err := From(0xffff000000000000).Value()
	c.Assert(err, IsNil)
	c.Assert(value, Equals, "ffff000000000000")
	var b Bitboard
	c.Assert(b.Scan("ffff000000000000"), IsNil)
	c.Assert(b, Equals, From(0xffff000000000000))
	c.Assert(b.Scan([]byte("ff00")), IsNil)
	c.Assert(b, Equals, From(0xff00))
	c.Assert(b.Scan(42), ErrorMatches, "invalid format scanning 42")
}

type SquareSuite struct{}

var _ = Suite(&SquareSuite{})

func (s *SquareSuite) TestNames(c *C) {
	c.Assert(Square(0).String(), Equals, "a1")
	c.Assert(Square(12).String(), Equals, "e2")
	c.Assert(Square(63).String(), Equals, "h8")
	c.Assert(Square(64).String(), Equals, "square(64)")
	sq, err := ParseSquare("d8")
	c.Assert(err, IsNil)
	c.Assert(sq, Equals, Square(59))
	_, err = ParseSquare("i1")
	c.Assert(err, ErrorMatches, `invalid square "i1"`)
}

func (s *SquareSuite) TestJSON(c *C) {
	var move struct {
		From Square
		To   Square
	}
	c.Assert(json.Unmarshal([]byte(`{"From": 12, "To": "e4"}`), &move), IsNil)
	c.Assert(move.From, Equals, Square(12))
	c.Assert(move.To, Equals, Square(28))
	c.Assert(json.Unmarshal([]byte(`{"From": 64}`), &move), ErrorMatches, "square index out of range: 64")
	c.Assert(json.Unmarshal([]byte(`{"From": "z9"}`), &move), ErrorMatches, `invalid square "z9"`)
}

func (s *SquareSuite) TestColorText(c *C) {
	var color Color
	c.Assert(color.UnmarshalText([]byte("black")), IsNil)
	c.Assert(color, Equals, Black)
	c.Assert(color.UnmarshalText([]byte("red")), ErrorMatches, `invalid color "red"`)
	text, err := White.MarshalText()
	c.Assert(err, IsNil)
	c.Assert(string(text), Equals, "white")
}

func (s *SquareSuite) TestGlyphs(c *C) {
	c.Assert(King.Glyph(White), Equals, '♔')
	c.Assert(Knight.Glyph(Black), Equals, '♞')
	c.Assert(None.Glyph(Black), Equals, '.')
	c.Assert(Rook.String(), Equals, "rook")
	c.Assert(PieceType(9).String(), Equals, "unknown")
}
