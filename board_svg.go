package main

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/maplefeline/nledger/ledger"
)

const squareSize = 48

var squareFills = [2]string{"fill:#b58863", "fill:#f0d9b5"}

// drawBoards renders the combined occupancy of the ledgers, rank 8 at the top.
func drawBoards(w io.Writer, players ...*ledger.Player) {
	canvas := svg.New(w)
	canvas.Start(8*squareSize, 8*squareSize)
	for sq := ledger.Square(0); sq < ledger.NumSquares; sq++ {
		file, rank := int(sq%8), int(sq/8)
		x, y := file*squareSize, (7-rank)*squareSize
		canvas.Rect(x, y, squareSize, squareSize, squareFills[(file+rank)%2])
		for _, player := range players {
			pt, err := player.PieceTypeAt(sq)
			if err != nil {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize*3/4, string(pt.Glyph(player.Color())), "text-anchor:middle;font-size:36px")
		}
	}
	canvas.End()
}
