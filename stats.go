package main

import (
	"github.com/montanaflynn/stats"

	"github.com/maplefeline/nledger/ledger"
)

type sideStats struct {
	Color  ledger.Color
	Pieces int
	Counts map[ledger.PieceType]int
	// Ranks are counted from the side's own back rank, 1 through 8.
	MeanRank     float64
	MedianRank   float64
	FrontierRank float64
}

// relativeRanks lists the rank of every piece of player as seen from its own side.
func relativeRanks(player *ledger.Player) []int {
	squares := player.Pieces().Squares()
	ranks := make([]int, 0, len(squares))
	for _, sq := range squares {
		rank := int(sq.Rank())
		if player.Color() == ledger.Black {
			rank = 9 - rank
		}
		ranks = append(ranks, rank)
	}
	return ranks
}

func makeSideStats(player *ledger.Player) (sideStats, error) {
	result := sideStats{
		Color:  player.Color(),
		Pieces: player.Pieces().NumSquares(),
		Counts: make(map[ledger.PieceType]int, len(ledger.PieceTypes)),
	}
	for _, pt := range ledger.PieceTypes {
		result.Counts[pt] = player.Count(pt)
	}
	if result.Pieces == 0 {
		return result, nil
	}
	data := stats.LoadRawData(relativeRanks(player))
	mean, err := stats.Mean(data)
	if err != nil {
		return sideStats{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return sideStats{}, err
	}
	frontier, err := stats.Percentile(data, 80)
	if err != nil {
		return sideStats{}, err
	}
	result.MeanRank = mean
	result.MedianRank = median
	result.FrontierRank = frontier
	return result, nil
}

func (game *Game) stats() ([]sideStats, error) {
	players, err := game.players()
	if err != nil {
		return nil, err
	}
	sides := make([]sideStats, 0, len(players))
	for _, player := range players {
		side, err := makeSideStats(player)
		if err != nil {
			return nil, err
		}
		sides = append(sides, side)
	}
	return sides, nil
}
