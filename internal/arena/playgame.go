package arena

import (
	"context"

	"github.com/pawnstorm/pawnstorm/pkg/game"
)

func playGame(
	ctx context.Context,
	playerA, playerB Player,
	maxPlies int,
	info gameInfo,
) (GameResult, error) {
	var g, err = game.NewFromFEN(info.opening)
	if err != nil {
		return GameResult{}, err
	}
	var plies = 0
	for !g.State().IsOver() && (maxPlies == 0 || plies < maxPlies) {
		if err = ctx.Err(); err != nil {
			return GameResult{}, err
		}
		var player = playerB
		if g.State().WhiteToMove == info.playerAIsWhite {
			player = playerA
		}
		if _, err = g.PlayAIMove(ctx, player.Engine, player.Level); err != nil {
			return GameResult{}, err
		}
		plies++
	}
	pgn, err := g.PGN()
	if err != nil {
		return GameResult{}, err
	}
	return GameResult{
		Number:         info.gameNumber,
		PlayerAIsWhite: info.playerAIsWhite,
		State:          g.State(),
		Plies:          plies,
		PGN:            pgn,
	}, nil
}
