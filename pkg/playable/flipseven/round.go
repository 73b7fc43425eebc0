package flipseven

import "sort"

// ShouldEndRound returns true when no player remains able to act this round
func (t *Table) ShouldEndRound() bool {
	for _, p := range t.Players {
		if p.eligible(t.Round) {
			return false
		}
	}

	return true
}

// endRound finalizes every score and decides whether the game continues.
// instantWinnerID marks a player whose total was already banked by an
// instant win so it is not applied twice.
func (t *Table) endRound(res *Result, instantWinnerID int64) {
	for _, p := range t.Players {
		if p.ID == instantWinnerID {
			continue
		}

		switch p.Status {
		case StatusActive:
			// edge case: round ended out from under a player still in it
			score := ComputeScore(p.Hand, t.Options.FlipTarget)
			p.RoundScore = score.Total
			p.TotalScore += score.Total
		case StatusStayed:
			p.TotalScore += p.RoundScore
		}
		// busted and disconnected players add nothing
	}

	gameOver := t.Round >= t.Options.MaxRounds
	for _, p := range t.Players {
		if p.TotalScore >= t.Options.TargetScore {
			gameOver = true
			break
		}
	}

	ranked := t.rankedPlayers()
	t.Winner = ranked[0].ID
	t.CurrentTurn = 0
	t.Pending = nil

	if gameOver {
		t.State = StateGameOver
		res.addEffect(Effect{Kind: EffectGameOver, PlayerID: t.Winner, Value: ranked[0].TotalScore})
		return
	}

	t.State = StateRoundEnd
	res.addEffect(Effect{Kind: EffectRoundEnd, PlayerID: t.Winner, Value: ranked[0].TotalScore})
}

// rankedPlayers sorts players best-first: descending total score, then
// descending round score (recent-round performance), then ascending hand
// length (fewer cards = better risk management).
func (t *Table) rankedPlayers() []*Player {
	ranked := make([]*Player, len(t.Players))
	copy(ranked, t.Players)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}

		if a.RoundScore != b.RoundScore {
			return a.RoundScore > b.RoundScore
		}

		return len(a.Hand) < len(b.Hand)
	})

	return ranked
}
