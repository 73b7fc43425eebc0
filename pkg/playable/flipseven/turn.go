package flipseven

import "flipn-server/pkg/deck"

// checkTurn verifies the turn-ownership preconditions, in order: the player
// exists, the round is live, it is their turn, and they can still act.
func (t *Table) checkTurn(playerID int64) (*Player, error) {
	p := t.Player(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}

	if t.State != StatePlaying {
		return nil, ErrRoomNotPlaying
	}

	if t.CurrentTurn != playerID {
		return nil, ErrNotYourTurn
	}

	if p.Status != StatusActive {
		return nil, ErrPlayerNotActive
	}

	if t.Pending != nil {
		return nil, ErrActionPending
	}

	return p, nil
}

// Hit draws one card for the player and resolves the consequences
func (t *Table) Hit(playerID int64) (*Result, error) {
	p, err := t.checkTurn(playerID)
	if err != nil {
		return nil, err
	}

	if t.Deck.CardsLeft() == 0 {
		return nil, ErrEmptyDeck
	}

	clone := t.Clone()
	res := &Result{Table: clone}

	// a frozen player's turn is skipped without consuming a card
	if p.frozenFor(t.Round) {
		res.addEffect(Effect{Kind: EffectFrozenSkip, PlayerID: playerID})
		clone.advanceTurn(playerID, res)
		return res, nil
	}

	cp := clone.Player(playerID)
	card, err := clone.Deck.Draw()
	if err != nil {
		// cannot happen; checked above
		return nil, err
	}

	cp.Hand.AddCard(card)
	res.DrawnCard = card

	clone.resolveDraw(cp, card, res)
	return res, nil
}

// resolveDraw runs the post-draw cascade: completion first, then bust and
// second chance, then action-card dispatch, then a normal turn advance.
func (t *Table) resolveDraw(p *Player, card *deck.Card, res *Result) {
	target := t.Options.FlipTarget

	if HasFlipSeven(p.Hand, target) {
		t.instantWin(p, res)
		return
	}

	if IsBusted(p.Hand, target) {
		if CanUseSecondChance(p.Hand) {
			t.useSecondChance(p, res)
		} else {
			t.bust(p, card, res)
		}

		t.advanceTurn(p.ID, res)
		return
	}

	switch card.Kind {
	case deck.Freeze:
		// with no legal target the card sits in the hand inert
		if t.hasActionTarget(p.ID) {
			t.Pending = &PendingAction{PlayerID: p.ID, Kind: PendingFreeze, CardID: card.ID}
			res.addEffect(Effect{Kind: EffectFreeze, PlayerID: p.ID, Cards: []*deck.Card{card}})
			// turn does not advance until a target is selected
			return
		}
	case deck.FlipThree:
		if t.hasActionTarget(p.ID) {
			t.Pending = &PendingAction{PlayerID: p.ID, Kind: PendingFlipThree, CardID: card.ID}
			res.addEffect(Effect{Kind: EffectFlipThree, PlayerID: p.ID, Cards: []*deck.Card{card}})
			return
		}
	case deck.SecondChance:
		// retained silently in the hand
	}

	t.advanceTurn(p.ID, res)
}

// instantWin locks in the completing player's score and ends the round
func (t *Table) instantWin(p *Player, res *Result) {
	score := ComputeScore(p.Hand, t.Options.FlipTarget)
	p.HasFlipSeven = true
	p.Status = StatusStayed
	p.RoundScore = score.Total
	p.TotalScore += score.Total

	res.addEffect(Effect{Kind: EffectCompletion, PlayerID: p.ID, Value: score.Total})
	t.endRound(res, p.ID)
}

func (t *Table) useSecondChance(p *Player, res *Result) {
	newHand, removed, duplicateValue, err := ApplySecondChance(p.Hand)
	if err != nil {
		// unreachable: only called after a bust is detected
		panic(err)
	}

	p.Hand = newHand
	t.DiscardPile = append(t.DiscardPile, removed...)
	res.addEffect(Effect{
		Kind:     EffectSecondChance,
		PlayerID: p.ID,
		Cards:    removed,
		Value:    duplicateValue,
	})
}

func (t *Table) bust(p *Player, card *deck.Card, res *Result) {
	p.Status = StatusBusted
	p.RoundScore = 0

	var cards []*deck.Card
	if card != nil {
		cards = []*deck.Card{card}
	}

	res.addEffect(Effect{Kind: EffectBust, PlayerID: p.ID, Cards: cards})
}

// Stay locks in the player's hand score and passes the turn
func (t *Table) Stay(playerID int64) (*Result, error) {
	if _, err := t.checkTurn(playerID); err != nil {
		return nil, err
	}

	clone := t.Clone()
	res := &Result{Table: clone}

	cp := clone.Player(playerID)
	score := ComputeScore(cp.Hand, clone.Options.FlipTarget)
	cp.Status = StatusStayed
	cp.RoundScore = score.Total

	res.addEffect(Effect{Kind: EffectStay, PlayerID: playerID, Value: score.Total})
	clone.advanceTurn(playerID, res)

	return res, nil
}

// hasActionTarget reports whether anyone besides the actor can still be
// targeted by a freeze or flip-three
func (t *Table) hasActionTarget(actorID int64) bool {
	for _, p := range t.Players {
		if p.ID != actorID && p.Status == StatusActive {
			return true
		}
	}

	return false
}

// checkTargetSelection verifies a pending action of the given kind belongs
// to the acting player, and that the target is a legal choice.
func (t *Table) checkTargetSelection(playerID, targetID int64, kind PendingKind) error {
	if t.Player(playerID) == nil {
		return ErrPlayerNotFound
	}

	if t.State != StatePlaying {
		return ErrRoomNotPlaying
	}

	if t.Pending == nil || t.Pending.Kind != kind {
		return ErrNoActionPending
	}

	if t.Pending.PlayerID != playerID {
		return ErrNotYourTurn
	}

	target := t.Player(targetID)
	if target == nil {
		return ErrPlayerNotFound
	}

	// self-targeting is forbidden; an already-frozen target is legal
	if targetID == playerID || target.Status != StatusActive {
		return ErrInvalidTarget
	}

	return nil
}

// SelectFreezeTarget freezes the target for the remainder of the round.
// Choosing an already-frozen target re-extends their freeze.
func (t *Table) SelectFreezeTarget(playerID, targetID int64) (*Result, error) {
	if err := t.checkTargetSelection(playerID, targetID, PendingFreeze); err != nil {
		return nil, err
	}

	clone := t.Clone()
	res := &Result{Table: clone}

	target := clone.Player(targetID)
	target.IsFrozen = true
	target.FrozenUntilRound = clone.Round + 1
	clone.Pending = nil

	res.addEffect(Effect{Kind: EffectFreeze, PlayerID: playerID, TargetID: targetID})
	clone.advanceTurn(playerID, res)

	return res, nil
}

// SelectFlipThreeTarget deals up to three cards into the target's hand and
// re-runs the completion/bust cascade against it. Action cards dealt this
// way are added to the hand without triggering their own effect, which
// bounds the recursion. The turn then advances from the acting player.
func (t *Table) SelectFlipThreeTarget(playerID, targetID int64) (*Result, error) {
	if err := t.checkTargetSelection(playerID, targetID, PendingFlipThree); err != nil {
		return nil, err
	}

	clone := t.Clone()
	res := &Result{Table: clone}

	target := clone.Player(targetID)
	cards := clone.Deck.DrawUpTo(3)
	for _, card := range cards {
		target.Hand.AddCard(card)
	}

	clone.Pending = nil
	res.addEffect(Effect{Kind: EffectFlipThree, PlayerID: playerID, TargetID: targetID, Cards: cards})

	flipTarget := clone.Options.FlipTarget
	if HasFlipSeven(target.Hand, flipTarget) {
		clone.instantWin(target, res)
		return res, nil
	}

	// three new cards can produce more than one duplicate
	for IsBusted(target.Hand, flipTarget) && CanUseSecondChance(target.Hand) {
		clone.useSecondChance(target, res)
	}

	if IsBusted(target.Hand, flipTarget) {
		clone.bust(target, target.Hand.LastCard(), res)
	}

	clone.advanceTurn(playerID, res)
	return res, nil
}

// NextActivePlayer walks the turn order starting after fromID and returns
// the next player able to act this round, or 0 if no one remains. The
// walk wraps all the way around, so a lone active player keeps the turn.
func (t *Table) NextActivePlayer(fromID int64) int64 {
	from := -1
	for i, p := range t.Players {
		if p.ID == fromID {
			from = i
			break
		}
	}

	n := len(t.Players)
	for i := 1; i <= n; i++ {
		p := t.Players[(from+i+n)%n]
		if p.eligible(t.Round) {
			return p.ID
		}
	}

	return 0
}

// advanceTurn moves the turn to the next eligible player, ending the round
// when no one can act
func (t *Table) advanceTurn(fromID int64, res *Result) {
	if t.State != StatePlaying {
		return
	}

	next := t.NextActivePlayer(fromID)
	if next == 0 {
		t.endRound(res, 0)
		return
	}

	t.CurrentTurn = next
}
