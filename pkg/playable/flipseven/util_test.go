package flipseven

import (
	"fmt"

	"flipn-server/pkg/deck"
)

// setupTable returns a live table mid-round. The deck is pre-seeded with
// the given cards (drawn from the front) and each hand string seats one
// player; player ids count up from 1 and player 1 is the host on turn.
func setupTable(cards string, hands ...string) *Table {
	players := make([]*Player, len(hands))
	for i, hand := range hands {
		p := newPlayer(int64(i+1), fmt.Sprintf("player %d", i+1))
		p.Hand = deck.Hand(deck.CardsFromString(hand))
		players[i] = p
	}

	players[0].IsHost = true

	d := deck.New()
	d.Cards = deck.CardsFromString(cards)

	return &Table{
		Code:        "TEST42",
		HostID:      1,
		Options:     DefaultOptions(),
		Players:     players,
		Deck:        d,
		State:       StatePlaying,
		Round:       1,
		CurrentTurn: 1,
	}
}

func hand(s string) deck.Hand {
	return deck.Hand(deck.CardsFromString(s))
}
