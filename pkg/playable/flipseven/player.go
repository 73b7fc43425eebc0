package flipseven

import "flipn-server/pkg/deck"

// Status is a player's standing within the current round
type Status string

// player statuses
const (
	StatusActive       Status = "active"
	StatusStayed       Status = "stayed"
	StatusBusted       Status = "busted"
	StatusDisconnected Status = "disconnected"
)

// Player is a seat at the table. Seating order is join order and doubles
// as turn order.
type Player struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	Hand deck.Hand `json:"hand"`

	Status Status `json:"status"`

	// RoundScore is only meaningful once Status != StatusActive
	RoundScore int `json:"roundScore"`

	// TotalScore only changes at round end or on an instant win
	TotalScore int `json:"totalScore"`

	IsHost bool `json:"isHost"`

	// HasFlipSeven is set once the all-unique target has been reached this round
	HasFlipSeven bool `json:"hasFlipSeven"`

	IsFrozen bool `json:"isFrozen"`

	// FrozenUntilRound is the round number at which the freeze lifts
	FrozenUntilRound int `json:"frozenUntilRound"`
}

func newPlayer(id int64, name string) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Status: StatusActive,
	}
}

// eligible reports whether the player may take a turn in the given round
func (p *Player) eligible(round int) bool {
	if p.Status != StatusActive {
		return false
	}

	if p.IsFrozen && p.FrozenUntilRound > round {
		return false
	}

	return true
}

// frozenFor reports whether the freeze still applies in the given round
func (p *Player) frozenFor(round int) bool {
	return p.IsFrozen && p.FrozenUntilRound > round
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	cp := *p
	cp.Hand = p.Hand.Clone()
	return &cp
}
