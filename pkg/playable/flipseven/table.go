package flipseven

import (
	"flipn-server/pkg/deck"
)

// State is the table lifecycle state
type State string

// table states
const (
	StateWaiting  State = "waiting"
	StatePlaying  State = "playing"
	StateRoundEnd State = "roundEnd"
	StateGameOver State = "gameOver"
)

// PendingKind is the action card awaiting a target
type PendingKind string

// pending action kinds
const (
	PendingFreeze    PendingKind = "freeze"
	PendingFlipThree PendingKind = "flipThree"
)

// PendingAction records a drawn freeze or flip-three that still needs a
// target. While set, only the acting player's target selection is valid.
type PendingAction struct {
	PlayerID int64       `json:"playerId"`
	Kind     PendingKind `json:"kind"`
	CardID   string      `json:"cardId"`
}

// Table is the authoritative state of one room. Every operation treats the
// receiver as an immutable snapshot and returns a new Table in its Result;
// a failed precondition never leaves a partial write behind.
type Table struct {
	Code    string  `json:"code"`
	HostID  int64   `json:"hostId"`
	Options Options `json:"options"`

	// Players in join order; join order is turn order
	Players []*Player `json:"players"`

	Deck        *deck.Deck `json:"deck"`
	DiscardPile deck.Hand  `json:"discardPile"`

	// CurrentTurn is 0 when no one is up
	CurrentTurn int64 `json:"currentTurn"`

	State State `json:"state"`

	// Round is 1-based; 0 before the first round starts
	Round int `json:"round"`

	// Winner is 0 until a round or game has been decided
	Winner int64 `json:"winner"`

	Pending *PendingAction `json:"pending,omitempty"`
}

// NewTable creates a table in the waiting state with the host seated
func NewTable(code string, hostID int64, hostName string, opts Options) *Table {
	host := newPlayer(hostID, hostName)
	host.IsHost = true

	return &Table{
		Code:    code,
		HostID:  hostID,
		Options: opts.withDefaults(),
		Players: []*Player{host},
		State:   StateWaiting,
	}
}

// Player returns the seated player or nil
func (t *Table) Player(id int64) *Player {
	for _, p := range t.Players {
		if p.ID == id {
			return p
		}
	}

	return nil
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	cp := *t

	cp.Players = make([]*Player, len(t.Players))
	for i, p := range t.Players {
		cp.Players[i] = p.Clone()
	}

	if t.Deck != nil {
		cp.Deck = t.Deck.Clone()
	}

	cp.DiscardPile = t.DiscardPile.Clone()

	if t.Pending != nil {
		pending := *t.Pending
		cp.Pending = &pending
	}

	return &cp
}

// AddPlayer seats a new player. Players can only join while the table is waiting.
func (t *Table) AddPlayer(id int64, name string) (*Result, error) {
	if t.State != StateWaiting {
		return nil, ErrRoomNotWaiting
	}

	if t.Player(id) != nil {
		return nil, ErrDuplicatePlayer
	}

	if len(t.Players) >= t.Options.MaxPlayers {
		return nil, ErrTableFull
	}

	clone := t.Clone()
	clone.Players = append(clone.Players, newPlayer(id, name))
	return &Result{Table: clone}, nil
}

// RemovePlayer unseats a player from a waiting table. The host seat moves to
// the next player in join order if the host leaves.
func (t *Table) RemovePlayer(id int64) (*Result, error) {
	if t.State != StateWaiting {
		return nil, ErrRoomNotWaiting
	}

	if t.Player(id) == nil {
		return nil, ErrPlayerNotFound
	}

	clone := t.Clone()
	players := make([]*Player, 0, len(clone.Players)-1)
	for _, p := range clone.Players {
		if p.ID != id {
			players = append(players, p)
		}
	}

	clone.Players = players
	if clone.HostID == id && len(players) > 0 {
		players[0].IsHost = true
		clone.HostID = players[0].ID
	}

	return &Result{Table: clone}, nil
}

// StartGame begins the first round. Host only.
func (t *Table) StartGame(playerID int64) (*Result, error) {
	if t.State != StateWaiting {
		return nil, ErrRoomNotWaiting
	}

	if t.Player(playerID) == nil {
		return nil, ErrPlayerNotFound
	}

	if playerID != t.HostID {
		return nil, ErrNotHost
	}

	if len(t.Players) < t.Options.MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	clone := t.Clone()
	res := &Result{Table: clone}
	clone.initializeRound()
	return res, nil
}

// StartNextRound begins the next round after a round end. Host only.
func (t *Table) StartNextRound(playerID int64) (*Result, error) {
	if t.Player(playerID) == nil {
		return nil, ErrPlayerNotFound
	}

	if playerID != t.HostID {
		return nil, ErrNotHost
	}

	if t.State != StateRoundEnd {
		return nil, ErrRoundNotOver
	}

	clone := t.Clone()
	res := &Result{Table: clone}
	clone.initializeRound()
	return res, nil
}

// Restart rebuilds a finished table back into a fresh waiting lobby with
// every score zeroed. Host only; GameOver is otherwise terminal.
func (t *Table) Restart(playerID int64) (*Result, error) {
	if t.Player(playerID) == nil {
		return nil, ErrPlayerNotFound
	}

	if playerID != t.HostID {
		return nil, ErrNotHost
	}

	if t.State != StateGameOver {
		return nil, ErrGameNotOver
	}

	clone := t.Clone()
	for _, p := range clone.Players {
		p.Hand = nil
		p.RoundScore = 0
		p.TotalScore = 0
		p.HasFlipSeven = false
		p.IsFrozen = false
		p.FrozenUntilRound = 0
		if p.Status != StatusDisconnected {
			p.Status = StatusActive
		}
	}

	clone.Deck = nil
	clone.DiscardPile = nil
	clone.CurrentTurn = 0
	clone.State = StateWaiting
	clone.Round = 0
	clone.Winner = 0
	clone.Pending = nil

	return &Result{Table: clone}, nil
}

// initializeRound advances into the next round: fresh shuffled deck, one
// visible card to each connected player, per-round fields reset, expired
// freezes lifted.
func (t *Table) initializeRound() {
	t.Round++

	t.Deck = deck.New()
	t.Deck.Shuffle(t.Options.ShuffleSeed)
	t.DiscardPile = nil
	t.Winner = 0
	t.Pending = nil

	for _, p := range t.Players {
		p.Hand = nil
		p.RoundScore = 0
		p.HasFlipSeven = false

		if p.Status != StatusDisconnected {
			p.Status = StatusActive
		}

		if p.IsFrozen && p.FrozenUntilRound <= t.Round {
			p.IsFrozen = false
			p.FrozenUntilRound = 0
		}
	}

	// initial deal; action cards dealt here sit in the hand without
	// triggering target selection
	for _, p := range t.Players {
		if p.Status != StatusActive {
			continue
		}

		card, err := t.Deck.Draw()
		if err != nil {
			// a full deck always covers one card per seat
			panic(err)
		}

		p.Hand.AddCard(card)
	}

	t.State = StatePlaying
	t.CurrentTurn = t.firstEligiblePlayer()
}

// firstEligiblePlayer returns the first player in turn order who can act, or 0
func (t *Table) firstEligiblePlayer() int64 {
	for _, p := range t.Players {
		if p.eligible(t.Round) {
			return p.ID
		}
	}

	return 0
}

// SetConnected flips a player between active and disconnected as presence
// changes. A disconnected player is treated like a bust: excluded from the
// active set and skipped in turn order. Players who already stayed or
// busted keep their status so their locked-in round score survives.
func (t *Table) SetConnected(playerID int64, connected bool) (*Result, error) {
	p := t.Player(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}

	clone := t.Clone()
	cp := clone.Player(playerID)
	res := &Result{Table: clone}

	if connected {
		if cp.Status == StatusDisconnected {
			cp.Status = StatusActive
		}

		return res, nil
	}

	if cp.Status != StatusActive {
		return res, nil
	}

	cp.Status = StatusDisconnected

	if clone.State == StatePlaying {
		if clone.Pending != nil && clone.Pending.PlayerID == playerID {
			clone.Pending = nil
		}

		if clone.CurrentTurn == playerID {
			clone.advanceTurn(playerID, res)
		}
	}

	return res, nil
}
