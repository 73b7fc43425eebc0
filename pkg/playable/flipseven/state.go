package flipseven

import (
	"flipn-server/pkg/deck"
	"flipn-server/pkg/playable"
)

// GameState is the table state as broadcast to every client. Hands are
// public in Flip N, so nothing here needs redaction.
type GameState struct {
	RoomCode    string             `json:"roomCode"`
	State       State              `json:"state"`
	Round       int                `json:"round"`
	MaxRounds   int                `json:"maxRounds"`
	TargetScore int                `json:"targetScore"`
	FlipTarget  int                `json:"flipTarget"`
	CurrentTurn int64              `json:"currentTurn"`
	Winner      int64              `json:"winner"`
	CardsLeft   int                `json:"cardsLeft"`
	Players     []*GameStatePlayer `json:"players"`
	Pending     *PendingAction     `json:"pending,omitempty"`
	Standings   []int64            `json:"standings,omitempty"`
	LastEffects []Effect           `json:"lastEffects,omitempty"`
	Scores      map[int64]*Score   `json:"scores,omitempty"`
}

// GameStatePlayer is one seat in the broadcast state
type GameStatePlayer struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	IsHost           bool      `json:"isHost"`
	Status           Status    `json:"status"`
	RoundScore       int       `json:"roundScore"`
	TotalScore       int       `json:"totalScore"`
	HasFlipSeven     bool      `json:"hasFlipSeven"`
	IsFrozen         bool      `json:"isFrozen"`
	FrozenUntilRound int       `json:"frozenUntilRound,omitempty"`
	Hand             deck.Hand `json:"hand"`
}

// Response is the per-player view sent on every state update
type Response struct {
	GameState *GameState `json:"gameState"`

	// Score is the live breakdown of the player's own hand
	Score *Score `json:"score,omitempty"`

	CanHit  bool `json:"canHit"`
	CanStay bool `json:"canStay"`

	// MustSelectTarget is true while the player's freeze or flip-three awaits a target
	MustSelectTarget bool `json:"mustSelectTarget"`
}

func (g *Game) getGameState() *GameState {
	t := g.table

	players := make([]*GameStatePlayer, len(t.Players))
	for i, p := range t.Players {
		players[i] = &GameStatePlayer{
			ID:               p.ID,
			Name:             p.Name,
			IsHost:           p.IsHost,
			Status:           p.Status,
			RoundScore:       p.RoundScore,
			TotalScore:       p.TotalScore,
			HasFlipSeven:     p.HasFlipSeven,
			IsFrozen:         p.IsFrozen,
			FrozenUntilRound: p.FrozenUntilRound,
			Hand:             p.Hand,
		}
	}

	cardsLeft := 0
	if t.Deck != nil {
		cardsLeft = t.Deck.CardsLeft()
	}

	state := &GameState{
		RoomCode:    t.Code,
		State:       t.State,
		Round:       t.Round,
		MaxRounds:   t.Options.MaxRounds,
		TargetScore: t.Options.TargetScore,
		FlipTarget:  t.Options.FlipTarget,
		CurrentTurn: t.CurrentTurn,
		Winner:      t.Winner,
		CardsLeft:   cardsLeft,
		Players:     players,
		Pending:     t.Pending,
		LastEffects: g.lastEffects,
	}

	if t.State == StateRoundEnd || t.State == StateGameOver {
		ranked := t.rankedPlayers()
		standings := make([]int64, len(ranked))
		scores := make(map[int64]*Score, len(ranked))
		for i, p := range ranked {
			standings[i] = p.ID
			score := ComputeScore(p.Hand, t.Options.FlipTarget)
			scores[p.ID] = &score
		}

		state.Standings = standings
		state.Scores = scores
	}

	return state
}

// GetPlayerState returns the state for the given player
// Part of the Playable interface
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	t := g.table
	state := g.getGameState()

	response := &Response{
		GameState: state,
	}

	if p := t.Player(playerID); p != nil {
		if len(p.Hand) > 0 && !IsBusted(p.Hand, t.Options.FlipTarget) {
			score := ComputeScore(p.Hand, t.Options.FlipTarget)
			response.Score = &score
		}

		isTurn := t.State == StatePlaying && t.CurrentTurn == playerID && p.Status == StatusActive
		pendingMine := t.Pending != nil && t.Pending.PlayerID == playerID

		response.CanHit = isTurn && !pendingMine && t.Deck.CardsLeft() > 0
		response.CanStay = isTurn && !pendingMine
		response.MustSelectTarget = pendingMine
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data:  response,
	}, nil
}
