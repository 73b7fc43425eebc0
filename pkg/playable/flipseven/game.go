package flipseven

import (
	"errors"
	"fmt"

	"flipn-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Game wraps the table state machine behind the playable.Playable contract.
// The room run loop serializes all calls, so the authoritative table pointer
// is only ever swapped after an operation succeeds.
type Game struct {
	table       *Table
	logger      logrus.FieldLogger
	logChan     chan []*playable.LogMessage
	lastEffects []Effect
}

var _ playable.Playable = (*Game)(nil)

// NewGame creates a new Flip N room with the host seated
func NewGame(logger logrus.FieldLogger, code string, hostID int64, hostName string, opts Options) *Game {
	return &Game{
		table:   NewTable(code, hostID, hostName, opts),
		logger:  logger,
		logChan: make(chan []*playable.LogMessage, 256),
	}
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "flip7"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Table returns the current authoritative snapshot
func (g *Game) Table() *Table {
	return g.table
}

// AddPlayer seats a player in the waiting room
func (g *Game) AddPlayer(id int64, name string) error {
	res, err := g.table.AddPlayer(id, name)
	if err != nil {
		return err
	}

	g.apply(res)
	g.sendLogMessages(playable.SimpleLogMessage(id, "{} joined the room"))
	return nil
}

// RemovePlayer unseats a player from the waiting room
func (g *Game) RemovePlayer(id int64) error {
	res, err := g.table.RemovePlayer(id)
	if err != nil {
		return err
	}

	g.apply(res)
	g.sendLogMessages(playable.SimpleLogMessage(id, "{} left the room"))
	return nil
}

// SetConnected updates a player's presence. Disconnecting the player whose
// turn it is passes the turn along.
func (g *Game) SetConnected(id int64, connected bool) error {
	res, err := g.table.SetConnected(id, connected)
	if err != nil {
		return err
	}

	g.apply(res)
	return nil
}

// Action is called when a client performs an action
// Part of the Playable interface
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	var res *Result

	switch message.Action {
	case "start":
		res, err = g.table.StartGame(playerID)
		if err == nil {
			g.sendLogMessages(playable.SimpleLogMessage(0, "Round %d begins", res.Table.Round))
		}
	case "hit":
		res, err = g.table.Hit(playerID)
		if errors.Is(err, ErrEmptyDeck) {
			// deck exhaustion implicitly ends the round; fold the player's
			// standing hand in by staying on their behalf
			res, err = g.table.Stay(playerID)
		}
	case "stay":
		res, err = g.table.Stay(playerID)
	case "selectTarget":
		targetID, ok := message.AdditionalData.GetInt64("playerId")
		if !ok {
			return nil, false, errors.New("missing 'playerId' parameter")
		}

		res, err = g.selectTarget(playerID, targetID)
	case "nextRound":
		res, err = g.table.StartNextRound(playerID)
		if err == nil {
			g.sendLogMessages(playable.SimpleLogMessage(0, "Round %d begins", res.Table.Round))
		}
	case "restart":
		res, err = g.table.Restart(playerID)
		if err == nil {
			g.sendLogMessages(playable.SimpleLogMessage(0, "The table was reset for a new game"))
		}
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}

	if err != nil {
		return nil, false, err
	}

	g.apply(res)
	g.logEffects(playerID, res)

	return playable.OK(message.Context), true, nil
}

func (g *Game) selectTarget(playerID, targetID int64) (*Result, error) {
	if g.table.Pending == nil {
		return nil, ErrNoActionPending
	}

	switch g.table.Pending.Kind {
	case PendingFreeze:
		return g.table.SelectFreezeTarget(playerID, targetID)
	case PendingFlipThree:
		return g.table.SelectFlipThreeTarget(playerID, targetID)
	default:
		return nil, ErrNoActionPending
	}
}

// apply swaps in the new snapshot
func (g *Game) apply(res *Result) {
	g.table = res.Table
	g.lastEffects = res.Effects
}

// logEffects translates a result into the room's activity feed
func (g *Game) logEffects(playerID int64, res *Result) {
	messages := make([]*playable.LogMessage, 0, len(res.Effects)+1)

	if res.DrawnCard != nil {
		lm := playable.SimpleLogMessage(playerID, "{} flipped a card")
		lm.Cards = append(lm.Cards, res.DrawnCard)
		messages = append(messages, lm)
	}

	for _, effect := range res.Effects {
		var lm *playable.LogMessage

		switch effect.Kind {
		case EffectFreeze:
			if effect.TargetID > 0 {
				lm = playable.SimpleLogMessage(effect.PlayerID, "{} froze %s", g.playerName(effect.TargetID))
			} else {
				lm = playable.SimpleLogMessage(effect.PlayerID, "{} drew a Freeze and must pick a target")
			}
		case EffectFlipThree:
			if effect.TargetID > 0 {
				lm = playable.SimpleLogMessage(effect.PlayerID, "{} made %s flip three", g.playerName(effect.TargetID))
			} else {
				lm = playable.SimpleLogMessage(effect.PlayerID, "{} drew a Flip Three and must pick a target")
			}
		case EffectSecondChance:
			lm = playable.SimpleLogMessage(effect.PlayerID, "{} burned a Second Chance on a duplicate %d", effect.Value)
		case EffectBust:
			lm = playable.SimpleLogMessage(effect.PlayerID, "{} busted")
		case EffectCompletion:
			lm = playable.SimpleLogMessage(effect.PlayerID, "{} hit Flip 7 for %d points!", effect.Value)
		case EffectStay:
			lm = playable.SimpleLogMessage(effect.PlayerID, "{} stayed at %d points", effect.Value)
		case EffectFrozenSkip:
			lm = playable.SimpleLogMessage(effect.PlayerID, "{} is frozen and was skipped")
		case EffectRoundEnd:
			lm = playable.SimpleLogMessage(0, "Round %d is over; %s leads with %d points",
				g.table.Round, g.playerName(effect.PlayerID), effect.Value)
		case EffectGameOver:
			lm = playable.SimpleLogMessage(0, "Game over! %s wins with %d points",
				g.playerName(effect.PlayerID), effect.Value)
		}

		if lm != nil {
			lm.Cards = append(lm.Cards, effect.Cards...)
			messages = append(messages, lm)
		}
	}

	g.sendLogMessages(messages...)
}

func (g *Game) playerName(id int64) string {
	if p := g.table.Player(id); p != nil {
		return p.Name
	}

	return fmt.Sprintf("player %d", id)
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if len(msg) == 0 {
		return
	}

	select {
	case g.logChan <- msg:
	default:
		g.logger.Warn("log channel is full; dropping messages")
	}
}

// GetEndOfGameDetails returns the final results
// Part of the Playable interface
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if g.table.State != StateGameOver {
		return nil, false
	}

	scores := make(map[int64]int, len(g.table.Players))
	for _, p := range g.table.Players {
		scores[p.ID] = p.TotalScore
	}

	return &playable.GameOverDetails{
		WinnerID:    g.table.Winner,
		FinalScores: scores,
		Log:         g.getGameState(),
	}, true
}
