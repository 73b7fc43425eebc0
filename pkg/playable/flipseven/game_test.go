package flipseven

import (
	"io"
	"testing"

	"flipn-server/pkg/playable"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// gameWithTable wraps a rigged mid-round table in the playable adapter
func gameWithTable(table *Table) *Game {
	return &Game{
		table:   table,
		logger:  quietLogger(),
		logChan: make(chan []*playable.LogMessage, 256),
	}
}

func action(name string) *playable.PayloadIn {
	return &playable.PayloadIn{Action: name}
}

func TestNewGame(t *testing.T) {
	g := NewGame(quietLogger(), "ROOM01", 1, "alpha", Options{})
	assert.Equal(t, "flip7", g.Name())
	assert.Equal(t, StateWaiting, g.Table().State)
	assert.Len(t, g.Table().Players, 1)

	details, over := g.GetEndOfGameDetails()
	assert.Nil(t, details)
	assert.False(t, over)
}

func TestGame_Action_unknownAction(t *testing.T) {
	g := NewGame(quietLogger(), "ROOM01", 1, "alpha", Options{})
	_, _, err := g.Action(1, action("bogus"))
	assert.EqualError(t, err, "unknown action: bogus")
}

func TestGame_lobbyAndStart(t *testing.T) {
	g := NewGame(quietLogger(), "ROOM01", 1, "alpha", Options{ShuffleSeed: 7})

	assert.NoError(t, g.AddPlayer(2, "bravo"))
	assert.Equal(t, ErrDuplicatePlayer, g.AddPlayer(2, "bravo"))

	_, _, err := g.Action(2, action("start"))
	assert.Equal(t, ErrNotHost, err)
	assert.Equal(t, StateWaiting, g.Table().State)

	res, updateState, err := g.Action(1, action("start"))
	assert.NoError(t, err)
	assert.True(t, updateState)
	assert.Equal(t, "OK", res.Value)
	assert.Equal(t, StatePlaying, g.Table().State)
	assert.Equal(t, 1, g.Table().Round)
}

func TestGame_Action_hitAndStay(t *testing.T) {
	g := gameWithTable(setupTable("3,5", "9", "8"))

	_, _, err := g.Action(2, action("hit"))
	assert.Equal(t, ErrNotYourTurn, err)

	_, updateState, err := g.Action(1, action("hit"))
	assert.NoError(t, err)
	assert.True(t, updateState)
	assert.Equal(t, "9,3", g.Table().Players[0].Hand.String())
	assert.Equal(t, int64(2), g.Table().CurrentTurn)

	_, _, err = g.Action(2, action("stay"))
	assert.NoError(t, err)
	assert.Equal(t, StatusStayed, g.Table().Players[1].Status)
	assert.Equal(t, 8, g.Table().Players[1].RoundScore)
}

func TestGame_Action_hitOnEmptyDeckStays(t *testing.T) {
	g := gameWithTable(setupTable("", "4,6", "8"))

	_, _, err := g.Action(1, action("hit"))
	assert.NoError(t, err)

	// the hit is converted into a stay when no card can be drawn
	p1 := g.Table().Players[0]
	assert.Equal(t, StatusStayed, p1.Status)
	assert.Equal(t, 10, p1.RoundScore)
	assert.Equal(t, int64(2), g.Table().CurrentTurn)
}

func TestGame_Action_selectTarget(t *testing.T) {
	g := gameWithTable(setupTable("fr,3", "9", "8"))

	_, _, err := g.Action(1, action("hit"))
	assert.NoError(t, err)
	assert.NotNil(t, g.Table().Pending)

	_, _, err = g.Action(1, action("selectTarget"))
	assert.EqualError(t, err, "missing 'playerId' parameter")

	msg := action("selectTarget")
	msg.AdditionalData = playable.AdditionalData{"playerId": float64(2)}
	_, updateState, err := g.Action(1, msg)
	assert.NoError(t, err)
	assert.True(t, updateState)

	assert.Nil(t, g.Table().Pending)
	assert.True(t, g.Table().Players[1].IsFrozen)
}

func TestGame_Action_selectTargetWithoutPending(t *testing.T) {
	g := gameWithTable(setupTable("3", "9", "8"))

	msg := action("selectTarget")
	msg.AdditionalData = playable.AdditionalData{"playerId": float64(2)}
	_, _, err := g.Action(1, msg)
	assert.Equal(t, ErrNoActionPending, err)
}

func TestGame_GetPlayerState(t *testing.T) {
	g := gameWithTable(setupTable("3,5", "9,+4", "8"))

	res, err := g.GetPlayerState(1)
	assert.NoError(t, err)
	assert.Equal(t, "game", res.Key)
	assert.Equal(t, "flip7", res.Value)

	state := res.Data.(*Response)
	assert.True(t, state.CanHit)
	assert.True(t, state.CanStay)
	assert.False(t, state.MustSelectTarget)
	assert.Equal(t, 13, state.Score.Total)
	assert.Equal(t, "TEST42", state.GameState.RoomCode)
	assert.Len(t, state.GameState.Players, 2)
	assert.Empty(t, state.GameState.Standings)

	// not their turn
	res, _ = g.GetPlayerState(2)
	state = res.Data.(*Response)
	assert.False(t, state.CanHit)
	assert.False(t, state.CanStay)
}

func TestGame_GetPlayerState_pendingTarget(t *testing.T) {
	g := gameWithTable(setupTable("f3,3", "9", "8"))

	_, _, err := g.Action(1, action("hit"))
	assert.NoError(t, err)

	res, _ := g.GetPlayerState(1)
	state := res.Data.(*Response)
	assert.True(t, state.MustSelectTarget)
	assert.False(t, state.CanHit)
	assert.False(t, state.CanStay)
}

func TestGame_logMessages(t *testing.T) {
	g := gameWithTable(setupTable("3", "9", "8"))

	_, _, err := g.Action(1, action("hit"))
	assert.NoError(t, err)

	select {
	case messages := <-g.LogChan():
		assert.NotEmpty(t, messages)
		assert.Equal(t, []int64{1}, messages[0].PlayerIDs)
		assert.Len(t, messages[0].Cards, 1)
	default:
		t.Fatal("expected a log message after a hit")
	}
}

func TestGame_GetEndOfGameDetails(t *testing.T) {
	g := gameWithTable(setupTable("", "9", "8"))
	g.table.Players[0].Status = StatusStayed
	g.table.Players[0].RoundScore = 9
	g.table.Players[0].TotalScore = 205
	g.table.Players[1].Status = StatusBusted
	g.table.Players[1].TotalScore = 64
	g.table.State = StateGameOver
	g.table.Winner = 1

	details, over := g.GetEndOfGameDetails()
	assert.True(t, over)
	assert.Equal(t, int64(1), details.WinnerID)
	assert.Equal(t, map[int64]int{1: 205, 2: 64}, details.FinalScores)
}

func TestGame_playsFullGameToCompletion(t *testing.T) {
	g := NewGame(quietLogger(), "ROOM01", 1, "alpha", Options{ShuffleSeed: 12345})
	assert.NoError(t, g.AddPlayer(2, "bravo"))
	assert.NoError(t, g.AddPlayer(3, "charlie"))

	_, _, err := g.Action(1, action("start"))
	assert.NoError(t, err)

	for i := 0; i < 2000 && g.Table().State != StateGameOver; i++ {
		table := g.Table()

		switch table.State {
		case StateRoundEnd:
			_, _, err = g.Action(1, action("nextRound"))
		case StatePlaying:
			if table.Pending != nil {
				actor := table.Pending.PlayerID
				var targetID int64
				for _, p := range table.Players {
					if p.ID != actor && p.Status == StatusActive {
						targetID = p.ID
						break
					}
				}

				msg := action("selectTarget")
				msg.AdditionalData = playable.AdditionalData{"playerId": float64(targetID)}
				_, _, err = g.Action(actor, msg)
				break
			}

			current := table.CurrentTurn
			score := ComputeScore(table.Player(current).Hand, table.Options.FlipTarget)
			if score.Total >= 25 {
				_, _, err = g.Action(current, action("stay"))
			} else {
				_, _, err = g.Action(current, action("hit"))
			}
		default:
			t.Fatalf("unexpected state: %s", table.State)
		}

		assert.NoError(t, err)
		if err != nil {
			return
		}
	}

	assert.Equal(t, StateGameOver, g.Table().State)
	assert.NotZero(t, g.Table().Winner)

	details, over := g.GetEndOfGameDetails()
	assert.True(t, over)
	assert.Equal(t, g.Table().Winner, details.WinnerID)

	// restart returns to a joinable lobby with clean scores
	_, _, err = g.Action(1, action("restart"))
	assert.NoError(t, err)
	assert.Equal(t, StateWaiting, g.Table().State)
	for _, p := range g.Table().Players {
		assert.Zero(t, p.TotalScore)
	}
}
