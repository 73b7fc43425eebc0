package flipseven

import (
	"testing"

	"flipn-server/pkg/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestGame_getGameState(t *testing.T) {
	g := gameWithTable(setupTable("3,5", "9,+4,x2", "8"))

	state := g.getGameState()
	assert.Equal(t, "TEST42", state.RoomCode)
	assert.Equal(t, StatePlaying, state.State)
	assert.Equal(t, int64(1), state.CurrentTurn)
	assert.Equal(t, 2, state.CardsLeft)
	assert.Len(t, state.Players, 2)

	// hands are public
	assert.Equal(t, "9,+4,x2", state.Players[0].Hand.String())

	// standings and score breakdowns only appear once the round is settled
	assert.Empty(t, state.Standings)
	assert.Empty(t, state.Scores)
}

func TestGame_getGameState_roundEnd(t *testing.T) {
	g := gameWithTable(setupTable("", "9,+4,x2", "8"))
	g.table.State = StateRoundEnd

	state := g.getGameState()
	assert.Equal(t, []int64{2, 1}, state.Standings)
	snapshot.ValidateSnapshot(t, state.Scores, 0)
}
