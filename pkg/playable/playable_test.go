package playable

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(0, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.PlayerIDs)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, lm.Time.After(time.Now()))
	assert.Nil(t, lm.Cards)
}

func TestSimpleLogMessage_withPlayerID(t *testing.T) {
	lm := SimpleLogMessage(1, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int64{1}, lm.PlayerIDs)
}

func TestSimpleLogMessageSlice(t *testing.T) {
	lms := SimpleLogMessageSlice(0, "test %d", 38)
	assert.Equal(t, 1, len(lms))
	assert.Equal(t, "test 38", lms[0].Message)
}

func TestAdditionalData(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	_ = json.Unmarshal([]byte(`{"playerId":12,"in":true,"name":"p"}`), &data)

	id, ok := data.GetInt64("playerId")
	a.True(ok)
	a.Equal(int64(12), id)

	n, ok := data.GetInt("playerId")
	a.True(ok)
	a.Equal(12, n)

	b, ok := data.GetBool("in")
	a.True(ok)
	a.True(b)

	s, ok := data.GetString("name")
	a.True(ok)
	a.Equal("p", s)

	_, ok = data.GetInt64("missing")
	a.False(ok)
}
