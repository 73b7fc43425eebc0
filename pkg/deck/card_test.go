package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromString(t *testing.T) {
	c := CardFromString("7")
	assert.Equal(t, Number, c.Kind)
	assert.Equal(t, 7, c.Value)
	assert.NotEmpty(t, c.ID)

	c = CardFromString("12")
	assert.Equal(t, 12, c.Value)

	assert.Equal(t, Freeze, CardFromString("fr").Kind)
	assert.Equal(t, FlipThree, CardFromString("F3").Kind)
	assert.Equal(t, SecondChance, CardFromString("sc").Kind)
	assert.Equal(t, Plus4, CardFromString("+4").Kind)
	assert.Equal(t, Plus10, CardFromString("+10").Kind)
	assert.Equal(t, DoubleScore, CardFromString("x2").Kind)

	assert.Nil(t, CardFromString(""))
	assert.PanicsWithValue(t, "could not parse card: 13", func() {
		CardFromString("13")
	})
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("0,12,sc,+8,x2")
	assert.Len(t, cards, 5)
	assert.Equal(t, "0,12,sc,+8,x2", CardsToString(cards))

	// every card gets its own identity
	assert.NotEqual(t, cards[0].ID, cards[1].ID)

	assert.Empty(t, CardsFromString(""))
}

func TestCard_Predicates(t *testing.T) {
	assert.True(t, CardFromString("5").IsNumber())
	assert.False(t, CardFromString("5").IsAction())
	assert.False(t, CardFromString("5").IsModifier())

	assert.True(t, CardFromString("fr").IsAction())
	assert.True(t, CardFromString("f3").IsAction())
	assert.True(t, CardFromString("sc").IsAction())

	assert.True(t, CardFromString("+6").IsModifier())
	assert.True(t, CardFromString("x2").IsModifier())
	assert.False(t, CardFromString("x2").IsAction())
}

func TestCard_BonusValue(t *testing.T) {
	assert.Equal(t, 4, CardFromString("+4").BonusValue())
	assert.Equal(t, 6, CardFromString("+6").BonusValue())
	assert.Equal(t, 8, CardFromString("+8").BonusValue())
	assert.Equal(t, 10, CardFromString("+10").BonusValue())
	assert.Equal(t, 0, CardFromString("x2").BonusValue())
	assert.Equal(t, 0, CardFromString("9").BonusValue())
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "0", CardFromString("0").String())
	assert.Equal(t, "FR", CardFromString("fr").String())
	assert.Equal(t, "F3", CardFromString("f3").String())
	assert.Equal(t, "SC", CardFromString("sc").String())
	assert.Equal(t, "+10", CardFromString("+10").String())
	assert.Equal(t, "x2", CardFromString("x2").String())
}

func TestCard_Clone(t *testing.T) {
	c := CardFromString("8")
	clone := c.Clone()
	assert.Equal(t, c.ID, clone.ID)

	clone.FaceUp = true
	assert.False(t, c.FaceUp)
}
