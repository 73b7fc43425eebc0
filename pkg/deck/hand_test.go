package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	hand := Hand(CardsFromString("3,sc,3"))
	assert.True(t, hand.HasKind(SecondChance))
	assert.False(t, hand.HasKind(Freeze))

	hand.AddCard(CardFromString("x2"))
	assert.Equal(t, "3,sc,3,x2", hand.String())
	assert.Equal(t, DoubleScore, hand.LastCard().Kind)

	removed := hand.RemoveFirst(func(c *Card) bool { return c.Kind == SecondChance })
	assert.NotNil(t, removed)
	assert.Equal(t, "3,3,x2", hand.String())

	assert.Nil(t, hand.RemoveFirst(func(c *Card) bool { return c.Kind == Freeze }))

	assert.Nil(t, Hand{}.LastCard())
}

func TestHand_Clone(t *testing.T) {
	hand := Hand(CardsFromString("3,7"))
	clone := hand.Clone()

	clone.AddCard(CardFromString("9"))
	clone[0].FaceUp = true

	assert.Len(t, hand, 2)
	assert.False(t, hand[0].FaceUp)
}
