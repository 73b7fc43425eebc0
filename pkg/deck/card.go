package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies what a card does
type Kind string

// card kinds
const (
	Number       Kind = "number"
	Freeze       Kind = "freeze"
	FlipThree    Kind = "flipThree"
	SecondChance Kind = "secondChance"
	Plus4        Kind = "plus4"
	Plus6        Kind = "plus6"
	Plus8        Kind = "plus8"
	Plus10       Kind = "plus10"
	DoubleScore  Kind = "doubleScore"
)

// MaxNumberValue is the highest number card in the deck
const MaxNumberValue = 12

// Card is an individual Flip N card
type Card struct {
	// ID uniquely identifies the physical card within a deck
	ID string `json:"id"`

	Kind Kind `json:"kind"`

	// Value is only meaningful for number cards
	Value int `json:"value"`

	// FaceUp is a display hint only; the engine treats all cards in a hand as known
	FaceUp bool `json:"faceUp"`
}

func newCard(kind Kind, value int) *Card {
	return &Card{
		ID:    uuid.New().String(),
		Kind:  kind,
		Value: value,
	}
}

// IsNumber returns true for number cards
func (c *Card) IsNumber() bool {
	return c.Kind == Number
}

// IsAction returns true for freeze, flip-three, and second-chance cards
func (c *Card) IsAction() bool {
	switch c.Kind {
	case Freeze, FlipThree, SecondChance:
		return true
	}

	return false
}

// IsModifier returns true for the plus and double-score cards
func (c *Card) IsModifier() bool {
	switch c.Kind {
	case Plus4, Plus6, Plus8, Plus10, DoubleScore:
		return true
	}

	return false
}

// BonusValue returns the flat bonus for a plus-modifier, or 0
func (c *Card) BonusValue() int {
	switch c.Kind {
	case Plus4:
		return 4
	case Plus6:
		return 6
	case Plus8:
		return 8
	case Plus10:
		return 10
	}

	return 0
}

func (c *Card) String() string {
	switch c.Kind {
	case Number:
		return strconv.Itoa(c.Value)
	case Freeze:
		return "FR"
	case FlipThree:
		return "F3"
	case SecondChance:
		return "SC"
	case Plus4, Plus6, Plus8, Plus10:
		return fmt.Sprintf("+%d", c.BonusValue())
	case DoubleScore:
		return "x2"
	default:
		panic("unknown kind")
	}
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-2]|fr|f3|sc|\+4|\+6|\+8|\+10|x2)\z`)

// CardFromString returns a Card from the string.
// Number cards are their value ("0" through "12"); action and modifier
// cards use the same notation as String() ("fr", "f3", "sc", "+4", "x2", ...)
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	switch strings.ToLower(match[1]) {
	case "fr":
		return newCard(Freeze, 0)
	case "f3":
		return newCard(FlipThree, 0)
	case "sc":
		return newCard(SecondChance, 0)
	case "+4":
		return newCard(Plus4, 0)
	case "+6":
		return newCard(Plus6, 0)
	case "+8":
		return newCard(Plus8, 0)
	case "+10":
		return newCard(Plus10, 0)
	case "x2":
		return newCard(DoubleScore, 0)
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		// should never be hit due to the regexp
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	return newCard(Number, value)
}

// CardsFromString will return a slice of cards from a comma-separated string
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 4,7,sc,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = strings.ToLower(card.String())
	}

	return strings.Join(c, ",")
}

// Clone returns a copy of the card with the same identity
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}
