package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// copies of each action card (freeze, flip-three, second-chance)
const actionCopies = 3

// copies of each modifier card
var modifierCopies = map[Kind]int{
	Plus4:       2,
	Plus6:       2,
	Plus8:       2,
	Plus10:      2,
	DoubleScore: 3,
}

// Deck is an ordered Flip N deck, drawn from the front
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

// buildDeck enumerates the official distribution: a number card of value v
// appears v+1 times (one zero through thirteen twelves), three copies of
// each action card, two of each plus-modifier, and three double-scores.
func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size())

	for value := 0; value <= MaxNumberValue; value++ {
		for i := 0; i <= value; i++ {
			cards = append(cards, newCard(Number, value))
		}
	}

	for _, kind := range []Kind{Freeze, FlipThree, SecondChance} {
		for i := 0; i < actionCopies; i++ {
			cards = append(cards, newCard(kind, 0))
		}
	}

	for _, kind := range []Kind{Plus4, Plus6, Plus8, Plus10, DoubleScore} {
		for i := 0; i < modifierCopies[kind]; i++ {
			cards = append(cards, newCard(kind, 0))
		}
	}

	d.Cards = cards
}

// Size returns the number of cards in a full deck
func Size() int {
	n := 0
	for value := 0; value <= MaxNumberValue; value++ {
		n += value + 1
	}

	n += 3 * actionCopies
	for _, copies := range modifierCopies {
		n += copies
	}

	return n
}

// Shuffle will Fisher–Yates shuffle the deck of cards
// You can manually specify the seed, or you can leave it as 0. Pass a fixed seed for reproducible tests.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != Size() || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.ID))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card face-up
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	card.FaceUp = true

	return card, nil
}

// DrawUpTo draws up to n cards face-up.
// Fewer than n cards are returned when the deck runs short; a flip-three
// must still function against a near-empty deck.
func (d *Deck) DrawUpTo(n int) []*Card {
	if n > len(d.Cards) {
		n = len(d.Cards)
	}

	cards := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			// cannot happen; n is bounded above
			panic(err)
		}

		cards = append(cards, card)
	}

	return cards
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Clone returns a deep copy of the deck sharing no cards with the original
func (d *Deck) Clone() *Deck {
	cards := make([]*Card, len(d.Cards))
	for i, card := range d.Cards {
		cards[i] = card.Clone()
	}

	clone := &Deck{
		Cards: cards,
		seed:  d.seed,
	}

	if d.seed >= 0 {
		clone.rng = rand.New(rand.NewSource(d.seed))
	}

	return clone
}
