package flipseven

import "flipn-server/pkg/deck"

// FlipBonus is the flat bonus for completing a hand of all-unique numbers
const FlipBonus = 15

// Score is the breakdown of a hand's value
type Score struct {
	// Total is the round score. A busted hand is always worth 0.
	Total int `json:"total"`

	// UniqueSum counts each number value once, no matter how many copies are held
	UniqueSum int `json:"uniqueSum"`

	// ModifierSum is the flat bonus from plus-cards, added before multiplication
	ModifierSum int `json:"modifierSum"`

	// Multiplier doubles per double-score card held
	Multiplier int `json:"multiplier"`

	// CompletionBonus is FlipBonus when the hand reached the flip target, added after multiplication
	CompletionBonus int `json:"completionBonus"`
}

// UniqueNumberValues returns the set of values among the hand's number cards
func UniqueNumberValues(hand deck.Hand) map[int]bool {
	values := make(map[int]bool)
	for _, c := range hand {
		if c.IsNumber() {
			values[c.Value] = true
		}
	}

	return values
}

// HasFlipSeven returns true once the hand holds at least the target count of
// distinct number values. A flip-three can add several values at once, so the
// target may be crossed rather than landed on exactly.
func HasFlipSeven(hand deck.Hand, target int) bool {
	return len(UniqueNumberValues(hand)) >= target
}

// IsBusted returns true if the hand holds a duplicated number value.
// Reaching the flip target supersedes a simultaneous duplicate; completion
// is checked first during turn resolution.
func IsBusted(hand deck.Hand, target int) bool {
	if HasFlipSeven(hand, target) {
		return false
	}

	numbers := 0
	for _, c := range hand {
		if c.IsNumber() {
			numbers++
		}
	}

	return numbers > len(UniqueNumberValues(hand))
}

// CanUseSecondChance returns true if the hand holds a second-chance card
func CanUseSecondChance(hand deck.Hand) bool {
	return hand.HasKind(deck.SecondChance)
}

// ApplySecondChance removes exactly one second-chance card and exactly one
// copy of the first-encountered duplicated number card (scan order = hand
// order). All other cards are kept, including any remaining copies of the
// duplicated value. ErrNoDuplicateFound is returned if no value is duplicated.
func ApplySecondChance(hand deck.Hand) (newHand deck.Hand, removed []*deck.Card, duplicateValue int, err error) {
	counts := make(map[int]int)
	for _, c := range hand {
		if c.IsNumber() {
			counts[c.Value]++
		}
	}

	duplicateValue = -1
	for _, c := range hand {
		if c.IsNumber() && counts[c.Value] > 1 {
			duplicateValue = c.Value
			break
		}
	}

	if duplicateValue < 0 {
		return nil, nil, 0, ErrNoDuplicateFound
	}

	newHand = hand.Clone()

	duplicate := newHand.RemoveFirst(func(c *deck.Card) bool {
		return c.IsNumber() && c.Value == duplicateValue
	})

	secondChance := newHand.RemoveFirst(func(c *deck.Card) bool {
		return c.Kind == deck.SecondChance
	})
	if secondChance == nil {
		return nil, nil, 0, ErrNoDuplicateFound
	}

	return newHand, []*deck.Card{duplicate, secondChance}, duplicateValue, nil
}

// ComputeScore scores a hand: unique number values plus flat modifiers,
// doubled per double-score card, plus the completion bonus. Busted hands
// forfeit the round and score 0.
func ComputeScore(hand deck.Hand, target int) Score {
	if IsBusted(hand, target) {
		return Score{Multiplier: 1}
	}

	score := Score{Multiplier: 1}
	for value := range UniqueNumberValues(hand) {
		score.UniqueSum += value
	}

	for _, c := range hand {
		switch {
		case c.Kind == deck.DoubleScore:
			score.Multiplier *= 2
		case c.IsModifier():
			score.ModifierSum += c.BonusValue()
		}
	}

	if HasFlipSeven(hand, target) {
		score.CompletionBonus = FlipBonus
	}

	score.Total = (score.UniqueSum+score.ModifierSum)*score.Multiplier + score.CompletionBonus
	return score
}
