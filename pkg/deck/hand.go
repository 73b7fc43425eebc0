package deck

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasKind returns true if the hand contains a card of the specified kind
func (h Hand) HasKind(kind Kind) bool {
	for _, c := range h {
		if c.Kind == kind {
			return true
		}
	}

	return false
}

// RemoveFirst removes the first card matching the predicate and returns it,
// or nil if no card matched
func (h *Hand) RemoveFirst(match func(*Card) bool) *Card {
	for i, c := range *h {
		if match(c) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return c
		}
	}

	return nil
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a deep copy of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	for i, c := range h {
		h2[i] = c.Clone()
	}

	return h2
}
