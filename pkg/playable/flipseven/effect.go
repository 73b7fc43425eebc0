package flipseven

import "flipn-server/pkg/deck"

// EffectKind tags what happened during turn resolution so the presentation
// layer can animate it. The set is closed; handle every kind.
type EffectKind string

// effect kinds
const (
	EffectFreeze       EffectKind = "freeze"
	EffectFlipThree    EffectKind = "flipThree"
	EffectSecondChance EffectKind = "secondChance"
	EffectBust         EffectKind = "bust"
	EffectCompletion   EffectKind = "completion"
	EffectStay         EffectKind = "stay"
	EffectRoundEnd     EffectKind = "roundEnd"
	EffectGameOver     EffectKind = "gameOver"
	EffectFrozenSkip   EffectKind = "frozenSkip"
)

// Effect describes one resolved consequence of an action.
// A freeze or flip-three is reported twice: once when drawn (no target,
// awaiting selection) and once when the target is chosen.
type Effect struct {
	Kind     EffectKind   `json:"kind"`
	PlayerID int64        `json:"playerId"`
	TargetID int64        `json:"targetId,omitempty"`
	Cards    []*deck.Card `json:"cards,omitempty"`

	// Value carries the score for stay/completion/round-end effects and the
	// duplicated number value for a second chance
	Value int `json:"value,omitempty"`
}

// Result is what every engine entry point returns on success. Table is a
// new snapshot; the input table is never mutated.
type Result struct {
	Table     *Table     `json:"table"`
	DrawnCard *deck.Card `json:"drawnCard,omitempty"`
	Effects   []Effect   `json:"effects,omitempty"`
}

func (r *Result) addEffect(e Effect) {
	r.Effects = append(r.Effects, e)
}
