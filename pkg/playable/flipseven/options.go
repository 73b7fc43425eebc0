package flipseven

// Options are options for creating a new Flip N table
type Options struct {
	// FlipTarget is the number of distinct number values that completes a hand
	FlipTarget int `json:"flipTarget"`

	// TargetScore ends the game once any player reaches it
	TargetScore int `json:"targetScore"`

	// MaxRounds ends the game after this many rounds even if no one reaches TargetScore
	MaxRounds int `json:"maxRounds"`

	MinPlayers int `json:"minPlayers"`
	MaxPlayers int `json:"maxPlayers"`

	// ShuffleSeed makes every shuffle deterministic when > 0. Leave 0 outside of tests.
	ShuffleSeed int64 `json:"-"`
}

// DefaultOptions returns the official game parameters
func DefaultOptions() Options {
	return Options{
		FlipTarget:  7,
		TargetScore: 200,
		MaxRounds:   5,
		MinPlayers:  2,
		MaxPlayers:  8,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.FlipTarget <= 0 {
		o.FlipTarget = def.FlipTarget
	}

	if o.TargetScore <= 0 {
		o.TargetScore = def.TargetScore
	}

	if o.MaxRounds <= 0 {
		o.MaxRounds = def.MaxRounds
	}

	if o.MinPlayers < 2 {
		o.MinPlayers = def.MinPlayers
	}

	if o.MaxPlayers <= 0 {
		o.MaxPlayers = def.MaxPlayers
	}

	return o
}
