package flipseven

import "errors"

// ErrPlayerNotFound is returned when a player is not at the table
var ErrPlayerNotFound = errors.New("player not found")

// ErrRoomNotPlaying is returned when a turn action arrives outside an active round
var ErrRoomNotPlaying = errors.New("room is not playing")

// ErrRoomNotWaiting is returned when a lobby action arrives after the game has started
var ErrRoomNotWaiting = errors.New("room is not waiting for players")

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrPlayerNotActive is returned when the acting player has already stayed or busted
var ErrPlayerNotActive = errors.New("player is not active")

// ErrEmptyDeck is returned when a hit is attempted with no cards left.
// The caller should treat this as an implicit round-end trigger rather than a user-facing error.
var ErrEmptyDeck = errors.New("no cards left in the deck")

// ErrInvalidTarget is returned for a self-target or a target who is not active
var ErrInvalidTarget = errors.New("invalid target")

// ErrNoDuplicateFound means a second chance was applied to a hand without a duplicate.
// This is a programmer error; a hit only applies a second chance after detecting a bust.
var ErrNoDuplicateFound = errors.New("no duplicate number found")

// ErrActionPending is returned when the acting player must select a target first
var ErrActionPending = errors.New("an action card is awaiting a target")

// ErrNoActionPending is returned when a target is selected with no action card pending
var ErrNoActionPending = errors.New("no action card is awaiting a target")

// ErrNotHost is returned when a non-host attempts a host-only operation
var ErrNotHost = errors.New("only the host may do that")

// ErrTableFull is returned when a player joins a full table
var ErrTableFull = errors.New("table is full")

// ErrDuplicatePlayer is returned when a player id is already seated
var ErrDuplicatePlayer = errors.New("player is already at the table")

// ErrNotEnoughPlayers is returned when a game starts short-handed
var ErrNotEnoughPlayers = errors.New("need at least two players")

// ErrRoundNotOver is returned when the next round is requested mid-round
var ErrRoundNotOver = errors.New("round is not over")

// ErrGameNotOver is returned when a restart is requested before the game ends
var ErrGameNotOver = errors.New("game is not over")
