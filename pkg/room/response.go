package room

import (
	"flipn-server/pkg/playable"
)

type clientStatePlayer struct {
	PlayerID    int64  `json:"playerId"`
	Name        string `json:"name"`
	IsHost      bool   `json:"isHost"`
	IsConnected bool   `json:"isConnected"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
