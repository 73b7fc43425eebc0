package mux

import (
	"net/http"

	"flipn-server/internal/config"
	"flipn-server/internal/util"
	"flipn-server/pkg/playable/flipseven"
)

type roomPayload struct {
	Name    string            `json:"name"`
	Options flipseven.Options `json:"options"`
}

type roomResponse struct {
	RoomCode string `json:"roomCode"`
	PlayerID int64  `json:"playerId"`
}

// optionsWithConfig fills unset game options from the server configuration
func optionsWithConfig(opts flipseven.Options) flipseven.Options {
	game := config.Instance().Game

	if opts.TargetScore == 0 {
		opts.TargetScore = game.TargetScore
	}

	if opts.MaxRounds == 0 {
		opts.MaxRounds = game.MaxRounds
	}

	if opts.MaxPlayers == 0 {
		opts.MaxPlayers = game.MaxPlayers
	}

	return opts
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload roomPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.Name == "" {
			payload.Name = util.GetRandomName()
		}

		dealer, hostID := m.pitBoss.CreateRoom(payload.Name, optionsWithConfig(payload.Options))

		writeJSON(w, http.StatusCreated, roomResponse{
			RoomCode: dealer.Code(),
			PlayerID: hostID,
		})
	}
}

func (m *Mux) postRoomCodeJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := m.dealerFromRequest(w, r)
		if dealer == nil {
			return
		}

		var payload roomPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.Name == "" {
			payload.Name = util.GetRandomName()
		}

		playerID, err := dealer.AddPlayer(payload.Name)
		if err != nil {
			writeJSONError(w, http.StatusConflict, err)
			return
		}

		writeJSON(w, http.StatusCreated, roomResponse{
			RoomCode: dealer.Code(),
			PlayerID: playerID,
		})
	}
}
