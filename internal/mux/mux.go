package mux

import (
	"net/http"

	"flipn-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	pitBoss := room.NewPitBoss()
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

	rr := r.PathPrefix("/room/{code:[A-Z0-9]{6}}").Subrouter()
	rr.Methods(http.MethodPost).Path("/join").Handler(this.postRoomCodeJoin())
	rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomCodeWS())

	return this
}

// dealerFromRequest resolves the {code} path variable to a live room.
// Writes a 404 and returns nil if the room does not exist.
func (m *Mux) dealerFromRequest(w http.ResponseWriter, r *http.Request) *room.Dealer {
	code := gmux.Vars(r)["code"]
	dealer, ok := m.pitBoss.Dealer(code)
	if !ok {
		writeJSONError(w, http.StatusNotFound, room.ErrRoomNotFound)
		return nil
	}

	return dealer
}
