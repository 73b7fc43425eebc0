package mux

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flipn-server/pkg/playable/flipseven"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestMux_postRoom(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	var created roomResponse
	assertPost(t, ts, "/room", roomPayload{Name: "alpha"}, &created, http.StatusCreated)
	assert.Len(t, created.RoomCode, 6)
	assert.Equal(t, int64(1), created.PlayerID)

	// bad content type
	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/room", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "text/plain")
	assertDo(t, req, nil, http.StatusUnsupportedMediaType)

	// malformed body
	assertPost(t, ts, "/room", "{not json", nil, http.StatusBadRequest)
}

func TestMux_postRoom_blankNameGetsRandomName(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	var created roomResponse
	assertPost(t, ts, "/room", roomPayload{}, &created, http.StatusCreated)
	assert.Len(t, created.RoomCode, 6)
}

func TestMux_postRoomCodeJoin(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	var created roomResponse
	payload := roomPayload{Name: "alpha", Options: flipseven.Options{MaxPlayers: 2}}
	assertPost(t, ts, "/room", payload, &created, http.StatusCreated)

	var joined roomResponse
	assertPost(t, ts, "/room/"+created.RoomCode+"/join", roomPayload{Name: "bravo"}, &joined, http.StatusCreated)
	assert.Equal(t, created.RoomCode, joined.RoomCode)
	assert.Equal(t, int64(2), joined.PlayerID)

	// room is now full
	assertPost(t, ts, "/room/"+created.RoomCode+"/join", roomPayload{Name: "charlie"}, nil, http.StatusConflict)

	// unknown room
	assertPost(t, ts, "/room/ZZZZZZ/join", roomPayload{Name: "delta"}, nil, http.StatusNotFound)
}

type wsMessage struct {
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Data    json.RawMessage `json:"data"`
	Context string          `json:"context"`
}

func wsURL(ts *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + path
}

// waitForGameState reads from the connection until a game payload with the
// wanted state arrives
func waitForGameState(t *testing.T, conn *websocket.Conn, want flipseven.State) {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("did not reach state %q: %v", want, err)
		}

		if msg.Key != "game" {
			continue
		}

		var data struct {
			GameState struct {
				State flipseven.State `json:"state"`
			} `json:"gameState"`
		}
		assert.NoError(t, json.Unmarshal(msg.Data, &data))

		if data.GameState.State == want {
			return
		}
	}
}

func TestMux_roomWebSocket(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	var created roomResponse
	assertPost(t, ts, "/room", roomPayload{Name: "alpha"}, &created, http.StatusCreated)

	var joined roomResponse
	assertPost(t, ts, "/room/"+created.RoomCode+"/join", roomPayload{Name: "bravo"}, &joined, http.StatusCreated)

	// an unknown seat may not connect
	_, res, err := websocket.DefaultDialer.Dial(wsURL(ts, fmt.Sprintf("/room/%s/ws?playerId=99", created.RoomCode)), nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	hostConn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, fmt.Sprintf("/room/%s/ws?playerId=%d", created.RoomCode, created.PlayerID)), nil)
	assert.NoError(t, err)
	defer hostConn.Close()

	guestConn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, fmt.Sprintf("/room/%s/ws?playerId=%d", created.RoomCode, joined.PlayerID)), nil)
	assert.NoError(t, err)
	defer guestConn.Close()

	// the initial player state confirms the clients are attached to the room
	waitForGameState(t, hostConn, flipseven.StateWaiting)
	waitForGameState(t, guestConn, flipseven.StateWaiting)

	err = hostConn.WriteJSON(map[string]string{"action": "start", "context": "c1"})
	assert.NoError(t, err)

	waitForGameState(t, hostConn, flipseven.StatePlaying)
	waitForGameState(t, guestConn, flipseven.StatePlaying)
}
