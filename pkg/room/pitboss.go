package room

import (
	"errors"
	"sync"

	"flipn-server/pkg/playable/flipseven"
	"flipn-server/pkg/token"

	"github.com/sirupsen/logrus"
)

const roomCodeLength = 6

// ErrRoomNotFound is returned when no room exists for a code
var ErrRoomNotFound = errors.New("room not found")

// PitBoss is responsible for dispatching players to rooms
type PitBoss struct {
	dealers    map[string]*Dealer
	lock       sync.RWMutex
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
func NewPitBoss() *PitBoss {
	return &PitBoss{
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			dealer, ok := p.Dealer(client.RoomCode())
			if !ok {
				logrus.WithField("room", client.RoomCode()).Warn("client connected to unknown room")
				client.Close <- "room not found"
				continue
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			dealer, ok := p.Dealer(client.RoomCode())
			if !ok {
				continue
			}

			if dealer.RemoveClient(client) && dealer.Game().Table().State == flipseven.StateGameOver {
				// the last client left a finished game; retire the room
				dealer.EndShift()
				p.lock.Lock()
				delete(p.dealers, client.RoomCode())
				p.lock.Unlock()
			}
		}
	}
}

// CreateRoom creates a new room with the host seated and its dealer running.
// The host's seat ID is returned alongside the dealer.
func (p *PitBoss) CreateRoom(hostName string, opts flipseven.Options) (*Dealer, int64) {
	p.lock.Lock()
	defer p.lock.Unlock()

	var code string
	for {
		code = token.Generate(roomCodeLength)
		if _, exists := p.dealers[code]; !exists {
			break
		}
	}

	const hostID = int64(1)
	game := flipseven.NewGame(logrus.WithField("room", code), code, hostID, hostName, opts)

	dealer := NewDealer(p, code, game)
	dealer.StartShift()
	p.dealers[code] = dealer

	logrus.WithFields(logrus.Fields{
		"room": code,
		"host": hostName,
	}).Info("room created")

	return dealer, hostID
}

// Dealer returns the dealer for the room code
func (p *PitBoss) Dealer(code string) (*Dealer, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, ok := p.dealers[code]
	return dealer, ok
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
