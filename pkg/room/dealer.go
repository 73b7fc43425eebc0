package room

import (
	"sync"

	"flipn-server/pkg/playable"
	"flipn-server/pkg/playable/flipseven"

	"github.com/sirupsen/logrus"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

// Dealer owns a single room. All game mutations and broadcasts happen on its
// run loop, so the flipseven.Game never needs its own locking.
type Dealer struct {
	pitBoss *PitBoss
	code    string
	game    *flipseven.Game

	clients map[*Client]bool
	lock    sync.RWMutex

	nextPlayerID int64
	logMessages  []*playable.LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
}

// NewDealer creates a new dealer for the room
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, code string, game *flipseven.Game) *Dealer {
	return &Dealer{
		pitBoss:       pitBoss,
		code:          code,
		game:          game,
		clients:       make(map[*Client]bool),
		nextPlayerID:  int64(len(game.Table().Players)),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Code returns the room code
func (d *Dealer) Code() string {
	return d.code
}

// Game returns the room's game
func (d *Dealer) Game() *flipseven.Game {
	return d.game
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithField("room", d.code)
	log.Debug("creating dealer run loop")

	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendClientState()
			case stateGameEvent:
				d.sendGameData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case messages := <-d.game.LogChan():
			d.addLogMessages(messages)
			for _, client := range d.Clients() {
				client.Send(&playable.Response{
					Key:  "logs",
					Data: messages,
				})
			}
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// execSync runs fn on the run loop and waits for it to finish
func (d *Dealer) execSync(fn func() error) error {
	errCh := make(chan error, 1)
	d.execInRunLoop <- func() {
		errCh <- fn()
	}

	return <-errCh
}

// AddPlayer seats a new player in the room and returns their seat ID
func (d *Dealer) AddPlayer(name string) (int64, error) {
	var playerID int64
	err := d.execSync(func() error {
		id := d.nextPlayerID + 1
		if err := d.game.AddPlayer(id, name); err != nil {
			return err
		}

		d.nextPlayerID = id
		playerID = id
		return nil
	})

	if err != nil {
		return 0, err
	}

	d.stateChanged <- stateGameEvent
	return playerID, nil
}

// AddClient attaches a connected websocket to the room
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		if err := d.game.SetConnected(client.PlayerID(), true); err != nil {
			logrus.WithError(err).WithField("client", client.String()).Warn("could not mark player connected")
		}

		if len(d.logMessages) > 0 {
			client.Send(&playable.Response{
				Key:  "logs",
				Data: d.logMessages,
			})
		}

		gs, err := d.game.GetPlayerState(client.PlayerID())
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			return
		}

		client.Send(gs)
		d.stateChanged <- stateGameEvent
	}
}

// RemoveClient detaches a websocket from the room
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)

	// the same seat may hold more than one connection
	stillConnected := false
	for other := range d.clients {
		if other.PlayerID() == client.PlayerID() {
			stillConnected = true
			break
		}
	}
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		if !stillConnected {
			if err := d.game.SetConnected(client.PlayerID(), false); err != nil {
				logrus.WithError(err).WithField("client", client.String()).Warn("could not mark player disconnected")
			}
		}

		d.stateChanged <- stateGameEvent
	}

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.execInRunLoop <- func() {
		action, updateState, err := d.game.Action(c.PlayerID(), msg)
		if err != nil {
			logrus.WithError(err).WithField("client", c.String()).Debug("could not perform action")
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		if action != nil {
			action.Context = msg.Context
			c.Send(action)
		}

		if updateState {
			d.stateChanged <- stateGameEvent
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	for _, client := range d.Clients() {
		data, err := d.game.GetPlayerState(client.PlayerID())
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			continue
		}

		client.Send(data)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendClientState() {
	connected := make(map[int64]bool)
	for _, client := range d.Clients() {
		connected[client.PlayerID()] = true
	}

	players := make(map[int64]*clientStatePlayer)
	for _, p := range d.game.Table().Players {
		players[p.ID] = &clientStatePlayer{
			PlayerID:    p.ID,
			Name:        p.Name,
			IsHost:      p.IsHost,
			IsConnected: connected[p.ID],
		}
	}

	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key:  "clientState",
			Data: players,
		})
	}
}
