package room

import (
	"fmt"

	"flipn-server/pkg/playable"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player's websocket connection to a room
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer

	playerID int64
	roomCode string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID int64, roomCode string) *Client {
	return &Client{
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
		Conn:     conn,
		playerID: playerID,
		roomCode: roomCode,
	}
}

// PlayerID returns the seat the client authenticated as
func (c *Client) PlayerID() int64 {
	return c.playerID
}

// RoomCode returns the room the client is connected to
func (c *Client) RoomCode() string {
	return c.roomCode
}

// Send sends a message to the web client without blocking.
// Returns false if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	return fmt.Sprintf("%d:%s", c.playerID, c.roomCode)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
