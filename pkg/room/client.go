package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a chat participant connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// ChannelID is the chat channel the client joined
	ChannelID string

	// ActorID uniquely and stably identifies the participant
	ActorID string

	// DisplayName is the participant's visible name
	DisplayName string

	// send is a channel for sending messages to the client
	send chan outMessage

	// Close is a channel for closing the client
	Close chan string

	hub *Hub
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, channelID, actorID, displayName string) *Client {
	return &Client{
		Conn:        conn,
		ChannelID:   channelID,
		ActorID:     actorID,
		DisplayName: displayName,
		send:        make(chan outMessage, 256),
		Close:       make(chan string),
	}
}

// Send sends a message to the web client
func (c *Client) Send(msg outMessage) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outbound messages
func (c *Client) SendChan() <-chan outMessage {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.ActorID, c.ChannelID)
}

// ReceivedMessage is called when the server receives a chat message from a
// connected client
func (c *Client) ReceivedMessage(text string) {
	if c.hub == nil {
		logrus.WithField("text", text).Warn("received message, but hub not found")
		return
	}

	c.hub.ReceivedMessage(c, text)
}
