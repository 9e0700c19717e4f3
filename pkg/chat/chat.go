// Package chat defines the transport surface a game session consumes: an
// inbound stream of channel messages plus the ability to send text back.
// Concrete transports live elsewhere (see pkg/room for the websocket relay).
package chat

import "errors"

// ErrTransportClosed is returned when the inbound event stream has been
// closed. There is no recovery; a session receiving this error must end.
var ErrTransportClosed = errors.New("chat: transport closed")

// Event is a single inbound chat message
type Event struct {
	ChannelID   string `json:"channelId"`
	ActorID     string `json:"actorId"`
	DisplayName string `json:"displayName"`
	Text        string `json:"text"`
}

// Transport provides chat access for a single channel
type Transport interface {
	// Events returns the inbound message stream. The channel is closed when
	// the transport is lost.
	Events() <-chan Event

	// Send delivers a text message to the channel
	Send(channelID, text string) error
}
