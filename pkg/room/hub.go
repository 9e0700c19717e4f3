package room

import (
	"context"
	"sync"
	"time"

	"chatjack-server/pkg/bank"
	"chatjack-server/pkg/blackjack"
	"chatjack-server/pkg/chat"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// systemSender is the name chat relays attribute table output to
const systemSender = "table"

// Hub relays chat for a single channel. Every inbound client message is
// echoed to all connected clients and, when a blackjack session is live,
// forwarded into it. A start-session command with no live session spins one
// up.
//
// Hub implements chat.Transport for the session it hosts.
type Hub struct {
	channelID string
	logger    logrus.FieldLogger
	store     bank.Store
	opts      blackjack.Options

	clients map[*Client]bool
	lock    sync.RWMutex
	closed  bool

	inbound       chan chat.Event
	sessionEvents chan chat.Event
	sessionDone   chan error
	sessionLive   bool

	close chan bool
}

// NewHub creates a new hub for the channel
func NewHub(logger logrus.FieldLogger, channelID string, store bank.Store, opts blackjack.Options) *Hub {
	return &Hub{
		channelID:   channelID,
		logger:      logger.WithField("channel", channelID),
		store:       store,
		opts:        opts,
		clients:     make(map[*Client]bool),
		inbound:     make(chan chat.Event, 256),
		sessionDone: make(chan error, 1),
		close:       make(chan bool),
	}
}

// StartShift starts the hub run loop
func (h *Hub) StartShift() {
	go h.runLoop()
}

// EndShift terminates the hub run loop. A live session sees a closed event
// stream and aborts.
func (h *Hub) EndShift() {
	h.lock.Lock()
	h.closed = true
	h.lock.Unlock()

	close(h.close)
}

func (h *Hub) runLoop() {
	h.logger.Debug("creating hub run loop")
	for {
		select {
		case ev := <-h.inbound:
			h.broadcast(ev.DisplayName, ev.Text)

			if h.sessionLive {
				select {
				case h.sessionEvents <- ev:
				default:
					h.logger.WithField("actor", ev.ActorID).Warn("session event buffer full; dropping message")
				}
			} else if blackjack.IsStartCommand(h.opts.CommandPrefix, ev.Text) {
				h.startSession()
			}
		case err := <-h.sessionDone:
			h.sessionLive = false
			if err != nil {
				h.logger.WithError(err).Error("blackjack session aborted")
			} else {
				h.logger.Debug("blackjack session ended")
			}
		case <-h.close:
			h.logger.Debug("terminating hub run loop")
			if h.sessionLive {
				close(h.sessionEvents)
			}
			return
		}
	}
}

func (h *Hub) startSession() {
	h.sessionEvents = make(chan chat.Event, 256)
	h.sessionLive = true

	session := blackjack.NewSession(h.logger, h, h.channelID, h.store, h.opts)
	go func() {
		h.sessionDone <- session.Run(context.Background())
	}()
}

// AddClient adds a client to the channel
func (h *Hub) AddClient(client *Client) {
	h.lock.Lock()
	client.hub = h
	h.clients[client] = true
	h.lock.Unlock()

	h.broadcast(systemSender, client.DisplayName+" is here.")
}

// RemoveClient removes a client. Returns true if the hub has no clients left.
func (h *Hub) RemoveClient(client *Client) bool {
	h.lock.Lock()
	delete(h.clients, client)
	empty := len(h.clients) == 0
	h.lock.Unlock()

	if !empty {
		h.broadcast(systemSender, client.DisplayName+" disconnected.")
	}

	return empty
}

// ReceivedMessage turns a client's chat message into an event on the hub
func (h *Hub) ReceivedMessage(client *Client, text string) {
	ev := chat.Event{
		ChannelID:   h.channelID,
		ActorID:     client.ActorID,
		DisplayName: client.DisplayName,
		Text:        text,
	}

	select {
	case h.inbound <- ev:
	default:
		h.logger.WithField("client", client.String()).Warn("inbound buffer full; dropping message")
	}
}

// Events returns the inbound stream for the hosted session
func (h *Hub) Events() <-chan chat.Event {
	return h.sessionEvents
}

// Send delivers table output to every connected client
func (h *Hub) Send(channelID, text string) error {
	h.lock.RLock()
	defer h.lock.RUnlock()

	if h.closed {
		return chat.ErrTransportClosed
	}

	msg := outMessage{
		UUID:      uuid.New().String(),
		ChannelID: channelID,
		From:      systemSender,
		Text:      text,
		Time:      time.Now(),
	}

	for client := range h.clients {
		if !client.Send(msg) {
			h.logger.WithField("client", client.String()).Warn("client send buffer full; dropping message")
		}
	}

	return nil
}

func (h *Hub) broadcast(from, text string) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	if h.closed {
		return
	}

	msg := outMessage{
		UUID:      uuid.New().String(),
		ChannelID: h.channelID,
		From:      from,
		Text:      text,
		Time:      time.Now(),
	}

	for client := range h.clients {
		client.Send(msg)
	}
}
