package room

import (
	"github.com/sirupsen/logrus"

	"chatjack-server/pkg/bank"
	"chatjack-server/pkg/blackjack"
)

// PitBoss is responsible for dispatching chat clients to channel hubs
type PitBoss struct {
	store bank.Store
	opts  blackjack.Options

	hubs       map[string]*Hub
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(store bank.Store, opts blackjack.Options) *PitBoss {
	return &PitBoss{
		store:      store,
		opts:       opts,
		hubs:       make(map[string]*Hub),
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
			hub, found := p.hubs[client.ChannelID]
			if !found {
				hub = NewHub(logrus.StandardLogger(), client.ChannelID, p.store, p.opts)
				hub.StartShift()
				p.hubs[client.ChannelID] = hub
			}

			hub.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			hub, found := p.hubs[client.ChannelID]
			if !found {
				logrus.WithField("channel", client.ChannelID).WithField("type", "exception").Error("hub not found")
				continue
			}

			if hub.RemoveClient(client) {
				hub.EndShift()
				delete(p.hubs, client.ChannelID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
