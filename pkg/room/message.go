package room

import "time"

// outMessage is the JSON envelope sent to connected chat clients
type outMessage struct {
	UUID      string    `json:"uuid"`
	ChannelID string    `json:"channelId"`
	From      string    `json:"from"`
	Text      string    `json:"text"`
	Time      time.Time `json:"time"`
}
