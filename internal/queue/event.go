// Package queue moves room invites through RabbitMQ: the publisher
// hands each new room's invite to the broker and the consumer renders
// it into share text.
package queue

import (
	"time"

	"github.com/iliyamo/concert-watch-rooms/internal/model"
)

// RoomInviteEvent is published when a room is created.  It carries the
// whole invite so consumers never need to query the directory.
type RoomInviteEvent struct {
	RoomName    string `json:"room_name"`
	PIN         string `json:"pin"`
	ArtistName  string `json:"artist_name,omitempty"`
	ConcertDate string `json:"concert_date,omitempty"`
	ConcertTime string `json:"concert_time,omitempty"`
	Genre       string `json:"genre,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// NewRoomInviteEvent stamps inv with the creation time.
func NewRoomInviteEvent(inv model.Invite, at time.Time) RoomInviteEvent {
	return RoomInviteEvent{
		RoomName:    inv.RoomName,
		PIN:         inv.PIN,
		ArtistName:  inv.ArtistName,
		ConcertDate: inv.ConcertDate,
		ConcertTime: inv.ConcertTime,
		Genre:       inv.Genre,
		CreatedAt:   at.UTC().Format(time.RFC3339),
	}
}

// Invite returns the payload without the envelope fields.
func (e RoomInviteEvent) Invite() model.Invite {
	return model.Invite{
		RoomName:    e.RoomName,
		PIN:         e.PIN,
		ArtistName:  e.ArtistName,
		ConcertDate: e.ConcertDate,
		ConcertTime: e.ConcertTime,
		Genre:       e.Genre,
	}
}
