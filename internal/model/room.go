package model

import "time"

// Room is a named, PIN protected membership unit nested under a
// concert's section.  Rooms are never deleted; deactivation is the
// terminal observable state.
//
// Fields:
//  ID               – identifier, unique within its section.
//  Name             – free text name, 1 to 30 characters.
//  PIN              – 4 to 6 digit access code.
//  IsActive         – whether the room is currently open.
//  ParticipantCount – number of joined participants; always 0 when inactive.
//  CreatedAt        – creation timestamp.
//  LastActivity     – last join/leave/activation time; nil iff inactive.
type Room struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	PIN              string     `json:"-"`
	IsActive         bool       `json:"is_active"`
	ParticipantCount int        `json:"participant_count"`
	CreatedAt        time.Time  `json:"created_at"`
	LastActivity     *time.Time `json:"last_activity,omitempty"`
}

// Clone returns a copy that shares no memory with r.
func (r Room) Clone() Room {
	if r.LastActivity != nil {
		t := *r.LastActivity
		r.LastActivity = &t
	}
	return r
}

// RoomSection groups the rooms created for one concert.  The Rooms
// slice keeps insertion order, which is also the display order.
//
// Fields:
//  ID        – unique section identifier.
//  ConcertID – owning ConcertEvent id.
//  Title     – artist name copied from the concert at creation.
//  Rooms     – member rooms in insertion order.
//  CreatedAt – creation timestamp.
//  IsActive  – section level flag, independent of member rooms.
type RoomSection struct {
	ID        string    `json:"id"`
	ConcertID string    `json:"concert_id"`
	Title     string    `json:"title"`
	Rooms     []Room    `json:"rooms"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// Clone deep copies the section including its rooms.
func (s RoomSection) Clone() RoomSection {
	rooms := make([]Room, len(s.Rooms))
	for i, r := range s.Rooms {
		rooms[i] = r.Clone()
	}
	s.Rooms = rooms
	return s
}
