package model

// Invite is the payload handed to the external invite composer after a
// room is created.  Concert fields are optional and left empty when the
// owning concert is unknown.
type Invite struct {
	RoomName    string `json:"room_name"`
	PIN         string `json:"pin"`
	ArtistName  string `json:"artist_name,omitempty"`
	ConcertDate string `json:"concert_date,omitempty"`
	ConcertTime string `json:"concert_time,omitempty"`
	Genre       string `json:"genre,omitempty"`
}
