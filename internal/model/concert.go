package model

// ConcertEvent is a single entry of the concert catalog.  Events are
// seeded once when the process starts and never change afterwards, so
// values are passed around by copy.
//
// Fields:
//  ID            – unique catalog identifier.
//  ArtistName    – headlining artist.
//  ScheduledDate – human readable date (e.g. "March 19th 2021").
//  ScheduledTime – human readable time including zone (e.g. "12:00 PM PST").
//  Genre         – musical genre, may be empty.
//  Price         – ticket price label; "Free" when not specified.
//  Description   – free text blurb shown on the concert card.
type ConcertEvent struct {
	ID            string `json:"id"`
	ArtistName    string `json:"artist_name"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Genre         string `json:"genre,omitempty"`
	Price         string `json:"price"`
	Description   string `json:"description,omitempty"`
}

// DefaultPrice is used when a concert does not carry an explicit price.
const DefaultPrice = "Free"
