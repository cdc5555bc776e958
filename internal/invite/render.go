// Package invite renders the share texts sent to friends: room
// invites, concert announcements and the generic app pitch.
package invite

import (
	"strings"

	"github.com/iliyamo/concert-watch-rooms/internal/model"
)

// AppLinkLine is appended to messages when the app link is requested.
const AppLinkLine = "\n\n📱 Get audiYO: https://audiyo.app"

// Kind selects the message template.
type Kind string

const (
	KindRoom    Kind = "room"
	KindConcert Kind = "concert"
	KindGeneral Kind = "general"
)

// Message is a rendered share text with its title.
type Message struct {
	Title string
	Body  string
}

// RoomMessage renders the invite for a freshly created room.  Concert
// lines are only included when the payload carries them.
func RoomMessage(inv model.Invite, appLink bool) Message {
	var b strings.Builder
	b.WriteString("🎵 Join me for an epic concert experience!\n\n")
	line(&b, "🎤 Artist: ", inv.ArtistName)
	line(&b, "🎼 Genre: ", inv.Genre)
	line(&b, "📅 Date: ", inv.ConcertDate)
	line(&b, "⏰ Time: ", inv.ConcertTime)
	b.WriteString("\n🏠 Room: " + inv.RoomName + "\n")
	b.WriteString("🔐 Pin: " + inv.PIN + "\n")
	b.WriteString("\nDownload audiYO and let's experience the music together! 🚀")
	return finish("Join "+inv.RoomName+" on audiYO", b.String(), appLink)
}

// ConcertMessage renders an announcement for a catalog concert.  Date
// and time are only shown when both are known.
func ConcertMessage(ev model.ConcertEvent, appLink bool) Message {
	var b strings.Builder
	b.WriteString("🎉 Exciting concert coming up on audiYO!\n\n")
	if ev.ArtistName != "" {
		b.WriteString("🎤 " + ev.ArtistName + " is performing live!\n")
	}
	line(&b, "🎼 Genre: ", ev.Genre)
	if ev.ScheduledDate != "" && ev.ScheduledTime != "" {
		b.WriteString("📅 " + ev.ScheduledDate + " at " + ev.ScheduledTime + "\n")
	}
	b.WriteString("\nJoin me for an immersive concert experience like never before! 🎵")
	return finish("Check out audiYO", b.String(), appLink)
}

// GeneralMessage renders the generic app pitch.
func GeneralMessage(appLink bool) Message {
	body := "🎵 Check out audiYO - the future of concert experiences!\n\n" +
		"Experience live concerts with friends in virtual rooms. " +
		"Join group listening sessions, interact with performers, and " +
		"connect with music lovers worldwide! 🌎\n\n" +
		"Download now and let's rock together! 🚀"
	return finish("Check out audiYO", body, appLink)
}

func line(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label + value + "\n")
}

func finish(title, body string, appLink bool) Message {
	if appLink {
		body += AppLinkLine
	}
	return Message{Title: title, Body: body}
}
