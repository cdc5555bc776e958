package catalog

import (
	"strings"

	"github.com/iliyamo/concert-watch-rooms/internal/model"
)

// ParseInfo reads a concert info block made of "Key: value" lines and
// returns the event it describes.  Keys are matched case-insensitively;
// lines without a colon and unknown keys are ignored.  The price
// defaults to model.DefaultPrice when missing or empty.
func ParseInfo(id, info string) model.ConcertEvent {
	fields := map[string]string{}
	for _, line := range strings.Split(info, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:idx]))
		fields[key] = strings.TrimSpace(line[idx+1:])
	}
	ev := model.ConcertEvent{
		ID:            id,
		ArtistName:    fields["artist"],
		ScheduledDate: fields["date"],
		ScheduledTime: fields["time"],
		Genre:         fields["genre"],
		Price:         fields["price"],
		Description:   fields["description"],
	}
	if ev.Price == "" {
		ev.Price = model.DefaultPrice
	}
	return ev
}

// infoText renders an event back into the searchable info form.
func infoText(ev model.ConcertEvent) string {
	var b strings.Builder
	b.WriteString("Artist: " + ev.ArtistName + "\n")
	b.WriteString("Date: " + ev.ScheduledDate + "\n")
	b.WriteString("Time: " + ev.ScheduledTime + "\n")
	b.WriteString("Price: " + ev.Price + "\n")
	b.WriteString("Genre: " + ev.Genre + "\n")
	b.WriteString("Description: " + ev.Description)
	return b.String()
}
