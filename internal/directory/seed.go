package directory

import (
	"fmt"
	"time"

	"github.com/iliyamo/concert-watch-rooms/internal/model"
)

type seedRoom struct {
	id, name, pin string
	participants  int
	active        bool
}

type seedSection struct {
	id, concertID string
	createdAt     time.Time
	rooms         []seedRoom
}

var demoSections = []seedSection{
	{
		id: "room-section-1", concertID: "1", createdAt: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		rooms: []seedRoom{
			{"room-1-1", "Lit Friyay Room", "1234", 12, true},
			{"room-1-2", "Lindsay's Room", "5678", 8, true},
			{"room-1-3", "Barbz Unite 💕", "9101", 24, true},
		},
	},
	{
		id: "room-section-2", concertID: "11", createdAt: time.Date(2024, 11, 28, 0, 0, 0, 0, time.UTC),
		rooms: []seedRoom{
			{"room-2-1", "Blonde Vibes", "1121", 15, true},
			{"room-2-2", "Ocean Gang 🌊", "3141", 6, true},
			{"room-2-3", "Late Night Listening", "5161", 3, false},
		},
	},
	{
		id: "room-section-3", concertID: "3", createdAt: time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC),
		rooms: []seedRoom{
			{"room-3-1", "Swifties Paradise", "7181", 31, true},
			{"room-3-2", "Folklore Session", "9202", 18, true},
		},
	},
}

// SeedDemo loads the demo sections and rooms into an empty directory.
// Seeded rooms keep their fixed ids so links shared during demos stay
// stable.  Inactive seeds always start with zero participants.
func (d *Directory) SeedDemo() error {
	for _, ss := range demoSections {
		if _, err := d.AddSection(ss.id, ss.concertID); err != nil {
			return fmt.Errorf("seed section %s: %w", ss.id, err)
		}
		d.mu.Lock()
		s := d.sectionLocked(ss.id)
		s.CreatedAt = ss.createdAt
		now := d.now()
		for i, sr := range ss.rooms {
			if err := checkName(sr.name); err != nil {
				d.mu.Unlock()
				return fmt.Errorf("seed room %s: %w", sr.id, err)
			}
			if err := checkPin(sr.pin); err != nil {
				d.mu.Unlock()
				return fmt.Errorf("seed room %s: %w", sr.id, err)
			}
			r := model.Room{
				ID:        sr.id,
				Name:      sr.name,
				PIN:       sr.pin,
				IsActive:  sr.active,
				CreatedAt: now.Add(-time.Duration(24*(i+1)) * time.Hour),
			}
			if sr.active {
				r.ParticipantCount = sr.participants
				seen := now.Add(-time.Duration(10*(i+1)) * time.Minute)
				r.LastActivity = &seen
			}
			s.Rooms = append(s.Rooms, r)
		}
		d.mu.Unlock()
	}
	return nil
}
