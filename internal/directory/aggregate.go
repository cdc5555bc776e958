package directory

import "github.com/iliyamo/concert-watch-rooms/internal/model"

// Summary bundles the aggregate counts shown on the rooms overview.
type Summary struct {
	TotalRooms         int `json:"total_rooms"`
	ActiveRooms        int `json:"active_rooms"`
	ActiveParticipants int `json:"active_participants"`
}

// TotalRoomCount counts every room, active or not.
func TotalRoomCount(sections []model.RoomSection) int {
	n := 0
	for _, s := range sections {
		n += len(s.Rooms)
	}
	return n
}

// ActiveRoomCount counts rooms that are currently active.
func ActiveRoomCount(sections []model.RoomSection) int {
	n := 0
	for _, s := range sections {
		for _, r := range s.Rooms {
			if r.IsActive {
				n++
			}
		}
	}
	return n
}

// TotalActiveParticipants sums participants over active rooms only.
func TotalActiveParticipants(sections []model.RoomSection) int {
	n := 0
	for _, s := range sections {
		for _, r := range s.Rooms {
			if r.IsActive {
				n += r.ParticipantCount
			}
		}
	}
	return n
}

// Summarize computes all aggregates over one snapshot.
func Summarize(sections []model.RoomSection) Summary {
	return Summary{
		TotalRooms:         TotalRoomCount(sections),
		ActiveRooms:        ActiveRoomCount(sections),
		ActiveParticipants: TotalActiveParticipants(sections),
	}
}

// Summary computes the aggregates over a fresh snapshot of d.  Nothing
// is cached; every call reads current state.
func (d *Directory) Summary() Summary {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Summarize(d.snapshotLocked())
}
