package directory

import "github.com/iliyamo/concert-watch-rooms/internal/model"

// AdmitParticipant counts a join and records memberID as the holder of
// that seat.  Admitting an id twice is rejected so every seat has
// exactly one holder.
func (d *Directory) AdmitParticipant(roomID, memberID string) (model.Room, error) {
	if memberID == "" {
		return model.Room{}, ErrNotMember
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.roomLocked(roomID)
	if r == nil {
		return model.Room{}, ErrRoomNotFound
	}
	seats := d.members[roomID]
	if _, dup := seats[memberID]; dup {
		return r.Clone(), ErrNotMember
	}
	room, err := d.incrementLocked(r)
	if err != nil {
		return room, err
	}
	if seats == nil {
		seats = map[string]struct{}{}
		d.members[roomID] = seats
	}
	seats[memberID] = struct{}{}
	return room, nil
}

// ReleaseParticipant gives back the seat held by memberID.  Each
// admission can be released once; closing a room releases every seat.
func (d *Directory) ReleaseParticipant(roomID, memberID string) (model.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.roomLocked(roomID)
	if r == nil {
		return model.Room{}, ErrRoomNotFound
	}
	seats := d.members[roomID]
	if _, ok := seats[memberID]; !ok {
		return r.Clone(), ErrNotMember
	}
	delete(seats, memberID)
	return d.decrementLocked(r), nil
}

// IsMember reports whether memberID currently holds a seat in roomID.
func (d *Directory) IsMember(roomID, memberID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.members[roomID][memberID]
	return ok
}
