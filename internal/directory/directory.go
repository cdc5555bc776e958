package directory

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/concert-watch-rooms/internal/catalog"
	"github.com/iliyamo/concert-watch-rooms/internal/model"
	"github.com/iliyamo/concert-watch-rooms/internal/utils"
)

// Directory is the in-memory collection of sections and rooms.  All
// writers take the write lock for the whole read-modify-write; readers
// take the read lock and receive deep copies, so a reader never sees a
// half applied mutation.
type Directory struct {
	mu       sync.RWMutex
	sections []*model.RoomSection
	members  map[string]map[string]struct{} // room id -> admitted member ids
	catalog  *catalog.Catalog
	now      func() time.Time
}

// Option customizes a Directory.
type Option func(*Directory)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// New returns an empty directory.  cat is used to resolve concert
// metadata for new sections; a nil catalog skips the check.
func New(cat *catalog.Catalog, opts ...Option) *Directory {
	d := &Directory{
		catalog: cat,
		members: map[string]map[string]struct{}{},
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Catalog returns the catalog the directory cross-references.
func (d *Directory) Catalog() *catalog.Catalog { return d.catalog }

// ListSections returns a snapshot of all sections in insertion order.
func (d *Directory) ListSections() []model.RoomSection {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshotLocked()
}

func (d *Directory) snapshotLocked() []model.RoomSection {
	out := make([]model.RoomSection, len(d.sections))
	for i, s := range d.sections {
		out[i] = s.Clone()
	}
	return out
}

// FindSection returns a copy of the section with the given id.
func (d *Directory) FindSection(sectionID string) (model.RoomSection, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := d.sectionLocked(sectionID)
	if s == nil {
		return model.RoomSection{}, ErrSectionNotFound
	}
	return s.Clone(), nil
}

// FindRoom scans every section for roomID.
func (d *Directory) FindRoom(roomID string) (model.Room, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r := d.roomLocked(roomID)
	if r == nil {
		return model.Room{}, ErrRoomNotFound
	}
	return r.Clone(), nil
}

// SectionOf returns a copy of the section that owns roomID.
func (d *Directory) SectionOf(roomID string) (model.RoomSection, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.sections {
		for i := range s.Rooms {
			if s.Rooms[i].ID == roomID {
				return s.Clone(), nil
			}
		}
	}
	return model.RoomSection{}, ErrRoomNotFound
}

// FindRoomByName resolves a room by name, ignoring surrounding spaces
// and case.  When several rooms share the name, the first active one in
// display order wins, falling back to the first match.  The owning
// section is returned alongside the room.
func (d *Directory) FindRoomByName(name string) (model.Room, model.RoomSection, error) {
	want := strings.TrimSpace(name)
	if want == "" {
		return model.Room{}, model.RoomSection{}, ErrRoomNotFound
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	var (
		first    *model.Room
		firstSec *model.RoomSection
	)
	for _, s := range d.sections {
		for i := range s.Rooms {
			r := &s.Rooms[i]
			if !strings.EqualFold(strings.TrimSpace(r.Name), want) {
				continue
			}
			if r.IsActive {
				return r.Clone(), s.Clone(), nil
			}
			if first == nil {
				first, firstSec = r, s
			}
		}
	}
	if first == nil {
		return model.Room{}, model.RoomSection{}, ErrRoomNotFound
	}
	return first.Clone(), firstSec.Clone(), nil
}

// AddSection creates the room grouping for a concert.  An empty id gets
// a generated one.  The section title is the concert's artist name.
func (d *Directory) AddSection(id, concertID string) (model.RoomSection, error) {
	title := ""
	if d.catalog != nil {
		ev, err := d.catalog.Get(concertID)
		if err != nil {
			return model.RoomSection{}, err
		}
		title = ev.ArtistName
	}
	if id == "" {
		id = "section-" + uuid.New().String()
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sectionLocked(id) != nil {
		return model.RoomSection{}, ErrSectionExists
	}
	s := &model.RoomSection{
		ID:        id,
		ConcertID: concertID,
		Title:     title,
		Rooms:     []model.Room{},
		CreatedAt: d.now(),
		IsActive:  true,
	}
	d.sections = append(d.sections, s)
	return s.Clone(), nil
}

// AddRoom appends a new active room with zero participants to a section.
// Name and PIN are checked again here even though callers are expected
// to have sanitized them.
func (d *Directory) AddRoom(sectionID, name, pin string) (model.Room, error) {
	if err := checkName(name); err != nil {
		return model.Room{}, err
	}
	if err := checkPin(pin); err != nil {
		return model.Room{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.sectionLocked(sectionID)
	if s == nil {
		return model.Room{}, ErrSectionNotFound
	}
	now := d.now()
	r := model.Room{
		ID:           "room-" + uuid.New().String(),
		Name:         name,
		PIN:          pin,
		IsActive:     true,
		CreatedAt:    now,
		LastActivity: &now,
	}
	s.Rooms = append(s.Rooms, r)
	return r.Clone(), nil
}

// SetRoomActive opens or closes a room.  Closing resets the participant
// count and clears LastActivity; reopening stamps LastActivity and
// leaves the count as it is, which after a close is zero.
func (d *Directory) SetRoomActive(roomID string, active bool) (model.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.roomLocked(roomID)
	if r == nil {
		return model.Room{}, ErrRoomNotFound
	}
	r.IsActive = active
	if active {
		now := d.now()
		r.LastActivity = &now
	} else {
		r.ParticipantCount = 0
		r.LastActivity = nil
		delete(d.members, roomID)
	}
	return r.Clone(), nil
}

// IncrementParticipant records a join.  Inactive rooms are rejected so
// their count stays at zero.
func (d *Directory) IncrementParticipant(roomID string) (model.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.roomLocked(roomID)
	if r == nil {
		return model.Room{}, ErrRoomNotFound
	}
	return d.incrementLocked(r)
}

func (d *Directory) incrementLocked(r *model.Room) (model.Room, error) {
	if !r.IsActive {
		return r.Clone(), ErrRoomInactive
	}
	r.ParticipantCount++
	now := d.now()
	r.LastActivity = &now
	return r.Clone(), nil
}

// DecrementParticipant records a leave, clamping at zero.  Inactive
// rooms are returned unchanged.
func (d *Directory) DecrementParticipant(roomID string) (model.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.roomLocked(roomID)
	if r == nil {
		return model.Room{}, ErrRoomNotFound
	}
	return d.decrementLocked(r), nil
}

func (d *Directory) decrementLocked(r *model.Room) model.Room {
	if !r.IsActive {
		return r.Clone()
	}
	if r.ParticipantCount > 0 {
		r.ParticipantCount--
	}
	now := d.now()
	r.LastActivity = &now
	return r.Clone()
}

func (d *Directory) sectionLocked(id string) *model.RoomSection {
	for _, s := range d.sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// roomLocked returns a pointer into the owning section's room slice.  The
// pointer is only valid while the lock is held.
func (d *Directory) roomLocked(roomID string) *model.Room {
	for _, s := range d.sections {
		for i := range s.Rooms {
			if s.Rooms[i].ID == roomID {
				return &s.Rooms[i]
			}
		}
	}
	return nil
}

func checkName(name string) error {
	if utils.IsBlank(name) {
		return ErrEmptyName
	}
	if len([]rune(name)) > utils.MaxRoomNameLen {
		return ErrNameTooLong
	}
	return nil
}

func checkPin(pin string) error {
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPin
		}
	}
	if len(pin) < utils.MinPinLen {
		return ErrPinTooShort
	}
	if len(pin) > utils.MaxPinLen {
		return ErrInvalidPin
	}
	return nil
}
