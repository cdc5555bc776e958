package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/concert-watch-rooms/internal/directory"
	"github.com/iliyamo/concert-watch-rooms/internal/model"
	"github.com/iliyamo/concert-watch-rooms/internal/utils"
)

// InviteComposer receives the invite for every created room.  The
// creator never waits on it; a failed hand-off is logged and the room
// stays created.
type InviteComposer interface {
	Compose(ctx context.Context, inv model.Invite) error
}

// RoomCreator sanitizes creation input, inserts the room and hands the
// invite to the composer.
type RoomCreator struct {
	dir      *directory.Directory
	composer InviteComposer
	timeout  time.Duration
	log      *zap.Logger

	inflight sync.WaitGroup
}

// NewRoomCreator wires a creator.  composer may be nil, in which case
// no invites are emitted.
func NewRoomCreator(dir *directory.Directory, composer InviteComposer, inviteTimeout time.Duration, log *zap.Logger) *RoomCreator {
	if log == nil {
		log = zap.NewNop()
	}
	if inviteTimeout <= 0 {
		inviteTimeout = 5 * time.Second
	}
	return &RoomCreator{dir: dir, composer: composer, timeout: inviteTimeout, log: log}
}

// CreateRoom validates rawName and rawPin, adds the room to sectionID
// and emits its invite.
func (w *RoomCreator) CreateRoom(ctx context.Context, sectionID, rawName, rawPin string) (model.Room, error) {
	if err := ctx.Err(); err != nil {
		return model.Room{}, err
	}
	name := strings.TrimSpace(utils.SanitizeRoomName(rawName))
	if name == "" {
		return model.Room{}, ErrEmptyName
	}
	pin := utils.SanitizePin(rawPin)
	if !utils.IsSubmittablePin(pin) {
		return model.Room{}, ErrPinTooShort
	}
	section, err := w.dir.FindSection(sectionID)
	if err != nil {
		return model.Room{}, err
	}
	room, err := w.dir.AddRoom(section.ID, name, pin)
	if err != nil {
		return model.Room{}, err
	}
	w.log.Info("room created",
		zap.String("room_id", room.ID),
		zap.String("section_id", section.ID),
		zap.String("concert_id", section.ConcertID))

	w.dispatch(w.InviteFor(room, section))
	return room, nil
}

// CreateRoomWithRandomPin is CreateRoom with a generated 4 digit PIN.
func (w *RoomCreator) CreateRoomWithRandomPin(ctx context.Context, sectionID, rawName string) (model.Room, error) {
	pin, err := utils.GenerateRandomPin()
	if err != nil {
		return model.Room{}, err
	}
	return w.CreateRoom(ctx, sectionID, rawName, pin)
}

// Wait blocks until every in-flight invite hand-off has finished.
func (w *RoomCreator) Wait() { w.inflight.Wait() }

// InviteFor builds the invite payload for room, filling the concert
// fields from the catalog when the section's concert is known.
func (w *RoomCreator) InviteFor(room model.Room, section model.RoomSection) model.Invite {
	inv := model.Invite{RoomName: room.Name, PIN: room.PIN, ArtistName: section.Title}
	if cat := w.dir.Catalog(); cat != nil {
		if ev, err := cat.Get(section.ConcertID); err == nil {
			inv.ArtistName = ev.ArtistName
			inv.ConcertDate = ev.ScheduledDate
			inv.ConcertTime = ev.ScheduledTime
			inv.Genre = ev.Genre
		}
	}
	return inv
}

func (w *RoomCreator) dispatch(inv model.Invite) {
	if w.composer == nil {
		return
	}
	w.inflight.Add(1)
	go func() {
		defer w.inflight.Done()
		// detached from the request: the room exists whether or not the invite goes out
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()
		if err := w.composer.Compose(ctx, inv); err != nil {
			w.log.Warn("invite hand-off failed", zap.String("room", inv.RoomName), zap.Error(err))
		}
	}()
}
