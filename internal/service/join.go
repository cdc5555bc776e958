package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/concert-watch-rooms/internal/directory"
	"github.com/iliyamo/concert-watch-rooms/internal/model"
	"github.com/iliyamo/concert-watch-rooms/internal/utils"
	"github.com/iliyamo/concert-watch-rooms/internal/verifier"
)

// JoinOutcome describes a successful join.  MemberID identifies the
// admission; it is the only handle that can release the seat again.
type JoinOutcome struct {
	MemberID         string
	RoomID           string
	RoomName         string
	SectionID        string
	Identity         string
	JoinedAt         time.Time
	ParticipantCount int
}

// JoinGate runs the join protocol: validate, resolve the room, verify
// the credential, then record the participant.  Each call is
// independent; the gate keeps no per-room state.
type JoinGate struct {
	dir      *directory.Directory
	verifier verifier.CredentialVerifier
	timeout  time.Duration
	log      *zap.Logger
}

// NewJoinGate wires a gate.  timeout bounds each verification.
func NewJoinGate(dir *directory.Directory, v verifier.CredentialVerifier, timeout time.Duration, log *zap.Logger) *JoinGate {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &JoinGate{dir: dir, verifier: v, timeout: timeout, log: log}
}

// Join admits identity into the room called roomName.  The room is
// resolved before the verifier is consulted so unknown rooms are
// refused without a verification round trip.  No directory state
// changes unless verification succeeds and ctx is still live.
func (g *JoinGate) Join(ctx context.Context, roomName, identity, credential string) (JoinOutcome, error) {
	identity = strings.TrimSpace(identity)
	if err := validateJoin(roomName, identity, credential); err != nil {
		return JoinOutcome{}, err
	}

	room, section, err := g.dir.FindRoomByName(roomName)
	if err != nil {
		return JoinOutcome{}, err
	}
	if !room.IsActive {
		return JoinOutcome{}, ErrRoomInactive
	}

	vi, err := g.verify(verifier.WithExpectedCredential(ctx, room.PIN), identity, credential)
	if err != nil {
		g.log.Info("join refused",
			zap.String("room_id", room.ID),
			zap.String("identity", identity),
			zap.Error(err))
		return JoinOutcome{}, err
	}
	// the caller may have given up while verification was running
	if err := ctx.Err(); err != nil {
		return JoinOutcome{}, verifier.Classify(err)
	}

	memberID := uuid.New().String()
	updated, err := g.dir.AdmitParticipant(room.ID, memberID)
	if err != nil {
		return JoinOutcome{}, err
	}
	out := JoinOutcome{
		MemberID:         memberID,
		RoomID:           updated.ID,
		RoomName:         updated.Name,
		SectionID:        section.ID,
		Identity:         vi.Identity,
		JoinedAt:         *updated.LastActivity,
		ParticipantCount: updated.ParticipantCount,
	}
	g.log.Info("room joined",
		zap.String("room_id", out.RoomID),
		zap.String("identity", out.Identity),
		zap.Int("participants", out.ParticipantCount))
	return out, nil
}

// Leave releases the seat taken by the admission memberID.  A seat can
// be released once; repeated or unknown ids fail with ErrNotMember.
func (g *JoinGate) Leave(ctx context.Context, roomID, memberID string) (model.Room, error) {
	if err := ctx.Err(); err != nil {
		return model.Room{}, err
	}
	return g.dir.ReleaseParticipant(roomID, memberID)
}

type verifyResult struct {
	vi  verifier.VerifiedIdentity
	err error
}

// verify runs the verifier under the gate timeout.  The call runs in
// its own goroutine so a verifier that ignores its context still
// cannot hold the caller past the deadline.
func (g *JoinGate) verify(ctx context.Context, identity, credential string) (verifier.VerifiedIdentity, error) {
	vctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	done := make(chan verifyResult, 1)
	go func() {
		vi, err := g.verifier.Verify(vctx, identity, credential)
		done <- verifyResult{vi: vi, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return verifier.VerifiedIdentity{}, verifier.Classify(res.err)
		}
		if res.vi.Identity == "" {
			res.vi.Identity = identity
		}
		return res.vi, nil
	case <-vctx.Done():
		return verifier.VerifiedIdentity{}, verifier.Classify(vctx.Err())
	}
}

func validateJoin(roomName, identity, credential string) error {
	if utils.IsBlank(roomName) {
		return &InvalidInputError{Field: FieldRoomName, Reason: "room name is required"}
	}
	if identity == "" {
		return &InvalidInputError{Field: FieldIdentity, Reason: "email is required"}
	}
	if !verifier.ValidIdentity(identity) {
		return &InvalidInputError{Field: FieldIdentity, Reason: "please enter a valid email address"}
	}
	if utils.IsBlank(credential) {
		return &InvalidInputError{Field: FieldPin, Reason: "pin is required"}
	}
	if utf8.RuneCountInString(credential) < utils.MinPinLen {
		return &InvalidInputError{Field: FieldPin, Reason: "pin must be at least 4 characters"}
	}
	return nil
}
