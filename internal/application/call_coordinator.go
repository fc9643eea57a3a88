package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
	"go.uber.org/zap"
)

// CallCoordinator drives both ends of a call invitation. The doctor starts a
// call; the patient discovers the invitation by polling and answers it.
// Room state is never changed locally: the next poll reports the outcome.
type CallCoordinator struct {
	api      ports.MedicappAPI
	state    *ClientState
	renderer ports.Renderer
	surface  ports.CallSurface
	rooms    RoomsRefresher
	logger   *zap.Logger

	mu       sync.Mutex
	prompted int
}

var _ InvitationObserver = (*CallCoordinator)(nil)

func NewCallCoordinator(api ports.MedicappAPI, state *ClientState, renderer ports.Renderer, surface ports.CallSurface, rooms RoomsRefresher, logger *zap.Logger) *CallCoordinator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CallCoordinator{
		api:      api,
		state:    state,
		renderer: renderer,
		surface:  surface,
		rooms:    rooms,
		logger:   logger,
	}
}

// StartCall invites the room's patient, refreshes the doctor's rooms and
// opens the call surface for the room.
func (c *CallCoordinator) StartCall(ctx context.Context, roomID int) error {
	if _, err := c.api.StartCall(ctx, roomID); err != nil {
		c.alert("Could not start the call", err)
		return fmt.Errorf("start call in room %d: %w", roomID, err)
	}
	c.logger.Info("call started", zap.Int("room_id", roomID))

	if _, err := c.rooms.RefreshRooms(ctx); err != nil {
		c.logger.Warn("refresh rooms after starting call", zap.Error(err))
	}

	if err := c.surface.Open(ctx, domain.CallRoomName(roomID)); err != nil {
		c.alert("Could not open the video call", err)
		return fmt.Errorf("open call surface: %w", err)
	}

	return nil
}

// ObserveRooms records the first invited room and prompts once per
// invitation episode. It never calls the server.
func (c *CallCoordinator) ObserveRooms(rooms []domain.Room) {
	invited, ok := domain.FirstInvitation(rooms)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !ok {
		if c.prompted != 0 {
			c.logger.Debug("invitation episode over", zap.Int("room_id", c.prompted))
			c.prompted = 0
			c.state.SetInvitedRoomID(0)
			c.renderer.DismissInvitation()
		}
		return
	}

	c.state.SetInvitedRoomID(invited.ID)
	if c.prompted == invited.ID {
		return
	}
	c.prompted = invited.ID
	c.logger.Info("call invitation received", zap.Int("room_id", invited.ID))
	c.renderer.ShowInvitation(invited.ID)
}

// Respond answers the pending invitation. On failure the invitation stays
// pending so the patient can try again.
func (c *CallCoordinator) Respond(ctx context.Context, accept bool) error {
	roomID := c.state.InvitedRoomID()
	if roomID == 0 {
		return domain.ErrNoInvitation
	}

	if _, err := c.api.RespondCall(ctx, roomID, accept); err != nil {
		c.alert("Could not answer the call", err)
		return fmt.Errorf("respond to call in room %d: %w", roomID, err)
	}
	c.logger.Info("call answered", zap.Int("room_id", roomID), zap.Bool("accept", accept))

	var openErr error
	if accept {
		if err := c.surface.Open(ctx, domain.CallRoomName(roomID)); err != nil {
			c.alert("Could not open the video call", err)
			openErr = fmt.Errorf("open call surface: %w", err)
		}
	}
	c.renderer.DismissInvitation()

	if _, err := c.rooms.RefreshRooms(ctx); err != nil {
		c.logger.Warn("refresh rooms after answering call", zap.Error(err))
	}

	return openErr
}

func (c *CallCoordinator) alert(prefix string, err error) {
	if errors.Is(err, domain.ErrSessionExpired) {
		c.renderer.Alert(err.Error())
		return
	}
	c.renderer.Alert(prefix + ": " + err.Error())
}
