package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
	"go.uber.org/zap"
)

const DefaultPollInterval = 4 * time.Second

// TickerFunc starts a periodic ticker and returns its channel and stop func.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func SystemTicker(d time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(d)
	return ticker.C, ticker.Stop
}

// InvitationObserver is told about every fresh patient room snapshot.
type InvitationObserver interface {
	ObserveRooms(rooms []domain.Room)
}

// RoomsRefresher reloads the caller's room list on demand.
type RoomsRefresher interface {
	RefreshRooms(ctx context.Context) ([]domain.Room, error)
}

type SyncOptions struct {
	Interval time.Duration
	Ticker   TickerFunc
	Logger   *zap.Logger
}

// SyncEngine keeps the open room's messages and the room list fresh by
// polling. At most one room subscription exists at a time.
type SyncEngine struct {
	api      ports.MedicappAPI
	state    *ClientState
	renderer ports.Renderer
	interval time.Duration
	ticker   TickerFunc
	logger   *zap.Logger

	mu         sync.Mutex
	generation uint64
	activeRoom int
	cancel     context.CancelFunc
	loopDone   chan struct{}
	observer   InvitationObserver
}

var _ RoomsRefresher = (*SyncEngine)(nil)

func NewSyncEngine(api ports.MedicappAPI, state *ClientState, renderer ports.Renderer, opts SyncOptions) *SyncEngine {
	e := &SyncEngine{
		api:      api,
		state:    state,
		renderer: renderer,
		interval: opts.Interval,
		ticker:   opts.Ticker,
		logger:   opts.Logger,
	}
	if e.interval <= 0 {
		e.interval = DefaultPollInterval
	}
	if e.ticker == nil {
		e.ticker = SystemTicker
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}

	return e
}

// ObserveInvitations registers the component fed with patient room lists.
func (e *SyncEngine) ObserveInvitations(observer InvitationObserver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observer = observer
}

// OpenRoom makes room the current room, replacing any previous
// subscription, fetches its messages right away and starts polling.
func (e *SyncEngine) OpenRoom(ctx context.Context, room domain.Room) error {
	if room.ID <= 0 {
		return fmt.Errorf("open room %d: %w", room.ID, domain.ErrRoomNotFound)
	}

	e.mu.Lock()
	e.cancelLocked()
	e.generation++
	generation := e.generation
	e.activeRoom = room.ID
	loopCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	done := make(chan struct{})
	e.loopDone = done
	e.state.SetCurrentRoom(room)
	e.state.SetMessages(nil)
	e.mu.Unlock()

	e.logger.Debug("room subscription opened", zap.Int("room_id", room.ID), zap.Uint64("generation", generation))

	e.syncMessages(ctx, generation, room.ID)
	go e.loop(loopCtx, ctx, generation, room.ID, done)

	return nil
}

// CloseRoom cancels the subscription and forgets the current room. Calling
// it with nothing open is a no-op.
func (e *SyncEngine) CloseRoom() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.activeRoom == 0 && e.cancel == nil {
		return
	}
	e.cancelLocked()
	e.generation++
	e.activeRoom = 0
	e.state.ClearCurrentRoom()
}

// ResetSelection drops the chat selection and re-renders the thread list
// without an active entry.
func (e *SyncEngine) ResetSelection() {
	e.CloseRoom()

	user, ok := e.state.User()
	if !ok {
		return
	}
	e.renderer.RenderThreads(domain.BuildThreads(e.state.Rooms(user.Role), user.Role, 0))
}

// Stop cancels the subscription and waits for the polling loop to exit.
// In-flight ticks finish on their own and render nothing.
func (e *SyncEngine) Stop() {
	e.mu.Lock()
	done := e.loopDone
	e.mu.Unlock()

	e.CloseRoom()
	if done != nil {
		<-done
	}
}

// Active returns the subscribed room id, or zero.
func (e *SyncEngine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeRoom
}

// SyncNow runs one tick for the open room in the caller's goroutine, e.g.
// right after sending a message.
func (e *SyncEngine) SyncNow(ctx context.Context) {
	e.mu.Lock()
	generation, roomID := e.generation, e.activeRoom
	e.mu.Unlock()

	if roomID == 0 {
		return
	}
	e.tick(ctx, generation, roomID)
}

// RefreshRooms reloads the room list for the signed-in role, renders it and
// feeds patient lists to the invitation observer.
func (e *SyncEngine) RefreshRooms(ctx context.Context) ([]domain.Room, error) {
	return e.refreshRooms(ctx, 0)
}

func (e *SyncEngine) loop(loopCtx context.Context, requestCtx context.Context, generation uint64, roomID int, done chan struct{}) {
	defer close(done)

	ticks, stop := e.ticker(e.interval)
	defer stop()

	for {
		select {
		case <-loopCtx.Done():
			return
		case <-ticks:
			if !e.current(generation) {
				return
			}
			go e.tick(requestCtx, generation, roomID)
		}
	}
}

func (e *SyncEngine) tick(ctx context.Context, generation uint64, roomID int) {
	e.syncMessages(ctx, generation, roomID)
	if !e.current(generation) {
		return
	}
	if _, err := e.refreshRooms(ctx, generation); err != nil {
		e.logger.Debug("room poll failed", zap.Int("room_id", roomID), zap.Error(err))
	}
}

func (e *SyncEngine) syncMessages(ctx context.Context, generation uint64, roomID int) {
	if !e.current(generation) {
		return
	}

	messages, err := e.api.Messages(ctx, roomID)
	if err != nil {
		e.logPollError("message poll failed", roomID, err)
		return
	}
	if !e.current(generation) {
		return
	}

	e.state.SetMessages(messages)
	room, ok := e.state.CurrentRoom()
	if !ok {
		return
	}
	user, _ := e.state.User()
	e.renderer.RenderMessages(room, messages, user)
}

// refreshRooms loads the room list. A non-zero generation ties the call to
// a subscription: its results are dropped once that subscription is gone.
func (e *SyncEngine) refreshRooms(ctx context.Context, generation uint64) ([]domain.Room, error) {
	user, ok := e.state.User()
	if !ok {
		return nil, domain.ErrNoSession
	}

	var (
		rooms []domain.Room
		err   error
	)
	if user.IsDoctor() {
		rooms, err = e.api.DoctorRooms(ctx)
	} else {
		rooms, err = e.api.PatientRooms(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	if generation != 0 && !e.current(generation) {
		return rooms, nil
	}

	previous, changed := e.state.SetRooms(user.Role, rooms)
	e.warnIllegalTransitions(previous, rooms)
	if changed {
		e.renderer.RenderRooms(user.Role, rooms)
	}

	if user.Role == domain.RolePatient {
		e.mu.Lock()
		observer := e.observer
		e.mu.Unlock()
		if observer != nil {
			observer.ObserveRooms(rooms)
		}
	}

	currentID := 0
	if room, ok := e.state.CurrentRoom(); ok {
		currentID = room.ID
	}
	e.renderer.RenderThreads(domain.BuildThreads(rooms, user.Role, currentID))

	return rooms, nil
}

func (e *SyncEngine) warnIllegalTransitions(previous, rooms []domain.Room) {
	for _, room := range rooms {
		old, ok := domain.FindRoom(previous, room.ID)
		if !ok || old.CallStatus.CanTransition(room.CallStatus) {
			continue
		}
		e.logger.Warn("unexpected call status transition",
			zap.Int("room_id", room.ID),
			zap.String("from", string(old.CallStatus.Normalize())),
			zap.String("to", string(room.CallStatus.Normalize())),
		)
	}
}

func (e *SyncEngine) current(generation uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation == generation && e.activeRoom != 0
}

func (e *SyncEngine) cancelLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *SyncEngine) logPollError(msg string, roomID int, err error) {
	level := e.logger.Debug
	if errors.Is(err, domain.ErrSessionExpired) {
		level = e.logger.Info
	}
	level(msg, zap.Int("room_id", roomID), zap.Error(err))
}
