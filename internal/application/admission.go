package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
	"go.uber.org/zap"
)

const DefaultAdmissionInterval = 2 * time.Second

type AdmissionOptions struct {
	Interval time.Duration
	Ticker   TickerFunc
	Logger   *zap.Logger
	// OnProgress is called after every poll with the phase it produced.
	OnProgress func(phase domain.AdmissionPhase, room domain.Room)
}

type AdmissionResult struct {
	Phase domain.AdmissionPhase
	Room  domain.Room
	// Joined is true when the patient accepted and attended the call.
	Joined bool
}

// AdmissionFlow takes a patient through the waiting-room queue: join, wait
// for the doctor's approval, wait for the call, answer it, then rate.
type AdmissionFlow struct {
	api      ports.MedicappAPI
	state    *ClientState
	renderer ports.Renderer
	surface  ports.CallSurface
	prompter ports.Prompter
	opts     AdmissionOptions
}

func NewAdmissionFlow(api ports.MedicappAPI, state *ClientState, renderer ports.Renderer, surface ports.CallSurface, prompter ports.Prompter, opts AdmissionOptions) *AdmissionFlow {
	if opts.Interval <= 0 {
		opts.Interval = DefaultAdmissionInterval
	}
	if opts.Ticker == nil {
		opts.Ticker = SystemTicker
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &AdmissionFlow{
		api:      api,
		state:    state,
		renderer: renderer,
		surface:  surface,
		prompter: prompter,
		opts:     opts,
	}
}

// Run joins the doctor's queue and blocks until the flow reaches the rating
// step, is rejected, or ctx ends. Poll errors are logged and retried.
func (f *AdmissionFlow) Run(ctx context.Context, doctorID int) (AdmissionResult, error) {
	room, err := f.api.JoinQueue(ctx, doctorID)
	if err != nil {
		f.renderer.Alert("Could not join the waiting room: " + err.Error())
		return AdmissionResult{}, fmt.Errorf("join waiting room of doctor %d: %w", doctorID, err)
	}
	f.state.SetCurrentRoom(room)
	f.show(domain.ViewWaitingApproval)

	phase := domain.AdmissionPhaseFor(domain.AdmissionWaitingApproval, room)
	f.progress(phase, room)
	if phase == domain.AdmissionWaitingApproval || phase == domain.AdmissionWaitingCall {
		if phase == domain.AdmissionWaitingCall {
			f.show(domain.ViewWaitingRoom)
		}
		room, phase, err = f.poll(ctx, room, phase)
		if err != nil {
			return AdmissionResult{Phase: phase, Room: room}, err
		}
	}

	switch phase {
	case domain.AdmissionRejected:
		f.renderer.Alert("Your request was rejected by the doctor.")
		f.show(domain.DefaultView(domain.RolePatient))
		return AdmissionResult{Phase: phase, Room: room}, nil
	case domain.AdmissionCallOffered:
		return f.answer(ctx, room)
	}

	return AdmissionResult{Phase: phase, Room: room}, nil
}

func (f *AdmissionFlow) poll(ctx context.Context, room domain.Room, phase domain.AdmissionPhase) (domain.Room, domain.AdmissionPhase, error) {
	ticks, stop := f.opts.Ticker(f.opts.Interval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return room, phase, ctx.Err()
		case <-ticks:
		}

		fresh, err := f.api.QueueRoom(ctx, room.ID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrNoSession) {
				return room, phase, err
			}
			f.opts.Logger.Debug("admission poll failed", zap.Int("room_id", room.ID), zap.Error(err))
			continue
		}
		room = fresh
		f.state.SetCurrentRoom(room)

		next := domain.AdmissionPhaseFor(phase, room)
		f.progress(next, room)
		if next == phase {
			continue
		}
		f.opts.Logger.Info("admission phase changed", zap.Int("room_id", room.ID), zap.String("from", string(phase)), zap.String("to", string(next)))
		phase = next

		switch phase {
		case domain.AdmissionWaitingCall:
			f.show(domain.ViewWaitingRoom)
		case domain.AdmissionCallOffered, domain.AdmissionRejected:
			return room, phase, nil
		}
	}
}

func (f *AdmissionFlow) answer(ctx context.Context, room domain.Room) (AdmissionResult, error) {
	accept, err := f.prompter.ConfirmCall(ctx, room)
	if err != nil {
		return AdmissionResult{Phase: domain.AdmissionCallOffered, Room: room}, fmt.Errorf("confirm call: %w", err)
	}

	joined := false
	if accept {
		f.progress(domain.AdmissionInCall, room)
		if err := f.surface.Open(ctx, domain.CallRoomName(room.ID)); err != nil {
			f.renderer.Alert("Could not open the video call: " + err.Error())
		} else {
			joined = true
			if err := f.prompter.AwaitCallEnd(ctx, room); err != nil && !errors.Is(err, context.Canceled) {
				f.opts.Logger.Warn("waiting for call end", zap.Error(err))
			}
			if err := f.surface.Close(context.WithoutCancel(ctx)); err != nil {
				f.opts.Logger.Warn("close call surface", zap.Error(err))
			}
		}
	}

	f.show(domain.ViewRating)
	f.progress(domain.AdmissionRating, room)
	return AdmissionResult{Phase: domain.AdmissionRating, Room: room, Joined: joined}, nil
}

// SubmitRating validates and sends the post-call rating, then returns the
// user to their dashboard.
func (f *AdmissionFlow) SubmitRating(ctx context.Context, doctorID int, rating int, comment string) (domain.Rating, error) {
	submission, err := domain.NewRatingSubmission(doctorID, rating, comment)
	if err != nil {
		f.renderer.Alert(err.Error())
		return domain.Rating{}, err
	}

	saved, err := f.api.SubmitRating(ctx, submission)
	if err != nil {
		f.renderer.Alert("Could not send the rating: " + err.Error())
		return domain.Rating{}, fmt.Errorf("submit rating: %w", err)
	}

	role := domain.RolePatient
	if user, ok := f.state.User(); ok {
		role = user.Role
	}
	f.show(domain.DefaultView(role))

	return saved, nil
}

func (f *AdmissionFlow) show(view domain.View) {
	f.state.SetView(view)
	f.renderer.ShowView(view)
}

func (f *AdmissionFlow) progress(phase domain.AdmissionPhase, room domain.Room) {
	if f.opts.OnProgress != nil {
		f.opts.OnProgress(phase, room)
	}
}
