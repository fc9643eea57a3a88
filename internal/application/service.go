package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
	"go.uber.org/zap"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrInvalidRole  = errors.New("role must be patient or doctor")
)

type ServiceOptions struct {
	Profile string
	BaseURL string
	Clock   ports.Clock
	Logger  *zap.Logger
}

// Service holds the user-facing operations that sit around the polling
// core: authentication, doctors, availability, rooms and profile.
type Service struct {
	api      ports.MedicappAPI
	session  *SessionManager
	state    *ClientState
	renderer ports.Renderer
	sync     *SyncEngine
	records  ports.SessionRecordRepository
	clock    ports.Clock
	logger   *zap.Logger
	profile  string
	baseURL  string
}

func NewService(api ports.MedicappAPI, session *SessionManager, state *ClientState, renderer ports.Renderer, sync *SyncEngine, records ports.SessionRecordRepository, opts ServiceOptions) *Service {
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Service{
		api:      api,
		session:  session,
		state:    state,
		renderer: renderer,
		sync:     sync,
		records:  records,
		clock:    opts.Clock,
		logger:   opts.Logger,
		profile:  opts.Profile,
		baseURL:  opts.BaseURL,
	}
}

func (s *Service) Login(ctx context.Context, cmd LoginCommand) (domain.User, error) {
	pair, err := s.api.Login(ctx, strings.TrimSpace(cmd.Email), cmd.Password)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsInvalid) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("login: %w", err)
	}

	s.session.SetAccessToken(ctx, pair.AccessToken)
	if pair.RefreshToken != "" {
		s.session.SetRefreshToken(ctx, pair.RefreshToken)
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("load current user: %w", err)
	}
	s.enter(user)

	now := s.clock.Now()
	s.saveRecord(ctx, domain.SessionRecord{
		Profile:     s.profile,
		BaseURL:     s.baseURL,
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		LoggedInAt:  now,
		RefreshedAt: now,
	})

	return user, nil
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (domain.User, error) {
	cmd = cmd.normalized()
	if !cmd.Role.Valid() {
		return domain.User{}, ErrInvalidRole
	}

	user, err := s.api.Register(ctx, ports.RegisterRequest{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Password: cmd.Password,
		Role:     cmd.Role,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("register: %w", err)
	}
	s.show(domain.ViewLogin)

	return user, nil
}

// AutoLogin resumes the stored session. With only a refresh token left it
// first trades it for an access token.
func (s *Service) AutoLogin(ctx context.Context) (domain.User, error) {
	restored := s.session.Restore(ctx)
	if restored.Empty() {
		s.show(domain.ViewLogin)
		return domain.User{}, domain.ErrNoSession
	}
	if !restored.Authenticated() && !s.session.Refresh(ctx) {
		s.session.Clear(ctx)
		s.show(domain.ViewLogin)
		return domain.User{}, domain.ErrSessionExpired
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("resume session: %w", err)
	}
	s.enter(user)

	record, err := s.records.Get(ctx, s.profile)
	if err != nil {
		record = domain.SessionRecord{Profile: s.profile, BaseURL: s.baseURL, LoggedInAt: s.clock.Now()}
	}
	record.UserID, record.Name, record.Email, record.Role = user.ID, user.Name, user.Email, user.Role
	record.RefreshedAt = s.clock.Now()
	s.saveRecord(ctx, record)

	return user, nil
}

func (s *Service) Logout(ctx context.Context) {
	s.sync.Stop()
	s.session.Clear(ctx)
	s.state.Reset()
	if err := s.records.Delete(ctx, s.profile); err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		s.logger.Warn("delete session record", zap.Error(err))
	}
	s.renderer.ShowView(domain.ViewLogin)
}

// HandleSessionExpired is the gateway's expiry hook. The tokens are
// already gone; this forgets the user and returns to the login view.
func (s *Service) HandleSessionExpired(ctx context.Context) {
	s.sync.CloseRoom()
	s.state.Reset()
	if err := s.records.Delete(ctx, s.profile); err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		s.logger.Warn("delete session record", zap.Error(err))
	}
	s.renderer.ShowView(domain.ViewLogin)
	s.renderer.Alert(domain.ErrSessionExpired.Error())
}

func (s *Service) Status(ctx context.Context) SessionStatus {
	snapshot := s.session.Snapshot()
	status := SessionStatus{
		Profile:         s.profile,
		BaseURL:         s.baseURL,
		HasAccessToken:  snapshot.AccessToken != "",
		HasRefreshToken: snapshot.RefreshToken != "",
	}
	if claims, err := s.session.Claims(); err == nil {
		status.Claims = &claims
	}
	if record, err := s.records.Get(ctx, s.profile); err == nil {
		status.Record = &record
	}
	return status
}

func (s *Service) Doctors(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, error) {
	doctors, err := s.api.Doctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	filtered := domain.FilterDoctors(doctors, filter)
	s.renderer.RenderDoctors(filtered)
	return filtered, nil
}

func (s *Service) DoctorsOnDuty(ctx context.Context) ([]domain.Doctor, error) {
	onGuard := true
	return s.Doctors(ctx, domain.DoctorFilter{OnGuard: &onGuard})
}

func (s *Service) DoctorProfile(ctx context.Context, doctorID int) (DoctorProfile, error) {
	doctor, err := s.api.Doctor(ctx, doctorID)
	if err != nil {
		return DoctorProfile{}, fmt.Errorf("load doctor %d: %w", doctorID, err)
	}
	ratings, err := s.api.DoctorRatings(ctx, doctorID)
	if err != nil {
		return DoctorProfile{}, fmt.Errorf("load ratings of doctor %d: %w", doctorID, err)
	}

	average, rated := domain.AverageRating(ratings)
	return DoctorProfile{Doctor: doctor, Ratings: ratings, Average: average, Rated: rated}, nil
}

func (s *Service) Availability(ctx context.Context) (domain.DoctorStatus, error) {
	status, err := s.api.DoctorStatus(ctx)
	if err != nil {
		return domain.DoctorStatus{}, fmt.Errorf("load availability: %w", err)
	}
	return status, nil
}

// ToggleAvailability flips one switch and sends both back, as the endpoint
// replaces the whole status.
func (s *Service) ToggleAvailability(ctx context.Context, cmd ToggleAvailabilityCommand) (domain.DoctorStatus, error) {
	if cmd.Field != domain.AvailabilityOnGuard && cmd.Field != domain.AvailabilityAccepting {
		return domain.DoctorStatus{}, fmt.Errorf("unknown availability switch %q", cmd.Field)
	}

	current, err := s.Availability(ctx)
	if err != nil {
		return domain.DoctorStatus{}, err
	}
	next := current.Toggled(cmd.Field)

	updated, err := s.api.SetDoctorStatus(ctx, next.IsOnGuard, next.IsAccepting)
	if err != nil {
		return domain.DoctorStatus{}, fmt.Errorf("update availability: %w", err)
	}
	return updated, nil
}

// RequestGuard asks an on-duty doctor for attention and opens the new room.
func (s *Service) RequestGuard(ctx context.Context, cmd RequestGuardCommand) (domain.Room, error) {
	room, err := s.api.RequestGuard(ctx, cmd.DoctorID, strings.TrimSpace(cmd.Note))
	if err != nil {
		s.renderer.Alert("Could not request attention: " + err.Error())
		return domain.Room{}, fmt.Errorf("request guard with doctor %d: %w", cmd.DoctorID, err)
	}

	if _, err := s.sync.RefreshRooms(ctx); err != nil {
		s.logger.Warn("refresh rooms after guard request", zap.Error(err))
	}
	if err := s.openRoom(ctx, room); err != nil {
		return domain.Room{}, err
	}

	return room, nil
}

// Rooms reloads the caller's rooms and returns them with the derived
// thread list.
func (s *Service) Rooms(ctx context.Context) (RoomOverview, error) {
	user, ok := s.state.User()
	if !ok {
		return RoomOverview{}, domain.ErrNoSession
	}

	rooms, err := s.sync.RefreshRooms(ctx)
	if err != nil {
		return RoomOverview{}, err
	}

	currentID := 0
	if room, ok := s.state.CurrentRoom(); ok {
		currentID = room.ID
	}
	return RoomOverview{
		Role:          user.Role,
		Rooms:         rooms,
		Threads:       domain.BuildThreads(rooms, user.Role, currentID),
		InvitedRoomID: s.state.InvitedRoomID(),
		CheckedAt:     s.clock.Now(),
	}, nil
}

// OpenRoom subscribes to one of the caller's rooms.
func (s *Service) OpenRoom(ctx context.Context, roomID int) (domain.Room, error) {
	user, ok := s.state.User()
	if !ok {
		return domain.Room{}, domain.ErrNoSession
	}

	room, found := domain.FindRoom(s.state.Rooms(user.Role), roomID)
	if !found {
		rooms, err := s.sync.RefreshRooms(ctx)
		if err != nil {
			return domain.Room{}, err
		}
		if room, found = domain.FindRoom(rooms, roomID); !found {
			return domain.Room{}, fmt.Errorf("room %d: %w", roomID, domain.ErrRoomNotFound)
		}
	}

	if err := s.openRoom(ctx, room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

// SendMessage posts to the open room, then refreshes messages and rooms.
func (s *Service) SendMessage(ctx context.Context, content string) (domain.Message, error) {
	room, ok := s.state.CurrentRoom()
	if !ok {
		return domain.Message{}, domain.ErrRoomNotFound
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, ErrEmptyMessage
	}

	message, err := s.api.SendMessage(ctx, room.ID, content)
	if err != nil {
		s.renderer.Alert("Could not send the message: " + err.Error())
		return domain.Message{}, fmt.Errorf("send message to room %d: %w", room.ID, err)
	}
	s.sync.SyncNow(ctx)

	return message, nil
}

func (s *Service) Profile(ctx context.Context) (domain.Profile, error) {
	profile, err := s.api.Profile(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	saved, err := s.api.UpdateProfile(ctx, profile)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	if user, ok := s.state.User(); ok {
		s.show(domain.DefaultView(user.Role))
	}
	return saved, nil
}

func (s *Service) openRoom(ctx context.Context, room domain.Room) error {
	if err := s.sync.OpenRoom(ctx, room); err != nil {
		return err
	}
	s.show(domain.ViewMessages)
	return nil
}

func (s *Service) enter(user domain.User) {
	s.state.SetUser(user)
	s.show(domain.DefaultView(user.Role))
}

func (s *Service) show(view domain.View) {
	s.state.SetView(view)
	s.renderer.ShowView(view)
}

func (s *Service) saveRecord(ctx context.Context, record domain.SessionRecord) {
	if s.records == nil {
		return
	}
	if err := s.records.Save(ctx, record); err != nil {
		s.logger.Warn("save session record", zap.Error(err))
	}
}
