package application

import (
	"sync"

	"github.com/bnema/medicapp-cli/internal/domain"
)

// ClientState is the shared context of one signed-in client: who is logged
// in, the last room snapshots, the open room and its messages, the pending
// invitation and the current view. Every client owns its own instance.
type ClientState struct {
	mu sync.RWMutex

	user          *domain.User
	patientRooms  []domain.Room
	doctorRooms   []domain.Room
	patientLoaded bool
	doctorLoaded  bool
	currentRoom   *domain.Room
	messages      []domain.Message
	invitedRoomID int
	view          domain.View
}

func NewClientState() *ClientState {
	return &ClientState{view: domain.ViewLogin}
}

func (s *ClientState) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *ClientState) SetUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

func (s *ClientState) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *ClientState) Rooms(role domain.Role) []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if role == domain.RoleDoctor {
		return append([]domain.Room(nil), s.doctorRooms...)
	}
	return append([]domain.Room(nil), s.patientRooms...)
}

// SetRooms replaces the snapshot for role wholesale and returns the previous
// one together with whether anything changed. The first snapshot of a role
// always counts as a change, even when empty.
func (s *ClientState) SetRooms(role domain.Role, rooms []domain.Room) ([]domain.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, loaded := &s.patientRooms, &s.patientLoaded
	if role == domain.RoleDoctor {
		target, loaded = &s.doctorRooms, &s.doctorLoaded
	}
	previous, first := *target, !*loaded
	*target = append([]domain.Room(nil), rooms...)
	*loaded = true

	if s.currentRoom != nil {
		if fresh, ok := domain.FindRoom(rooms, s.currentRoom.ID); ok {
			s.currentRoom = &fresh
		}
	}

	return previous, first || !domain.RoomsEqual(previous, rooms)
}

func (s *ClientState) CurrentRoom() (domain.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentRoom == nil {
		return domain.Room{}, false
	}
	return *s.currentRoom, true
}

func (s *ClientState) SetCurrentRoom(room domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentRoom = &room
}

func (s *ClientState) ClearCurrentRoom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentRoom = nil
	s.messages = nil
}

func (s *ClientState) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Message(nil), s.messages...)
}

func (s *ClientState) SetMessages(messages []domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append([]domain.Message(nil), messages...)
}

// InvitedRoomID is zero when no invitation is pending.
func (s *ClientState) InvitedRoomID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invitedRoomID
}

func (s *ClientState) SetInvitedRoomID(roomID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invitedRoomID = roomID
}

func (s *ClientState) View() domain.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *ClientState) SetView(view domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// Reset forgets everything, as after logout or session expiry.
func (s *ClientState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.patientRooms = nil
	s.doctorRooms = nil
	s.patientLoaded = false
	s.doctorLoaded = false
	s.currentRoom = nil
	s.messages = nil
	s.invitedRoomID = 0
	s.view = domain.ViewLogin
}
