package application

import (
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
)

// SessionStatus is what `session status` prints. It is built from local
// state only and never calls the server.
type SessionStatus struct {
	Profile         string
	BaseURL         string
	HasAccessToken  bool
	HasRefreshToken bool
	Claims          *TokenClaims
	Record          *domain.SessionRecord
}

type DoctorProfile struct {
	Doctor  domain.Doctor
	Ratings []domain.Rating
	// Average is only meaningful when Rated is true.
	Average float64
	Rated   bool
}

type RoomOverview struct {
	Role    domain.Role
	Rooms   []domain.Room
	Threads []domain.Thread
	// InvitedRoomID is the pending invitation, zero when none.
	InvitedRoomID int
	CheckedAt     time.Time
}
