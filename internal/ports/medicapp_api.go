package ports

import (
	"context"

	"github.com/bnema/medicapp-cli/internal/domain"
)

type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// MedicappAPI is the typed REST surface the application consumes. Every
// call goes through the authenticated gateway.
type MedicappAPI interface {
	Login(ctx context.Context, email, password string) (domain.TokenPair, error)
	Register(ctx context.Context, req RegisterRequest) (domain.User, error)
	Me(ctx context.Context) (domain.User, error)

	Doctors(ctx context.Context) ([]domain.Doctor, error)
	Doctor(ctx context.Context, doctorID int) (domain.Doctor, error)
	DoctorRatings(ctx context.Context, doctorID int) ([]domain.Rating, error)
	DoctorStatus(ctx context.Context) (domain.DoctorStatus, error)
	SetDoctorStatus(ctx context.Context, onGuard, accepting bool) (domain.DoctorStatus, error)

	PatientRooms(ctx context.Context) ([]domain.Room, error)
	DoctorRooms(ctx context.Context) ([]domain.Room, error)
	RequestGuard(ctx context.Context, doctorID int, note string) (domain.Room, error)
	Messages(ctx context.Context, roomID int) ([]domain.Message, error)
	SendMessage(ctx context.Context, roomID int, content string) (domain.Message, error)
	StartCall(ctx context.Context, roomID int) (domain.Room, error)
	RespondCall(ctx context.Context, roomID int, accept bool) (domain.Room, error)

	JoinQueue(ctx context.Context, doctorID int) (domain.Room, error)
	QueueRoom(ctx context.Context, roomID int) (domain.Room, error)
	SubmitRating(ctx context.Context, rating domain.RatingSubmission) (domain.Rating, error)

	Profile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error)
}
