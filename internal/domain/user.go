package domain

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor:
		return true
	default:
		return false
	}
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt Timestamp `json:"created_at"`
}

func (u User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

type Doctor struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Specialty       string `json:"specialty,omitempty"`
	ExperienceYears *int   `json:"experience_years,omitempty"`
	IsOnGuard       bool   `json:"is_on_guard"`
	IsAccepting     bool   `json:"is_accepting"`
}

type DoctorStatus struct {
	DoctorID    int       `json:"doctor_id"`
	IsOnGuard   bool      `json:"is_on_guard"`
	IsAccepting bool      `json:"is_accepting"`
	UpdatedAt   Timestamp `json:"updated_at"`
}

// AvailabilityField names one of the two doctor availability switches.
type AvailabilityField string

const (
	AvailabilityOnGuard   AvailabilityField = "is_on_guard"
	AvailabilityAccepting AvailabilityField = "is_accepting"
)

// Toggled returns the status with the given switch flipped.
func (s DoctorStatus) Toggled(field AvailabilityField) DoctorStatus {
	switch field {
	case AvailabilityOnGuard:
		s.IsOnGuard = !s.IsOnGuard
	case AvailabilityAccepting:
		s.IsAccepting = !s.IsAccepting
	}
	return s
}

type Profile struct {
	ID              int        `json:"id,omitempty"`
	Name            string     `json:"name,omitempty"`
	Email           string     `json:"email,omitempty"`
	Role            Role       `json:"role,omitempty"`
	Specialty       *string    `json:"specialty,omitempty"`
	ExperienceYears *int       `json:"experience_years,omitempty"`
	BirthDate       *Timestamp `json:"birth_date,omitempty"`
	MedicalHistory  *string    `json:"medical_history,omitempty"`
	Allergies       *string    `json:"allergies,omitempty"`
	Avatar          *string    `json:"avatar,omitempty"`
}

// DoctorFilter mirrors the doctor search form; nil booleans match any value.
type DoctorFilter struct {
	Name        string
	OnGuard     *bool
	IsAccepting *bool
}
