package domain

import "fmt"

type RoomStatus string

const (
	RoomStatusPending  RoomStatus = "pending"
	RoomStatusApproved RoomStatus = "approved"
	RoomStatusRejected RoomStatus = "rejected"
	RoomStatusClosed   RoomStatus = "closed"
)

// Room is a waiting room pairing one patient and one doctor. Snapshots are
// replaced wholesale on every fetch and never patched locally.
type Room struct {
	ID            int        `json:"id"`
	DoctorID      int        `json:"doctor_id"`
	DoctorName    string     `json:"doctor_name"`
	PatientID     int        `json:"patient_id"`
	PatientName   string     `json:"patient_name"`
	Note          *string    `json:"note"`
	Status        RoomStatus `json:"status"`
	CallStatus    CallStatus `json:"call_status"`
	QueuePosition *int       `json:"queue_position,omitempty"`
	CreatedAt     Timestamp  `json:"created_at"`
	UpdatedAt     Timestamp  `json:"updated_at"`
}

// Equal compares every field of two snapshots.
func (r Room) Equal(other Room) bool {
	return r.ID == other.ID &&
		r.DoctorID == other.DoctorID &&
		r.DoctorName == other.DoctorName &&
		r.PatientID == other.PatientID &&
		r.PatientName == other.PatientName &&
		equalStringPtr(r.Note, other.Note) &&
		r.Status == other.Status &&
		r.CallStatus.Normalize() == other.CallStatus.Normalize() &&
		equalIntPtr(r.QueuePosition, other.QueuePosition) &&
		r.CreatedAt.Equal(other.CreatedAt) &&
		r.UpdatedAt.Equal(other.UpdatedAt)
}

// PartnerName returns the display name of the other participant.
func (r Room) PartnerName(role Role) string {
	if role == RoleDoctor {
		if r.PatientName == "" {
			return "Patient"
		}
		return r.PatientName
	}
	if r.DoctorName == "" {
		return "Doctor"
	}
	return r.DoctorName
}

// ParticipantName resolves a message sender to a display name.
func (r Room) ParticipantName(userID int) string {
	switch userID {
	case r.PatientID:
		if r.PatientName == "" {
			return "Patient"
		}
		return r.PatientName
	case r.DoctorID:
		if r.DoctorName == "" {
			return "Doctor"
		}
		return r.DoctorName
	default:
		return "Participant"
	}
}

func (r Room) NoteText() string {
	if r.Note == nil {
		return ""
	}
	return *r.Note
}

// CallRoomName is the identifier handed to the call surface.
func CallRoomName(roomID int) string {
	return fmt.Sprintf("medicapp-room-%d", roomID)
}

// RoomsEqual reports whether two snapshots are identical, element by element.
func RoomsEqual(a, b []Room) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// FindRoom returns the room with the given id from a snapshot.
func FindRoom(rooms []Room, id int) (Room, bool) {
	for _, room := range rooms {
		if room.ID == id {
			return room, true
		}
	}
	return Room{}, false
}

// FirstInvitation returns the first room whose call status is invited.
func FirstInvitation(rooms []Room) (Room, bool) {
	for _, room := range rooms {
		if room.CallStatus.Normalize() == CallStatusInvited {
			return room, true
		}
	}
	return Room{}, false
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
