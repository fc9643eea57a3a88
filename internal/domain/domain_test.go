package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallRoomName(t *testing.T) {
	assert.Equal(t, "medicapp-room-42", CallRoomName(42))
}

func TestCallStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from CallStatus
		to   CallStatus
		want bool
	}{
		{name: "none to invited", from: CallStatusNone, to: CallStatusInvited, want: true},
		{name: "doctor shortcut none to calling", from: CallStatusNone, to: CallStatusCalling, want: true},
		{name: "empty behaves like none", from: "", to: CallStatusInvited, want: true},
		{name: "invited to calling", from: CallStatusInvited, to: CallStatusCalling, want: true},
		{name: "calling to accepted", from: CallStatusCalling, to: CallStatusAccepted, want: true},
		{name: "calling to rejected", from: CallStatusCalling, to: CallStatusRejected, want: true},
		{name: "none cannot jump to accepted", from: CallStatusNone, to: CallStatusAccepted, want: false},
		{name: "accepted cannot go back to invited", from: CallStatusAccepted, to: CallStatusInvited, want: false},
		{name: "self transition", from: CallStatusInvited, to: CallStatusInvited, want: true},
		{name: "new episode after ended", from: CallStatusEnded, to: CallStatusInvited, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransition(tc.to))
		})
	}
}

func TestCallStatusCanStartCall(t *testing.T) {
	assert.True(t, CallStatusNone.CanStartCall())
	assert.True(t, CallStatus("").CanStartCall())
	assert.True(t, CallStatusEnded.CanStartCall())
	assert.False(t, CallStatusInvited.CanStartCall())
	assert.False(t, CallStatusCalling.CanStartCall())
}

func TestAdmissionPhaseFor(t *testing.T) {
	tests := []struct {
		name    string
		current AdmissionPhase
		room    Room
		want    AdmissionPhase
	}{
		{name: "still pending", current: AdmissionWaitingApproval, room: Room{Status: RoomStatusPending}, want: AdmissionWaitingApproval},
		{name: "approved waits for call", current: AdmissionWaitingApproval, room: Room{Status: RoomStatusApproved}, want: AdmissionWaitingCall},
		{name: "approved and already calling", current: AdmissionWaitingApproval, room: Room{Status: RoomStatusApproved, CallStatus: CallStatusCalling}, want: AdmissionCallOffered},
		{name: "rejected", current: AdmissionWaitingApproval, room: Room{Status: RoomStatusRejected}, want: AdmissionRejected},
		{name: "call arrives", current: AdmissionWaitingCall, room: Room{Status: RoomStatusApproved, CallStatus: CallStatusCalling}, want: AdmissionCallOffered},
		{name: "invited is not calling yet", current: AdmissionWaitingCall, room: Room{Status: RoomStatusApproved, CallStatus: CallStatusInvited}, want: AdmissionWaitingCall},
		{name: "room closed while waiting", current: AdmissionWaitingCall, room: Room{Status: RoomStatusClosed}, want: AdmissionRejected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AdmissionPhaseFor(tc.current, tc.room))
		})
	}
}

func TestRoomEqualComparesWholeSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	note := "fever"
	sameNote := "fever"
	base := Room{ID: 7, DoctorID: 9, PatientID: 3, Note: &note, Status: RoomStatusApproved, CallStatus: CallStatusNone, UpdatedAt: NewTimestamp(now)}
	copyRoom := Room{ID: 7, DoctorID: 9, PatientID: 3, Note: &sameNote, Status: RoomStatusApproved, CallStatus: "", UpdatedAt: NewTimestamp(now)}

	assert.True(t, base.Equal(copyRoom))

	changed := copyRoom
	changed.CallStatus = CallStatusInvited
	assert.False(t, base.Equal(changed))

	assert.True(t, RoomsEqual([]Room{base}, []Room{copyRoom}))
	assert.False(t, RoomsEqual([]Room{base}, []Room{base, copyRoom}))
}

func TestFirstInvitation(t *testing.T) {
	rooms := []Room{
		{ID: 1, CallStatus: CallStatusNone},
		{ID: 7, CallStatus: CallStatusInvited},
		{ID: 8, CallStatus: CallStatusInvited},
	}

	room, ok := FirstInvitation(rooms)
	require.True(t, ok)
	assert.Equal(t, 7, room.ID)

	_, ok = FirstInvitation(rooms[:1])
	assert.False(t, ok)
}

func TestRoomParticipantNames(t *testing.T) {
	room := Room{DoctorID: 9, DoctorName: "Dr. House", PatientID: 3}

	assert.Equal(t, "Dr. House", room.ParticipantName(9))
	assert.Equal(t, "Patient", room.ParticipantName(3))
	assert.Equal(t, "Participant", room.ParticipantName(99))
	assert.Equal(t, "Patient", room.PartnerName(RoleDoctor))
	assert.Equal(t, "Dr. House", room.PartnerName(RolePatient))
}

func TestNewRatingSubmissionValidatesRange(t *testing.T) {
	submission, err := NewRatingSubmission(9, 4, "  bien ")
	require.NoError(t, err)
	assert.Equal(t, RatingSubmission{DoctorID: 9, Rating: 4, Comment: "bien"}, submission)

	_, err = NewRatingSubmission(9, 0, "")
	require.ErrorIs(t, err, ErrInvalidRating)
	_, err = NewRatingSubmission(9, 6, "")
	require.ErrorIs(t, err, ErrInvalidRating)
}

func TestAverageRating(t *testing.T) {
	_, ok := AverageRating(nil)
	assert.False(t, ok)

	avg, ok := AverageRating([]Rating{{Rating: 5}, {Rating: 4}, {Rating: 3}})
	require.True(t, ok)
	assert.InDelta(t, 4.0, avg, 0.001)
}

func TestDoctorStatusToggled(t *testing.T) {
	status := DoctorStatus{IsOnGuard: true, IsAccepting: false}

	assert.Equal(t, DoctorStatus{IsOnGuard: false, IsAccepting: false}, status.Toggled(AvailabilityOnGuard))
	assert.Equal(t, DoctorStatus{IsOnGuard: true, IsAccepting: true}, status.Toggled(AvailabilityAccepting))
}

func TestDefaultView(t *testing.T) {
	assert.Equal(t, ViewDoctorDashboard, DefaultView(RoleDoctor))
	assert.Equal(t, ViewPatientDashboard, DefaultView(RolePatient))
}

func TestBuildThreadsMarksActiveRoom(t *testing.T) {
	rooms := []Room{
		{ID: 1, PatientName: "Ana", Status: RoomStatusPending},
		{ID: 2, PatientName: "Luis", Status: RoomStatusApproved, CallStatus: CallStatusInvited},
	}

	threads := BuildThreads(rooms, RoleDoctor, 2)
	require.Len(t, threads, 2)
	assert.Equal(t, Thread{RoomID: 1, Partner: "Ana", Status: RoomStatusPending, CallStatus: CallStatusNone}, threads[0])
	assert.True(t, threads[1].Active)
	assert.Equal(t, CallStatusInvited, threads[1].CallStatus)
}

func TestTimestampAcceptsZonelessBackendDates(t *testing.T) {
	var room Room
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"created_at":"2026-03-01T10:00:00.123456","updated_at":"2026-03-01T10:00:00Z"}`), &room))

	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 123456000, time.UTC), room.CreatedAt.Time)
	assert.True(t, room.UpdatedAt.Equal(NewTimestamp(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))))

	var message Message
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"created_at":null}`), &message))
	assert.True(t, message.CreatedAt.IsZero())

	require.Error(t, json.Unmarshal([]byte(`{"created_at":"yesterday"}`), &message))
}

func TestFilterDoctors(t *testing.T) {
	doctors := []Doctor{
		{ID: 1, Name: "Dra. Ana Ruiz", IsOnGuard: true, IsAccepting: true},
		{ID: 2, Name: "Dr. Luis Paz", IsOnGuard: false, IsAccepting: true},
		{ID: 3, Name: "Dr. Ruiz Diaz", IsOnGuard: true, IsAccepting: false},
	}
	yes, no := true, false

	tests := []struct {
		name   string
		filter DoctorFilter
		want   []int
	}{
		{name: "empty filter keeps all", filter: DoctorFilter{}, want: []int{1, 2, 3}},
		{name: "name is case insensitive substring", filter: DoctorFilter{Name: "  ruiz "}, want: []int{1, 3}},
		{name: "on guard", filter: DoctorFilter{OnGuard: &yes}, want: []int{1, 3}},
		{name: "not accepting", filter: DoctorFilter{IsAccepting: &no}, want: []int{3}},
		{name: "combined", filter: DoctorFilter{Name: "ruiz", IsAccepting: &yes}, want: []int{1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []int
			for _, doctor := range FilterDoctors(doctors, tc.filter) {
				got = append(got, doctor.ID)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
