package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

var clock = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

func newTestRenderer(live bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	r := New(Options{
		Out:            &out,
		Err:            &errOut,
		Now:            func() time.Time { return clock },
		InvitationHint: "Answer with: medicapp call respond --accept",
		Live:           live,
	})
	return r, &out, &errOut
}

func TestRendererPrintsOnlyNewMessages(t *testing.T) {
	r, out, _ := newTestRenderer(true)
	room := domain.Room{ID: 7, DoctorID: 9, DoctorName: "Dr. House", PatientID: 3}
	self := domain.User{ID: 3}
	first := domain.Message{ID: 1, RoomID: 7, SenderID: 9, Content: "hola", CreatedAt: domain.NewTimestamp(clock.Add(-time.Minute))}
	second := domain.Message{ID: 2, RoomID: 7, SenderID: 3, Content: "buenas", CreatedAt: domain.NewTimestamp(clock)}

	r.RenderMessages(room, []domain.Message{first}, self)
	r.RenderMessages(room, []domain.Message{first, second}, self)

	output := out.String()
	assert.Equal(t, 1, strings.Count(output, "hola"))
	assert.Contains(t, output, "[10:29] Dr. House: hola")
	assert.Contains(t, output, "[10:30] You: buenas")
}

func TestRendererSkipsUnchangedThreads(t *testing.T) {
	r, out, _ := newTestRenderer(true)
	threads := []domain.Thread{
		{RoomID: 1, Partner: "Ana", Status: domain.RoomStatusPending, CallStatus: domain.CallStatusNone},
		{RoomID: 2, Partner: "Luis", Status: domain.RoomStatusApproved, CallStatus: domain.CallStatusInvited, Active: true},
	}

	r.RenderThreads(threads)
	r.RenderThreads(threads)

	output := out.String()
	assert.Equal(t, 1, strings.Count(output, "#1 Ana"))
	assert.Contains(t, output, "> #2 Luis")
	assert.Contains(t, output, "call: invited")

	r.RenderThreads(nil)
	assert.Contains(t, out.String(), "No conversations.")
}

func TestRendererShowViewOnlyOnChange(t *testing.T) {
	r, out, _ := newTestRenderer(true)

	r.ShowView(domain.ViewWaitingRoom)
	r.ShowView(domain.ViewWaitingRoom)
	r.ShowView(domain.ViewRating)

	output := out.String()
	assert.Equal(t, 1, strings.Count(output, "Waiting room"))
	assert.Contains(t, output, "Rate your consultation")
}

func TestRendererInvitationAndAlerts(t *testing.T) {
	r, out, errOut := newTestRenderer(true)

	r.ShowInvitation(7)
	r.DismissInvitation()
	r.Alert("Could not start the call: Room not approved")

	assert.Contains(t, out.String(), "Incoming video call in room #7.")
	assert.Contains(t, out.String(), "medicapp call respond --accept")
	assert.Contains(t, out.String(), "Call invitation closed.")
	assert.Contains(t, errOut.String(), "Room not approved")
	assert.NotContains(t, out.String(), "Room not approved")
}

func TestRendererRoomsAndDoctors(t *testing.T) {
	r, out, _ := newTestRenderer(false)
	position := 2
	note := "fiebre"
	years := 12

	r.RenderRooms(domain.RolePatient, []domain.Room{{ID: 7, DoctorName: "Dr. House", Status: domain.RoomStatusPending, QueuePosition: &position, Note: &note}})
	r.RenderDoctors([]domain.Doctor{{ID: 9, Name: "Dr. House", Specialty: "Diagnóstico", ExperienceYears: &years, IsOnGuard: true}})

	output := out.String()
	assert.Contains(t, output, "#7 Dr. House pending")
	assert.Contains(t, output, "queue: 2")
	assert.Contains(t, output, "fiebre")
	assert.Contains(t, output, "Diagnóstico, 12 years")
	assert.Contains(t, output, "[on duty]")
	assert.NotContains(t, output, "[accepting]")
}

func TestRendererOneShotModeSkipsLiveOutput(t *testing.T) {
	r, out, _ := newTestRenderer(false)

	r.ShowView(domain.ViewPatientDashboard)
	r.RenderThreads([]domain.Thread{{RoomID: 1, Partner: "Ana"}})
	assert.Empty(t, out.String())

	live, liveOut, _ := newTestRenderer(true)
	live.RenderRooms(domain.RolePatient, []domain.Room{{ID: 7, DoctorName: "Dr. House"}})
	assert.Empty(t, liveOut.String())
}

func TestRendererMuteKeepsAlerts(t *testing.T) {
	r, out, errOut := newTestRenderer(false)

	r.Mute()
	r.RenderDoctors([]domain.Doctor{{ID: 9, Name: "Dr. House"}})
	r.Alert("boom")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "boom")
}
