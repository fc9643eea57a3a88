package application

import (
	"sync"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
)

// recordingRenderer keeps every call so tests can assert on what reached
// the screen.
type recordingRenderer struct {
	mu          sync.Mutex
	views       []domain.View
	messages    map[int][][]domain.Message
	threads     [][]domain.Thread
	rooms       [][]domain.Room
	doctors     [][]domain.Doctor
	invitations []int
	dismissed   int
	alerts      []string
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{messages: map[int][][]domain.Message{}}
}

func (r *recordingRenderer) ShowView(view domain.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, view)
}

func (r *recordingRenderer) RenderMessages(room domain.Room, messages []domain.Message, _ domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[room.ID] = append(r.messages[room.ID], messages)
}

func (r *recordingRenderer) RenderThreads(threads []domain.Thread) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads = append(r.threads, threads)
}

func (r *recordingRenderer) RenderRooms(_ domain.Role, rooms []domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms = append(r.rooms, rooms)
}

func (r *recordingRenderer) RenderDoctors(doctors []domain.Doctor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors = append(r.doctors, doctors)
}

func (r *recordingRenderer) ShowInvitation(roomID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invitations = append(r.invitations, roomID)
}

func (r *recordingRenderer) DismissInvitation() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dismissed++
}

func (r *recordingRenderer) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, message)
}

func (r *recordingRenderer) messageRenders(roomID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages[roomID])
}

func (r *recordingRenderer) lastView() domain.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.views) == 0 {
		return ""
	}
	return r.views[len(r.views)-1]
}

func (r *recordingRenderer) snapshotViews() []domain.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.View(nil), r.views...)
}

func (r *recordingRenderer) snapshotAlerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}

func (r *recordingRenderer) snapshotInvitations() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.invitations...)
}

func (r *recordingRenderer) dismissals() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dismissed
}

func (r *recordingRenderer) threadRenders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.threads)
}

func (r *recordingRenderer) lastThreads() []domain.Thread {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.threads) == 0 {
		return nil
	}
	return r.threads[len(r.threads)-1]
}

// manualTicker hands out tick channels the test fires by hand and counts
// the tickers started and stopped.
type manualTicker struct {
	mu       sync.Mutex
	channels []chan time.Time
	started  int
	stopped  int
}

func (m *manualTicker) start(time.Duration) (<-chan time.Time, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan time.Time)
	m.channels = append(m.channels, ch)
	m.started++
	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stopped++
	}
}

// fire delivers one tick to the most recently started ticker. It blocks
// until the receiving loop takes it.
func (m *manualTicker) fire() {
	m.mu.Lock()
	ch := m.channels[len(m.channels)-1]
	m.mu.Unlock()
	ch <- time.Now()
}

func (m *manualTicker) counts() (started, stopped int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started, m.stopped
}

func (m *manualTicker) active() int {
	started, stopped := m.counts()
	return started - stopped
}

// instantTicker never blocks: every receive yields a tick at once.
func instantTicker(time.Duration) (<-chan time.Time, func()) {
	ch := make(chan time.Time)
	close(ch)
	return ch, func() {}
}
