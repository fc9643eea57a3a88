package console

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
)

type Options struct {
	Out io.Writer
	Err io.Writer
	Now func() time.Time
	// InvitationHint is printed under an incoming call, e.g. how to answer.
	InvitationHint string
	// Live renders view switches and the thread list as they change. One-shot
	// commands leave it off and print room lists instead.
	Live bool
}

// Renderer prints state changes as they arrive from the polling goroutine.
// Messages already printed for a room are not printed again, and an
// unchanged thread list is skipped.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	err    io.Writer
	now    func() time.Time
	hint   string
	live   bool
	styles styles

	view    domain.View
	seen    map[int]int
	threads []domain.Thread
}

var _ ports.Renderer = (*Renderer)(nil)

func New(opts Options) *Renderer {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Renderer{
		out:    opts.Out,
		err:    opts.Err,
		now:    opts.Now,
		hint:   opts.InvitationHint,
		live:   opts.Live,
		styles: newStyles(),
		seen:   map[int]int{},
	}
}

func (r *Renderer) ShowView(view domain.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.live || view == r.view {
		return
	}
	r.view = view
	r.writeLine(r.out, r.styles.title.Render("== "+viewTitle(view)+" =="))
}

func (r *Renderer) RenderMessages(room domain.Room, messages []domain.Message, self domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	last := r.seen[room.ID]
	now := r.now()
	for _, message := range messages {
		if message.ID <= last {
			continue
		}
		r.writeLine(r.out, renderMessage(room, message, self, now, r.styles))
		last = message.ID
	}
	r.seen[room.ID] = last
}

func (r *Renderer) RenderThreads(threads []domain.Thread) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.live || (r.threads != nil && slices.Equal(r.threads, threads)) {
		return
	}
	r.threads = append([]domain.Thread{}, threads...)
	r.writeLine(r.out, renderThreads(threads, r.styles))
}

func (r *Renderer) RenderRooms(role domain.Role, rooms []domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.live {
		return
	}
	r.writeLine(r.out, renderRooms(role, rooms, r.styles))
}

func (r *Renderer) RenderDoctors(doctors []domain.Doctor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeLine(r.out, renderDoctors(doctors, r.styles))
}

func (r *Renderer) ShowInvitation(roomID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writeLine(r.out, r.styles.invitation.Render(fmt.Sprintf("Incoming video call in room #%d.", roomID)))
	if r.hint != "" {
		r.writeLine(r.out, r.styles.detail.Render(r.hint))
	}
}

func (r *Renderer) DismissInvitation() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeLine(r.out, r.styles.empty.Render("Call invitation closed."))
}

func (r *Renderer) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeLine(r.err, r.styles.warning.Render(message))
}

// Mute drops everything written to the regular output, e.g. while a
// command prints JSON instead.
func (r *Renderer) Mute() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = io.Discard
}

func (r *Renderer) writeLine(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, text)
}
