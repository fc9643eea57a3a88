package jitsi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/bnema/medicapp-cli/internal/ports"
	"go.uber.org/zap"
)

const DefaultDomain = "meet.jit.si"

var ErrEmptyRoomName = errors.New("call room name is empty")

// OpenFunc hands a meeting URL to whatever shows it to the user.
type OpenFunc func(ctx context.Context, meetingURL string) error

type Options struct {
	Domain string
	Out    io.Writer
	// Open defaults to the desktop browser. Set it to a no-op to only print
	// the link.
	Open   OpenFunc
	Logger *zap.Logger
}

// Surface shows a Jitsi Meet room in the browser. Rooms are addressed by
// name only, so both sides of a call land in the same meeting.
type Surface struct {
	domain string
	out    io.Writer
	open   OpenFunc
	logger *zap.Logger

	mu      sync.Mutex
	current string
}

var _ ports.CallSurface = (*Surface)(nil)

func NewSurface(opts Options) *Surface {
	if strings.TrimSpace(opts.Domain) == "" {
		opts.Domain = DefaultDomain
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Open == nil {
		opts.Open = OpenBrowser
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Surface{
		domain: strings.Trim(strings.TrimSpace(opts.Domain), "/"),
		out:    opts.Out,
		open:   opts.Open,
		logger: opts.Logger,
	}
}

// URL returns the meeting link for roomName.
func (s *Surface) URL(roomName string) string {
	u := url.URL{Scheme: "https", Host: s.domain, Path: "/" + roomName}
	return u.String()
}

func (s *Surface) Open(ctx context.Context, roomName string) error {
	roomName = strings.TrimSpace(roomName)
	if roomName == "" {
		return ErrEmptyRoomName
	}

	meetingURL := s.URL(roomName)
	_, _ = fmt.Fprintf(s.out, "Join the video call: %s\n", meetingURL)

	if err := s.open(ctx, meetingURL); err != nil {
		return fmt.Errorf("open %s: %w", meetingURL, err)
	}

	s.mu.Lock()
	s.current = roomName
	s.mu.Unlock()
	s.logger.Info("call surface opened", zap.String("room", roomName))

	return nil
}

// Close forgets the open meeting. The browser tab is the user's to close.
func (s *Surface) Close(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == "" {
		return nil
	}
	s.logger.Info("call surface closed", zap.String("room", s.current))
	s.current = ""
	_, _ = fmt.Fprintln(s.out, "Call ended.")

	return nil
}

// Current returns the open room name, or "".
func (s *Surface) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// OpenBrowser starts the platform URL handler without waiting for it.
func OpenBrowser(_ context.Context, meetingURL string) error {
	name, args := browserCommand(runtime.GOOS)
	cmd := exec.Command(name, append(args, meetingURL)...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()

	return nil
}

// NoOpen leaves the printed link as the only way into the call.
func NoOpen(context.Context, string) error {
	return nil
}

func browserCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
