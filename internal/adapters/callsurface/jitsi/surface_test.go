package jitsi

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceOpenPrintsAndOpensMeetingURL(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	var opened []string
	surface := NewSurface(Options{
		Out: &out,
		Open: func(_ context.Context, meetingURL string) error {
			opened = append(opened, meetingURL)
			return nil
		},
	})

	require.NoError(t, surface.Open(context.Background(), "medicapp-room-42"))

	assert.Equal(t, []string{"https://meet.jit.si/medicapp-room-42"}, opened)
	assert.Contains(t, out.String(), "Join the video call: https://meet.jit.si/medicapp-room-42")
	assert.Equal(t, "medicapp-room-42", surface.Current())
}

func TestSurfaceUsesConfiguredDomain(t *testing.T) {
	t.Parallel()

	surface := NewSurface(Options{Domain: " jitsi.example.org/ ", Out: &bytes.Buffer{}, Open: NoOpen})

	assert.Equal(t, "https://jitsi.example.org/medicapp-room-7", surface.URL("medicapp-room-7"))
}

func TestSurfaceOpenFailureKeepsNothingOpen(t *testing.T) {
	t.Parallel()

	surface := NewSurface(Options{
		Out:  &bytes.Buffer{},
		Open: func(context.Context, string) error { return errors.New("xdg-open: not found") },
	})

	err := surface.Open(context.Background(), "medicapp-room-1")
	require.ErrorContains(t, err, "xdg-open: not found")
	assert.Empty(t, surface.Current())

	require.ErrorIs(t, surface.Open(context.Background(), " "), ErrEmptyRoomName)
}

func TestSurfaceCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	surface := NewSurface(Options{Out: &out, Open: NoOpen})
	require.NoError(t, surface.Open(context.Background(), "medicapp-room-3"))

	require.NoError(t, surface.Close(context.Background()))
	require.NoError(t, surface.Close(context.Background()))

	assert.Empty(t, surface.Current())
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("Call ended.")))
}

func TestBrowserCommandPerPlatform(t *testing.T) {
	t.Parallel()

	name, _ := browserCommand("linux")
	assert.Equal(t, "xdg-open", name)
	name, _ = browserCommand("darwin")
	assert.Equal(t, "open", name)
	name, args := browserCommand("windows")
	assert.Equal(t, "rundll32", name)
	assert.Equal(t, []string{"url.dll,FileProtocolHandler"}, args)
}
