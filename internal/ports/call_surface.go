package ports

import "context"

// CallSurface is the external video-call widget, addressed by room name.
type CallSurface interface {
	Open(ctx context.Context, roomName string) error
	Close(ctx context.Context) error
}
