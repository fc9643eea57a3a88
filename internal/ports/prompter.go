package ports

import (
	"context"

	"github.com/bnema/medicapp-cli/internal/domain"
)

// Prompter asks the patient questions during the admission flow.
type Prompter interface {
	ConfirmCall(ctx context.Context, room domain.Room) (bool, error)
	// AwaitCallEnd blocks until the video call is over.
	AwaitCallEnd(ctx context.Context, room domain.Room) error
}
