package ports

import (
	"context"

	"github.com/bnema/medicapp-cli/internal/domain"
)

type SessionRecordRepository interface {
	Get(ctx context.Context, profile string) (domain.SessionRecord, error)
	Save(ctx context.Context, record domain.SessionRecord) error
	Delete(ctx context.Context, profile string) error
}
