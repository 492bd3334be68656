//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package pagination

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/model"
)

type Fetcher interface {
	FetchThreadItems(ctx context.Context, conversationID uuid.UUID, limit int, before *time.Time) ([]model.ThreadItem, error)
	FetchDoodles(ctx context.Context, ids []uuid.UUID) ([]model.Doodle, error)
	FetchReactions(ctx context.Context, threadItemIDs []uuid.UUID) ([]model.Reaction, error)
}
