package repositories

import (
	"context"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
)

// EventReader defines read operations for the event log
type EventReader interface {
	// LoadEvents returns every event of the workplace ordered by sequence.
	LoadEvents(ctx context.Context, workplaceID string) ([]domain.EventRecord, error)

	// ListWorkplaces returns the IDs of workplaces that have at least one event.
	ListWorkplaces(ctx context.Context) ([]string, error)
}

// EventWriter defines write operations for the event log
type EventWriter interface {
	// AppendEvent stores a record. It fails with apperrors.ErrDuplicate when the
	// sequence is already taken for the workplace.
	AppendEvent(ctx context.Context, record domain.EventRecord) error
}

// EventRepositoryFacade combines all event log interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
