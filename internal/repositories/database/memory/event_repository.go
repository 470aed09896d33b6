package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trade_ledger/internal/core/ports/repositories"
)

// EventRepository keeps event logs in process memory. Logs are lost on restart.
type EventRepository struct {
	mu     sync.RWMutex
	events map[string][]domain.EventRecord
}

// NewEventRepository creates an empty in-memory event log.
func NewEventRepository() *EventRepository {
	return &EventRepository{events: make(map[string][]domain.EventRecord)}
}

var _ portsrepo.EventRepositoryFacade = (*EventRepository)(nil)

// AppendEvent stores a copy of record. The sequence must follow the last one.
func (r *EventRepository) AppendEvent(_ context.Context, record domain.EventRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.events[record.WorkplaceID]
	last := int64(len(log))
	if record.Sequence != last+1 {
		return fmt.Errorf("%w: sequence %d for workplace %s (last is %d)",
			apperrors.ErrDuplicate, record.Sequence, record.WorkplaceID, last)
	}
	record.Payload = slices.Clone(record.Payload)
	r.events[record.WorkplaceID] = append(log, record)
	return nil
}

// LoadEvents returns copies of the workplace's events in sequence order.
func (r *EventRepository) LoadEvents(_ context.Context, workplaceID string) ([]domain.EventRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.events[workplaceID]
	out := make([]domain.EventRecord, len(log))
	for i, rec := range log {
		rec.Payload = slices.Clone(rec.Payload)
		out[i] = rec
	}
	return out, nil
}

// ListWorkplaces returns the workplace IDs with at least one event, sorted.
func (r *EventRepository) ListWorkplaces(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.events))
	for id, log := range r.events {
		if len(log) > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// NewRepositoryProvider wires the in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EventRepo: NewEventRepository(),
	}
}
