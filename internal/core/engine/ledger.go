package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/trade_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trade_ledger/internal/core/ports/repositories"
)

// Ledger serializes the events of one workplace: each Dispatch applies against
// the state left by the previous one and is persisted before it becomes visible.
type Ledger struct {
	mu          sync.Mutex
	workplaceID string
	reducer     Reducer
	store       portsrepo.EventRepositoryFacade
	state       State
	sequence    int64
	now         func() time.Time
}

// NewLedger creates an empty ledger. Call Replay to rebuild it from the store.
func NewLedger(workplaceID string, reducer Reducer, store portsrepo.EventRepositoryFacade) *Ledger {
	return &Ledger{
		workplaceID: workplaceID,
		reducer:     reducer,
		store:       store,
		now:         time.Now,
	}
}

// Replay rebuilds the state by re-applying every stored event in sequence order.
func (l *Ledger) Replay(ctx context.Context) error {
	records, err := l.store.LoadEvents(ctx, l.workplaceID)
	if err != nil {
		return fmt.Errorf("failed to load events for workplace %s: %w", l.workplaceID, err)
	}

	state := State{}
	var sequence int64
	for _, rec := range records {
		if rec.Sequence != sequence+1 {
			return fmt.Errorf("event log of workplace %s has a gap: expected sequence %d, got %d",
				l.workplaceID, sequence+1, rec.Sequence)
		}
		event, err := DecodeEvent(EventType(rec.Type), rec.Payload)
		if err != nil {
			return err
		}
		if state, err = l.reducer.Apply(state, event); err != nil {
			return fmt.Errorf("failed to replay event %d of workplace %s: %w", rec.Sequence, l.workplaceID, err)
		}
		sequence = rec.Sequence
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = state
	l.sequence = sequence
	return nil
}

// Dispatch applies e to the current state and appends it to the store. A
// rejected or unpersisted event leaves the ledger unchanged.
func (l *Ledger) Dispatch(ctx context.Context, e Event) (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, err := l.reducer.Apply(l.state, e)
	if err != nil {
		return l.state, err
	}

	eventType, payload, err := EncodeEvent(e)
	if err != nil {
		return l.state, err
	}
	record := domain.EventRecord{
		WorkplaceID: l.workplaceID,
		Sequence:    l.sequence + 1,
		Type:        string(eventType),
		Payload:     payload,
		RecordedAt:  l.now().UTC(),
	}
	if err := l.store.AppendEvent(ctx, record); err != nil {
		return l.state, fmt.Errorf("failed to persist %s event: %w", eventType, err)
	}

	l.state = next
	l.sequence = record.Sequence
	return next, nil
}

// Snapshot returns the current state.
func (l *Ledger) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Sequence returns the sequence number of the last applied event.
func (l *Ledger) Sequence() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sequence
}

// WorkplaceID returns the workplace the ledger belongs to.
func (l *Ledger) WorkplaceID() string {
	return l.workplaceID
}
