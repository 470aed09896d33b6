package engine_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	"github.com/SscSPs/trade_ledger/internal/repositories/database/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore serves a fixed log and can fail appends.
type stubStore struct {
	records   []domain.EventRecord
	appendErr error
}

func (s *stubStore) LoadEvents(context.Context, string) ([]domain.EventRecord, error) {
	return s.records, nil
}

func (s *stubStore) ListWorkplaces(context.Context) ([]string, error) {
	return []string{"wp-1"}, nil
}

func (s *stubStore) AppendEvent(_ context.Context, record domain.EventRecord) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.records = append(s.records, record)
	return nil
}

func encoded(t *testing.T, seq int64, e engine.Event) domain.EventRecord {
	t.Helper()
	eventType, payload, err := engine.EncodeEvent(e)
	require.NoError(t, err)
	return domain.EventRecord{WorkplaceID: "wp-1", Sequence: seq, Type: string(eventType), Payload: payload}
}

func TestLedger_DispatchPersistsInSequence(t *testing.T) {
	ctx := context.Background()
	store := memory.NewEventRepository()
	ledger := engine.NewLedger("wp-1", reducer, store)
	require.NoError(t, ledger.Replay(ctx))

	_, err := ledger.Dispatch(ctx, savePartner("c1", domain.Client))
	require.NoError(t, err)
	state, err := ledger.Dispatch(ctx, saveInvoice("d1"))
	require.NoError(t, err)

	assert.Equal(t, int64(2), ledger.Sequence())
	assert.Equal(t, "wp-1", ledger.WorkplaceID())
	assert.Len(t, state.Documents, 1)

	records, err := store.LoadEvents(ctx, "wp-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, string(engine.EventSavePartner), records[0].Type)
	assert.Equal(t, int64(2), records[1].Sequence)
	assert.False(t, records[1].RecordedAt.IsZero())
}

func TestLedger_RejectedEventIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewEventRepository()
	ledger := engine.NewLedger("wp-1", reducer, store)

	_, err := ledger.Dispatch(ctx, savePartner("c1", domain.Client))
	require.NoError(t, err)

	state, err := ledger.Dispatch(ctx, engine.CloseCashSession{SessionID: "ghost", ClosedAt: at})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Len(t, state.Partners, 1)
	assert.Equal(t, int64(1), ledger.Sequence())

	records, _ := store.LoadEvents(ctx, "wp-1")
	assert.Len(t, records, 1)
}

func TestLedger_FailedAppendLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &stubStore{}
	ledger := engine.NewLedger("wp-1", reducer, store)

	_, err := ledger.Dispatch(ctx, savePartner("c1", domain.Client))
	require.NoError(t, err)

	store.appendErr = errors.New("disk full")
	_, err = ledger.Dispatch(ctx, savePartner("c2", domain.Client))
	require.Error(t, err)

	assert.Len(t, ledger.Snapshot().Partners, 1)
	assert.Equal(t, int64(1), ledger.Sequence())
}

func TestLedger_ReplayRebuildsState(t *testing.T) {
	ctx := context.Background()
	store := memory.NewEventRepository()
	first := engine.NewLedger("wp-1", reducer, store)
	for _, e := range []engine.Event{
		savePartner("c1", domain.Client),
		saveInvoice("d1"),
		engine.OpenCashSession{SessionID: "cs1", OpeningBalance: dec("100"), OpenedAt: at},
		addPayment("p1", "c1", domain.MethodCash, domain.NaturePayment, "1440", "d1"),
	} {
		_, err := first.Dispatch(ctx, e)
		require.NoError(t, err)
	}

	second := engine.NewLedger("wp-1", reducer, store)
	require.NoError(t, second.Replay(ctx))

	want, err := json.Marshal(first.Snapshot())
	require.NoError(t, err)
	got, err := json.Marshal(second.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
	assert.Equal(t, first.Sequence(), second.Sequence())

	doc, _ := second.Snapshot().FindDocument("d1")
	assert.Equal(t, domain.StatusPaid, doc.Status)
}

func TestLedger_ReplayDetectsGap(t *testing.T) {
	store := &stubStore{records: []domain.EventRecord{
		encoded(t, 1, savePartner("c1", domain.Client)),
		encoded(t, 3, savePartner("c2", domain.Client)),
	}}
	ledger := engine.NewLedger("wp-1", reducer, store)

	err := ledger.Replay(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap")
	assert.Empty(t, ledger.Snapshot().Partners)
}

func TestLedger_ReplayRejectsUnknownType(t *testing.T) {
	store := &stubStore{records: []domain.EventRecord{
		{WorkplaceID: "wp-1", Sequence: 1, Type: "MERGE_PARTNERS", Payload: json.RawMessage(`{}`)},
	}}
	ledger := engine.NewLedger("wp-1", reducer, store)

	err := ledger.Replay(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnknownEvent)
}
