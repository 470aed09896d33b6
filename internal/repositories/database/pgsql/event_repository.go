package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trade_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEventRepository stores the per-workplace event log in the ledger_events table.
type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

// AppendEvent inserts the record, refusing gaps and reused sequence numbers.
func (r *PgxEventRepository) AppendEvent(ctx context.Context, record domain.EventRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	var last int64
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(sequence), 0) FROM ledger_events WHERE workplace_id = $1`,
		record.WorkplaceID,
	).Scan(&last)
	if err != nil {
		return fmt.Errorf("failed to read last sequence for workplace %s: %w", record.WorkplaceID, err)
	}
	if record.Sequence != last+1 {
		return fmt.Errorf("%w: sequence %d for workplace %s (last is %d)",
			apperrors.ErrDuplicate, record.Sequence, record.WorkplaceID, last)
	}

	query := `
        INSERT INTO ledger_events (workplace_id, sequence, event_type, payload, recorded_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err = tx.Exec(ctx, query,
		record.WorkplaceID,
		record.Sequence,
		record.Type,
		[]byte(record.Payload),
		record.RecordedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sequence %d for workplace %s", apperrors.ErrDuplicate, record.Sequence, record.WorkplaceID)
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return r.Commit(ctx, tx)
}

// LoadEvents returns the workplace's events ordered by sequence.
func (r *PgxEventRepository) LoadEvents(ctx context.Context, workplaceID string) ([]domain.EventRecord, error) {
	query := `
        SELECT workplace_id, sequence, event_type, payload, recorded_at
        FROM ledger_events
        WHERE workplace_id = $1
        ORDER BY sequence ASC;
    `
	rows, err := r.Pool.Query(ctx, query, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EventRecord, error) {
		var rec domain.EventRecord
		var payload []byte
		if err := row.Scan(&rec.WorkplaceID, &rec.Sequence, &rec.Type, &payload, &rec.RecordedAt); err != nil {
			return rec, err
		}
		rec.Payload = payload
		return rec, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}
	return records, nil
}

// ListWorkplaces returns every workplace with a non-empty log.
func (r *PgxEventRepository) ListWorkplaces(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT workplace_id FROM ledger_events ORDER BY workplace_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workplaces: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan workplaces: %w", err)
	}
	return ids, nil
}
