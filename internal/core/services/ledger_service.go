package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/trade_ledger/internal/apperrors"
	"github.com/SscSPs/trade_ledger/internal/core/domain"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	portsrepo "github.com/SscSPs/trade_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService turns requests into events and dispatches them to the
// workplace's ledger. One ledger per workplace is kept in memory and rebuilt
// from the event log on first use.
type ledgerService struct {
	BaseService
	eventRepo      portsrepo.EventRepositoryFacade
	reducer        engine.Reducer
	rules          engine.Rules
	defaultTaxRate decimal.Decimal
	now            func() time.Time
	newID          func() string

	mu      sync.Mutex
	ledgers map[string]*engine.Ledger
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithRules sets the paid tolerance and the draft reference stamped into new events.
func WithRules(rules engine.Rules) LedgerServiceOption {
	return func(s *ledgerService) {
		s.rules = rules
	}
}

// WithDefaultTaxRate sets the rate applied to lines whose product carries none.
func WithDefaultTaxRate(rate decimal.Decimal) LedgerServiceOption {
	return func(s *ledgerService) {
		s.defaultTaxRate = rate
	}
}

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// WithIDGenerator overrides the generator of new record IDs.
func WithIDGenerator(newID func() string) LedgerServiceOption {
	return func(s *ledgerService) {
		s.newID = newID
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(eventRepo portsrepo.EventRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		eventRepo:      eventRepo,
		reducer:        engine.NewReducer(),
		rules:          engine.DefaultRules(),
		defaultTaxRate: decimal.NewFromInt(20),
		now:            time.Now,
		newID:          uuid.NewString,
		ledgers:        make(map[string]*engine.Ledger),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Warmup replays every workplace found in the event log.
func (s *ledgerService) Warmup(ctx context.Context) error {
	workplaceIDs, err := s.eventRepo.ListWorkplaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workplaces: %w", err)
	}
	for _, workplaceID := range workplaceIDs {
		if _, err := s.ledger(ctx, workplaceID); err != nil {
			return err
		}
	}
	s.LogInfo(ctx, "Ledgers replayed", slog.Int("workplace_count", len(workplaceIDs)))
	return nil
}

// ledger returns the workplace's ledger, replaying it on first access.
func (s *ledgerService) ledger(ctx context.Context, workplaceID string) (*engine.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.ledgers[workplaceID]; ok {
		return l, nil
	}

	l := engine.NewLedger(workplaceID, s.reducer, s.eventRepo)
	if err := l.Replay(ctx); err != nil {
		s.LogError(ctx, err, "Failed to replay ledger", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	s.ledgers[workplaceID] = l
	s.LogDebug(ctx, "Ledger loaded", slog.String("workplace_id", workplaceID), slog.Int64("sequence", l.Sequence()))
	return l, nil
}

// snapshot returns the workplace's current state.
func (s *ledgerService) snapshot(ctx context.Context, workplaceID string) (engine.State, error) {
	l, err := s.ledger(ctx, workplaceID)
	if err != nil {
		return engine.State{}, err
	}
	return l.Snapshot(), nil
}

// dispatch applies an event to the workplace's ledger and logs the outcome.
func (s *ledgerService) dispatch(ctx context.Context, workplaceID string, event engine.Event) (engine.State, error) {
	l, err := s.ledger(ctx, workplaceID)
	if err != nil {
		return engine.State{}, err
	}

	state, err := l.Dispatch(ctx, event)
	if err != nil {
		attrs := []any{slog.String("workplace_id", workplaceID), slog.String("event_type", string(event.Type()))}
		if isRejection(err) {
			s.LogWarn(ctx, err, "Event rejected", attrs...)
		} else {
			s.LogError(ctx, err, "Failed to dispatch event", attrs...)
		}
		return state, err
	}

	s.LogInfo(ctx, "Event applied",
		slog.String("workplace_id", workplaceID),
		slog.String("event_type", string(event.Type())),
		slog.Int64("sequence", l.Sequence()))
	return state, nil
}

// isRejection tells business-rule refusals apart from infrastructure failures.
func isRejection(err error) bool {
	for _, target := range []error{
		apperrors.ErrValidation,
		apperrors.ErrNotFound,
		apperrors.ErrDuplicate,
		apperrors.ErrReferenced,
		apperrors.ErrSessionAlreadyOpen,
		apperrors.ErrSessionClosed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// idOr returns id, or a freshly generated one when id is blank.
func (s *ledgerService) idOr(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return s.newID()
}

// dateOr returns *date, or the current instant when date is nil.
func (s *ledgerService) dateOr(date *time.Time) time.Time {
	if date != nil {
		return *date
	}
	return s.now()
}

// GetState returns the workplace state after the last accepted event.
func (s *ledgerService) GetState(ctx context.Context, workplaceID string) (*engine.State, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// GetDocument returns a document by ID.
func (s *ledgerService) GetDocument(ctx context.Context, workplaceID string, documentID string) (*domain.Document, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	doc, ok := state.FindDocument(documentID)
	if !ok {
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	return &doc, nil
}

// ListDocuments lists documents newest first, optionally of a single type.
func (s *ledgerService) ListDocuments(ctx context.Context, workplaceID string, docType domain.DocType) ([]domain.Document, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	docs := make([]domain.Document, 0, len(state.Documents))
	for _, d := range state.Documents {
		if docType == "" || d.Type == docType {
			docs = append(docs, d)
		}
	}
	slices.SortStableFunc(docs, func(a, b domain.Document) int {
		return b.Date.Compare(a.Date)
	})
	return docs, nil
}

// ListPayments lists payments newest first, optionally filtered by partner and document.
func (s *ledgerService) ListPayments(ctx context.Context, workplaceID string, partnerID string, documentID string) ([]domain.Payment, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(state.Payments))
	for _, p := range state.Payments {
		if partnerID != "" && p.PartnerID != partnerID {
			continue
		}
		if documentID != "" && !p.IsLinkedTo(documentID) {
			continue
		}
		payments = append(payments, p)
	}
	slices.SortStableFunc(payments, func(a, b domain.Payment) int {
		return b.Date.Compare(a.Date)
	})
	return payments, nil
}

// ListProducts lists products with their category label resolved from the taxonomy.
func (s *ledgerService) ListProducts(ctx context.Context, workplaceID string) ([]domain.Product, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, len(state.Products))
	for i, p := range state.Products {
		p.CategoryLabel = domain.CategoryLabel(state.Families, state.Categories, state.SubCategories, p)
		products[i] = p
	}
	return products, nil
}

// FindUserByEmail returns the active user with the given email.
func (s *ledgerService) FindUserByEmail(ctx context.Context, workplaceID string, email string) (*domain.User, error) {
	state, err := s.snapshot(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	user, ok := state.FindActiveUserByEmail(strings.TrimSpace(email))
	if !ok {
		return nil, fmt.Errorf("%w: no active user with email %s", apperrors.ErrNotFound, email)
	}
	return &user, nil
}

// ListEvents pages through the raw event log.
func (s *ledgerService) ListEvents(ctx context.Context, workplaceID string, afterSequence int64, limit int) ([]domain.EventRecord, int64, error) {
	records, err := s.eventRepo.LoadEvents(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load events", slog.String("workplace_id", workplaceID))
		return nil, 0, fmt.Errorf("failed to load events: %w", err)
	}

	start := slices.IndexFunc(records, func(r domain.EventRecord) bool { return r.Sequence > afterSequence })
	if start < 0 {
		start = len(records)
	}
	if limit <= 0 {
		limit = len(records)
	}
	end := min(start+limit, len(records))
	page := records[start:end]

	var next int64
	if end < len(records) && len(page) > 0 {
		next = page[len(page)-1].Sequence
	}
	return page, next, nil
}
