package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRunID            = errors.New("invalid run id")
	ErrRunNotFound             = errors.New("conversion run not found")
	ErrSessionAlreadyConverted = errors.New("session already converted")
	ErrConversionInProgress    = errors.New("conversion already in progress for this session")
	ErrOrderGatewayMissing     = errors.New("order gateway not configured")
)

// IConversionUseCase validates a session's group set and executes the
// conversion run against the external order service.
//
// Execution is strictly sequential in group-set order so generated order
// numbers stay deterministic for a given ordering. A failed group never
// aborts the run; the per-group outcome lands in the run's results and the
// run completes once every group was attempted exactly once.

type IConversionUseCase interface {
	Validate(ctx context.Context, sessionID string) error
	Execute(ctx context.Context, sessionID string, settings entities.ConversionSettings) (entities.ConversionRun, error)
	GetRun(ctx context.Context, runID string) (entities.ConversionRun, error)
}

type ConversionUseCase struct {
	sessionRepo interfaces.ISessionRepository
	quoteRepo   interfaces.IQuoteRepository
	runRepo     interfaces.IConversionRunRepository
	gateway     interfaces.IOrderGateway

	// progress, when set, observes the run snapshot after every attempted
	// group. Used by callers that want in-process streaming instead of
	// polling the persisted run.
	progress func(entities.ConversionRun)
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(
	sessionRepo interfaces.ISessionRepository,
	quoteRepo interfaces.IQuoteRepository,
	runRepo interfaces.IConversionRunRepository,
	gateway interfaces.IOrderGateway,
) *ConversionUseCase {
	return &ConversionUseCase{sessionRepo: sessionRepo, quoteRepo: quoteRepo, runRepo: runRepo, gateway: gateway}
}

// SetProgressHook registers an observer called with a copy of the run after
// each attempted group. Must be set before Execute is called.
func (u *ConversionUseCase) SetProgressHook(fn func(entities.ConversionRun)) {
	u.progress = fn
}

// Validate runs the pre-conversion checks and returns a *ValidationError
// enumerating every violation, or nil when the session may convert.
func (u *ConversionUseCase) Validate(ctx context.Context, sessionID string) error {
	s, q, err := u.loadSessionAndQuote(ctx, sessionID)
	if err != nil {
		return err
	}
	if verr := validateSession(q, s); verr != nil {
		log.Printf("[conversion][usecase] validation failed session_id=%s violations=%d", s.ID, len(verr.Violations))
		return verr
	}
	return nil
}

// Execute converts every group of the session into one order, sequentially.
//
// Per-group failures are recorded, not propagated. Cancellation is honored
// between groups only: results already attempted are kept, the persisted run
// keeps its last snapshot and the session returns to draft so the caller can
// decide how to proceed.
func (u *ConversionUseCase) Execute(ctx context.Context, sessionID string, settings entities.ConversionSettings) (entities.ConversionRun, error) {
	if u.gateway == nil {
		return entities.ConversionRun{}, ErrOrderGatewayMissing
	}

	s, q, err := u.loadSessionAndQuote(ctx, sessionID)
	if err != nil {
		return entities.ConversionRun{}, err
	}
	switch s.Status {
	case entities.SessionStatusConverted:
		return entities.ConversionRun{}, ErrSessionAlreadyConverted
	case entities.SessionStatusConverting:
		return entities.ConversionRun{}, ErrConversionInProgress
	}
	if verr := validateSession(q, s); verr != nil {
		log.Printf("[conversion][usecase] execute blocked by validation session_id=%s violations=%d", s.ID, len(verr.Violations))
		return entities.ConversionRun{}, verr
	}

	run := entities.ConversionRun{
		ID:        uuid.NewString(),
		SessionID: s.ID,
		Results:   []entities.ConversionResult{},
		Progress:  0,
		Status:    entities.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	run, err = u.runRepo.Create(ctx, run)
	if err != nil {
		return entities.ConversionRun{}, err
	}

	s.Status = entities.SessionStatusConverting
	s.UpdatedAt = time.Now().UTC()
	if s, err = u.sessionRepo.Update(ctx, s); err != nil {
		return entities.ConversionRun{}, err
	}

	total := len(s.Groups)
	log.Printf("[conversion][usecase] run start run_id=%s session_id=%s groups=%d", run.ID, s.ID, total)

	for i, g := range s.Groups {
		if err := ctx.Err(); err != nil {
			log.Printf("[conversion][usecase] run cancelled run_id=%s attempted=%d/%d", run.ID, i, total)
			u.reopenSession(s)
			return run, err
		}

		effective := effectiveGroup(g, settings)
		orderID, orderNumber, _, err := u.gateway.CreateOrder(ctx, effective, settings)

		res := entities.ConversionResult{GroupID: g.ID, GroupName: g.Name}
		if err != nil {
			res.Status = entities.ResultStatusFailed
			res.Error = err.Error()
			log.Printf("[conversion][usecase] group failed run_id=%s group_id=%s err=%v", run.ID, g.ID, err)
		} else {
			res.Status = entities.ResultStatusSuccess
			res.OrderID = orderID
			res.OrderNumber = orderNumber
			log.Printf("[conversion][usecase] group converted run_id=%s group_id=%s order_id=%s order_number=%s", run.ID, g.ID, orderID, orderNumber)
		}

		run.Results = append(run.Results, res)
		run.Progress = (i + 1) * 100 / total
		u.persistSnapshot(ctx, run)
		if u.progress != nil {
			u.progress(run)
		}
	}

	run.Progress = 100
	run.Status = entities.RunStatusCompleted
	run.FinishedAt = time.Now().UTC()
	u.persistSnapshot(ctx, run)

	s.Status = entities.SessionStatusConverted
	s.UpdatedAt = time.Now().UTC()
	if _, err := u.sessionRepo.Update(context.WithoutCancel(ctx), s); err != nil {
		log.Printf("[conversion][usecase] session finalize failed session_id=%s err=%v", s.ID, err)
	}

	log.Printf("[conversion][usecase] run completed run_id=%s succeeded=%d failed=%d", run.ID, run.SucceededCount(), run.FailedCount())
	return run, nil
}

func (u *ConversionUseCase) GetRun(ctx context.Context, runID string) (entities.ConversionRun, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return entities.ConversionRun{}, ErrInvalidRunID
	}
	r, err := u.runRepo.GetByID(ctx, runID)
	if err != nil {
		return entities.ConversionRun{}, err
	}
	if r.ID == "" {
		return entities.ConversionRun{}, ErrRunNotFound
	}
	return r, nil
}

func (u *ConversionUseCase) loadSessionAndQuote(ctx context.Context, sessionID string) (entities.ConversionSession, entities.Quote, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.ConversionSession{}, entities.Quote{}, ErrInvalidSessionID
	}
	s, err := u.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return entities.ConversionSession{}, entities.Quote{}, err
	}
	if s.ID == "" {
		return entities.ConversionSession{}, entities.Quote{}, ErrSessionNotFound
	}
	q, err := u.quoteRepo.GetByID(ctx, s.QuoteID)
	if err != nil {
		return entities.ConversionSession{}, entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.ConversionSession{}, entities.Quote{}, ErrQuoteNotFound
	}
	return s, q, nil
}

// persistSnapshot writes the current run state so pollers see progress
// between groups. A persistence hiccup must not abort the conversion; the
// next snapshot or the final one will catch up.
func (u *ConversionUseCase) persistSnapshot(ctx context.Context, run entities.ConversionRun) {
	if _, err := u.runRepo.Update(context.WithoutCancel(ctx), run); err != nil {
		log.Printf("[conversion][usecase] run snapshot persist failed run_id=%s progress=%d err=%v", run.ID, run.Progress, err)
	}
}

func (u *ConversionUseCase) reopenSession(s entities.ConversionSession) {
	s.Status = entities.SessionStatusDraft
	s.UpdatedAt = time.Now().UTC()
	if _, err := u.sessionRepo.Update(context.Background(), s); err != nil {
		log.Printf("[conversion][usecase] session reopen failed session_id=%s err=%v", s.ID, err)
	}
}

// effectiveGroup applies the run-wide settings to one group. Group fields
// win; settings only fill fields the group left at their zero value.
func effectiveGroup(g entities.Group, settings entities.ConversionSettings) entities.Group {
	out := g
	if !out.UrgencyLevel.Valid() && settings.UrgencyLevel.Valid() {
		out.UrgencyLevel = settings.UrgencyLevel
	}
	if out.ExpectedProductionDays < 1 && settings.ExpectedProductionDays >= 1 {
		out.ExpectedProductionDays = settings.ExpectedProductionDays
	}
	if out.SpecialInstructions == "" {
		out.SpecialInstructions = settings.SpecialInstructions
	}
	return out
}
