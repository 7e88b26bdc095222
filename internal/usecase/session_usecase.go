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
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrInvalidStrategy    = errors.New("invalid partition strategy")
	ErrInvalidOperation   = errors.New("invalid group operation")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteNotApproved   = errors.New("quote not approved")
	ErrQuoteHasNoItems    = errors.New("quote has no line items")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionNotDraft    = errors.New("session is no longer editable")
	ErrStrategyNotCustom  = errors.New("group mutations require the custom strategy")
	ErrSwitchNotConfirmed = errors.New("strategy switch discards current groups and must be confirmed")
)

// ISessionUseCase exposes the conversion session operations: starting a
// session from an approved quote, regenerating the partition under another
// strategy, and the manual group mutations available under the custom
// strategy.
//
// Every mutation is functional: the stored group set is replaced by a newly
// built one, never edited in place, so a failed operation leaves the session
// exactly as it was.

type ISessionUseCase interface {
	StartSession(ctx context.Context, quoteID string, strategy entities.PartitionStrategy) (entities.ConversionSession, error)
	GetSession(ctx context.Context, id string) (entities.ConversionSession, error)
	SwitchStrategy(ctx context.Context, id string, strategy entities.PartitionStrategy, confirmed bool) (entities.ConversionSession, error)
	AddGroup(ctx context.Context, sessionID string) (entities.ConversionSession, error)
	MergeGroups(ctx context.Context, sessionID string, groupIDs []string) (entities.ConversionSession, error)
	SplitGroup(ctx context.Context, sessionID, groupID string) (entities.ConversionSession, error)
	DuplicateGroup(ctx context.Context, sessionID, groupID string) (entities.ConversionSession, error)
	RemoveGroup(ctx context.Context, sessionID, groupID string) (entities.ConversionSession, error)
	UpdateGroup(ctx context.Context, sessionID, groupID string, patch GroupPatch) (entities.ConversionSession, error)
	AcknowledgeDuplication(ctx context.Context, sessionID string) (entities.ConversionSession, error)
}

type SessionUseCase struct {
	sessionRepo interfaces.ISessionRepository
	quoteRepo   interfaces.IQuoteRepository
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(sessionRepo interfaces.ISessionRepository, quoteRepo interfaces.IQuoteRepository) *SessionUseCase {
	return &SessionUseCase{sessionRepo: sessionRepo, quoteRepo: quoteRepo}
}

func (u *SessionUseCase) StartSession(ctx context.Context, quoteID string, strategy entities.PartitionStrategy) (entities.ConversionSession, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.ConversionSession{}, ErrInvalidQuoteID
	}
	if !strategy.Valid() {
		return entities.ConversionSession{}, ErrInvalidStrategy
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.ConversionSession{}, err
	}
	if q.ID == "" {
		return entities.ConversionSession{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAprovado {
		return entities.ConversionSession{}, ErrQuoteNotApproved
	}
	if len(q.Items) == 0 {
		return entities.ConversionSession{}, ErrQuoteHasNoItems
	}

	groups, err := GenerateGroups(q, strategy)
	if err != nil {
		return entities.ConversionSession{}, err
	}

	now := time.Now().UTC()
	s := entities.ConversionSession{
		ID:        uuid.NewString(),
		QuoteID:   q.ID,
		Strategy:  strategy,
		Groups:    groups,
		Status:    entities.SessionStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	log.Printf("[conversion][usecase] session start quote_id=%s strategy=%s groups=%d", q.ID, strategy, len(groups))
	return u.sessionRepo.Create(ctx, s)
}

func (u *SessionUseCase) GetSession(ctx context.Context, id string) (entities.ConversionSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ConversionSession{}, ErrInvalidSessionID
	}
	s, err := u.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return entities.ConversionSession{}, err
	}
	if s.ID == "" {
		return entities.ConversionSession{}, ErrSessionNotFound
	}
	return s, nil
}

// SwitchStrategy discards the current group set and regenerates from scratch.
// Destructive, so the caller must pass confirmed=true.
func (u *SessionUseCase) SwitchStrategy(ctx context.Context, id string, strategy entities.PartitionStrategy, confirmed bool) (entities.ConversionSession, error) {
	if !strategy.Valid() {
		return entities.ConversionSession{}, ErrInvalidStrategy
	}
	if !confirmed {
		return entities.ConversionSession{}, ErrSwitchNotConfirmed
	}

	s, err := u.GetSession(ctx, id)
	if err != nil {
		return entities.ConversionSession{}, err
	}
	if s.Status != entities.SessionStatusDraft {
		return entities.ConversionSession{}, ErrSessionNotDraft
	}

	q, err := u.quoteRepo.GetByID(ctx, s.QuoteID)
	if err != nil {
		return entities.ConversionSession{}, err
	}
	if q.ID == "" {
		return entities.ConversionSession{}, ErrQuoteNotFound
	}

	groups, err := GenerateGroups(q, strategy)
	if err != nil {
		return entities.ConversionSession{}, err
	}

	log.Printf("[conversion][usecase] strategy switch session_id=%s from=%s to=%s groups=%d", s.ID, s.Strategy, strategy, len(groups))
	s.Strategy = strategy
	s.Groups = groups
	s.DuplicationAcknowledged = false
	s.UpdatedAt = time.Now().UTC()
	return u.sessionRepo.Update(ctx, s)
}

func (u *SessionUseCase) AddGroup(ctx context.Context, sessionID string) (entities.ConversionSession, error) {
	return u.mutate(ctx, sessionID, "add-group", func(s entities.ConversionSession) ([]entities.Group, bool, error) {
		return addGroup(s.Groups), false, nil
	})
}

func (u *SessionUseCase) MergeGroups(ctx context.Context, sessionID string, groupIDs []string) (entities.ConversionSession, error) {
	return u.mutate(ctx, sessionID, "merge", func(s entities.ConversionSession) ([]entities.Group, bool, error) {
		groups, err := mergeGroups(s.Groups, groupIDs)
		return groups, false, err
	})
}

func (u *SessionUseCase) SplitGroup(ctx context.Context, sessionID, groupID string) (entities.ConversionSession, error) {
	return u.mutate(ctx, sessionID, "split", func(s entities.ConversionSession) ([]entities.Group, bool, error) {
		groups, err := splitGroup(s.Groups, groupID)
		return groups, false, err
	})
}

// DuplicateGroup copies a group including its item references. The resulting
// overlap is recorded by clearing the session's duplication acknowledgment so
// validation surfaces it until the caller explicitly accepts it.
func (u *SessionUseCase) DuplicateGroup(ctx context.Context, sessionID, groupID string) (entities.ConversionSession, error) {
	return u.mutate(ctx, sessionID, "duplicate", func(s entities.ConversionSession) ([]entities.Group, bool, error) {
		groups, err := duplicateGroup(s.Groups, groupID)
		return groups, true, err
	})
}

func (u *SessionUseCase) RemoveGroup(ctx context.Context, sessionID, groupID string) (entities.ConversionSession, error) {
	return u.mutate(ctx, sessionID, "remove-group", func(s entities.ConversionSession) ([]entities.Group, bool, error) {
		groups, err := removeGroup(s.Groups, groupID)
		return groups, false, err
	})
}

func (u *SessionUseCase) UpdateGroup(ctx context.Context, sessionID, groupID string, patch GroupPatch) (entities.ConversionSession, error) {
	return u.mutate(ctx, sessionID, "update-group", func(s entities.ConversionSession) ([]entities.Group, bool, error) {
		groups, err := updateGroup(s.Groups, groupID, patch)
		return groups, false, err
	})
}

func (u *SessionUseCase) AcknowledgeDuplication(ctx context.Context, sessionID string) (entities.ConversionSession, error) {
	s, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return entities.ConversionSession{}, err
	}
	if s.Status != entities.SessionStatusDraft {
		return entities.ConversionSession{}, ErrSessionNotDraft
	}

	log.Printf("[conversion][usecase] duplication acknowledged session_id=%s", s.ID)
	s.DuplicationAcknowledged = true
	s.UpdatedAt = time.Now().UTC()
	return u.sessionRepo.Update(ctx, s)
}

// mutate loads the session, enforces the mutation preconditions (draft
// status, custom strategy), applies the pure group operation and persists the
// replaced group set. resetAck marks mutations that introduce a duplication
// exception.
func (u *SessionUseCase) mutate(
	ctx context.Context,
	sessionID, op string,
	apply func(s entities.ConversionSession) (groups []entities.Group, resetAck bool, err error),
) (entities.ConversionSession, error) {
	s, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return entities.ConversionSession{}, err
	}
	if s.Status != entities.SessionStatusDraft {
		return entities.ConversionSession{}, ErrSessionNotDraft
	}
	if s.Strategy != entities.StrategyCustom {
		return entities.ConversionSession{}, ErrStrategyNotCustom
	}

	groups, resetAck, err := apply(s)
	if err != nil {
		log.Printf("[conversion][usecase] %s rejected session_id=%s err=%v", op, s.ID, err)
		return entities.ConversionSession{}, err
	}

	log.Printf("[conversion][usecase] %s applied session_id=%s groups=%d", op, s.ID, len(groups))
	s.Groups = groups
	if resetAck {
		s.DuplicationAcknowledged = false
	}
	s.UpdatedAt = time.Now().UTC()
	return u.sessionRepo.Update(ctx, s)
}
