// Package preference implements CRUD over per-user saved filter
// configurations. Every operation is scoped to the authenticated caller;
// another user's preference behaves exactly like a missing one.
package preference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
	"github.com/Atik203/Logs-Dashboard/pkg/ctxutil"
)

// preferenceRepo defines the repository interface needed by the service.
type preferenceRepo interface {
	Create(ctx context.Context, p *domain.FilterPreference) (*domain.FilterPreference, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.FilterPreference, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.FilterPreference, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, p *domain.FilterPreference) (*domain.FilterPreference, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

// Service provides filter preference management.
type Service struct {
	prefs preferenceRepo
	log   *slog.Logger
}

// NewService creates a new preference service.
func NewService(logger *slog.Logger, prefs preferenceRepo) *Service {
	return &Service{
		prefs: prefs,
		log:   logger.With("service", "preference"),
	}
}

// Create saves a new named filter for the caller. The owning user is
// always taken from the authenticated context, never from the input.
func (s *Service) Create(ctx context.Context, input Input) (*domain.FilterPreference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	pref := input.preference()
	pref.UserID = userID

	created, err := s.prefs.Create(ctx, &pref)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	s.log.InfoContext(ctx, "preference created",
		slog.String("user_id", userID.String()),
		slog.Int64("preference_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

// Get returns one of the caller's preferences by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.FilterPreference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	pref, err := s.prefs.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get preference: %w", err)
	}

	return pref, nil
}

// List returns all of the caller's preferences, newest first.
func (s *Service) List(ctx context.Context) ([]domain.FilterPreference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	prefs, err := s.prefs.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}

	return prefs, nil
}

// Update replaces the filter fields of one of the caller's preferences.
func (s *Service) Update(ctx context.Context, id int64, input Input) (*domain.FilterPreference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	pref := input.preference()
	updated, err := s.prefs.Update(ctx, userID, id, &pref)
	if err != nil {
		return nil, fmt.Errorf("update preference: %w", err)
	}

	return updated, nil
}

// Delete removes one of the caller's preferences.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.prefs.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete preference: %w", err)
	}

	return nil
}
