package auth

import (
	"context"
	"fmt"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
	"github.com/Atik203/Logs-Dashboard/pkg/ctxutil"
)

// Profile returns the authenticated user's account.
// Returns ErrUnauthorized when the context carries no user.
func (s *Service) Profile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Profile get user: %w", err)
	}
	return user, nil
}
