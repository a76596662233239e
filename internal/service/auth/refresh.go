package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/auth"
	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

// Refresh performs token rotation and returns a new access/refresh pair.
// A token that is unknown, revoked or expired yields ErrUnauthorized. Reuse
// of a revoked token revokes every active token for that user.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh with unknown token")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() {
		// Rotation already consumed this token. Treat reuse as theft and
		// invalidate the whole session family.
		s.log.WarnContext(ctx, "refresh token reuse detected",
			slog.String("user_id", token.UserID.String()))
		if err := s.tokens.RevokeAllForUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke all: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.Revoke(ctx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		result, err = s.issueTokens(ctx, user)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	return result, nil
}

// Logout revokes the given refresh token. Unknown tokens are ignored so the
// operation is idempotent.
func (s *Service) Logout(ctx context.Context, input RefreshInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout get token: %w", err)
	}

	if err := s.tokens.Revoke(ctx, token.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.Logout revoke: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", token.UserID.String()))

	return nil
}

// CleanupExpiredTokens deletes refresh tokens past their expiry. Used by the
// maintenance command.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	n, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired refresh tokens deleted", slog.Int64("count", n))
	}
	return n, nil
}
