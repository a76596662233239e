package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

// Register creates a new user account and immediately issues a token pair.
// A taken email or username surfaces as a field-level ValidationError.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	if err := input.Validate(s.cfg.PasswordMinLen); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.users.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		result, err = s.issueTokens(ctx, created)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return nil, vErr
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", result.User.ID.String()),
		slog.String("username", result.User.Username))

	return result, nil
}
