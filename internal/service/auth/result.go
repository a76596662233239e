package auth

import "github.com/Atik203/Logs-Dashboard/internal/domain"

// AuthResult is returned by Register, Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT the stored hash
	User         *domain.User
}
