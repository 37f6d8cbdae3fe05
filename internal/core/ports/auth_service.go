package ports

import (
	"context"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
)

type AuthService interface {
	// Register creates an admin credential. The admin role id is resolved
	// from the role table; a missing role is a configuration failure.
	Register(ctx context.Context, username, password string) (*domain.SystemUser, error)
	// Login verifies the password and issues a signed token. Unknown
	// usernames and wrong passwords both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.Credential, error)
}
