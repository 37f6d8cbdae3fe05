package ports

import (
	"context"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
)

// SystemUserRepository defines persistence operations for login accounts
// and the role lookup backing registration.
type SystemUserRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]domain.SystemUser, error)
	FindByID(ctx context.Context, id int64) (*domain.SystemUser, error)
	Insert(ctx context.Context, username, passwordHash string, roleID int64) (*domain.SystemUser, error)
	// Update rewrites username and role; an empty passwordHash leaves the
	// stored hash unchanged.
	Update(ctx context.Context, id int64, username string, roleID int64, passwordHash string) (*domain.SystemUser, error)
	Delete(ctx context.Context, id int64) (*domain.SystemUser, error)

	// FindCredentials returns the stored hash joined with the role name,
	// or domain.ErrUserNotFound.
	FindCredentials(ctx context.Context, username string) (*domain.Credential, error)
	// FindRoleID resolves a role name to its id, or domain.ErrRoleNotConfigured.
	FindRoleID(ctx context.Context, name domain.Role) (int64, error)
}
