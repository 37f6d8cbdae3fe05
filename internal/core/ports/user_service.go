package ports

import (
	"context"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
)

// SystemUserInput carries the writable fields of a login account. Password
// is plaintext here; hashing happens in the service layer.
type SystemUserInput struct {
	Username string
	Password string
	RoleID   int64
}

// SystemUserPage is one page of system users plus pagination bookkeeping.
type SystemUserPage struct {
	Items      []domain.SystemUser
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type SystemUserService interface {
	List(ctx context.Context, page, limit int) (*SystemUserPage, error)
	Get(ctx context.Context, id int64) (*domain.SystemUser, error)
	Create(ctx context.Context, in SystemUserInput) (*domain.SystemUser, error)
	// Update treats an empty password as "leave unchanged".
	Update(ctx context.Context, id int64, in SystemUserInput) (*domain.SystemUser, error)
	Delete(ctx context.Context, id int64) (*domain.SystemUser, error)
}
