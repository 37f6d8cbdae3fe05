package ports

import (
	"context"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
)

// CustomerInput carries the writable fields of a customer record.
type CustomerInput struct {
	AccountNumber string
	Name          string
	Phone         string
	Branch        string
}

// CustomerRepository defines persistence operations for the customer
// registry. Every method issues exactly one statement.
type CustomerRepository interface {
	Count(ctx context.Context) (int64, error)
	// List returns up to limit customers ordered by ascending id,
	// skipping offset rows.
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	Insert(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, in CustomerInput) (*domain.Customer, error)
	// Delete removes the row and returns its last snapshot.
	Delete(ctx context.Context, id int64) (*domain.Customer, error)
}
