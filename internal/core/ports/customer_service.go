package ports

import (
	"context"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
)

// CustomerPage is one page of customers plus pagination bookkeeping.
type CustomerPage struct {
	Items      []domain.Customer
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type CustomerService interface {
	// List applies the pagination defaults (page 1, limit 50) and the
	// limit cap before querying.
	List(ctx context.Context, page, limit int) (*CustomerPage, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) (*domain.Customer, error)
}
