package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
	"github.com/Dorian-Reyes18/user-recolector/internal/core/ports"
)

// CustomerService implements CRUD over the customer registry. Each
// operation is a single store call; field validation happens at the
// transport boundary.
type CustomerService struct {
	repo ports.CustomerRepository
	log  zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, log zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

func (s *CustomerService) List(ctx context.Context, page, limit int) (*ports.CustomerPage, error) {
	page, limit = normalizePaging(page, limit)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Customer{}
	}

	return &ports.CustomerPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.Insert(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("customer_id", customer.ID).Str("account_number", customer.AccountNumber).Msg("customer created")
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, in ports.CustomerInput) (*domain.Customer, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("customer_id", id).Msg("customer deleted")
	return customer, nil
}
