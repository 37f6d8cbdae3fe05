package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
	"github.com/Dorian-Reyes18/user-recolector/internal/core/ports"
)

const customersTable = "customers"

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	const op = "postgres.customers.Count"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var total int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", customersTable)
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	const op = "postgres.customers.List"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(
		"SELECT id, account_number, name, phone, branch, created_at FROM %s ORDER BY id ASC LIMIT $1 OFFSET $2",
		customersTable,
	)
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.AccountNumber, &c.Name, &c.Phone, &c.Branch, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s (rows): %w", op, err)
	}

	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const op = "postgres.customers.FindByID"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(
		"SELECT id, account_number, name, phone, branch, created_at FROM %s WHERE id=$1",
		customersTable,
	)

	var c domain.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.AccountNumber, &c.Name, &c.Phone, &c.Branch, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (r *CustomerRepository) Insert(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	const op = "postgres.customers.Insert"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(
		`INSERT INTO %s (account_number, name, phone, branch) VALUES ($1, $2, $3, $4)
		 RETURNING id, account_number, name, phone, branch, created_at`,
		customersTable,
	)

	var c domain.Customer
	err := r.pool.QueryRow(ctx, query, in.AccountNumber, in.Name, in.Phone, in.Branch).
		Scan(&c.ID, &c.AccountNumber, &c.Name, &c.Phone, &c.Branch, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{Field: "account number"}
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id int64, in ports.CustomerInput) (*domain.Customer, error) {
	const op = "postgres.customers.Update"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(
		`UPDATE %s SET account_number=$1, name=$2, phone=$3, branch=$4 WHERE id=$5
		 RETURNING id, account_number, name, phone, branch, created_at`,
		customersTable,
	)

	var c domain.Customer
	err := r.pool.QueryRow(ctx, query, in.AccountNumber, in.Name, in.Phone, in.Branch, id).
		Scan(&c.ID, &c.AccountNumber, &c.Name, &c.Phone, &c.Branch, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{Field: "account number"}
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) (*domain.Customer, error) {
	const op = "postgres.customers.Delete"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE id=$1 RETURNING id, account_number, name, phone, branch, created_at",
		customersTable,
	)

	var c domain.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.AccountNumber, &c.Name, &c.Phone, &c.Branch, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
