package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
)

const (
	systemUsersTable = "system_users"
	rolesTable       = "roles"
)

type SystemUserRepository struct {
	pool *pgxpool.Pool
}

func NewSystemUserRepository(pool *pgxpool.Pool) *SystemUserRepository {
	return &SystemUserRepository{pool: pool}
}

func (r *SystemUserRepository) Count(ctx context.Context) (int64, error) {
	const op = "postgres.systemUsers.Count"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var total int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", systemUsersTable)
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// List never selects password_hash; the hash stays inside the store and
// the login path.
func (r *SystemUserRepository) List(ctx context.Context, limit, offset int) ([]domain.SystemUser, error) {
	const op = "postgres.systemUsers.List"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(
		"SELECT id, username, role_id, created_at FROM %s ORDER BY id ASC LIMIT $1 OFFSET $2",
		systemUsersTable,
	)
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []domain.SystemUser
	for rows.Next() {
		var u domain.SystemUser
		if err := rows.Scan(&u.ID, &u.Username, &u.RoleID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s (rows): %w", op, err)
	}

	return users, nil
}

func (r *SystemUserRepository) FindByID(ctx context.Context, id int64) (*domain.SystemUser, error) {
	const op = "postgres.systemUsers.FindByID"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT id, username, role_id, created_at FROM %s WHERE id=$1", systemUsersTable)

	var u domain.SystemUser
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.RoleID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (r *SystemUserRepository) Insert(ctx context.Context, username, passwordHash string, roleID int64) (*domain.SystemUser, error) {
	const op = "postgres.systemUsers.Insert"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(
		`INSERT INTO %s (username, password_hash, role_id) VALUES ($1, $2, $3)
		 RETURNING id, username, role_id, created_at`,
		systemUsersTable,
	)

	var u domain.SystemUser
	err := r.pool.QueryRow(ctx, query, username, passwordHash, roleID).
		Scan(&u.ID, &u.Username, &u.RoleID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{Field: "username"}
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// Update rewrites username and role. An empty passwordHash keeps the stored
// hash, mirroring the "absent means unchanged" update contract.
func (r *SystemUserRepository) Update(ctx context.Context, id int64, username string, roleID int64, passwordHash string) (*domain.SystemUser, error) {
	const op = "postgres.systemUsers.Update"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		query string
		args  []interface{}
	)
	if passwordHash != "" {
		query = fmt.Sprintf(
			`UPDATE %s SET username=$1, role_id=$2, password_hash=$3 WHERE id=$4
			 RETURNING id, username, role_id, created_at`,
			systemUsersTable,
		)
		args = []interface{}{username, roleID, passwordHash, id}
	} else {
		query = fmt.Sprintf(
			`UPDATE %s SET username=$1, role_id=$2 WHERE id=$3
			 RETURNING id, username, role_id, created_at`,
			systemUsersTable,
		)
		args = []interface{}{username, roleID, id}
	}

	var u domain.SystemUser
	err := r.pool.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Username, &u.RoleID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{Field: "username"}
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (r *SystemUserRepository) Delete(ctx context.Context, id int64) (*domain.SystemUser, error) {
	const op = "postgres.systemUsers.Delete"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE id=$1 RETURNING id, username, role_id, created_at",
		systemUsersTable,
	)

	var u domain.SystemUser
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.RoleID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (r *SystemUserRepository) FindCredentials(ctx context.Context, username string) (*domain.Credential, error) {
	const op = "postgres.systemUsers.FindCredentials"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(
		`SELECT u.id, u.username, u.password_hash, r.name
		 FROM %s u JOIN %s r ON u.role_id = r.id
		 WHERE u.username = $1`,
		systemUsersTable, rolesTable,
	)

	var cred domain.Credential
	err := r.pool.QueryRow(ctx, query, username).Scan(&cred.ID, &cred.Username, &cred.PasswordHash, &cred.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cred, nil
}

func (r *SystemUserRepository) FindRoleID(ctx context.Context, name domain.Role) (int64, error) {
	const op = "postgres.systemUsers.FindRoleID"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT id FROM %s WHERE name=$1", rolesTable)

	var id int64
	err := r.pool.QueryRow(ctx, query, string(name)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrRoleNotConfigured
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}
