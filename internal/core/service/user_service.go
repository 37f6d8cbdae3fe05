package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
	"github.com/Dorian-Reyes18/user-recolector/internal/core/ports"
)

// SystemUserService implements CRUD over the login table. Plaintext
// passwords are hashed here; repositories only ever see the hash.
type SystemUserService struct {
	repo ports.SystemUserRepository
	log  zerolog.Logger
}

func NewSystemUserService(repo ports.SystemUserRepository, log zerolog.Logger) *SystemUserService {
	return &SystemUserService{repo: repo, log: log}
}

func (s *SystemUserService) List(ctx context.Context, page, limit int) (*ports.SystemUserPage, error) {
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
		items = []domain.SystemUser{}
	}

	return &ports.SystemUserPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *SystemUserService) Get(ctx context.Context, id int64) (*domain.SystemUser, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SystemUserService) Create(ctx context.Context, in ports.SystemUserInput) (*domain.SystemUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Insert(ctx, in.Username, string(hash), in.RoleID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("system user created")
	return user, nil
}

// Update rewrites username and role. An empty password means "leave the
// stored hash unchanged".
func (s *SystemUserService) Update(ctx context.Context, id int64, in ports.SystemUserInput) (*domain.SystemUser, error) {
	var hash string
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	return s.repo.Update(ctx, id, in.Username, in.RoleID, hash)
}

func (s *SystemUserService) Delete(ctx context.Context, id int64) (*domain.SystemUser, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Msg("system user deleted")
	return user, nil
}
