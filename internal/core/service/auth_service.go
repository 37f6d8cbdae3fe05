package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
	"github.com/Dorian-Reyes18/user-recolector/internal/core/ports"
)

// AuthService implements registration and login over the system-user table.
type AuthService struct {
	repo      ports.SystemUserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.SystemUserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates an admin credential. The admin role id comes from the
// role table; registering before that row exists is a configuration error,
// not a validation error.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.SystemUser, error) {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roleID, err := s.repo.FindRoleID(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Insert(ctx, username, string(hash), roleID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Int64("user_id", user.ID).Msg("admin user registered")
	return user, nil
}

// Login verifies the password and issues an HS256 token embedding
// {user_id, username, role} with a fixed expiry. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Credential, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	cred, err := s.repo.FindCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(cred)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", cred.Username).Str("role", string(cred.Role)).Msg("login succeeded")
	return token, cred, nil
}

func (s *AuthService) generateToken(cred *domain.Credential) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  cred.ID,
		"username": cred.Username,
		"role":     string(cred.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
