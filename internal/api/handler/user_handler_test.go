package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
	"github.com/Dorian-Reyes18/user-recolector/internal/core/ports"
)

type stubSystemUserService struct {
	listFn   func(ctx context.Context, page, limit int) (*ports.SystemUserPage, error)
	getFn    func(ctx context.Context, id int64) (*domain.SystemUser, error)
	createFn func(ctx context.Context, in ports.SystemUserInput) (*domain.SystemUser, error)
	updateFn func(ctx context.Context, id int64, in ports.SystemUserInput) (*domain.SystemUser, error)
	deleteFn func(ctx context.Context, id int64) (*domain.SystemUser, error)
}

func (s *stubSystemUserService) List(ctx context.Context, page, limit int) (*ports.SystemUserPage, error) {
	return s.listFn(ctx, page, limit)
}

func (s *stubSystemUserService) Get(ctx context.Context, id int64) (*domain.SystemUser, error) {
	return s.getFn(ctx, id)
}

func (s *stubSystemUserService) Create(ctx context.Context, in ports.SystemUserInput) (*domain.SystemUser, error) {
	return s.createFn(ctx, in)
}

func (s *stubSystemUserService) Update(ctx context.Context, id int64, in ports.SystemUserInput) (*domain.SystemUser, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubSystemUserService) Delete(ctx context.Context, id int64) (*domain.SystemUser, error) {
	return s.deleteFn(ctx, id)
}

func TestSystemUserHandler_Create_Success(t *testing.T) {
	stub := &stubSystemUserService{
		createFn: func(ctx context.Context, in ports.SystemUserInput) (*domain.SystemUser, error) {
			if in.Username != "bob" || in.Password != "secret" || in.RoleID != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.SystemUser{ID: 3, Username: in.Username, RoleID: in.RoleID}, nil
		},
	}
	handler := NewSystemUserHandler(stub)

	body := `{"username":"bob","password":"secret","role_id":2}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/users", body)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["username"] != "bob" {
		t.Fatalf("unexpected data payload: %+v", resp["data"])
	}
	if _, leaked := data["password_hash"]; leaked {
		t.Fatalf("response must not carry a password hash")
	}
}

func TestSystemUserHandler_Create_MissingFields(t *testing.T) {
	stub := &stubSystemUserService{
		createFn: func(ctx context.Context, in ports.SystemUserInput) (*domain.SystemUser, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewSystemUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/users", `{"username":"bob"}`)
	err := handler.Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected password and role_id reported, got %v", ve.Fields)
	}
}

func TestSystemUserHandler_Update_PasswordOptional(t *testing.T) {
	stub := &stubSystemUserService{
		updateFn: func(ctx context.Context, id int64, in ports.SystemUserInput) (*domain.SystemUser, error) {
			if in.Password != "" {
				t.Fatalf("absent password must reach the service empty, got %q", in.Password)
			}
			return &domain.SystemUser{ID: id, Username: in.Username, RoleID: in.RoleID}, nil
		},
	}
	handler := NewSystemUserHandler(stub)

	body := `{"username":"bob","role_id":2}`
	c, rec := newTestContextWithID(t, http.MethodPut, "/v1/users/3", "3", body)
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSystemUserHandler_Update_NotFound(t *testing.T) {
	stub := &stubSystemUserService{
		updateFn: func(ctx context.Context, id int64, in ports.SystemUserInput) (*domain.SystemUser, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewSystemUserHandler(stub)

	body := `{"username":"ghost","role_id":2}`
	c, _ := newTestContextWithID(t, http.MethodPut, "/v1/users/99", "99", body)
	err := handler.Update(c)

	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSystemUserHandler_List_Envelope(t *testing.T) {
	stub := &stubSystemUserService{
		listFn: func(ctx context.Context, page, limit int) (*ports.SystemUserPage, error) {
			return &ports.SystemUserPage{
				Items:      []domain.SystemUser{{ID: 1, Username: "alice", RoleID: 1}},
				Total:      1,
				Page:       1,
				Limit:      50,
				TotalPages: 1,
			}, nil
		},
	}
	handler := NewSystemUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/users", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"message", "page", "limit", "total", "totalPages", "data"} {
		if _, ok := resp[key]; !ok {
			t.Fatalf("envelope missing %q: %+v", key, resp)
		}
	}
}
