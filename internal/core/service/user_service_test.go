package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
	"github.com/Dorian-Reyes18/user-recolector/internal/core/ports"
)

func TestSystemUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewSystemUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.SystemUserInput{
		Username: "operator",
		Password: "hunter2",
		RoleID:   2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == 0 || user.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", user)
	}

	cred := repo.creds["operator"]
	if cred.PasswordHash == "hunter2" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("hunter2")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestSystemUserService_Update_PasswordOmitted(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewSystemUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.SystemUserInput{
		Username: "operator", Password: "hunter2", RoleID: 2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Absent password means "leave unchanged": the repo must receive an
	// empty hash, not a hash of the empty string.
	updated, err := svc.Update(context.Background(), created.ID, ports.SystemUserInput{
		Username: "operator2", RoleID: 1,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Username != "operator2" || updated.RoleID != 1 {
		t.Fatalf("unexpected updated record: %+v", updated)
	}
	if repo.lastUpdateHash != "" {
		t.Fatalf("expected empty hash passed to repo, got %q", repo.lastUpdateHash)
	}
}

func TestSystemUserService_Update_PasswordProvided(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewSystemUserService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.SystemUserInput{
		Username: "operator", Password: "hunter2", RoleID: 2,
	})

	if _, err := svc.Update(context.Background(), created.ID, ports.SystemUserInput{
		Username: "operator", Password: "newpass", RoleID: 2,
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if repo.lastUpdateHash == "" || repo.lastUpdateHash == "newpass" {
		t.Fatalf("expected a fresh bcrypt hash, got %q", repo.lastUpdateHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastUpdateHash), []byte("newpass")); err != nil {
		t.Fatalf("updated hash does not match new password: %v", err)
	}
}

func TestSystemUserService_Update_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewSystemUserService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), 99, ports.SystemUserInput{Username: "x", RoleID: 1}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSystemUserService_Delete_ReturnsSnapshot(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewSystemUserService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.SystemUserInput{
		Username: "operator", Password: "hunter2", RoleID: 2,
	})

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.Username != "operator" {
		t.Fatalf("unexpected snapshot: %+v", deleted)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}
}

func TestSystemUserService_List_Pagination(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewSystemUserService(repo, zerolog.Nop())

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(context.Background(), ports.SystemUserInput{
			Username: "user" + string(rune('a'+i)), Password: "pw", RoleID: 2,
		}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	page, err := svc.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 5 || page.TotalPages != 3 || len(page.Items) != 2 {
		t.Fatalf("unexpected page: total=%d totalPages=%d items=%d", page.Total, page.TotalPages, len(page.Items))
	}
	if page.Items[0].ID != 3 {
		t.Fatalf("expected second page to start at id 3, got %d", page.Items[0].ID)
	}
}
