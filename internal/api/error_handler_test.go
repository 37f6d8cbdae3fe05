package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Dorian-Reyes18/user-recolector/internal/core/domain"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)
	return rec
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec := render(t, &domain.ValidationError{Fields: []string{"username", "password"}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	want := `{"message":"missing required fields: username, password"}` + "\n"
	if rec.Body.String() != want {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestErrorHandler_ConflictError(t *testing.T) {
	rec := render(t, &domain.ConflictError{Field: "username"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	want := `{"message":"username already exists"}` + "\n"
	if rec.Body.String() != want {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestErrorHandler_NotFound(t *testing.T) {
	rec := render(t, domain.ErrCustomerNotFound)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = render(t, domain.ErrUserNotFound)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

// Unknown usernames and wrong passwords must render the exact same body so
// responses cannot be used to probe which usernames exist.
func TestErrorHandler_InvalidCredentials(t *testing.T) {
	rec := render(t, domain.ErrInvalidCredentials)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	want := `{"message":"invalid username or password"}` + "\n"
	if rec.Body.String() != want {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestErrorHandler_HTTPErrorPassthrough(t *testing.T) {
	rec := render(t, echo.NewHTTPError(http.StatusForbidden, "access denied"))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	want := `{"message":"access denied"}` + "\n"
	if rec.Body.String() != want {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := render(t, errors.New("pq: connection reset by peer"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	want := `{"message":"internal server error"}` + "\n"
	if rec.Body.String() != want {
		t.Fatalf("store detail must not leak: %q", rec.Body.String())
	}
}
