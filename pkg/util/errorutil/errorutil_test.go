package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	orig := NewConflict("Email already exists")

	mapped := ToDomainError(orig)
	if mapped.Code != "CONFLICT" || mapped.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("mapped = %+v, want CONFLICT/400", mapped)
	}
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFound("Booking"))

	mapped := ToDomainError(wrapped)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("mapped = %+v, want NOT_FOUND/404", mapped)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("pgx.ErrNoRows mapped to %d, want 404", mapped.HTTPStatus)
	}
}

func TestToDomainErrorGeneric(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("mapped = %+v, want INTERNAL_ERROR/500", mapped)
	}
	if mapped.Message != "Server error" {
		t.Fatalf("internal message = %q, want generic Server error", mapped.Message)
	}
}

func TestInvalidCredentialsSingleMessage(t *testing.T) {
	first := ToDomainError(NewInvalidCredentials())
	second := ToDomainError(NewInvalidCredentials())
	if first.Message != second.Message || first.HTTPStatus != second.HTTPStatus {
		t.Fatal("invalid-credential failures must be indistinguishable")
	}
	if first.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", first.HTTPStatus)
	}
}
