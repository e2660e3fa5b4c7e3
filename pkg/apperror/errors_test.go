package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError("Receipt")
	if err.Message != "Receipt not found" {
		t.Fatalf("message = %q, want %q", err.Message, "Receipt not found")
	}
	if !IsKind(err, KindNotFound) {
		t.Fatal("kind mismatch")
	}
}

func TestIOErrorWrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIOError("Failed to save receipt", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
	if IsKind(err, KindValidation) {
		t.Fatal("IO error matched validation kind")
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("checkout: %w", NewValidationError("Quantity must be at least 1"))
	if !IsKind(err, KindValidation) {
		t.Fatal("wrapped validation error not matched")
	}
	if IsKind(errors.New("plain"), KindValidation) {
		t.Fatal("plain error matched a kind")
	}
}

func TestGetAppError(t *testing.T) {
	orig := NewConflictError("Username already taken")
	got := GetAppError(fmt.Errorf("register: %w", orig))
	if got == nil || got.Message != "Username already taken" {
		t.Fatalf("got = %+v", got)
	}
	plain := GetAppError(errors.New("plain"))
	if plain == nil || plain.Kind != KindInternal || plain.Message != "plain" {
		t.Fatalf("plain error = %+v, want internal kind with original message", plain)
	}
}

func TestErrInvalidCredentials(t *testing.T) {
	if !IsKind(ErrInvalidCredentials, KindUnauthorized) {
		t.Fatal("invalid credentials sentinel has wrong kind")
	}
	if ErrInvalidCredentials.Message != "Invalid username or password" {
		t.Fatalf("message = %q", ErrInvalidCredentials.Message)
	}
}
