package entity

import (
	"testing"

	"github.com/sangkips/till-pos/internal/domain/enum"
)

func TestNewProfileBackfillsDefaults(t *testing.T) {
	p := NewProfile("bob", &User{Password: "deadbeef"})

	if p.Username != "bob" {
		t.Fatalf("username = %q, want bob", p.Username)
	}
	if p.FullName != "bob" {
		t.Fatalf("full name = %q, want username fallback", p.FullName)
	}
	if p.Email != DefaultEmail {
		t.Fatalf("email = %q, want %q", p.Email, DefaultEmail)
	}
	if p.Role != enum.RoleCashier {
		t.Fatalf("role = %q, want cashier", p.Role)
	}
	if p.CreatedDate == "" {
		t.Fatal("created date not backfilled")
	}
	if p.LastLogin != nil {
		t.Fatalf("last login = %v, want nil", *p.LastLogin)
	}
}

func TestNewProfileKeepsExplicitFields(t *testing.T) {
	last := "2024-05-01T10:00:00Z"
	u := &User{
		Role:         enum.RoleAdmin,
		FullName:     "Alice Smith",
		Email:        "alice@example.com",
		ProfileImage: "profile_images/alice_20240501_100000.png",
		CreatedDate:  "2024-01-01T00:00:00Z",
		LastLogin:    &last,
	}
	p := NewProfile("alice", u)

	if p.Role != enum.RoleAdmin {
		t.Fatalf("role = %q, want admin", p.Role)
	}
	if p.FullName != "Alice Smith" || p.Email != "alice@example.com" {
		t.Fatalf("profile = %+v, explicit fields were rewritten", p)
	}
	if p.CreatedDate != "2024-01-01T00:00:00Z" {
		t.Fatalf("created date = %q, want stored value", p.CreatedDate)
	}
	if p.LastLogin == nil || *p.LastLogin != last {
		t.Fatalf("last login = %v, want %q", p.LastLogin, last)
	}
	if !p.HasProfileImage() {
		t.Fatal("HasProfileImage() = false with an avatar set")
	}
}

func TestNewProfileCoercesUnknownRole(t *testing.T) {
	p := NewProfile("carol", &User{Role: enum.Role("manager")})
	if p.Role != enum.RoleCashier {
		t.Fatalf("role = %q, want unknown roles coerced to cashier", p.Role)
	}
}
