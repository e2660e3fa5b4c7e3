package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/till-pos/internal/domain/entity"
)

func TestNewSession(t *testing.T) {
	profile := entity.Profile{Username: "admin", FullName: "Administrator"}
	s := NewSession(profile, decimal.RequireFromString("0.20"))

	if s.ID == uuid.Nil {
		t.Fatal("session id not assigned")
	}
	if s.Username() != "admin" {
		t.Fatalf("username = %q, want admin", s.Username())
	}
	if s.LoginAt.IsZero() {
		t.Fatal("login time not set")
	}
	if got := s.Ledger.VATRate().StringFixed(2); got != "0.20" {
		t.Fatalf("ledger vat rate = %s, want 0.20", got)
	}
}

func TestSessionCloseClearsLedger(t *testing.T) {
	s := NewSession(entity.Profile{Username: "admin"}, decimal.RequireFromString("0.20"))
	s.Ledger.Add(entity.NewLineItem("Apple", decimal.RequireFromString("2.50"), 1))
	s.Close()
	if s.Ledger.Len() != 0 {
		t.Fatal("ledger not cleared on close")
	}
}
