package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"

	domainRepo "github.com/sangkips/till-pos/internal/domain/repository"
	"github.com/sangkips/till-pos/pkg/apperror"
)

const sampleReceipt = `========================================
          Supermarket Till Receipt
========================================
Date: 2024-05-01 13:45:10
Employee: Administrator
----------------------------------------
Items:
----------------------------------------
Apple                            3 x £  2.50 = £   7.50
----------------------------------------
Subtotal:            £   6.00
VAT (20%):           £   1.50
Total:               £   7.50
========================================
Thank you for shopping with us!
========================================`

func newReceiptRepo(t *testing.T) domainRepo.ReceiptRepository {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	repo, err := NewReceiptRepository(filepath.Join(t.TempDir(), "receipts"), "£", logger)
	if err != nil {
		t.Fatalf("NewReceiptRepository: %v", err)
	}
	return repo
}

func TestSaveListRoundTrip(t *testing.T) {
	repo := newReceiptRepo(t)
	ctx := context.Background()

	path, err := repo.Save(ctx, "receipt_20240501_134510.txt", sampleReceipt)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Date != "2024-05-01" || e.Time != "13:45:10" {
		t.Fatalf("entry stamp = %s %s, want 2024-05-01 13:45:10", e.Date, e.Time)
	}
	if e.Cashier != "Administrator" {
		t.Fatalf("cashier = %q, want Administrator", e.Cashier)
	}
	if got := e.Total.StringFixed(2); got != "7.50" {
		t.Fatalf("total = %s, want the grand total 7.50", got)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := newReceiptRepo(t)
	ctx := context.Background()

	for _, name := range []string{
		"receipt_20240501_134510.txt",
		"receipt_20240502_091500.txt",
		"receipt_20240430_235959.txt",
	} {
		if _, err := repo.Save(ctx, name, sampleReceipt); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	want := []string{
		"receipt_20240502_091500.txt",
		"receipt_20240501_134510.txt",
		"receipt_20240430_235959.txt",
	}
	for i, name := range want {
		if entries[i].Filename != name {
			t.Fatalf("entry %d = %s, want %s", i, entries[i].Filename, name)
		}
	}
}

func TestListSkipsForeignFiles(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	dir := t.TempDir()
	repo, err := NewReceiptRepository(dir, "£", logger)
	if err != nil {
		t.Fatalf("NewReceiptRepository: %v", err)
	}
	ctx := context.Background()

	if _, err := repo.Save(ctx, "receipt_20240501_134510.txt", sampleReceipt); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("remember the milk"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "receipt_garbage.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want only the well-named receipt", len(entries))
	}
}

func TestListDefaultsForUnparsableContent(t *testing.T) {
	repo := newReceiptRepo(t)
	ctx := context.Background()

	if _, err := repo.Save(ctx, "receipt_20240501_134510.txt", "scribbles\n"); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Cashier != "Unknown" {
		t.Fatalf("cashier = %q, want Unknown fallback", entries[0].Cashier)
	}
	if !entries[0].Total.IsZero() {
		t.Fatalf("total = %s, want zero fallback", entries[0].Total)
	}
}

func TestGetAndDelete(t *testing.T) {
	repo := newReceiptRepo(t)
	ctx := context.Background()

	const name = "receipt_20240501_134510.txt"
	if _, err := repo.Save(ctx, name, sampleReceipt); err != nil {
		t.Fatalf("save: %v", err)
	}

	content, err := repo.Get(ctx, name)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if content != sampleReceipt {
		t.Fatal("stored content differs from what was saved")
	}

	if err := repo.Delete(ctx, name); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, name); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("get after delete = %v, want not-found", err)
	}
	if err := repo.Delete(ctx, name); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("second delete = %v, want not-found", err)
	}
}
