package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/sangkips/till-pos/internal/domain/entity"
	"github.com/sangkips/till-pos/internal/domain/enum"
	"github.com/sangkips/till-pos/internal/pkg/auth"
)

func newUserRepo(t *testing.T, path string) *userRepository {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	repo, err := NewUserRepository(path, auth.NewSHA256Hasher(), logger)
	if err != nil {
		t.Fatalf("NewUserRepository: %v", err)
	}
	return repo.(*userRepository)
}

func TestMissingFileSeedsAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := newUserRepo(t, path)

	names, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != SeedUsername {
		t.Fatalf("usernames = %v, want [%s]", names, SeedUsername)
	}

	admin, err := repo.Get(context.Background(), SeedUsername)
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if admin == nil {
		t.Fatal("admin record missing after seed")
	}
	if admin.Role != enum.RoleAdmin {
		t.Fatalf("seeded role = %q, want admin", admin.Role)
	}
	if err := auth.NewSHA256Hasher().Compare(admin.Password, SeedPassword); err != nil {
		t.Fatalf("seeded password does not verify: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("seed was not persisted: %v", err)
	}
}

func TestCorruptFileReseeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	repo := newUserRepo(t, path)
	names, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != SeedUsername {
		t.Fatalf("usernames after reseed = %v, want [%s]", names, SeedUsername)
	}
}

func TestPutPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := newUserRepo(t, path)

	hash, err := auth.NewSHA256Hasher().Hash("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	err = repo.Put(context.Background(), "bob", &entity.User{
		Password: hash,
		Role:     enum.RoleCashier,
		FullName: "Bob",
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	reopened := newUserRepo(t, path)
	bob, err := reopened.Get(context.Background(), "bob")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if bob == nil || bob.Password != hash {
		t.Fatalf("bob after reopen = %+v, record was not persisted", bob)
	}

	// The seeded admin must survive alongside the new record.
	if admin, _ := reopened.Get(context.Background(), SeedUsername); admin == nil {
		t.Fatal("admin record lost after adding a user")
	}
}

func TestGetUnknownUserReturnsNil(t *testing.T) {
	repo := newUserRepo(t, filepath.Join(t.TempDir(), "users.json"))
	u, err := repo.Get(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u != nil {
		t.Fatalf("unknown user = %+v, want nil", u)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	repo := newUserRepo(t, filepath.Join(t.TempDir(), "users.json"))
	u, err := repo.Get(context.Background(), SeedUsername)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	u.FullName = "mutated"

	again, _ := repo.Get(context.Background(), SeedUsername)
	if again.FullName != "Administrator" {
		t.Fatal("mutating a returned record leaked into the store")
	}
}
