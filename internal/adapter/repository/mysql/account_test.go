package mysql

import (
	"context"
	"errors"
	"testing"

	domain "martianbank/internal/domain/account"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB; the domain models use plain
// column types, so the MySQL schema migrates cleanly.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&domain.Account{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func seedAccount(t *testing.T, repo *AccountRepository, number, email string, balance float64) {
	t.Helper()
	err := repo.Create(context.Background(), &domain.Account{
		AccountNumber: number,
		EmailID:       email,
		Balance:       balance,
		Name:          "John Carter",
		AccountType:   "Checking",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestCountByOwner(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t), AccountOptions{})
	ctx := context.Background()
	seedAccount(t, repo, "12345", "john@test.com", 1000.0)

	n, err := repo.CountByOwner(ctx, "john@test.com", "12345")
	if err != nil {
		t.Fatalf("CountByOwner: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}

	// Both fields must match jointly.
	for _, pair := range [][2]string{
		{"wrong@test.com", "12345"},
		{"john@test.com", "99999"},
	} {
		n, err := repo.CountByOwner(ctx, pair[0], pair[1])
		if err != nil {
			t.Fatalf("CountByOwner(%v): %v", pair, err)
		}
		if n != 0 {
			t.Fatalf("count(%v) = %d, want 0", pair, n)
		}
	}
}

func TestFindByNumber_ScanReturnsFirstByInsertionOrder(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t), AccountOptions{})
	ctx := context.Background()
	// Duplicate number: the store contract does not assume uniqueness, and
	// the scan must hand back the earlier row.
	seedAccount(t, repo, "12345", "john@test.com", 1000.0)
	seedAccount(t, repo, "12345", "imposter@test.com", 9.0)

	got, err := repo.FindByNumber(ctx, "12345")
	if err != nil {
		t.Fatalf("FindByNumber: %v", err)
	}
	if got.EmailID != "john@test.com" {
		t.Fatalf("scan returned %q, want first inserted row", got.EmailID)
	}

	if _, err := repo.FindByNumber(ctx, "00000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing account err = %v, want ErrNotFound", err)
	}
}

func TestFindByNumber_IndexedLookup(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t), AccountOptions{Lookup: IndexedLookup{}})
	ctx := context.Background()
	seedAccount(t, repo, "12345", "john@test.com", 1000.0)

	got, err := repo.FindByNumber(ctx, "12345")
	if err != nil {
		t.Fatalf("FindByNumber: %v", err)
	}
	if got.Balance != 1000.0 {
		t.Fatalf("balance = %v", got.Balance)
	}

	if _, err := repo.FindByNumber(ctx, "00000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing account err = %v, want ErrNotFound", err)
	}
}

func TestUpdateBalance_OverwritesMatchingRow(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t), AccountOptions{})
	ctx := context.Background()
	seedAccount(t, repo, "12345", "john@test.com", 1000.0)

	if err := repo.UpdateBalance(ctx, "12345", 6000.0); err != nil {
		t.Fatalf("UpdateBalance: %v", err)
	}
	got, err := repo.FindByNumber(ctx, "12345")
	if err != nil {
		t.Fatalf("FindByNumber: %v", err)
	}
	if got.Balance != 6000.0 {
		t.Fatalf("balance = %v, want 6000", got.Balance)
	}
}

func TestUpdateBalance_MissingAccountIsNoOp(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t), AccountOptions{})
	if err := repo.UpdateBalance(context.Background(), "00000", 6000.0); err != nil {
		t.Fatalf("UpdateBalance on missing account: %v", err)
	}
}

func TestUpdateBalance_VersionedBumpsVersion(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewAccountRepository(gdb, AccountOptions{OptimisticLocking: true})
	ctx := context.Background()
	seedAccount(t, repo, "12345", "john@test.com", 1000.0)

	if err := repo.UpdateBalance(ctx, "12345", 6000.0); err != nil {
		t.Fatalf("UpdateBalance: %v", err)
	}
	if err := repo.UpdateBalance(ctx, "12345", 7000.0); err != nil {
		t.Fatalf("second UpdateBalance: %v", err)
	}

	var got domain.Account
	if err := gdb.Where("account_number = ?", "12345").First(&got).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Balance != 7000.0 {
		t.Fatalf("balance = %v", got.Balance)
	}
	if got.Version != 2 {
		t.Fatalf("version = %d, want 2", got.Version)
	}
}

// staleLookup reads the row, then reports the version a concurrent writer
// would have already invalidated.
type staleLookup struct{ skew uint64 }

func (s staleLookup) FindByNumber(ctx context.Context, db *gorm.DB, accountNumber string) (*domain.Account, error) {
	got, err := (ScanLookup{}).FindByNumber(ctx, db, accountNumber)
	if err != nil {
		return nil, err
	}
	got.Version -= s.skew
	return got, nil
}

func TestUpdateBalance_VersionedConflictSurfaces(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewAccountRepository(gdb, AccountOptions{OptimisticLocking: true, Lookup: staleLookup{skew: 1}})
	ctx := context.Background()
	seedAccount(t, repo, "12345", "john@test.com", 1000.0)

	// Another writer got there first.
	if err := gdb.Model(&domain.Account{}).Where("account_number = ?", "12345").
		Update("version", 1).Error; err != nil {
		t.Fatalf("bump version: %v", err)
	}

	err := repo.UpdateBalance(ctx, "12345", 6000.0)
	if !errors.Is(err, domain.ErrVersionConflict) {
		t.Fatalf("err = %v, want ErrVersionConflict", err)
	}

	var got domain.Account
	if err := gdb.Where("account_number = ?", "12345").First(&got).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Balance != 1000.0 {
		t.Fatalf("conflicting update changed balance: %v", got.Balance)
	}
}

func TestUpdateBalance_VersionedMissingAccountIsNoOp(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t), AccountOptions{OptimisticLocking: true})
	if err := repo.UpdateBalance(context.Background(), "00000", 6000.0); err != nil {
		t.Fatalf("versioned UpdateBalance on missing account: %v", err)
	}
}
