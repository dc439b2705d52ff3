// Seeds demo accounts for local runs. Account creation is owned by another
// service in the full suite; this stands in for it during development.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"martianbank/internal/adapter/repository/mysql"
	"martianbank/internal/config"
	"martianbank/internal/domain/account"
	"martianbank/internal/infrastructure/db"
	"martianbank/pkg/id"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := mysql.NewAccountRepository(gdb, mysql.AccountOptions{})
	ctx := context.Background()

	demo := []account.Account{
		{AccountNumber: "12345", EmailID: "john@test.com", Balance: 1000.00, Name: "John Carter", AccountType: "Checking"},
		{AccountNumber: id.NewAccountNumber(10), EmailID: "dejah@mars.test", Balance: 52000.00, Name: "Dejah Thoris", AccountType: "Savings"},
		{AccountNumber: id.NewAccountNumber(10), EmailID: "kantos@mars.test", Balance: 120.50, Name: "Kantos Kan", AccountType: "Checking"},
	}

	for i := range demo {
		a := &demo[i]
		if n, err := repo.CountByOwner(ctx, a.EmailID, a.AccountNumber); err != nil {
			log.Fatalf("seed: count %s: %v", a.AccountNumber, err)
		} else if n > 0 {
			log.Printf("seed: %s already present, skipping", a.AccountNumber)
			continue
		}
		if err := repo.Create(ctx, a); err != nil {
			log.Fatalf("seed: create %s: %v", a.AccountNumber, err)
		}
		log.Printf("seed: created account %s for %s", a.AccountNumber, a.EmailID)
	}
}
