package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort string
	GRPCPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	// Empty RedisAddr disables the idempotency middleware.
	RedisAddr    string
	RedisDB      int
	IdempTTLSecs int

	// "scan" (legacy full-table scan, default) or "indexed".
	AccountLookup string
	// Version-checked balance updates; off by default to keep the legacy
	// read-modify-write behavior.
	OptimisticLocking bool
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		HTTPPort:  getenv("HTTP_PORT", "8080"),
		GRPCPort:  getenv("GRPC_PORT", "50053"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "martianbank"),
		MySQLUser: getenv("MYSQL_USER", "martianbank"),
		MySQLPass: getenv("MYSQL_PASS", "martianbank"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		IdempTTLSecs: 300,

		AccountLookup: getenv("ACCOUNT_LOOKUP", "scan"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("LOAN_OPTIMISTIC_LOCKING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.OptimisticLocking = b
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.HTTPPort == "" {
		return errors.New("missing HTTP_PORT")
	}
	if c.AccountLookup != "scan" && c.AccountLookup != "indexed" {
		return fmt.Errorf("invalid ACCOUNT_LOOKUP %q (want scan or indexed)", c.AccountLookup)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for the DATETIME timestamp column
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
