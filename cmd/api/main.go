package main

import (
	"log"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"google.golang.org/grpc"

	grpcadp "martianbank/internal/adapter/grpc"
	httpadp "martianbank/internal/adapter/http"
	"martianbank/internal/adapter/middleware"
	"martianbank/internal/adapter/repository/mysql"
	"martianbank/internal/config"
	"martianbank/internal/infrastructure/cache"
	"martianbank/internal/infrastructure/db"
	loanuc "martianbank/internal/usecase/loan"
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

	accountOpts := mysql.AccountOptions{OptimisticLocking: cfg.OptimisticLocking}
	if cfg.AccountLookup == "indexed" {
		accountOpts.Lookup = mysql.IndexedLookup{}
	}
	accounts := mysql.NewAccountRepository(gdb, accountOpts)
	loans := mysql.NewLoanRepository(gdb)
	uc := loanuc.NewUsecase(accounts, loans)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)
	e.POST("/loan/history", lh.LoanHistory)

	var requestMW []echo.MiddlewareFunc
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		requestMW = append(requestMW, middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}
	e.POST("/loan/request", lh.ProcessLoanRequest, requestMW...)

	// gRPC front door, same workflow behind it
	gs := grpc.NewServer()
	grpcadp.NewServer(gs, uc)
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatalf("grpc listen: %v", err)
	}
	go func() {
		log.Printf("grpc listening on :%s", cfg.GRPCPort)
		if err := gs.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	addr := ":" + cfg.HTTPPort
	log.Printf("http listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
