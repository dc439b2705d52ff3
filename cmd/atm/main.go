package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "martianbank/internal/adapter/http"
	atmuc "martianbank/internal/usecase/atm"
)

func main() {
	_ = godotenv.Load()
	port := os.Getenv("ATM_PORT")
	if port == "" {
		port = "8081"
	}

	uc := atmuc.NewUsecase(atmuc.NewStaticProvider())
	h := httpadp.NewHandler()
	ah := httpadp.NewATMHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.POST("/atm", ah.Locate)

	addr := ":" + port
	log.Printf("atm locator listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
