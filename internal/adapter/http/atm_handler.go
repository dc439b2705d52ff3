package http

import (
	"net/http"

	"martianbank/internal/domain/atm"
	atmuc "martianbank/internal/usecase/atm"

	"github.com/labstack/echo/v4"
)

type ATMHandler struct{ uc *atmuc.Usecase }

func NewATMHandler(uc *atmuc.Usecase) *ATMHandler { return &ATMHandler{uc: uc} }

// Locate handles POST /atm. The body is an optional filter; an empty body
// returns every location.
func (h *ATMHandler) Locate(c echo.Context) error {
	var f atm.Filter
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&f); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}
	}
	atms, err := h.uc.Locate(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list ATMs"})
	}
	return c.JSON(http.StatusOK, atms)
}
