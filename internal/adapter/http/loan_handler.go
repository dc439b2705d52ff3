package http

import (
	"net/http"

	loanuc "martianbank/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type loanRequestReq struct {
	Name string `json:"name"           validate:"required"`
	// Email is required-only: the workflow answers any present email with a
	// business decline when it matches no account, so format checking here
	// would turn that decline into a 400.
	Email         string `json:"email"          validate:"required"`
	AccountType   string `json:"account_type"   validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	GovtIDType    string `json:"govt_id_type"   validate:"required"`
	GovtIDNumber  string `json:"govt_id_number" validate:"required"`
	LoanType      string `json:"loan_type"      validate:"required"`
	// Amounts are not range-checked here: zero and negative amounts must
	// still reach the workflow, which declines and records them.
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	TimePeriod   string  `json:"time_period"    validate:"required"`
}

type loanHistoryReq struct {
	Email string `json:"email" validate:"required"`
}

// ProcessLoanRequest handles POST /loan/request. Business declines come back
// as 200 with approved=false; only infrastructure failures are 5xx.
func (h *LoanHandler) ProcessLoanRequest(c echo.Context) error {
	var req loanRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	decision, err := h.uc.Process(c.Request().Context(), loanuc.Request{
		Name:          req.Name,
		Email:         req.Email,
		AccountType:   req.AccountType,
		AccountNumber: req.AccountNumber,
		GovtIDType:    req.GovtIDType,
		GovtIDNumber:  req.GovtIDNumber,
		LoanType:      req.LoanType,
		LoanAmount:    req.LoanAmount,
		InterestRate:  req.InterestRate,
		TimePeriod:    req.TimePeriod,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not process loan request"})
	}
	return c.JSON(http.StatusOK, decision)
}

// LoanHistory handles POST /loan/history. No records is 200 with [].
func (h *LoanHandler) LoanHistory(c echo.Context) error {
	var req loanHistoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	history, err := h.uc.History(c.Request().Context(), req.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not fetch loan history"})
	}
	return c.JSON(http.StatusOK, history)
}
