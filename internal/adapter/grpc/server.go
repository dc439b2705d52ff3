package grpc

import (
	"context"

	loanuc "martianbank/internal/usecase/loan"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type LoanRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	AccountType   string  `json:"account_type"`
	AccountNumber string  `json:"account_number"`
	GovtIDType    string  `json:"govt_id_type"`
	GovtIDNumber  string  `json:"govt_id_number"`
	LoanType      string  `json:"loan_type"`
	LoanAmount    float64 `json:"loan_amount"`
	InterestRate  float64 `json:"interest_rate"`
	TimePeriod    string  `json:"time_period"`
}

type LoanResponse struct {
	Approved bool   `json:"approved"`
	Message  string `json:"message"`
}

type LoansHistoryRequest struct {
	Email string `json:"email"`
}

type LoansHistoryResponse struct {
	Loans []loanuc.ApplicationDTO `json:"loans"`
}

type LoanServiceServer interface {
	ProcessLoanRequest(context.Context, *LoanRequest) (*LoanResponse, error)
	GetLoanHistory(context.Context, *LoansHistoryRequest) (*LoansHistoryResponse, error)
}

type Server struct{ uc *loanuc.Usecase }

// NewServer registers the loan service on s and returns the implementation.
func NewServer(s *grpc.Server, uc *loanuc.Usecase) *Server {
	srv := &Server{uc: uc}
	s.RegisterService(&ServiceDesc, srv)
	return srv
}

func (s *Server) ProcessLoanRequest(ctx context.Context, req *LoanRequest) (*LoanResponse, error) {
	decision, err := s.uc.Process(ctx, loanuc.Request{
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
		return nil, status.Error(codes.Internal, "could not process loan request")
	}
	return &LoanResponse{Approved: decision.Approved, Message: decision.Message}, nil
}

func (s *Server) GetLoanHistory(ctx context.Context, req *LoansHistoryRequest) (*LoansHistoryResponse, error) {
	history, err := s.uc.History(ctx, req.Email)
	if err != nil {
		return nil, status.Error(codes.Internal, "could not fetch loan history")
	}
	return &LoansHistoryResponse{Loans: history}, nil
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: "loan.v1.LoanService",
	HandlerType: (*LoanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ProcessLoanRequest", Handler: processLoanRequestHandler},
		{MethodName: "GetLoanHistory", Handler: getLoanHistoryHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/loan/v1/loan.proto",
}

func processLoanRequestHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ProcessLoanRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/loan.v1.LoanService/ProcessLoanRequest"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LoanServiceServer).ProcessLoanRequest(ctx, req.(*LoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getLoanHistoryHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoansHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetLoanHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/loan.v1.LoanService/GetLoanHistory"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LoanServiceServer).GetLoanHistory(ctx, req.(*LoansHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}
