package loan

// Request carries one loan submission after transport-level validation.
type Request struct {
	Name          string
	Email         string
	AccountType   string
	AccountNumber string
	GovtIDType    string
	GovtIDNumber  string
	LoanType      string
	LoanAmount    float64
	InterestRate  float64
	TimePeriod    string
}

// Decision is the terminal outcome of one processed request. Business
// declines are Decisions, never errors.
type Decision struct {
	Approved bool   `json:"approved"`
	Message  string `json:"message"`
}

// ApplicationDTO is the wire shape of one history record. Timestamp is a
// local-datetime string without offset, matching the original wire format.
type ApplicationDTO struct {
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
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
}
