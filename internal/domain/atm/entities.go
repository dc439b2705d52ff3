package atm

// ATM is a mocked locator entry. The locator service serves these from an
// injectable provider; nothing in the suite mutates them.
type ATM struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Street         string  `json:"street"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Zip            string  `json:"zip"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	ATMHours       string  `json:"atm_hours"`
	NumberOfATMs   int     `json:"number_of_atms"`
	IsOpen         bool    `json:"is_open"`
	InterPlanetary bool    `json:"inter_planetary"`
}

// Filter narrows a locator query. Nil fields mean "don't care".
type Filter struct {
	OpenNow        *bool `json:"is_open_now"`
	InterPlanetary *bool `json:"inter_planetary"`
}

func (f Filter) Matches(a ATM) bool {
	if f.OpenNow != nil && a.IsOpen != *f.OpenNow {
		return false
	}
	if f.InterPlanetary != nil && a.InterPlanetary != *f.InterPlanetary {
		return false
	}
	return true
}
