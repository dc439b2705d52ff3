package atm

import (
	"context"

	"martianbank/internal/domain/atm"
)

// StaticProvider serves the demo data set the original locator shipped with.
type StaticProvider struct{ atms []atm.ATM }

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{atms: demoATMs()}
}

func (p *StaticProvider) ATMs(ctx context.Context) ([]atm.ATM, error) {
	out := make([]atm.ATM, len(p.atms))
	copy(out, p.atms)
	return out, nil
}

func demoATMs() []atm.ATM {
	return []atm.ATM{
		{
			ID: "atm-001", Name: "MarsBank Olympus Mons Branch",
			Street: "1 Caldera Rim Rd", City: "Olympus", State: "Tharsis", Zip: "00001",
			Latitude: 18.65, Longitude: -133.8,
			ATMHours: "24/7", NumberOfATMs: 3, IsOpen: true, InterPlanetary: false,
		},
		{
			ID: "atm-002", Name: "MarsBank Valles Marineris Kiosk",
			Street: "42 Canyon Floor Ave", City: "Melas", State: "Coprates", Zip: "00042",
			Latitude: -13.9, Longitude: -59.2,
			ATMHours: "06:00-22:00", NumberOfATMs: 1, IsOpen: false, InterPlanetary: false,
		},
		{
			ID: "atm-003", Name: "MarsBank Phobos Station",
			Street: "Stickney Crater Dock 7", City: "Phobos", State: "Orbital", Zip: "90007",
			Latitude: 0.0, Longitude: 0.0,
			ATMHours: "24/7", NumberOfATMs: 2, IsOpen: true, InterPlanetary: true,
		},
		{
			ID: "atm-004", Name: "MarsBank Luna Gateway",
			Street: "3 Mare Tranquillitatis Plaza", City: "Tranquility", State: "Luna", Zip: "90101",
			Latitude: 0.67, Longitude: 23.47,
			ATMHours: "08:00-20:00", NumberOfATMs: 4, IsOpen: true, InterPlanetary: true,
		},
		{
			ID: "atm-005", Name: "MarsBank Elysium Planitia Branch",
			Street: "12 InSight Way", City: "Elysium", State: "Cerberus", Zip: "00112",
			Latitude: 4.5, Longitude: 135.9,
			ATMHours: "09:00-17:00", NumberOfATMs: 2, IsOpen: false, InterPlanetary: false,
		},
	}
}
