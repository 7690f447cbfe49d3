package types

import "github.com/shopspring/decimal"

// Request payloads. JSON field names follow the public API contract
// (the French-named fields are part of the wire format).

type OpeningSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type GarageInput struct {
	Name              string                   `json:"name"`
	Address           string                   `json:"address"`
	City              string                   `json:"city"`
	Telephone         string                   `json:"telephone"`
	Email             string                   `json:"email"`
	HorairesOuverture map[string][]OpeningSlot `json:"horairesOuverture"`
}

type VehicleInput struct {
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	AnneeFabrication *int   `json:"anneeFabrication"`
	TypeCarburant    string `json:"typeCarburant"`
}

type AccessoryInput struct {
	Nom         string           `json:"nom"`
	Description string           `json:"description"`
	Prix        *decimal.Decimal `json:"prix"`
	Type        string           `json:"type"`
}
