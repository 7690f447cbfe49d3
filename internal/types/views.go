package types

import "github.com/shopspring/decimal"

// Response representations returned by the services. They carry the
// computed fields (vehicleCount, garageName) the entities do not.

type GarageView struct {
	ID                uint                     `json:"id"`
	Name              string                   `json:"name"`
	Address           string                   `json:"address"`
	City              string                   `json:"city,omitempty"`
	Telephone         string                   `json:"telephone"`
	Email             string                   `json:"email"`
	HorairesOuverture map[string][]OpeningSlot `json:"horairesOuverture"`
	VehicleCount      int                      `json:"vehicleCount"`
}

type VehicleView struct {
	ID               uint     `json:"id"`
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	AnneeFabrication int      `json:"anneeFabrication"`
	TypeCarburant    FuelType `json:"typeCarburant"`
	GarageID         *uint    `json:"garageId,omitempty"`
	GarageName       string   `json:"garageName,omitempty"`
}

type AccessoryView struct {
	ID          uint            `json:"id"`
	Nom         string          `json:"nom"`
	Description string          `json:"description,omitempty"`
	Prix        decimal.Decimal `json:"prix"`
	Type        AccessoryType   `json:"type"`
	VehicleID   *uint           `json:"vehicleId,omitempty"`
}

// GaragePage is the page envelope for garage listings.
type GaragePage struct {
	Content       []*GarageView `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
}

func NewGarageView(g *Garage, vehicleCount int) *GarageView {
	hours := make(map[string][]OpeningSlot)
	for _, ot := range g.OpeningHours {
		hours[ot.DayOfWeek] = append(hours[ot.DayOfWeek], OpeningSlot{
			StartTime: ot.StartTime,
			EndTime:   ot.EndTime,
		})
	}
	return &GarageView{
		ID:                g.ID,
		Name:              g.Name,
		Address:           g.Address,
		City:              g.City,
		Telephone:         g.Telephone,
		Email:             g.Email,
		HorairesOuverture: hours,
		VehicleCount:      vehicleCount,
	}
}

func NewVehicleView(v *Vehicle, garageName string) *VehicleView {
	return &VehicleView{
		ID:               v.ID,
		Brand:            v.Brand,
		Model:            v.Model,
		AnneeFabrication: v.ManufacturingYear,
		TypeCarburant:    v.FuelType,
		GarageID:         v.GarageID,
		GarageName:       garageName,
	}
}

func NewAccessoryView(a *Accessory) *AccessoryView {
	return &AccessoryView{
		ID:          a.ID,
		Nom:         a.Name,
		Description: a.Description,
		Prix:        a.Price,
		Type:        a.Type,
		VehicleID:   a.VehicleID,
	}
}

// OpeningTimesFromInput flattens the day-keyed map into child rows for
// the given garage.
func OpeningTimesFromInput(garageID uint, hours map[string][]OpeningSlot) []OpeningTime {
	var rows []OpeningTime
	for _, day := range DaysOfWeek {
		for _, slot := range hours[day] {
			rows = append(rows, OpeningTime{
				GarageID:  garageID,
				DayOfWeek: day,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}
	}
	return rows
}
