package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/dealernet/garage-backend/internal/types"
)

// Explicit request validation. Each function returns a field → message
// map; an empty map means the input is acceptable. Handlers call these
// before any service dispatch.

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

func ValidateGarageInput(in *types.GarageInput) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "garage name is required"
	}
	if strings.TrimSpace(in.Address) == "" {
		errs["address"] = "address is required"
	}
	if strings.TrimSpace(in.Telephone) == "" {
		errs["telephone"] = "telephone is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(in.Email) {
		errs["email"] = "email must be valid"
	}
	if len(in.HorairesOuverture) == 0 {
		errs["horairesOuverture"] = "opening hours are required"
		return errs
	}
	for day, slots := range in.HorairesOuverture {
		if !types.ValidDayOfWeek(day) {
			errs["horairesOuverture"] = "unknown day of week: " + day
			break
		}
		for _, slot := range slots {
			if !validTime(slot.StartTime) || !validTime(slot.EndTime) {
				errs["horairesOuverture"] = "opening times must use the HH:MM format"
				break
			}
		}
	}
	return errs
}

func ValidateVehicleInput(in *types.VehicleInput) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Brand) == "" {
		errs["brand"] = "brand is required"
	}
	if strings.TrimSpace(in.Model) == "" {
		errs["model"] = "model is required"
	}
	if in.AnneeFabrication == nil {
		errs["anneeFabrication"] = "manufacturing year is required"
	} else if *in.AnneeFabrication < 1900 {
		errs["anneeFabrication"] = "manufacturing year must be 1900 or later"
	}
	if strings.TrimSpace(in.TypeCarburant) == "" {
		errs["typeCarburant"] = "fuel type is required"
	} else if _, err := types.ParseFuelType(in.TypeCarburant); err != nil {
		errs["typeCarburant"] = "fuel type must be one of ESSENCE, DIESEL, ELECTRIC, HYBRID"
	}
	return errs
}

func ValidateAccessoryInput(in *types.AccessoryInput) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Nom) == "" {
		errs["nom"] = "name is required"
	}
	if in.Prix == nil {
		errs["prix"] = "price is required"
	} else if !in.Prix.IsPositive() {
		errs["prix"] = "price must be positive"
	}
	if strings.TrimSpace(in.Type) == "" {
		errs["type"] = "type is required"
	} else if _, err := types.ParseAccessoryType(in.Type); err != nil {
		errs["type"] = "type must be one of INTERIOR, EXTERIOR, ELECTRONIC, SAFETY, COMFORT, PERFORMANCE"
	}
	return errs
}
