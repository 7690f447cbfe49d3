package types

import "fmt"

// FuelType enumerates the supported vehicle fuel types.
type FuelType string

const (
	FuelEssence  FuelType = "ESSENCE"
	FuelDiesel   FuelType = "DIESEL"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"
)

func ParseFuelType(s string) (FuelType, error) {
	switch FuelType(s) {
	case FuelEssence, FuelDiesel, FuelElectric, FuelHybrid:
		return FuelType(s), nil
	}
	return "", fmt.Errorf("unknown fuel type: %q", s)
}

// IsEcoFriendly reports whether the fuel type counts as eco-friendly
// for the creation-event listener.
func (f FuelType) IsEcoFriendly() bool {
	return f == FuelElectric || f == FuelHybrid
}
