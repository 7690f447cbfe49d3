package types

import "fmt"

// AccessoryType enumerates the accessory categories.
type AccessoryType string

const (
	AccessoryInterior    AccessoryType = "INTERIOR"
	AccessoryExterior    AccessoryType = "EXTERIOR"
	AccessoryElectronic  AccessoryType = "ELECTRONIC"
	AccessorySafety      AccessoryType = "SAFETY"
	AccessoryComfort     AccessoryType = "COMFORT"
	AccessoryPerformance AccessoryType = "PERFORMANCE"
)

func ParseAccessoryType(s string) (AccessoryType, error) {
	switch AccessoryType(s) {
	case AccessoryInterior, AccessoryExterior, AccessoryElectronic,
		AccessorySafety, AccessoryComfort, AccessoryPerformance:
		return AccessoryType(s), nil
	}
	return "", fmt.Errorf("unknown accessory type: %q", s)
}
