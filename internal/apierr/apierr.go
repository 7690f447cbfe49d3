package apierr

import (
	"fmt"
	"net/http"
)

// Error is the typed error every domain service returns for expected
// failures. The HTTP layer maps Status/Code onto the response envelope.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func GarageNotFound(id uint) *Error {
	return New(http.StatusNotFound, "garage_not_found", fmt.Errorf("garage not found with id: %d", id))
}

func VehicleNotFound(id uint) *Error {
	return New(http.StatusNotFound, "vehicle_not_found", fmt.Errorf("vehicle not found with id: %d", id))
}

func AccessoryNotFound(id uint) *Error {
	return New(http.StatusNotFound, "accessory_not_found", fmt.Errorf("accessory not found with id: %d", id))
}

func GarageCapacityExceeded(id uint, cap int) *Error {
	return New(http.StatusBadRequest, "garage_capacity_exceeded",
		fmt.Errorf("garage with id %d has reached its maximum capacity of %d vehicles", id, cap))
}
