package types

import (
	"time"
)

type Vehicle struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	Brand             string      `gorm:"not null" json:"brand"`
	Model             string      `gorm:"not null;index" json:"model"`
	ManufacturingYear int         `gorm:"not null" json:"manufacturing_year"`
	FuelType          FuelType    `gorm:"not null;index" json:"fuel_type"`
	GarageID          *uint       `gorm:"index" json:"garage_id,omitempty"`
	Accessories       []Accessory `gorm:"constraint:OnDelete:CASCADE;foreignKey:VehicleID;references:ID" json:"accessories,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func (Vehicle) TableName() string { return "vehicles" }
