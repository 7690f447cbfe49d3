package types

import (
	"time"
)

type Garage struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"not null" json:"name"`
	Address      string        `gorm:"not null" json:"address"`
	City         string        `json:"city,omitempty"`
	Telephone    string        `gorm:"not null" json:"telephone"`
	Email        string        `gorm:"not null" json:"email"`
	OpeningHours []OpeningTime `gorm:"constraint:OnDelete:CASCADE;foreignKey:GarageID;references:ID" json:"opening_hours,omitempty"`
	Vehicles     []Vehicle     `gorm:"constraint:OnDelete:CASCADE;foreignKey:GarageID;references:ID" json:"vehicles,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (Garage) TableName() string { return "garages" }
