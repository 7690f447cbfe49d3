package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type Accessory struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null;index" json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Type        AccessoryType   `gorm:"not null" json:"type"`
	VehicleID   *uint           `gorm:"index" json:"vehicle_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Accessory) TableName() string { return "accessories" }
