package types

import "fmt"

// Days of week accepted as opening-hour keys, in calendar order.
var DaysOfWeek = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

func ValidDayOfWeek(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// OpeningTime is a single open interval of a garage on one day.
// Times are "HH:MM" strings, start before end is not enforced.
type OpeningTime struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	GarageID  uint   `gorm:"index;not null" json:"-"`
	DayOfWeek string `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"not null" json:"startTime"`
	EndTime   string `gorm:"not null" json:"endTime"`
}

func (OpeningTime) TableName() string { return "garage_opening_hours" }

func (o OpeningTime) String() string {
	return fmt.Sprintf("%s - %s", o.StartTime, o.EndTime)
}
