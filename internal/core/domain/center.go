package domain

import "time"

// Center is a monitored site with geographic coordinates. Name and code
// are separate unique business identifiers; the alternate names are free
// text used by external reporting.
type Center struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	Code      string    `json:"code" gorm:"size:50;uniqueIndex;not null"`
	Name1     string    `json:"name1" gorm:"size:255"`
	Name2     string    `json:"name2" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
