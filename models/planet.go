package models

import "time"

// Planet is a mission destination. None of its fields are required.
type Planet struct {
	ID                uint `gorm:"primaryKey"`
	Name              string
	DistanceFromEarth int
	NearestStar       string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Relations
	Missions []Mission `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
}
