package models

import "time"

// Mission links one scientist to one planet.
type Mission struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	ScientistID uint   `gorm:"not null;index"`
	PlanetID    uint   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Scientist *Scientist `gorm:"foreignKey:ScientistID"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID"`
}

// Validate checks the name and that both references are set. Whether the
// referenced rows exist is checked by the caller against the store.
func (m *Mission) Validate() error {
	if err := requireString("mission", "name", m.Name, "Missions must have a name."); err != nil {
		return err
	}
	if err := requireID("mission", "scientist_id", m.ScientistID, "Missions must have scientist ID."); err != nil {
		return err
	}
	if err := requireID("mission", "planet_id", m.PlanetID, "Missions must have planet ID."); err != nil {
		return err
	}
	return nil
}
