package models

import "time"

// Scientist owns zero or more missions; deleting it deletes them.
type Scientist struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"not null"`
	FieldOfStudy string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relations
	Missions []Mission `gorm:"foreignKey:ScientistID;constraint:OnDelete:CASCADE"`
}

// Validate checks the required fields of a scientist.
func (s *Scientist) Validate() error {
	if err := requireString("scientist", "name", s.Name, "Scientists must have a name."); err != nil {
		return err
	}
	if err := requireString("scientist", "field_of_study", s.FieldOfStudy, "Scientists must have a field of study."); err != nil {
		return err
	}
	return nil
}
