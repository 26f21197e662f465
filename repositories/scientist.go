package repositories

import (
	"context"

	"github.com/cosmic-missions/models"
	"gorm.io/gorm"
)

// ScientistRepository handles database operations for scientists
type ScientistRepository struct {
	db *gorm.DB
}

// NewScientistRepository creates a new scientist repository instance
func NewScientistRepository(db *gorm.DB) *ScientistRepository {
	return &ScientistRepository{db: db}
}

// FindAll retrieves all scientists in insertion order
func (r *ScientistRepository) FindAll(ctx context.Context) ([]models.Scientist, error) {
	scientists := make([]models.Scientist, 0)
	result := r.db.WithContext(ctx).Order("id ASC").Find(&scientists)
	return scientists, translate(result.Error)
}

// FindByID retrieves a scientist by its ID
func (r *ScientistRepository) FindByID(ctx context.Context, id uint) (models.Scientist, error) {
	var scientist models.Scientist
	result := r.db.WithContext(ctx).First(&scientist, "id = ?", id)
	return scientist, translate(result.Error)
}

// WithMissions loads a scientist with its missions and each mission's planet
func (r *ScientistRepository) WithMissions(ctx context.Context, id uint) (models.Scientist, error) {
	var scientist models.Scientist
	result := r.db.WithContext(ctx).
		Preload("Missions", func(db *gorm.DB) *gorm.DB { return db.Order("missions.id ASC") }).
		Preload("Missions.Planet").
		First(&scientist, "id = ?", id)
	return scientist, translate(result.Error)
}

// Create inserts a new scientist into the database
func (r *ScientistRepository) Create(ctx context.Context, scientist models.Scientist) (models.Scientist, error) {
	result := r.db.WithContext(ctx).Create(&scientist)
	return scientist, translate(result.Error)
}

// Update writes the scalar fields of an existing scientist
func (r *ScientistRepository) Update(ctx context.Context, scientist models.Scientist) (models.Scientist, error) {
	result := r.db.WithContext(ctx).Model(&scientist).Select("name", "field_of_study").Updates(&scientist)
	if result.Error != nil {
		return scientist, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return scientist, ErrNotFound
	}
	return scientist, nil
}

// Delete removes a scientist and every mission that references it
func (r *ScientistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("scientist_id = ?", id).Delete(&models.Mission{}).Error; err != nil {
			return translate(err)
		}

		result := tx.Delete(&models.Scientist{}, "id = ?", id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
