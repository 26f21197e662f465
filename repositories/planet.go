package repositories

import (
	"context"

	"github.com/cosmic-missions/models"
	"gorm.io/gorm"
)

// PlanetRepository handles database operations for planets
type PlanetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository creates a new planet repository instance
func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// FindAll retrieves all planets in insertion order
func (r *PlanetRepository) FindAll(ctx context.Context) ([]models.Planet, error) {
	planets := make([]models.Planet, 0)
	result := r.db.WithContext(ctx).Order("id ASC").Find(&planets)
	return planets, translate(result.Error)
}

// FindByID retrieves a planet by its ID
func (r *PlanetRepository) FindByID(ctx context.Context, id uint) (models.Planet, error) {
	var planet models.Planet
	result := r.db.WithContext(ctx).First(&planet, "id = ?", id)
	return planet, translate(result.Error)
}

// Create inserts a new planet into the database
func (r *PlanetRepository) Create(ctx context.Context, planet models.Planet) (models.Planet, error) {
	result := r.db.WithContext(ctx).Create(&planet)
	return planet, translate(result.Error)
}

// Delete removes a planet and every mission that references it
func (r *PlanetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("planet_id = ?", id).Delete(&models.Mission{}).Error; err != nil {
			return translate(err)
		}

		result := tx.Delete(&models.Planet{}, "id = ?", id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
