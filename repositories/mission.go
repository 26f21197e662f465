package repositories

import (
	"context"

	"github.com/cosmic-missions/models"
	"gorm.io/gorm"
)

// MissionRepository handles database operations for missions
type MissionRepository struct {
	db *gorm.DB
}

// NewMissionRepository creates a new mission repository instance
func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// FindAll retrieves all missions in insertion order
func (r *MissionRepository) FindAll(ctx context.Context) ([]models.Mission, error) {
	missions := make([]models.Mission, 0)
	result := r.db.WithContext(ctx).Order("id ASC").Find(&missions)
	return missions, translate(result.Error)
}

// WithRelations retrieves a mission with its scientist and planet loaded
func (r *MissionRepository) WithRelations(ctx context.Context, id uint) (models.Mission, error) {
	var mission models.Mission
	result := r.db.WithContext(ctx).Preload("Scientist").Preload("Planet").First(&mission, "id = ?", id)
	return mission, translate(result.Error)
}

// Create inserts a mission after confirming both parents exist. The
// existence checks and the insert share one transaction.
func (r *MissionRepository) Create(ctx context.Context, mission models.Mission) (models.Mission, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Scientist{}, mission.ScientistID); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Planet{}, mission.PlanetID); err != nil {
			return err
		}
		return translate(tx.Create(&mission).Error)
	})
	return mission, err
}

func requireRow(tx *gorm.DB, model any, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return translate(err)
	}
	if count == 0 {
		return ErrForeignKey
	}
	return nil
}
