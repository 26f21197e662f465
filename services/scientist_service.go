package services

import (
	"context"
	"log/slog"

	"github.com/cosmic-missions/models"
	"github.com/cosmic-missions/repositories"
	"github.com/cosmic-missions/utils"
	"gorm.io/gorm"
)

// ScientistService handles business logic for scientists
type ScientistService struct {
	scientistRepo *repositories.ScientistRepository
	logger        *slog.Logger
}

// NewScientistService creates a new scientist service instance
func NewScientistService(db *gorm.DB, logger *slog.Logger) *ScientistService {
	return &ScientistService{
		scientistRepo: repositories.NewScientistRepository(db),
		logger:        logger,
	}
}

// ListScientists retrieves every scientist in creation order
func (s *ScientistService) ListScientists(ctx context.Context) ([]models.Scientist, error) {
	scientists, err := s.scientistRepo.FindAll(ctx)
	return scientists, wrap("list scientists", err)
}

// GetScientist retrieves a scientist without its relations
func (s *ScientistService) GetScientist(ctx context.Context, id uint) (models.Scientist, error) {
	scientist, err := s.scientistRepo.FindByID(ctx, id)
	if err != nil {
		return scientist, notFound(err, ErrScientistNotFound)
	}
	return scientist, nil
}

// GetScientistDetail retrieves a scientist with its missions and their planets
func (s *ScientistService) GetScientistDetail(ctx context.Context, id uint) (models.Scientist, error) {
	scientist, err := s.scientistRepo.WithMissions(ctx, id)
	if err != nil {
		return scientist, notFound(err, ErrScientistNotFound)
	}
	return scientist, nil
}

// CreateScientist validates and stores a new scientist
func (s *ScientistService) CreateScientist(ctx context.Context, name, fieldOfStudy string) (models.Scientist, error) {
	scientist := models.Scientist{
		Name:         name,
		FieldOfStudy: fieldOfStudy,
	}
	if err := scientist.Validate(); err != nil {
		return scientist, err
	}

	created, err := s.scientistRepo.Create(ctx, scientist)
	if err != nil {
		return created, wrap("create scientist", err)
	}
	created.Missions = []models.Mission{}

	s.logger.Info("scientist created", "id", created.ID)
	return created, nil
}

// UpdateScientist applies a partial update. Recognized keys are name and
// field_of_study; other keys are ignored. Nothing is written unless the
// resulting scientist is valid.
func (s *ScientistService) UpdateScientist(ctx context.Context, id uint, fields map[string]interface{}) (models.Scientist, error) {
	scientist, err := s.scientistRepo.FindByID(ctx, id)
	if err != nil {
		return scientist, notFound(err, ErrScientistNotFound)
	}

	for key, setter := range map[string]func(string){
		"name":           func(v string) { scientist.Name = v },
		"field_of_study": func(v string) { scientist.FieldOfStudy = v },
	} {
		if _, present := fields[key]; !present {
			continue
		}
		value, ok := utils.GetString(fields, key)
		if !ok {
			return scientist, invalid("scientist", key, "must be a string")
		}
		setter(value)
	}

	if err := scientist.Validate(); err != nil {
		return scientist, err
	}

	updated, err := s.scientistRepo.Update(ctx, scientist)
	if err != nil {
		return updated, notFound(wrap("update scientist", err), ErrScientistNotFound)
	}
	return updated, nil
}

// DeleteScientist removes a scientist together with its missions
func (s *ScientistService) DeleteScientist(ctx context.Context, id uint) error {
	if err := s.scientistRepo.Delete(ctx, id); err != nil {
		return notFound(wrap("delete scientist", err), ErrScientistNotFound)
	}
	s.logger.Info("scientist deleted", "id", id)
	return nil
}
