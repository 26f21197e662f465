package services

import (
	"context"

	"github.com/cosmic-missions/models"
	"github.com/cosmic-missions/repositories"
	"gorm.io/gorm"
)

// PlanetService handles business logic for planets
type PlanetService struct {
	planetRepo *repositories.PlanetRepository
}

// NewPlanetService creates a new planet service instance
func NewPlanetService(db *gorm.DB) *PlanetService {
	return &PlanetService{
		planetRepo: repositories.NewPlanetRepository(db),
	}
}

// ListPlanets retrieves every planet in creation order
func (s *PlanetService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	planets, err := s.planetRepo.FindAll(ctx)
	return planets, wrap("list planets", err)
}

// CreatePlanet stores a new planet
func (s *PlanetService) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	created, err := s.planetRepo.Create(ctx, planet)
	return created, wrap("create planet", err)
}
