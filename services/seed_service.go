package services

import (
	"context"
	"log/slog"

	"github.com/cosmic-missions/models"
	"github.com/cosmic-missions/repositories"
	"gorm.io/gorm"
)

// SeedService resets the store to a small fixed data set
type SeedService struct {
	scientists *ScientistService
	planets    *PlanetService
	missions   *MissionService
	planetRepo *repositories.PlanetRepository
	logger     *slog.Logger
}

// NewSeedService creates a new seed service instance
func NewSeedService(db *gorm.DB, logger *slog.Logger) *SeedService {
	return &SeedService{
		scientists: NewScientistService(db, logger),
		planets:    NewPlanetService(db),
		missions:   NewMissionService(db, logger),
		planetRepo: repositories.NewPlanetRepository(db),
		logger:     logger,
	}
}

var seedPlanets = []models.Planet{
	{Name: "TauCeti E", DistanceFromEarth: 1234567, NearestStar: "TauCeti"},
	{Name: "Maxxor", DistanceFromEarth: 4567890, NearestStar: "Canus Minor"},
	{Name: "Plasmus", DistanceFromEarth: 890123, NearestStar: "Alpha Centauri"},
	{Name: "Xeno Prime", DistanceFromEarth: 2345678, NearestStar: "Sirius"},
}

var seedScientists = []models.Scientist{
	{Name: "Mel T. Valent", FieldOfStudy: "xenobiology"},
	{Name: "P. Legrange", FieldOfStudy: "orbital mechanics"},
	{Name: "Ada Nova", FieldOfStudy: "astrophysics"},
}

// Seed deletes every existing record and inserts the sample data. Each
// scientist gets two missions: one to the planet at its own index and one to
// the next planet, wrapping around.
func (s *SeedService) Seed(ctx context.Context) error {
	if err := s.clear(ctx); err != nil {
		return err
	}

	planets := make([]models.Planet, 0, len(seedPlanets))
	for _, p := range seedPlanets {
		created, err := s.planets.CreatePlanet(ctx, p)
		if err != nil {
			return err
		}
		planets = append(planets, created)
	}

	for i, sc := range seedScientists {
		scientist, err := s.scientists.CreateScientist(ctx, sc.Name, sc.FieldOfStudy)
		if err != nil {
			return err
		}
		for j := 0; j < 2; j++ {
			planet := planets[(i+j)%len(planets)]
			_, err := s.missions.CreateMission(ctx, models.Mission{
				Name:        scientist.Name + " to " + planet.Name,
				ScientistID: scientist.ID,
				PlanetID:    planet.ID,
			})
			if err != nil {
				return err
			}
		}
	}

	s.logger.Info("seed completed", "planets", len(seedPlanets), "scientists", len(seedScientists))
	return nil
}

// clear removes planets then scientists through the cascading deletes.
func (s *SeedService) clear(ctx context.Context) error {
	planets, err := s.planets.ListPlanets(ctx)
	if err != nil {
		return err
	}
	for _, p := range planets {
		if err := s.planetRepo.Delete(ctx, p.ID); err != nil {
			return wrap("clear planets", err)
		}
	}

	scientists, err := s.scientists.ListScientists(ctx)
	if err != nil {
		return err
	}
	for _, sc := range scientists {
		if err := s.scientists.DeleteScientist(ctx, sc.ID); err != nil {
			return err
		}
	}
	return nil
}
