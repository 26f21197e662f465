package services

import (
	"context"
	"log/slog"

	"github.com/cosmic-missions/models"
	"github.com/cosmic-missions/repositories"
	"gorm.io/gorm"
)

// MissionService handles business logic for missions
type MissionService struct {
	missionRepo *repositories.MissionRepository
	logger      *slog.Logger
}

// NewMissionService creates a new mission service instance
func NewMissionService(db *gorm.DB, logger *slog.Logger) *MissionService {
	return &MissionService{
		missionRepo: repositories.NewMissionRepository(db),
		logger:      logger,
	}
}

// ListMissions retrieves every mission in creation order
func (s *MissionService) ListMissions(ctx context.Context) ([]models.Mission, error) {
	missions, err := s.missionRepo.FindAll(ctx)
	return missions, wrap("list missions", err)
}

// CreateMission validates a mission, checks that its scientist and planet
// exist, stores it and returns it with both parents loaded.
func (s *MissionService) CreateMission(ctx context.Context, mission models.Mission) (models.Mission, error) {
	if err := mission.Validate(); err != nil {
		return mission, err
	}

	created, err := s.missionRepo.Create(ctx, mission)
	if err != nil {
		return created, wrap("create mission", err)
	}

	loaded, err := s.missionRepo.WithRelations(ctx, created.ID)
	if err != nil {
		return created, notFound(wrap("load mission", err), ErrMissionNotFound)
	}

	s.logger.Info("mission created", "id", loaded.ID, "scientist_id", loaded.ScientistID, "planet_id", loaded.PlanetID)
	return loaded, nil
}
