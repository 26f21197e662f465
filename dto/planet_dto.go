package dto

import "github.com/cosmic-missions/models"

// PlanetResponse is the list-mode projection of a planet.
type PlanetResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

// PlanetList projects planets for list responses.
func PlanetList(planets []models.Planet) []PlanetResponse {
	out := make([]PlanetResponse, 0, len(planets))
	for _, p := range planets {
		out = append(out, PlanetSummary(p))
	}
	return out
}

// PlanetSummary projects a planet without its missions.
func PlanetSummary(p models.Planet) PlanetResponse {
	return PlanetResponse{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
	}
}
