package dto

import "github.com/cosmic-missions/models"

// MissionResponse is the list-mode projection of a mission.
type MissionResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ScientistID uint   `json:"scientist_id"`
	PlanetID    uint   `json:"planet_id"`
}

// MissionDetailResponse embeds both parents, each without their missions.
type MissionDetailResponse struct {
	MissionResponse
	Scientist *ScientistResponse `json:"scientist"`
	Planet    *PlanetResponse    `json:"planet"`
}

// MissionList projects missions for list responses.
func MissionList(missions []models.Mission) []MissionResponse {
	out := make([]MissionResponse, 0, len(missions))
	for _, m := range missions {
		out = append(out, MissionSummary(m))
	}
	return out
}

// MissionSummary projects a mission without relationship fields.
func MissionSummary(m models.Mission) MissionResponse {
	return MissionResponse{
		ID:          m.ID,
		Name:        m.Name,
		ScientistID: m.ScientistID,
		PlanetID:    m.PlanetID,
	}
}

// MissionDetail projects a mission with its scientist and planet.
func MissionDetail(m models.Mission) MissionDetailResponse {
	resp := MissionDetailResponse{MissionResponse: MissionSummary(m)}
	if m.Scientist != nil {
		s := ScientistSummary(*m.Scientist)
		resp.Scientist = &s
	}
	if m.Planet != nil {
		p := PlanetSummary(*m.Planet)
		resp.Planet = &p
	}
	return resp
}
