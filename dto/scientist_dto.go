package dto

import "github.com/cosmic-missions/models"

// ScientistResponse is the list-mode projection of a scientist.
type ScientistResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

// ScientistDetailResponse embeds the scientist's missions and the planets
// they visit. Missions omit their scientist to avoid re-embedding the parent.
type ScientistDetailResponse struct {
	ScientistResponse
	Missions []ScientistMissionResponse `json:"missions"`
	Planets  []PlanetResponse           `json:"planets"`
}

// ScientistMissionResponse is a mission as seen from its scientist.
type ScientistMissionResponse struct {
	MissionResponse
	Planet *PlanetResponse `json:"planet"`
}

// ScientistList projects scientists for list responses.
func ScientistList(scientists []models.Scientist) []ScientistResponse {
	out := make([]ScientistResponse, 0, len(scientists))
	for _, s := range scientists {
		out = append(out, ScientistSummary(s))
	}
	return out
}

// ScientistSummary projects a scientist without any relationship fields.
func ScientistSummary(s models.Scientist) ScientistResponse {
	return ScientistResponse{
		ID:           s.ID,
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
	}
}

// ScientistDetail projects a scientist with its missions loaded. Planets are
// collected from the missions, deduplicated, in first-seen order.
func ScientistDetail(s models.Scientist) ScientistDetailResponse {
	resp := ScientistDetailResponse{
		ScientistResponse: ScientistSummary(s),
		Missions:          make([]ScientistMissionResponse, 0, len(s.Missions)),
		Planets:           make([]PlanetResponse, 0),
	}

	seen := make(map[uint]bool)
	for _, m := range s.Missions {
		item := ScientistMissionResponse{MissionResponse: MissionSummary(m)}
		if m.Planet != nil {
			planet := PlanetSummary(*m.Planet)
			item.Planet = &planet
			if !seen[planet.ID] {
				seen[planet.ID] = true
				resp.Planets = append(resp.Planets, planet)
			}
		}
		resp.Missions = append(resp.Missions, item)
	}
	return resp
}
