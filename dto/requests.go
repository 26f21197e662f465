package dto

// CreateScientistRequest represents the request payload for creating a scientist
type CreateScientistRequest struct {
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

// CreateMissionRequest represents the request payload for creating a mission
type CreateMissionRequest struct {
	Name        string `json:"name"`
	ScientistID uint   `json:"scientist_id"`
	PlanetID    uint   `json:"planet_id"`
}

// ErrorsResponse is returned for every validation failure. The list is
// deliberately generic.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrors is the body sent with a 400.
func ValidationErrors() ErrorsResponse {
	return ErrorsResponse{Errors: []string{"validation errors"}}
}
