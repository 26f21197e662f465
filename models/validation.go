package models

import "fmt"

// ValidationError reports a field that failed validation before a write.
type ValidationError struct {
	Entity  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Message)
}

func requireString(entity, field, value, message string) *ValidationError {
	if value == "" {
		return &ValidationError{Entity: entity, Field: field, Message: message}
	}
	return nil
}

func requireID(entity, field string, value uint, message string) *ValidationError {
	if value == 0 {
		return &ValidationError{Entity: entity, Field: field, Message: message}
	}
	return nil
}
