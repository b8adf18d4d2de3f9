package dto

import (
	"time"

	"github.com/eshaffer321/discount-form/internal/domain/worksheet"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// WorksheetResponse carries the updated state and its rendering.
type WorksheetResponse struct {
	State worksheet.State `json:"state"`
	View  worksheet.View  `json:"view"`
}

// KeyResponse reports whether a keystroke is allowed in amount fields.
type KeyResponse struct {
	Key      string `json:"key"`
	Accepted bool   `json:"accepted"`
}

// NewHealthResponse creates a health response with current timestamp.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
