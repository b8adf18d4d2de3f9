package dto

import "github.com/eshaffer321/discount-form/internal/domain/worksheet"

// WorksheetEventsRequest is the body for POST /api/worksheet/events.
// A nil State starts from a single blank row.
type WorksheetEventsRequest struct {
	State  *worksheet.State  `json:"state"`
	Events []worksheet.Event `json:"events"`
}

// InitialState returns the request's state, or a fresh one when absent.
func (r WorksheetEventsRequest) InitialState() worksheet.State {
	if r.State == nil {
		return worksheet.New()
	}
	return *r.State
}
