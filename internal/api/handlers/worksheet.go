package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/discount-form/internal/api/dto"
	"github.com/eshaffer321/discount-form/internal/domain/worksheet"
)

// WorksheetHandler exposes the worksheet operations as a JSON API.
// The client owns the state and sends it with every request.
type WorksheetHandler struct {
	*Base
}

// NewWorksheetHandler creates a new worksheet handler.
func NewWorksheetHandler(renderer *worksheet.Renderer, logger *slog.Logger) *WorksheetHandler {
	return &WorksheetHandler{
		Base: NewBase(renderer, logger),
	}
}

// Events handles POST /api/worksheet/events - applies edits in order and
// returns the new state with its rendering.
func (h *WorksheetHandler) Events(c *gin.Context) {
	var req dto.WorksheetEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	state, err := worksheet.ApplyAll(req.InitialState(), req.Events)
	if err != nil {
		if errors.Is(err, worksheet.ErrRowOutOfRange) || errors.Is(err, worksheet.ErrUnknownField) {
			h.WriteError(c, http.StatusBadRequest, dto.ValidationError(err.Error()))
			return
		}
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	h.WriteJSON(c, http.StatusOK, dto.WorksheetResponse{
		State: state,
		View:  h.renderer.Render(state),
	})
}

// Render handles POST /api/worksheet/render - renders a state as sent.
// The trailing blank row is restored before rendering.
func (h *WorksheetHandler) Render(c *gin.Context) {
	var state worksheet.State
	if err := c.ShouldBindJSON(&state); err != nil {
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}
	state.Items = worksheet.MaybeGrowList(state.Items)

	h.WriteJSON(c, http.StatusOK, dto.WorksheetResponse{
		State: state,
		View:  h.renderer.Render(state),
	})
}

// Key handles GET /api/keys/:key - reports whether the keystroke is
// allowed in amount fields.
func (h *WorksheetHandler) Key(c *gin.Context) {
	key := c.Param("key")
	h.WriteJSON(c, http.StatusOK, dto.KeyResponse{
		Key:      key,
		Accepted: worksheet.AcceptKey(key),
	})
}
