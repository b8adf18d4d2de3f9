package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/discount-form/internal/api/dto"
	"github.com/eshaffer321/discount-form/internal/domain/worksheet"
)

// Base provides shared functionality for all handlers.
type Base struct {
	renderer *worksheet.Renderer
	logger   *slog.Logger
}

// NewBase creates a new base handler with the given renderer.
func NewBase(renderer *worksheet.Renderer, logger *slog.Logger) *Base {
	if logger == nil {
		logger = slog.Default()
	}
	return &Base{renderer: renderer, logger: logger}
}

// WriteJSON writes a JSON response with the given status code.
func (b *Base) WriteJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// WriteError writes an error response with the given status code.
func (b *Base) WriteError(c *gin.Context, status int, err dto.APIError) {
	b.logger.Debug("request rejected",
		"path", c.Request.URL.Path,
		"code", err.Code,
		"message", err.Message)
	c.AbortWithStatusJSON(status, err)
}
