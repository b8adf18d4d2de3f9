package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/eshaffer321/discount-form/internal/api/dto"
	"github.com/eshaffer321/discount-form/internal/domain/worksheet"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/worksheet.html.tmpl"))

// pageData is what the worksheet template renders.
type pageData struct {
	Title        string
	Lang         string
	View         worksheet.View
	RejectedKeys []string
}

// PageHandler serves the worksheet as a plain HTML form. State lives in
// the form fields and is rebuilt from them on every submit.
type PageHandler struct {
	*Base
	title string
	lang  string
}

// NewPageHandler creates a new page handler.
func NewPageHandler(renderer *worksheet.Renderer, title, lang string, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		Base:  NewBase(renderer, logger),
		title: title,
		lang:  lang,
	}
}

// Show handles GET / - renders an empty worksheet.
func (h *PageHandler) Show(c *gin.Context) {
	h.render(c, worksheet.New())
}

// Submit handles POST / - normalizes the submitted fields and re-renders.
func (h *PageHandler) Submit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError("invalid form body"))
		return
	}

	state := worksheet.Normalize(
		c.PostFormArray("price"),
		c.PostFormArray("qty"),
		c.PostForm("discount"),
	)

	h.logger.Debug("worksheet submitted",
		"rows", len(state.Items),
		"discount_target", state.DiscountTarget)

	h.render(c, state)
}

func (h *PageHandler) render(c *gin.Context, state worksheet.State) {
	c.Render(http.StatusOK, render.HTML{
		Template: pageTmpl,
		Name:     "worksheet",
		Data: pageData{
			Title:        h.title,
			Lang:         h.lang,
			View:         h.renderer.Render(state),
			RejectedKeys: worksheet.RejectedKeys(),
		},
	})
}
