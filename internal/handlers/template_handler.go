package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/services"
)

type TemplateHandler struct {
	*BaseHandler
	templateService services.TemplateService
}

func NewTemplateHandler(base *BaseHandler, templateService services.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		BaseHandler:     base,
		templateService: templateService,
	}
}

func (h *TemplateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.List)
}

func (h *TemplateHandler) List(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.templateService.GetTemplates(c.Request.Context(), user))
}
