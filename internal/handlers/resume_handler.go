package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/services/dto"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	resumes := rg.Group("/resumes")
	{
		resumes.POST("", h.Create)
		resumes.GET("", h.List)
		resumes.GET("/:id", h.Get)
		resumes.PUT("/:id", h.Update)
		resumes.DELETE("/:id", h.Delete)
		resumes.PUT("/:id/upload-images", h.UploadImages)
	}
}

func (h *ResumeHandler) Create(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateResumeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resume, err := h.resumeService.Create(c.Request.Context(), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

func (h *ResumeHandler) List(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	resumes, err := h.resumeService.List(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.Get(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

// Update takes the full document and replaces the stored one.
func (h *ResumeHandler) Update(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	var updated models.Resume
	if err := c.ShouldBindJSON(&updated); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resume, err := h.resumeService.Update(c.Request.Context(), user, c.Param("id"), &updated)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}

func (h *ResumeHandler) UploadImages(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	thumbnail, ok := h.FormFile(c, "thumbnail")
	if !ok {
		return
	}
	profileImage, ok := h.FormFile(c, "profileImage")
	if !ok {
		return
	}

	resume, err := h.resumeService.UploadImages(c.Request.Context(), user, c.Param("id"), thumbnail, profileImage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}
