package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/internal/validator"
	"resumebuilder_backend/pkg/apperrors"
)

type EmailHandler struct {
	*BaseHandler
	emailService services.EmailService
}

func NewEmailHandler(base *BaseHandler, emailService services.EmailService) *EmailHandler {
	return &EmailHandler{
		BaseHandler:  base,
		emailService: emailService,
	}
}

func (h *EmailHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/email/send-resume", h.SendResume)
}

// SendResume takes a multipart form: recipientEmail, optional subject and
// message, and the pdfFile attachment.
func (h *EmailHandler) SendResume(c *gin.Context) {
	user, ok := h.Principal(c)
	if !ok {
		return
	}

	req := dto.SendResumeRequest{
		RecipientEmail: c.PostForm("recipientEmail"),
		Subject:        c.PostForm("subject"),
		Message:        c.PostForm("message"),
	}
	if err := h.validator.Validate(&req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(c.Request.Context(), "Internal validator error", err,
				"path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return
	}

	pdf, ok := h.FormFile(c, "pdfFile")
	if !ok {
		return
	}

	if err := h.emailService.SendResume(c.Request.Context(), user, &req, pdf); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SendResumeResponse{
		Success: true,
		Message: "Resume sent successfully",
	})
}
