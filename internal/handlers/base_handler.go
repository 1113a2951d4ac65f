package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/middleware"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/internal/validator"
	"resumebuilder_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// Principal returns the authenticated user. The access gate guarantees it on
// protected routes; the nil branch only fires on misconfigured wiring.
func (h *BaseHandler) Principal(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "principal missing on protected route",
			"path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return nil, false
	}
	return user, true
}

// FormFile reads one multipart part into memory; a missing part returns
// (nil, true) so optional parts bind cleanly.
func (h *BaseHandler) FormFile(c *gin.Context, field string) (*dto.UploadFile, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, true
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form: "+err.Error()))
		return nil, false
	}
	return h.readFormFile(c, fileHeader)
}

func (h *BaseHandler) readFormFile(c *gin.Context, fh *multipart.FileHeader) (*dto.UploadFile, bool) {
	f, err := fh.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to read uploaded file"))
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to read uploaded file"))
		return nil, false
	}

	return &dto.UploadFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, true
}
