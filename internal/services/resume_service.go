package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"

	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

// DefaultTheme is applied to new resumes created without a template.
const DefaultTheme = "Classic Blue"

type ResumeService interface {
	Create(ctx context.Context, user *models.User, req *dto.CreateResumeRequest) (*models.Resume, error)
	List(ctx context.Context, user *models.User) ([]models.Resume, error)
	Get(ctx context.Context, user *models.User, id string) (*models.Resume, error)
	Update(ctx context.Context, user *models.User, id string, updated *models.Resume) (*models.Resume, error)
	Delete(ctx context.Context, user *models.User, id string) error
	UploadImages(ctx context.Context, user *models.User, id string, thumbnail, profileImage *dto.UploadFile) (*models.Resume, error)
}

type ResumeServiceImpl struct {
	resumes  repositories.ResumeRepository
	uploader ImageUploader
}

func NewResumeService(resumes repositories.ResumeRepository, uploader ImageUploader) ResumeService {
	return &ResumeServiceImpl{resumes: resumes, uploader: uploader}
}

func (s *ResumeServiceImpl) Create(ctx context.Context, user *models.User, req *dto.CreateResumeRequest) (*models.Resume, error) {
	resume := &models.Resume{
		UserID: user.ID,
		Title:  req.Title,
		Template: datatypes.NewJSONType(models.Template{
			Theme: DefaultTheme,
		}),
	}
	if err := s.resumes.Create(ctx, resume); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

func (s *ResumeServiceImpl) List(ctx context.Context, user *models.User) ([]models.Resume, error) {
	resumes, err := s.resumes.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resumes, nil
}

func (s *ResumeServiceImpl) Get(ctx context.Context, user *models.User, id string) (*models.Resume, error) {
	resume, err := s.resumes.FindByUserIDAndID(ctx, user.ID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrNotFound(err, "resume", "Resume not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

// Update replaces the document wholesale with the submitted fields. Identity
// and ownership columns are kept from the stored row.
func (s *ResumeServiceImpl) Update(ctx context.Context, user *models.User, id string, updated *models.Resume) (*models.Resume, error) {
	resume, err := s.Get(ctx, user, id)
	if err != nil {
		return nil, err
	}

	resume.Title = updated.Title
	resume.ThumbnailLink = updated.ThumbnailLink
	resume.Template = updated.Template
	resume.ProfileInfo = updated.ProfileInfo
	resume.ContactInfo = updated.ContactInfo
	resume.WorkExperience = updated.WorkExperience
	resume.Education = updated.Education
	resume.Skills = updated.Skills
	resume.Projects = updated.Projects
	resume.Certifications = updated.Certifications
	resume.Languages = updated.Languages
	resume.Interests = updated.Interests

	if err := s.resumes.Update(ctx, resume); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

func (s *ResumeServiceImpl) Delete(ctx context.Context, user *models.User, id string) error {
	err := s.resumes.Delete(ctx, user.ID, id)
	if errors.Is(err, repositories.ErrResumeNotFound) {
		return apperrors.ErrNotFound(err, "resume", "Resume not found")
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// UploadImages updates the thumbnail and the profile preview in one call.
// Either part may be absent.
func (s *ResumeServiceImpl) UploadImages(ctx context.Context, user *models.User, id string, thumbnail, profileImage *dto.UploadFile) (*models.Resume, error) {
	resume, err := s.Get(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if thumbnail == nil && profileImage == nil {
		return nil, apperrors.NewBadRequestError("At least one image file is required")
	}

	if thumbnail != nil {
		url, err := s.uploader.UploadImage(ctx, thumbnail)
		if err != nil {
			return nil, err
		}
		resume.ThumbnailLink = url
	}
	if profileImage != nil {
		url, err := s.uploader.UploadImage(ctx, profileImage)
		if err != nil {
			return nil, err
		}
		profile := resume.ProfileInfo.Data()
		profile.ProfilePreviewURL = url
		resume.ProfileInfo = datatypes.NewJSONType(profile)
	}

	if err := s.resumes.Update(ctx, resume); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}
