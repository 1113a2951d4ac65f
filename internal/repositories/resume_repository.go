package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resumebuilder_backend/internal/models"
)

var ErrResumeNotFound = errors.New("resume not found")

// ResumeRepository scopes every single-row lookup by owner and ID together,
// so a resume belonging to another user is indistinguishable from a missing
// one.
type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	FindByUserID(ctx context.Context, userID string) ([]models.Resume, error)
	FindByUserIDAndID(ctx context.Context, userID, id string) (*models.Resume, error)
	Update(ctx context.Context, resume *models.Resume) error
	Delete(ctx context.Context, userID, id string) error
}

type ResumeRepositoryImpl struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &ResumeRepositoryImpl{db: db}
}

func (r *ResumeRepositoryImpl) Create(ctx context.Context, resume *models.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

func (r *ResumeRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *ResumeRepositoryImpl) FindByUserIDAndID(ctx context.Context, userID, id string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.WithContext(ctx).
		First(&resume, "user_id = ? AND id = ?", userID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResumeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) Update(ctx context.Context, resume *models.Resume) error {
	return r.db.WithContext(ctx).Save(resume).Error
}

func (r *ResumeRepositoryImpl) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Resume{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}
