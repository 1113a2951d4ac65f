package services

import (
	"context"

	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/services/dto"
)

var (
	basicTemplates = []string{
		"Classic Blue",
		"ATS Clean",
		"Minimal Grey",
		"Tech Serif",
	}
	premiumTemplates = []string{
		"Modern Navy",
		"Accent Orange",
		"Academic Grey",
	}
)

type TemplateService interface {
	GetTemplates(ctx context.Context, user *models.User) *dto.TemplatesResponse
}

type TemplateServiceImpl struct{}

func NewTemplateService() TemplateService {
	return &TemplateServiceImpl{}
}

// GetTemplates gates the catalogue by the caller's current plan. The plan is
// read from the fresh user row, so an upgrade applies immediately.
func (s *TemplateServiceImpl) GetTemplates(ctx context.Context, user *models.User) *dto.TemplatesResponse {
	all := make([]string, 0, len(basicTemplates)+len(premiumTemplates))
	all = append(all, basicTemplates...)
	all = append(all, premiumTemplates...)

	isPremium := user.SubscriptionPlan == models.PlanPremium
	available := basicTemplates
	if isPremium {
		available = all
	}

	return &dto.TemplatesResponse{
		AvailableTemplates: available,
		AllTemplates:       all,
		SubscriptionPlan:   string(user.SubscriptionPlan),
		IsPremium:          isPremium,
	}
}
