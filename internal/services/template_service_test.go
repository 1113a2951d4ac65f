package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumebuilder_backend/internal/models"
)

func TestTemplatesForBasicPlan(t *testing.T) {
	svc := NewTemplateService()
	user := testUser("alice")

	resp := svc.GetTemplates(context.Background(), user)
	assert.False(t, resp.IsPremium)
	assert.Equal(t, "Basic", resp.SubscriptionPlan)
	assert.Equal(t, basicTemplates, resp.AvailableTemplates)
	assert.Len(t, resp.AllTemplates, len(basicTemplates)+len(premiumTemplates))
	assert.NotContains(t, resp.AvailableTemplates, "Modern Navy")
}

func TestTemplatesForPremiumPlan(t *testing.T) {
	svc := NewTemplateService()
	user := testUser("alice")
	user.SubscriptionPlan = models.PlanPremium

	resp := svc.GetTemplates(context.Background(), user)
	assert.True(t, resp.IsPremium)
	assert.Equal(t, "Premium", resp.SubscriptionPlan)
	assert.Equal(t, resp.AllTemplates, resp.AvailableTemplates)
	assert.Contains(t, resp.AvailableTemplates, "Modern Navy")
	assert.Contains(t, resp.AvailableTemplates, "Classic Blue")
}
